package pricing

import (
	"context"
	"time"

	"github.com/mesafacil/pricing-api/infrastructure/repository"
	"github.com/mesafacil/pricing-api/internal/config"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/mesafacil/pricing-api/pkg/log"
	"github.com/mesafacil/pricing-api/pkg/utils"
	"github.com/pkg/errors"
)

// errLookupTimeout marca uma consulta de fator que estourou o sub-timeout.
// O fator correspondente cai no padrão neutro em vez de travar a requisição.
var errLookupTimeout = errors.New("consulta excedeu o sub-timeout de precificação")

// Hora assumida quando o horário da requisição não pôde ser interpretado;
// a fronteira da API valida o formato antes de chegar aqui
const defaultDinnerHour = 19

// Service implementa Calculator compondo os cinco fatores de precificação
// sobre o preço base do restaurante
type Service struct {
	cfg            *config.Config
	restaurantRepo repository.RestaurantRepository
	bookingRepo    repository.BookingRepository
	holidays       HolidayResolver
}

func NewService(
	cfg *config.Config,
	restaurantRepo repository.RestaurantRepository,
	bookingRepo repository.BookingRepository,
	holidays HolidayResolver,
) Calculator {
	return &Service{
		cfg:            cfg,
		restaurantRepo: restaurantRepo,
		bookingRepo:    bookingRepo,
		holidays:       holidays,
	}
}

// CalculatePrice produz um PricingResult para a requisição. Nunca retorna
// erro: configuração irresolvível vira resultado de fallback, e cada fator
// sem dados cai no seu padrão neutro com confiança reduzida.
func (s *Service) CalculatePrice(ctx context.Context, req *domain.PricingRequest) *domain.PricingResult {
	logger := log.ForContext(ctx)

	hour, err := utils.ParseTimeSlot(req.Time)
	if err != nil {
		logger.WithField("time", req.Time).Debug("pricing: horário inválido, assumindo horário de jantar")
		hour = defaultDinnerHour
	}

	restaurantConfig := s.resolveRestaurantConfig(ctx, req.RestaurantID)
	if restaurantConfig == nil {
		logger.WithField("restaurant_id", req.RestaurantID).Warn("pricing: configuração não resolvida, aplicando preço de fallback")
		return s.fallbackResult(req)
	}

	basePrice := restaurantConfig.BasePriceFor(req.TableCapacity)
	if basePrice <= 0 {
		basePrice = s.cfg.Pricing.DefaultBasePrice
	}

	demand, occupancyRate, demandLevel := demandFactor(s.cfg.Pricing, s.resolveOccupancy(ctx, req, hour))
	temporal := temporalFactor(req.Date.Weekday(), hour)
	historical := historicalFactor(s.cfg.Pricing, s.resolveHistory(ctx, req, hour))
	capacity, efficiency := capacityFactor(req.GuestCount, req.TableCapacity, req.TableLocation)
	holiday := holidayFactor(s.holidays.Resolve(req.Date), req.GuestCount)

	breakdown := domain.PricingBreakdown{
		Demand:     demand.result,
		Temporal:   temporal.result,
		Historical: historical.result,
		Capacity:   capacity.result,
		Holiday:    holiday.result,
	}

	result := &domain.PricingResult{
		Success:    true,
		QuoteID:    s.newQuoteID(),
		BasePrice:  basePrice,
		FinalPrice: utils.RoundWithTwoDecimalPlace(basePrice * breakdown.Multiplier()),
		Currency:   restaurantConfig.Currency,
		Confidence: combineConfidence(demand, temporal, historical, capacity, holiday),
		Breakdown:  breakdown,
		Context: domain.PricingContext{
			OccupancyRate: utils.RoundWithTwoDecimalPlace(occupancyRate),
			TableInfo: domain.TableInfo{
				Capacity:   req.TableCapacity,
				Location:   req.TableLocation,
				Efficiency: utils.RoundWithTwoDecimalPlace(efficiency),
			},
			DemandLevel: demandLevel,
		},
		CalculatedAt: time.Now().UTC(),
	}

	return result
}

// fallbackResult é o resultado documentado quando restaurante/mesa não
// resolvem: preço fixo, detalhamento todo neutro e confiança reduzida.
// O chamador ainda consegue concluir a reserva com esse preço.
func (s *Service) fallbackResult(req *domain.PricingRequest) *domain.PricingResult {
	neutral := neutralFactor("dados insuficientes")

	breakdown := domain.PricingBreakdown{
		Demand:     neutral.result,
		Temporal:   neutral.result,
		Historical: neutral.result,
		Capacity:   neutral.result,
		Holiday:    neutral.result,
	}

	return &domain.PricingResult{
		Success:    false,
		QuoteID:    s.newQuoteID(),
		BasePrice:  s.cfg.Pricing.FallbackPrice,
		FinalPrice: s.cfg.Pricing.FallbackPrice,
		Currency:   s.cfg.Pricing.Currency,
		Confidence: combineConfidence(neutral, neutral, neutral, neutral, neutral),
		Breakdown:  breakdown,
		Context: domain.PricingContext{
			TableInfo: domain.TableInfo{
				Capacity: req.TableCapacity,
				Location: req.TableLocation,
			},
			DemandLevel: domain.DemandLevelMedium,
		},
		CalculatedAt: time.Now().UTC(),
	}
}

func (s *Service) resolveRestaurantConfig(ctx context.Context, restaurantID string) *domain.RestaurantPricingConfig {
	var restaurantConfig *domain.RestaurantPricingConfig

	err := s.runWithTimeout(ctx, func() error {
		var err error
		restaurantConfig, err = s.restaurantRepo.GetPricingConfig(restaurantID)
		return err
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("pricing: falha ao resolver configuração do restaurante")
		return nil
	}

	return restaurantConfig
}

func (s *Service) resolveOccupancy(ctx context.Context, req *domain.PricingRequest, hour int) *domain.OccupancySnapshot {
	var snapshot *domain.OccupancySnapshot

	err := s.runWithTimeout(ctx, func() error {
		var err error
		snapshot, err = s.bookingRepo.GetOccupancy(req.RestaurantID, req.Date, hour)
		return err
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Debug("pricing: ocupação indisponível, fator de demanda neutro")
		return nil
	}

	return snapshot
}

func (s *Service) resolveHistory(ctx context.Context, req *domain.PricingRequest, hour int) *domain.HistoricalStats {
	var stats *domain.HistoricalStats

	err := s.runWithTimeout(ctx, func() error {
		var err error
		stats, err = s.bookingRepo.GetHistoricalStats(req.RestaurantID, req.Date.Weekday(), hour, s.cfg.Pricing.HistoryLookback)
		return err
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Debug("pricing: histórico indisponível, fator histórico neutro")
		return nil
	}

	return stats
}

// runWithTimeout executa a consulta respeitando o sub-timeout configurado e
// o deadline da requisição. Estouro não aborta o cálculo: o chamador troca o
// fator pelo padrão neutro.
func (s *Service) runWithTimeout(ctx context.Context, fn func() error) error {
	timeout := time.Duration(s.cfg.Pricing.LookupTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		return fn()
	}

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return errLookupTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) newQuoteID() string {
	id, err := utils.GenerateQuoteID()
	if err != nil {
		// Cotação sem ID ainda é utilizável; o ID é só referência advisória
		return ""
	}
	return id
}

// combineConfidence pondera a confiança de cada fator pelos pesos fixos e
// limita o resultado a [0,1]
func combineConfidence(demand, temporal, historical, capacity, holiday factorOutcome) float64 {
	confidence := demand.confidence*demandWeight +
		temporal.confidence*temporalWeight +
		historical.confidence*historicalWeight +
		capacity.confidence*capacityWeight +
		holiday.confidence*holidayWeight

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return utils.RoundWithTwoDecimalPlace(confidence)
}
