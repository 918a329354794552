package predicting

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mesafacil/pricing-api/internal/config"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/mesafacil/pricing-api/internal/usecases/pricing"
	"github.com/mesafacil/pricing-api/pkg/log"
	"github.com/mesafacil/pricing-api/pkg/utils"
)

// Defaults aplicados quando a requisição não informa horários ou tamanhos de grupo
var (
	defaultTimeSlots   = []string{"18:00", "19:00", "20:00"}
	defaultGuestCounts = []int{2, 4, 6}
)

// Service implementa Predictor dirigindo o Calculator sobre a grade
// data × horário × tamanho de grupo com um pool limitado de workers
type Service struct {
	cfg        *config.Config
	calculator pricing.Calculator
	holidays   pricing.HolidayResolver
}

func NewService(
	cfg *config.Config,
	calculator pricing.Calculator,
	holidays pricing.HolidayResolver,
) Predictor {
	return &Service{
		cfg:        cfg,
		calculator: calculator,
		holidays:   holidays,
	}
}

// gridJob é uma célula (data, horário) da grade de previsão; os tamanhos de
// grupo são avaliados sequencialmente dentro da célula
type gridJob struct {
	date time.Time
	slot string
}

// Predict valida a requisição e percorre o período dia a dia, emitindo uma
// PredictionEntry por (data, horário) com ao menos um preço calculado.
// Falhas de célula nunca abortam as células irmãs nem os demais dias.
func (s *Service) Predict(ctx context.Context, req *domain.PredictionRequest) (*domain.PredictionResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	timeSlots := req.TimeSlots
	if len(timeSlots) == 0 {
		timeSlots = defaultTimeSlots
	}

	guestCounts := req.GuestCounts
	if len(guestCounts) == 0 {
		guestCounts = defaultGuestCounts
	}

	includeHolidays := true
	if req.IncludeHolidays != nil {
		includeHolidays = *req.IncludeHolidays
	}

	entries := s.runGrid(ctx, req, timeSlots, guestCounts, includeHolidays)

	// Ordena por data e horário para uma resposta estável
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].TimeSlot < entries[j].TimeSlot
	})

	response := &domain.PredictionResponse{
		Predictions:     entries,
		Insights:        s.generateInsights(entries),
		RevenueForecast: s.generateForecast(entries, guestCounts),
		Metadata: domain.PredictionMetadata{
			TimeSlots:        timeSlots,
			GuestCounts:      guestCounts,
			IncludeHolidays:  includeHolidays,
			GeneratedAt:      time.Now().UTC(),
			TotalPredictions: len(entries),
		},
	}

	return response, nil
}

func (s *Service) validate(req *domain.PredictionRequest) error {
	if req.RestaurantID == "" {
		return ErrMissingRestaurant
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return ErrMissingDateRange
	}

	if !req.EndDate.After(req.StartDate) {
		return ErrEndBeforeStart
	}

	days := utils.DaysBetween(req.StartDate, req.EndDate)
	if days > s.cfg.Prediction.MaxRangeDays {
		return fmt.Errorf("%w: %d dias (máximo %d)", ErrRangeTooLong, days, s.cfg.Prediction.MaxRangeDays)
	}

	return nil
}

// runGrid distribui as células (data, horário) por um pool limitado de
// workers e agrega as entradas produzidas. Passado o deadline do contexto,
// novas células deixam de ser agendadas e o resultado parcial é aceito.
func (s *Service) runGrid(
	ctx context.Context,
	req *domain.PredictionRequest,
	timeSlots []string,
	guestCounts []int,
	includeHolidays bool,
) []*domain.PredictionEntry {
	days := utils.DaysBetween(req.StartDate, req.EndDate)

	jobs := make(chan gridJob)
	results := make(chan *domain.PredictionEntry)

	workers := s.cfg.Prediction.MaxWorkers
	if workers <= 0 {
		workers = 1
	}
	if total := days * len(timeSlots); workers > total {
		workers = total
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for job := range jobs {
				if entry := s.predictCell(ctx, req.RestaurantID, job, guestCounts, includeHolidays); entry != nil {
					results <- entry
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for day := 0; day < days; day++ {
			date := req.StartDate.AddDate(0, 0, day)
			for _, slot := range timeSlots {
				select {
				case jobs <- gridJob{date: date, slot: slot}:
				case <-ctx.Done():
					log.ForContext(ctx).Warn("predicting: deadline atingido, aceitando resultado parcial")
					return
				}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	entries := make([]*domain.PredictionEntry, 0, days*len(timeSlots))
	for entry := range results {
		entries = append(entries, entry)
	}

	return entries
}

// predictCell precifica todos os tamanhos de grupo de uma célula. A falha de
// um tamanho de grupo nunca descarta os demais; célula sem nenhum sucesso é
// omitida da resposta.
func (s *Service) predictCell(
	ctx context.Context,
	restaurantID string,
	job gridJob,
	guestCounts []int,
	includeHolidays bool,
) *domain.PredictionEntry {
	predictions := make([]domain.GuestPrediction, 0, len(guestCounts))

	for _, guestCount := range guestCounts {
		if ctx.Err() != nil {
			break
		}

		result := s.priceGuestCount(ctx, restaurantID, job, guestCount)
		if result == nil || !result.Success {
			continue
		}

		predictions = append(predictions, domain.GuestPrediction{
			GuestCount: guestCount,
			FinalPrice: result.FinalPrice,
			Confidence: result.Confidence,
		})
	}

	if len(predictions) == 0 {
		return nil
	}

	entry := &domain.PredictionEntry{
		Date:        job.date,
		DayOfWeek:   job.date.Weekday().String(),
		TimeSlot:    job.slot,
		Predictions: predictions,
	}

	if includeHolidays {
		entry.Holiday = s.holidays.Resolve(job.date)
	}

	sum := 0.0
	entry.PriceRange = domain.PriceRange{Min: predictions[0].FinalPrice, Max: predictions[0].FinalPrice}
	for _, p := range predictions {
		sum += p.FinalPrice
		if p.FinalPrice < entry.PriceRange.Min {
			entry.PriceRange.Min = p.FinalPrice
		}
		if p.FinalPrice > entry.PriceRange.Max {
			entry.PriceRange.Max = p.FinalPrice
		}
	}
	entry.AveragePrice = utils.RoundWithTwoDecimalPlace(sum / float64(len(predictions)))

	return entry
}

// priceGuestCount deriva a mesa representativa do tamanho de grupo e invoca o
// calculador, isolando qualquer pânico na célula
func (s *Service) priceGuestCount(ctx context.Context, restaurantID string, job gridJob, guestCount int) (result *domain.PricingResult) {
	defer func() {
		if r := recover(); r != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"date":        job.date.Format(time.DateOnly),
				"time_slot":   job.slot,
				"guest_count": guestCount,
				"panic":       r,
			}).Error("predicting: falha inesperada ao precificar célula, célula ignorada")
			result = nil
		}
	}()

	capacity, location := representativeTable(guestCount)

	return s.calculator.CalculatePrice(ctx, &domain.PricingRequest{
		RestaurantID:  restaurantID,
		Date:          job.date,
		Time:          job.slot,
		GuestCount:    guestCount,
		TableCapacity: capacity,
		TableLocation: location,
	})
}

// representativeTable escolhe a mesa típica para o tamanho do grupo:
// casais em mesa de dois na janela, grupos médios e grandes no salão
func representativeTable(guestCount int) (int, domain.TableLocation) {
	switch {
	case guestCount <= 2:
		return 2, domain.LocationWindow
	case guestCount <= 4:
		return 4, domain.LocationCenter
	default:
		capacity := 6
		if guestCount > capacity {
			capacity = guestCount
		}
		return capacity, domain.LocationCenter
	}
}
