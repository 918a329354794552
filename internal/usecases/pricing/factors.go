package pricing

import (
	"fmt"
	"time"

	"github.com/mesafacil/pricing-api/internal/config"
	"github.com/mesafacil/pricing-api/internal/domain"
)

// Confiança atribuída a um fator calculado com dados reais versus um fator
// que caiu no padrão neutro por falta de dados
const (
	fullConfidence    = 1.0
	reducedConfidence = 0.5
)

// Pesos de cada fator na confiança final do resultado. Fatores que dependem
// de dados externos (demanda e histórico) pesam mais que os puros.
const (
	demandWeight     = 0.30
	historicalWeight = 0.30
	temporalWeight   = 0.15
	capacityWeight   = 0.15
	holidayWeight    = 0.10
)

// Tabela de pico/vale por dia da semana e hora. Fim de semana de restaurante
// começa na sexta à noite.
var (
	weekendDinnerMultiplier = 1.25
	weekendDayMultiplier    = 1.10
	weekdayDinnerMultiplier = 1.10
	weekdayLunchMultiplier  = 0.90
	offPeakMultiplier       = 0.85
)

// Multiplicadores de desejabilidade por localização da mesa
var locationMultipliers = map[domain.TableLocation]float64{
	domain.LocationPrivate: 1.20,
	domain.LocationWindow:  1.15,
	domain.LocationCenter:  1.00,
	domain.LocationOutdoor: 0.95,
	domain.LocationCorner:  0.90,
}

// factorOutcome carrega um FactorResult junto com a confiança do cálculo,
// usada na ponderação final mas não exposta por fator na resposta
type factorOutcome struct {
	result     domain.FactorResult
	confidence float64
}

func neutralFactor(reason string) factorOutcome {
	return factorOutcome{
		result:     domain.FactorResult{Value: 1.0, Reason: reason},
		confidence: reducedConfidence,
	}
}

// demandFactor converte a taxa de ocupação da janela em um multiplicador de
// demanda e um rótulo categórico. Snapshot nulo indica dados indisponíveis.
func demandFactor(cfg config.Pricing, snapshot *domain.OccupancySnapshot) (factorOutcome, float64, string) {
	if snapshot == nil || snapshot.TotalTables <= 0 {
		outcome := neutralFactor("dados de ocupação indisponíveis")
		return outcome, 0, domain.DemandLevelMedium
	}

	rate := snapshot.Rate()
	percent := int(rate * 100)

	var outcome factorOutcome
	var level string

	switch {
	case rate < cfg.DemandLowThreshold:
		level = domain.DemandLevelLow
		outcome = factorOutcome{
			result: domain.FactorResult{
				Value:  cfg.DemandLowMultiplier,
				Reason: fmt.Sprintf("ocupação baixa (%d%%), desconto para atrair reservas", percent),
			},
			confidence: fullConfidence,
		}
	case rate < cfg.DemandHighThreshold:
		level = domain.DemandLevelMedium
		outcome = factorOutcome{
			result: domain.FactorResult{
				Value:  1.0,
				Reason: fmt.Sprintf("ocupação moderada (%d%%)", percent),
			},
			confidence: fullConfidence,
		}
	case rate < cfg.DemandFullThreshold:
		level = domain.DemandLevelHigh
		outcome = factorOutcome{
			result: domain.FactorResult{
				Value:  cfg.DemandHighMultiplier,
				Reason: fmt.Sprintf("ocupação alta (%d%%)", percent),
			},
			confidence: fullConfidence,
		}
	default:
		level = domain.DemandLevelHigh
		outcome = factorOutcome{
			result: domain.FactorResult{
				Value:  cfg.DemandFullMultiplier,
				Reason: fmt.Sprintf("restaurante quase lotado (%d%%)", percent),
			},
			confidence: fullConfidence,
		}
	}

	return outcome, rate, level
}

// temporalFactor é função pura de (dia da semana, hora); sempre bem-sucedida
func temporalFactor(weekday time.Weekday, hour int) factorOutcome {
	isDinner := hour >= 18 && hour <= 21
	isLunch := hour >= 12 && hour <= 14

	isWeekendNight := weekday == time.Saturday || weekday == time.Sunday ||
		(weekday == time.Friday && isDinner)

	var value float64
	var reason string

	switch {
	case isWeekendNight && isDinner:
		value = weekendDinnerMultiplier
		reason = "jantar de fim de semana (horário de pico)"
	case weekday == time.Saturday || weekday == time.Sunday:
		value = weekendDayMultiplier
		reason = "fim de semana fora do horário de jantar"
	case isDinner:
		value = weekdayDinnerMultiplier
		reason = "jantar em dia de semana"
	case isLunch:
		value = weekdayLunchMultiplier
		reason = "almoço em dia de semana (fora de pico)"
	default:
		value = offPeakMultiplier
		reason = "horário de baixo movimento"
	}

	return factorOutcome{
		result:     domain.FactorResult{Value: value, Reason: reason},
		confidence: fullConfidence,
	}
}

// historicalFactor compara o movimento do mesmo dia-da-semana/horário com a
// média geral do restaurante. Abaixo do mínimo de amostras, cai no neutro.
func historicalFactor(cfg config.Pricing, stats *domain.HistoricalStats) factorOutcome {
	if stats == nil || stats.TotalBookings < cfg.HistoryMinSamples || stats.AveragePerBucket <= 0 {
		return neutralFactor("histórico insuficiente")
	}

	ratio := float64(stats.BucketBookings) / stats.AveragePerBucket

	// Suaviza o desvio da média antes de virar multiplicador
	value := 1.0 + (ratio-1.0)*0.3
	if value < cfg.HistoryMinMultiplier {
		value = cfg.HistoryMinMultiplier
	}
	if value > cfg.HistoryMaxMultiplier {
		value = cfg.HistoryMaxMultiplier
	}

	var reason string
	switch {
	case ratio > 1.1:
		reason = fmt.Sprintf("horário historicamente concorrido (%.1fx a média)", ratio)
	case ratio < 0.9:
		reason = fmt.Sprintf("horário historicamente tranquilo (%.1fx a média)", ratio)
	default:
		reason = "movimento histórico na média do restaurante"
	}

	return factorOutcome{
		result:     domain.FactorResult{Value: value, Reason: reason},
		confidence: fullConfidence,
	}
}

// capacityFactor avalia o encaixe do grupo na mesa e a desejabilidade da
// localização. Função pura da requisição mais configuração estática.
func capacityFactor(guestCount, tableCapacity int, location domain.TableLocation) (factorOutcome, float64) {
	if tableCapacity <= 0 {
		outcome := neutralFactor("capacidade da mesa desconhecida")
		return outcome, 0
	}

	efficiency := float64(guestCount) / float64(tableCapacity)
	if efficiency > 1 {
		// Grupo acima da capacidade é precificado, não rejeitado
		efficiency = 1
	}

	var fit float64
	var reason string

	switch {
	case efficiency >= 0.9:
		fit = 1.10
		reason = fmt.Sprintf("encaixe perfeito da mesa (eficiência %d%%)", int(efficiency*100))
	case efficiency >= 0.7:
		fit = 1.00
		reason = fmt.Sprintf("mesa bem dimensionada (eficiência %d%%)", int(efficiency*100))
	case efficiency >= 0.5:
		fit = 0.90
		reason = fmt.Sprintf("mesa maior que o grupo (eficiência %d%%)", int(efficiency*100))
	default:
		fit = 0.80
		reason = fmt.Sprintf("mesa muito acima do tamanho do grupo (eficiência %d%%)", int(efficiency*100))
	}

	locationValue, ok := locationMultipliers[location]
	if !ok {
		locationValue = 1.0
	}

	return factorOutcome{
		result: domain.FactorResult{
			Value:  fit * locationValue,
			Reason: fmt.Sprintf("%s; localização %s", reason, location),
		},
		confidence: fullConfidence,
	}, efficiency
}

// holidayFactor aplica o impacto da data comemorativa, ajustado pelo perfil
// do grupo: datas românticas pesam integralmente em mesas para dois e são
// amortecidas para grupos maiores.
func holidayFactor(holiday *domain.Holiday, guestCount int) factorOutcome {
	if holiday == nil {
		return factorOutcome{
			result:     domain.FactorResult{Value: 1.0, Reason: "sem feriado"},
			confidence: fullConfidence,
		}
	}

	affinity := 1.0
	if holiday.Romantic {
		switch {
		case guestCount <= 2:
			affinity = 1.0
		case guestCount <= 4:
			affinity = 0.5
		default:
			affinity = 0.25
		}
	}

	value := 1.0 + (holiday.Impact-1.0)*affinity

	return factorOutcome{
		result: domain.FactorResult{
			Value:   value,
			Reason:  fmt.Sprintf("%s (%s)", holiday.Name, holiday.Type),
			Holiday: holiday,
		},
		confidence: fullConfidence,
	}
}
