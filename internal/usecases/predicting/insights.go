package predicting

import (
	"fmt"
	"time"

	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/mesafacil/pricing-api/pkg/utils"
)

// generateInsights deriva as conclusões de negócio da lista de previsões:
// picos, vales, impacto de feriados, padrões por dia da semana e recomendações
func (s *Service) generateInsights(entries []*domain.PredictionEntry) *domain.BusinessInsights {
	insights := &domain.BusinessInsights{
		PeakDays:        make([]domain.PeakDay, 0),
		LowDemandDays:   make([]domain.LowDemandDay, 0),
		HolidayImpact:   make([]domain.HolidayImpactEntry, 0),
		PricePatterns:   make(map[string]domain.PricePattern),
		Recommendations: make([]string, 0),
	}

	if len(entries) == 0 {
		return insights
	}

	sum := 0.0
	for _, entry := range entries {
		sum += entry.AveragePrice
	}
	mean := sum / float64(len(entries))

	for _, entry := range entries {
		if entry.AveragePrice > s.cfg.Prediction.PeakRatio*mean {
			reason := "período de alta demanda"
			if entry.Holiday != nil {
				reason = entry.Holiday.Name
			}
			insights.PeakDays = append(insights.PeakDays, domain.PeakDay{
				Date:         entry.Date,
				TimeSlot:     entry.TimeSlot,
				AveragePrice: entry.AveragePrice,
				Reason:       reason,
			})
		}

		if entry.AveragePrice < s.cfg.Prediction.LowDemandRatio*mean {
			insights.LowDemandDays = append(insights.LowDemandDays, domain.LowDemandDay{
				Date:                   entry.Date,
				TimeSlot:               entry.TimeSlot,
				AveragePrice:           entry.AveragePrice,
				PromotionalOpportunity: true,
			})
		}

		if entry.Holiday != nil {
			baseline := s.cfg.Prediction.BaselinePrice
			increase := 0.0
			if baseline > 0 {
				increase = (entry.AveragePrice - baseline) / baseline * 100
			}
			insights.HolidayImpact = append(insights.HolidayImpact, domain.HolidayImpactEntry{
				Date:            entry.Date,
				HolidayName:     entry.Holiday.Name,
				AveragePrice:    entry.AveragePrice,
				IncreasePercent: utils.RoundWithTwoDecimalPlace(increase),
			})
		}
	}

	insights.PricePatterns = buildPricePatterns(entries)
	insights.Recommendations = s.buildRecommendations(insights, entries)

	return insights
}

// buildPricePatterns agrega média/mínimo/máximo de preço por dia da semana
func buildPricePatterns(entries []*domain.PredictionEntry) map[string]domain.PricePattern {
	type accumulator struct {
		sum   float64
		count int
		min   float64
		max   float64
	}

	byDay := make(map[string]*accumulator)
	for _, entry := range entries {
		acc, ok := byDay[entry.DayOfWeek]
		if !ok {
			acc = &accumulator{min: entry.PriceRange.Min, max: entry.PriceRange.Max}
			byDay[entry.DayOfWeek] = acc
		}

		acc.sum += entry.AveragePrice
		acc.count++
		if entry.PriceRange.Min < acc.min {
			acc.min = entry.PriceRange.Min
		}
		if entry.PriceRange.Max > acc.max {
			acc.max = entry.PriceRange.Max
		}
	}

	patterns := make(map[string]domain.PricePattern, len(byDay))
	for day, acc := range byDay {
		patterns[day] = domain.PricePattern{
			AveragePrice: utils.RoundWithTwoDecimalPlace(acc.sum / float64(acc.count)),
			MinPrice:     acc.min,
			MaxPrice:     acc.max,
		}
	}

	return patterns
}

// buildRecommendations gera as recomendações textuais a partir dos insights
func (s *Service) buildRecommendations(insights *domain.BusinessInsights, entries []*domain.PredictionEntry) []string {
	recommendations := make([]string, 0, 4)

	if len(insights.PeakDays) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Reforce a equipe e o estoque nos %d horários de pico identificados no período",
			len(insights.PeakDays),
		))
	}

	if len(insights.LowDemandDays) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Considere promoções ou menus degustação nos %d horários de baixa demanda",
			len(insights.LowDemandDays),
		))
	}

	if len(insights.HolidayImpact) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Prepare menus especiais para as %d datas comemorativas do período",
			len(insights.HolidayImpact),
		))
	}

	weekendAvg, weekendOK := averageForDays(entries, time.Saturday, time.Sunday)
	weekdayAvg, weekdayOK := averageForDays(entries, time.Monday, time.Friday)
	if weekendOK && weekdayOK && weekdayAvg > 0 && weekendAvg > s.cfg.Prediction.WeekendPremium*weekdayAvg {
		recommendations = append(recommendations, fmt.Sprintf(
			"O fim de semana sustenta preços %.1fx maiores que os dias úteis; avalie eventos especiais às sextas e sábados",
			weekendAvg/weekdayAvg,
		))
	}

	return recommendations
}

// averageForDays calcula a média de preço das entradas entre os dias da
// semana informados (inclusivo), como soma dos valores disponíveis dividida
// pela contagem disponível: um dia sem dados não distorce a média
func averageForDays(entries []*domain.PredictionEntry, from, to time.Weekday) (float64, bool) {
	sum := 0.0
	count := 0

	for _, entry := range entries {
		weekday := entry.Date.Weekday()
		inRange := false
		if from <= to {
			inRange = weekday >= from && weekday <= to
		} else {
			inRange = weekday >= from || weekday <= to
		}

		if inRange {
			sum += entry.AveragePrice
			count++
		}
	}

	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
