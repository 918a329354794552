package predicting

import (
	"math"
	"sort"
	"time"

	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/mesafacil/pricing-api/pkg/utils"
)

// Utilização média esperada das mesas por dia da semana, calibrada com o
// movimento típico de restaurantes urbanos
var utilizationBaseline = map[time.Weekday]float64{
	time.Monday:    0.40,
	time.Tuesday:   0.45,
	time.Wednesday: 0.50,
	time.Thursday:  0.55,
	time.Friday:    0.75,
	time.Saturday:  0.85,
	time.Sunday:    0.65,
}

const topRevenueDaysLimit = 5

// generateForecast projeta reservas e receita por dia a partir das previsões
// de preço, usando o inventário de mesas assumido e a utilização por dia da
// semana, ajustada para cima em feriados de alto impacto
func (s *Service) generateForecast(entries []*domain.PredictionEntry, guestCounts []int) *domain.RevenueForecast {
	forecast := &domain.RevenueForecast{
		DailyForecasts: make([]*domain.DailyForecast, 0),
		TopRevenueDays: make([]*domain.DailyForecast, 0),
	}

	if len(entries) == 0 {
		return forecast
	}

	byDate := make(map[string][]*domain.PredictionEntry)
	order := make([]string, 0)
	for _, entry := range entries {
		key := entry.Date.Format(time.DateOnly)
		if _, ok := byDate[key]; !ok {
			order = append(order, key)
		}
		byDate[key] = append(byDate[key], entry)
	}
	sort.Strings(order)

	totalRevenue := 0.0
	totalBookings := 0

	for _, key := range order {
		dayEntries := byDate[key]
		daily := s.forecastDay(dayEntries)

		forecast.DailyForecasts = append(forecast.DailyForecasts, daily)
		totalRevenue += daily.ExpectedRevenue
		totalBookings += daily.ExpectedBookings
	}

	days := len(forecast.DailyForecasts)
	forecast.TotalForecast = domain.TotalForecast{
		ExpectedRevenue:     utils.RoundWithTwoDecimalPlace(totalRevenue),
		ExpectedBookings:    totalBookings,
		AverageDailyRevenue: utils.RoundWithTwoDecimalPlace(totalRevenue / float64(days)),
	}
	if totalBookings > 0 {
		forecast.TotalForecast.AverageBookingValue = utils.RoundWithTwoDecimalPlace(totalRevenue / float64(totalBookings))
	}

	// Top 5 dias por receita esperada
	sorted := make([]*domain.DailyForecast, len(forecast.DailyForecasts))
	copy(sorted, forecast.DailyForecasts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ExpectedRevenue > sorted[j].ExpectedRevenue
	})

	limit := topRevenueDaysLimit
	if limit > len(sorted) {
		limit = len(sorted)
	}
	forecast.TopRevenueDays = sorted[:limit]

	if len(sorted) > 0 {
		forecast.Insights = domain.ForecastInsights{
			PeakRevenueDay:   sorted[0],
			LowestRevenueDay: sorted[len(sorted)-1],
		}
	}

	return forecast
}

// forecastDay consolida a projeção de um único dia a partir das entradas de
// todos os horários daquele dia
func (s *Service) forecastDay(dayEntries []*domain.PredictionEntry) *domain.DailyForecast {
	date := dayEntries[0].Date

	var holiday *domain.Holiday
	for _, entry := range dayEntries {
		if entry.Holiday != nil {
			holiday = entry.Holiday
			break
		}
	}

	utilization := s.adjustedUtilization(date.Weekday(), holiday)

	revenue := 0.0
	bookings := 0
	for _, entry := range dayEntries {
		for _, prediction := range entry.Predictions {
			tables := s.tablesForGuestCount(prediction.GuestCount)
			expected := int(math.Round(float64(tables) * utilization))

			bookings += expected
			revenue += float64(expected) * prediction.FinalPrice
		}
	}

	daily := &domain.DailyForecast{
		Date:             date,
		DayOfWeek:        date.Weekday().String(),
		ExpectedRevenue:  utils.RoundWithTwoDecimalPlace(revenue),
		ExpectedBookings: bookings,
		UtilizationRate:  utils.RoundWithTwoDecimalPlace(utilization),
	}
	if holiday != nil {
		daily.HolidayName = holiday.Name
	}

	return daily
}

// adjustedUtilization parte da utilização base do dia da semana e aplica o
// impulso de feriado (limitado ao teto configurado) quando o impacto da data
// supera o mínimo configurado
func (s *Service) adjustedUtilization(weekday time.Weekday, holiday *domain.Holiday) float64 {
	utilization := utilizationBaseline[weekday]

	if holiday != nil && holiday.Impact > s.cfg.Forecast.HolidayBoostMinImpact {
		utilization *= 1 + s.cfg.Forecast.HolidayBoost
		if utilization > s.cfg.Forecast.MaxUtilization {
			utilization = s.cfg.Forecast.MaxUtilization
		}
	}

	return utilization
}

// tablesForGuestCount retorna o inventário assumido de mesas do tipo
// representativo do tamanho de grupo
func (s *Service) tablesForGuestCount(guestCount int) int {
	switch {
	case guestCount <= 2:
		return s.cfg.Forecast.TablesForTwo
	case guestCount <= 4:
		return s.cfg.Forecast.TablesForFour
	default:
		return s.cfg.Forecast.TablesForSix
	}
}
