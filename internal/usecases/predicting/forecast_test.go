package predicting

import (
	"testing"
	"time"

	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateForecast(t *testing.T) {
	service := &Service{cfg: testConfig()}

	// Sexta-feira com dois tamanhos de grupo
	friday := entry(day(2026, time.September, 4), "19:00", 125, domain.PriceRange{Min: 100, Max: 150})
	friday.Predictions = []domain.GuestPrediction{
		{GuestCount: 2, FinalPrice: 100, Confidence: 0.9},
		{GuestCount: 4, FinalPrice: 150, Confidence: 0.9},
	}

	// Sábado de Réveillon: utilização impulsionada até o teto
	saturday := entry(day(2026, time.September, 5), "20:00", 160, domain.PriceRange{Min: 160, Max: 160})
	saturday.Predictions = []domain.GuestPrediction{
		{GuestCount: 2, FinalPrice: 160, Confidence: 0.9},
	}
	saturday.Holiday = &domain.Holiday{
		Date:   day(2026, time.September, 5),
		Name:   "Réveillon",
		Impact: 1.7,
	}

	forecast := service.generateForecast([]*domain.PredictionEntry{friday, saturday}, []int{2, 4})

	require.Len(t, forecast.DailyForecasts, 2)

	// Sexta: utilização 0.75 → 6 mesas de dois rendem 5 reservas, 8 de quatro rendem 6
	fridayForecast := forecast.DailyForecasts[0]
	assert.Equal(t, "Friday", fridayForecast.DayOfWeek)
	assert.Equal(t, 11, fridayForecast.ExpectedBookings)
	assert.Equal(t, 1400.0, fridayForecast.ExpectedRevenue)
	assert.Equal(t, 0.75, fridayForecast.UtilizationRate)
	assert.Empty(t, fridayForecast.HolidayName)

	// Sábado: 0.85 × 1.2 estoura o teto e é limitado a 0.95
	saturdayForecast := forecast.DailyForecasts[1]
	assert.Equal(t, 0.95, saturdayForecast.UtilizationRate)
	assert.Equal(t, 6, saturdayForecast.ExpectedBookings)
	assert.Equal(t, 960.0, saturdayForecast.ExpectedRevenue)
	assert.Equal(t, "Réveillon", saturdayForecast.HolidayName)

	// Os totais sempre fecham com a soma dos dias
	assert.Equal(t, 2360.0, forecast.TotalForecast.ExpectedRevenue)
	assert.Equal(t, 17, forecast.TotalForecast.ExpectedBookings)
	assert.Equal(t, 1180.0, forecast.TotalForecast.AverageDailyRevenue)
	assert.InDelta(t, 138.82, forecast.TotalForecast.AverageBookingValue, 0.01)

	// Ranking por receita esperada
	require.Len(t, forecast.TopRevenueDays, 2)
	assert.Equal(t, fridayForecast, forecast.TopRevenueDays[0])

	require.NotNil(t, forecast.Insights.PeakRevenueDay)
	assert.Equal(t, 1400.0, forecast.Insights.PeakRevenueDay.ExpectedRevenue)
	require.NotNil(t, forecast.Insights.LowestRevenueDay)
	assert.Equal(t, 960.0, forecast.Insights.LowestRevenueDay.ExpectedRevenue)
}

func TestService_GenerateForecast_FeriadoDeBaixoImpactoNaoImpulsiona(t *testing.T) {
	service := &Service{cfg: testConfig()}

	// Quarta-feira com feriado abaixo do impacto mínimo para impulso
	wednesday := entry(day(2026, time.September, 9), "19:00", 100, domain.PriceRange{Min: 100, Max: 100})
	wednesday.Predictions = []domain.GuestPrediction{
		{GuestCount: 2, FinalPrice: 100, Confidence: 0.9},
	}
	wednesday.Holiday = &domain.Holiday{
		Date:   day(2026, time.September, 9),
		Name:   "Dia Internacional da Mulher",
		Impact: 1.2,
	}

	forecast := service.generateForecast([]*domain.PredictionEntry{wednesday}, []int{2})

	require.Len(t, forecast.DailyForecasts, 1)
	assert.Equal(t, 0.5, forecast.DailyForecasts[0].UtilizationRate)
	assert.Equal(t, "Dia Internacional da Mulher", forecast.DailyForecasts[0].HolidayName)
}

func TestService_GenerateForecast_SemEntradas(t *testing.T) {
	service := &Service{cfg: testConfig()}

	forecast := service.generateForecast(nil, []int{2, 4})

	require.NotNil(t, forecast)
	assert.Empty(t, forecast.DailyForecasts)
	assert.Empty(t, forecast.TopRevenueDays)
	assert.Zero(t, forecast.TotalForecast.ExpectedRevenue)
}
