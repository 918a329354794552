package predicting

import (
	"testing"
	"time"

	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date time.Time, slot string, averagePrice float64, priceRange domain.PriceRange) *domain.PredictionEntry {
	return &domain.PredictionEntry{
		Date:         date,
		DayOfWeek:    date.Weekday().String(),
		TimeSlot:     slot,
		AveragePrice: averagePrice,
		PriceRange:   priceRange,
	}
}

func TestService_GenerateInsights(t *testing.T) {
	service := &Service{cfg: testConfig()}

	entries := []*domain.PredictionEntry{
		entry(day(2026, time.September, 7), "19:00", 100, domain.PriceRange{Min: 90, Max: 110}),  // segunda
		entry(day(2026, time.September, 8), "19:00", 100, domain.PriceRange{Min: 95, Max: 105}),  // terça
		entry(day(2026, time.September, 9), "19:00", 100, domain.PriceRange{Min: 100, Max: 100}), // quarta
		entry(day(2026, time.September, 12), "20:00", 200, domain.PriceRange{Min: 180, Max: 220}), // sábado
		entry(day(2026, time.September, 13), "18:00", 50, domain.PriceRange{Min: 45, Max: 55}),   // domingo
	}

	// Média do período: 110; pico acima de 143, vale abaixo de 88
	insights := service.generateInsights(entries)

	require.Len(t, insights.PeakDays, 1)
	assert.Equal(t, day(2026, time.September, 12), insights.PeakDays[0].Date)
	assert.Equal(t, 200.0, insights.PeakDays[0].AveragePrice)
	assert.Equal(t, "período de alta demanda", insights.PeakDays[0].Reason)

	require.Len(t, insights.LowDemandDays, 1)
	assert.Equal(t, day(2026, time.September, 13), insights.LowDemandDays[0].Date)
	assert.True(t, insights.LowDemandDays[0].PromotionalOpportunity)

	assert.Empty(t, insights.HolidayImpact)

	monday := insights.PricePatterns["Monday"]
	assert.Equal(t, 100.0, monday.AveragePrice)
	assert.Equal(t, 90.0, monday.MinPrice)
	assert.Equal(t, 110.0, monday.MaxPrice)

	// Pico, vale e prêmio de fim de semana geram recomendações
	assert.GreaterOrEqual(t, len(insights.Recommendations), 2)
}

func TestService_GenerateInsights_FeriadoNomeiaOPico(t *testing.T) {
	service := &Service{cfg: testConfig()}

	holiday := &domain.Holiday{
		Date:   day(2026, time.June, 12),
		Name:   "Dia dos Namorados",
		Impact: 1.6,
	}

	peak := entry(day(2026, time.June, 12), "20:00", 200, domain.PriceRange{Min: 180, Max: 220})
	peak.Holiday = holiday

	entries := []*domain.PredictionEntry{
		entry(day(2026, time.June, 10), "19:00", 100, domain.PriceRange{Min: 100, Max: 100}),
		entry(day(2026, time.June, 11), "19:00", 100, domain.PriceRange{Min: 100, Max: 100}),
		peak,
	}

	insights := service.generateInsights(entries)

	require.Len(t, insights.PeakDays, 1)
	assert.Equal(t, "Dia dos Namorados", insights.PeakDays[0].Reason)

	// Impacto sobre o preço baseline configurado (100): +100%
	require.Len(t, insights.HolidayImpact, 1)
	assert.Equal(t, "Dia dos Namorados", insights.HolidayImpact[0].HolidayName)
	assert.Equal(t, 100.0, insights.HolidayImpact[0].IncreasePercent)
}

func TestService_GenerateInsights_SemEntradas(t *testing.T) {
	service := &Service{cfg: testConfig()}

	insights := service.generateInsights(nil)

	require.NotNil(t, insights)
	assert.Empty(t, insights.PeakDays)
	assert.Empty(t, insights.LowDemandDays)
	assert.Empty(t, insights.Recommendations)
}

func TestAverageForDays(t *testing.T) {
	entries := []*domain.PredictionEntry{
		entry(day(2026, time.September, 7), "19:00", 80, domain.PriceRange{}),   // segunda
		entry(day(2026, time.September, 8), "19:00", 100, domain.PriceRange{}),  // terça
		entry(day(2026, time.September, 12), "19:00", 120, domain.PriceRange{}), // sábado
	}

	// A média usa apenas os dias com dados: sábado disponível, domingo não
	weekendAvg, ok := averageForDays(entries, time.Saturday, time.Sunday)
	require.True(t, ok)
	assert.Equal(t, 120.0, weekendAvg)

	weekdayAvg, ok := averageForDays(entries, time.Monday, time.Friday)
	require.True(t, ok)
	assert.Equal(t, 90.0, weekdayAvg)

	// Nenhum dado no intervalo
	_, ok = averageForDays(nil, time.Saturday, time.Sunday)
	assert.False(t, ok)
}

func TestAverageForDays_IntervaloComVirada(t *testing.T) {
	entries := []*domain.PredictionEntry{
		entry(day(2026, time.September, 12), "19:00", 120, domain.PriceRange{}), // sábado
		entry(day(2026, time.September, 13), "19:00", 80, domain.PriceRange{}),  // domingo
		entry(day(2026, time.September, 14), "19:00", 500, domain.PriceRange{}), // segunda, fora do intervalo
	}

	avg, ok := averageForDays(entries, time.Saturday, time.Sunday)

	require.True(t, ok)
	assert.Equal(t, 100.0, avg)
}
