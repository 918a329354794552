package pricing

import (
	"testing"
	"time"

	"github.com/mesafacil/pricing-api/internal/config"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testPricingConfig() config.Pricing {
	return config.Pricing{
		Currency:          "BRL",
		FallbackPrice:     100,
		DefaultBasePrice:  80,
		HistoryMinSamples: 10,
		HistoryLookback:   90,

		DemandLowThreshold:   0.3,
		DemandHighThreshold:  0.7,
		DemandFullThreshold:  0.9,
		DemandLowMultiplier:  0.9,
		DemandHighMultiplier: 1.15,
		DemandFullMultiplier: 1.3,

		HistoryMinMultiplier: 0.8,
		HistoryMaxMultiplier: 1.3,
	}
}

func TestTemporalFactor(t *testing.T) {
	tests := []struct {
		name     string
		weekday  time.Weekday
		hour     int
		expected float64
	}{
		{
			name:     "Jantar de sábado é horário de pico",
			weekday:  time.Saturday,
			hour:     19,
			expected: 1.25,
		},
		{
			name:     "Jantar de sexta conta como fim de semana",
			weekday:  time.Friday,
			hour:     20,
			expected: 1.25,
		},
		{
			name:     "Almoço de sexta segue preço de dia de semana",
			weekday:  time.Friday,
			hour:     13,
			expected: 0.90,
		},
		{
			name:     "Domingo fora do jantar tem prêmio reduzido",
			weekday:  time.Sunday,
			hour:     13,
			expected: 1.10,
		},
		{
			name:     "Jantar em dia de semana",
			weekday:  time.Tuesday,
			hour:     19,
			expected: 1.10,
		},
		{
			name:     "Horário de baixo movimento",
			weekday:  time.Monday,
			hour:     9,
			expected: 0.85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := temporalFactor(tt.weekday, tt.hour)

			assert.Equal(t, tt.expected, outcome.result.Value)
			assert.Equal(t, fullConfidence, outcome.confidence)
			assert.NotEmpty(t, outcome.result.Reason)
		})
	}
}

func TestCapacityFactor(t *testing.T) {
	tests := []struct {
		name               string
		guestCount         int
		tableCapacity      int
		location           domain.TableLocation
		expectedValue      float64
		expectedEfficiency float64
	}{
		{
			name:               "Encaixe perfeito em mesa do salão",
			guestCount:         4,
			tableCapacity:      4,
			location:           domain.LocationCenter,
			expectedValue:      1.10,
			expectedEfficiency: 1.0,
		},
		{
			name:               "Casal em mesa de quatro na janela",
			guestCount:         2,
			tableCapacity:      4,
			location:           domain.LocationWindow,
			expectedValue:      0.90 * 1.15,
			expectedEfficiency: 0.5,
		},
		{
			name:               "Mesa muito acima do grupo no canto",
			guestCount:         2,
			tableCapacity:      6,
			location:           domain.LocationCorner,
			expectedValue:      0.80 * 0.90,
			expectedEfficiency: 2.0 / 6.0,
		},
		{
			name:               "Grupo acima da capacidade é precificado com eficiência cheia",
			guestCount:         6,
			tableCapacity:      4,
			location:           domain.LocationCenter,
			expectedValue:      1.10,
			expectedEfficiency: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, efficiency := capacityFactor(tt.guestCount, tt.tableCapacity, tt.location)

			assert.InDelta(t, tt.expectedValue, outcome.result.Value, 0.0001)
			assert.InDelta(t, tt.expectedEfficiency, efficiency, 0.0001)
			assert.Equal(t, fullConfidence, outcome.confidence)
		})
	}
}

func TestCapacityFactor_CapacidadeDesconhecida(t *testing.T) {
	outcome, efficiency := capacityFactor(2, 0, domain.LocationCenter)

	assert.Equal(t, 1.0, outcome.result.Value)
	assert.Equal(t, reducedConfidence, outcome.confidence)
	assert.Equal(t, 0.0, efficiency)
}

func TestDemandFactor(t *testing.T) {
	cfg := testPricingConfig()

	tests := []struct {
		name          string
		snapshot      *domain.OccupancySnapshot
		expectedValue float64
		expectedLevel string
		expectedConf  float64
	}{
		{
			name:          "Sem dados de ocupação cai no neutro",
			snapshot:      nil,
			expectedValue: 1.0,
			expectedLevel: domain.DemandLevelMedium,
			expectedConf:  reducedConfidence,
		},
		{
			name:          "Ocupação baixa aplica desconto",
			snapshot:      &domain.OccupancySnapshot{BookedTables: 2, TotalTables: 10},
			expectedValue: 0.9,
			expectedLevel: domain.DemandLevelLow,
			expectedConf:  fullConfidence,
		},
		{
			name:          "Ocupação moderada mantém o preço",
			snapshot:      &domain.OccupancySnapshot{BookedTables: 5, TotalTables: 10},
			expectedValue: 1.0,
			expectedLevel: domain.DemandLevelMedium,
			expectedConf:  fullConfidence,
		},
		{
			name:          "Ocupação alta aplica prêmio",
			snapshot:      &domain.OccupancySnapshot{BookedTables: 8, TotalTables: 10},
			expectedValue: 1.15,
			expectedLevel: domain.DemandLevelHigh,
			expectedConf:  fullConfidence,
		},
		{
			name:          "Restaurante quase lotado aplica prêmio máximo",
			snapshot:      &domain.OccupancySnapshot{BookedTables: 19, TotalTables: 20},
			expectedValue: 1.3,
			expectedLevel: domain.DemandLevelHigh,
			expectedConf:  fullConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, rate, level := demandFactor(cfg, tt.snapshot)

			assert.Equal(t, tt.expectedValue, outcome.result.Value)
			assert.Equal(t, tt.expectedLevel, level)
			assert.Equal(t, tt.expectedConf, outcome.confidence)
			assert.Equal(t, tt.snapshot.Rate(), rate)
		})
	}
}

func TestHistoricalFactor(t *testing.T) {
	cfg := testPricingConfig()

	tests := []struct {
		name          string
		stats         *domain.HistoricalStats
		expectedValue float64
		expectedConf  float64
	}{
		{
			name:          "Sem histórico cai no neutro",
			stats:         nil,
			expectedValue: 1.0,
			expectedConf:  reducedConfidence,
		},
		{
			name:          "Amostras abaixo do mínimo caem no neutro",
			stats:         &domain.HistoricalStats{BucketBookings: 3, TotalBookings: 5, AveragePerBucket: 1},
			expectedValue: 1.0,
			expectedConf:  reducedConfidence,
		},
		{
			name:          "Horário muito concorrido é limitado pelo teto",
			stats:         &domain.HistoricalStats{BucketBookings: 20, TotalBookings: 100, AveragePerBucket: 10},
			expectedValue: 1.3,
			expectedConf:  fullConfidence,
		},
		{
			name:          "Horário tranquilo reduz o preço suavizado",
			stats:         &domain.HistoricalStats{BucketBookings: 5, TotalBookings: 100, AveragePerBucket: 10},
			expectedValue: 0.85,
			expectedConf:  fullConfidence,
		},
		{
			name:          "Movimento na média mantém o preço",
			stats:         &domain.HistoricalStats{BucketBookings: 10, TotalBookings: 100, AveragePerBucket: 10},
			expectedValue: 1.0,
			expectedConf:  fullConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := historicalFactor(cfg, tt.stats)

			assert.InDelta(t, tt.expectedValue, outcome.result.Value, 0.0001)
			assert.Equal(t, tt.expectedConf, outcome.confidence)
		})
	}
}

func TestHolidayFactor(t *testing.T) {
	romantic := &domain.Holiday{
		Name:     "Dia dos Namorados",
		Type:     domain.HolidayNational,
		Impact:   1.6,
		Romantic: true,
	}
	regular := &domain.Holiday{
		Name:   "Ano Novo",
		Type:   domain.HolidayNational,
		Impact: 1.4,
	}

	tests := []struct {
		name          string
		holiday       *domain.Holiday
		guestCount    int
		expectedValue float64
	}{
		{
			name:          "Dia comum não altera o preço",
			holiday:       nil,
			guestCount:    2,
			expectedValue: 1.0,
		},
		{
			name:          "Data romântica pesa integralmente em mesa para dois",
			holiday:       romantic,
			guestCount:    2,
			expectedValue: 1.6,
		},
		{
			name:          "Data romântica amortecida para grupo de quatro",
			holiday:       romantic,
			guestCount:    4,
			expectedValue: 1.3,
		},
		{
			name:          "Data romântica quase neutra para grupo grande",
			holiday:       romantic,
			guestCount:    8,
			expectedValue: 1.15,
		},
		{
			name:          "Feriado comum aplica impacto integral para qualquer grupo",
			holiday:       regular,
			guestCount:    8,
			expectedValue: 1.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := holidayFactor(tt.holiday, tt.guestCount)

			assert.InDelta(t, tt.expectedValue, outcome.result.Value, 0.0001)
			assert.Equal(t, fullConfidence, outcome.confidence)

			if tt.holiday == nil {
				assert.Equal(t, "sem feriado", outcome.result.Reason)
				assert.Nil(t, outcome.result.Holiday)
			} else {
				assert.Equal(t, tt.holiday, outcome.result.Holiday)
			}
		})
	}
}
