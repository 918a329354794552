package domain

import "time"

// PredictionRequest representa uma solicitação de previsão de preços para um período
type PredictionRequest struct {
	RestaurantID    string    `json:"restaurant_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"` // Inclusivo
	TimeSlots       []string  `json:"time_slots,omitempty"`
	GuestCounts     []int     `json:"guest_counts,omitempty"`
	IncludeHolidays *bool     `json:"include_holidays,omitempty"` // Default: true
}

// GuestPrediction resume o resultado de precificação para um tamanho de grupo
type GuestPrediction struct {
	GuestCount int     `json:"guest_count"`
	FinalPrice float64 `json:"final_price"`
	Confidence float64 `json:"confidence"`
}

// PriceRange delimita o menor e o maior preço previstos para um horário
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PredictionEntry é a previsão de preços de um horário em uma data específica.
// Uma entrada só é emitida quando ao menos um tamanho de grupo foi precificado.
type PredictionEntry struct {
	Date         time.Time         `json:"date"`
	DayOfWeek    string            `json:"day_of_week"`
	TimeSlot     string            `json:"time_slot"`
	Holiday      *Holiday          `json:"holiday,omitempty"`
	Predictions  []GuestPrediction `json:"predictions"`
	AveragePrice float64           `json:"average_price"`
	PriceRange   PriceRange        `json:"price_range"`
}

// PeakDay marca uma entrada com preço médio bem acima da média do período
type PeakDay struct {
	Date         time.Time `json:"date"`
	TimeSlot     string    `json:"time_slot"`
	AveragePrice float64   `json:"average_price"`
	Reason       string    `json:"reason"`
}

// LowDemandDay marca uma entrada com preço médio bem abaixo da média do período
type LowDemandDay struct {
	Date                   time.Time `json:"date"`
	TimeSlot               string    `json:"time_slot"`
	AveragePrice           float64   `json:"average_price"`
	PromotionalOpportunity bool      `json:"promotional_opportunity"`
}

// HolidayImpactEntry mede o acréscimo percentual de preço em uma data comemorativa
type HolidayImpactEntry struct {
	Date            time.Time `json:"date"`
	HolidayName     string    `json:"holiday_name"`
	AveragePrice    float64   `json:"average_price"`
	IncreasePercent float64   `json:"increase_percent"` // Sobre o preço baseline configurado
}

// PricePattern agrega os preços previstos por dia da semana
type PricePattern struct {
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
}

// BusinessInsights reúne as conclusões de negócio derivadas das previsões
type BusinessInsights struct {
	PeakDays        []PeakDay               `json:"peak_days"`
	LowDemandDays   []LowDemandDay          `json:"low_demand_days"`
	HolidayImpact   []HolidayImpactEntry    `json:"holiday_impact"`
	PricePatterns   map[string]PricePattern `json:"price_patterns"` // Chave: dia da semana
	Recommendations []string                `json:"recommendations"`
}

// PredictionMetadata descreve os parâmetros efetivos da previsão
type PredictionMetadata struct {
	TimeSlots        []string  `json:"time_slots"`
	GuestCounts      []int     `json:"guest_counts"`
	IncludeHolidays  bool      `json:"include_holidays"`
	GeneratedAt      time.Time `json:"generated_at"`
	TotalPredictions int       `json:"total_predictions"`
}

// PredictionResponse é a resposta completa do motor de previsão
type PredictionResponse struct {
	Predictions     []*PredictionEntry `json:"predictions"`
	Insights        *BusinessInsights  `json:"insights"`
	RevenueForecast *RevenueForecast   `json:"revenue_forecast"`
	Metadata        PredictionMetadata `json:"metadata"`
}
