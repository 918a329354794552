// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// TableLocation identifica a localização da mesa no salão
type TableLocation string

const (
	LocationWindow  TableLocation = "window"
	LocationCenter  TableLocation = "center"
	LocationCorner  TableLocation = "corner"
	LocationPrivate TableLocation = "private"
	LocationOutdoor TableLocation = "outdoor"
)

// Valid retorna verdadeiro se a localização é uma das conhecidas
func (l TableLocation) Valid() bool {
	switch l {
	case LocationWindow, LocationCenter, LocationCorner, LocationPrivate, LocationOutdoor:
		return true
	}
	return false
}

// Níveis categóricos de demanda derivados da taxa de ocupação
const (
	DemandLevelLow    = "low"
	DemandLevelMedium = "medium"
	DemandLevelHigh   = "high"
)

// PricingRequest representa uma solicitação de precificação para uma mesa específica
type PricingRequest struct {
	RestaurantID  string        `json:"restaurant_id"`
	TableID       string        `json:"table_id"`
	Date          time.Time     `json:"date"`
	Time          string        `json:"time"` // Formato HH:MM (24h)
	GuestCount    int           `json:"guest_count"`
	TableCapacity int           `json:"table_capacity"`
	TableLocation TableLocation `json:"table_location"`
}

// FactorResult representa o resultado de um fator multiplicativo de precificação
type FactorResult struct {
	Value   float64  `json:"value"`
	Reason  string   `json:"reason"`
	Holiday *Holiday `json:"holiday,omitempty"`
}

// PricingBreakdown detalha os cinco fatores aplicados sobre o preço base.
// Os cinco campos estão sempre presentes, mesmo em resultados de fallback.
type PricingBreakdown struct {
	Demand     FactorResult `json:"demand_factor"`
	Temporal   FactorResult `json:"temporal_factor"`
	Historical FactorResult `json:"historical_factor"`
	Capacity   FactorResult `json:"capacity_factor"`
	Holiday    FactorResult `json:"holiday_factor"`
}

// TableInfo descreve a mesa avaliada e sua eficiência de ocupação
type TableInfo struct {
	Capacity   int           `json:"capacity"`
	Location   TableLocation `json:"location"`
	Efficiency float64       `json:"efficiency"` // guestCount / tableCapacity, limitado a 1
}

// PricingContext carrega os dados de contexto usados no cálculo
type PricingContext struct {
	OccupancyRate float64   `json:"occupancy_rate"`
	TableInfo     TableInfo `json:"table_info"`
	DemandLevel   string    `json:"demand_level"`
}

// PricingResult é a resposta completa do cálculo de preço dinâmico
type PricingResult struct {
	Success      bool             `json:"success"`
	QuoteID      string           `json:"quote_id,omitempty"`
	BasePrice    float64          `json:"base_price"`
	FinalPrice   float64          `json:"final_price"`
	Currency     string           `json:"currency"`
	Confidence   float64          `json:"confidence"` // Sempre em [0,1]
	Breakdown    PricingBreakdown `json:"breakdown"`
	Context      PricingContext   `json:"context"`
	CalculatedAt time.Time        `json:"calculated_at"`
}

// Multiplier retorna o produto dos cinco fatores do detalhamento
func (b PricingBreakdown) Multiplier() float64 {
	return b.Demand.Value * b.Temporal.Value * b.Historical.Value * b.Capacity.Value * b.Holiday.Value
}
