package domain

// RestaurantPricingConfig é a visão somente-leitura da configuração de
// precificação de um restaurante. Mantida pelo fluxo de administração,
// consumida aqui apenas como insumo do cálculo.
type RestaurantPricingConfig struct {
	RestaurantID     string          `json:"restaurant_id"`
	Name             string          `json:"name"`
	Currency         string          `json:"currency"`
	BasePriceBySize  map[int]float64 `json:"base_price_by_size"` // Chave: capacidade da mesa
	DefaultBasePrice float64         `json:"default_base_price"`
	TotalTables      int             `json:"total_tables"`
	TablesByCapacity map[int]int     `json:"tables_by_capacity"`
	OpeningHour      int             `json:"opening_hour"`
	ClosingHour      int             `json:"closing_hour"`
}

// BasePriceFor resolve o preço base para a capacidade informada, caindo para
// o preço padrão do restaurante quando não há preço específico por tamanho
func (c *RestaurantPricingConfig) BasePriceFor(capacity int) float64 {
	if price, ok := c.BasePriceBySize[capacity]; ok && price > 0 {
		return price
	}
	return c.DefaultBasePrice
}
