package domain

// OccupancySnapshot é a contagem de mesas reservadas de um restaurante em
// uma janela de data/horário específica
type OccupancySnapshot struct {
	BookedTables int `json:"booked_tables"`
	TotalTables  int `json:"total_tables"`
}

// Rate retorna a taxa de ocupação em [0,1]; zero quando não há mesas cadastradas
func (o *OccupancySnapshot) Rate() float64 {
	if o == nil || o.TotalTables <= 0 {
		return 0
	}
	rate := float64(o.BookedTables) / float64(o.TotalTables)
	if rate > 1 {
		return 1
	}
	return rate
}

// HistoricalStats agrega o histórico de reservas de um restaurante para um
// dia da semana e faixa de horário, comparado à média geral do restaurante
type HistoricalStats struct {
	BucketBookings   int     `json:"bucket_bookings"` // Reservas no mesmo dia-da-semana/horário
	TotalBookings    int     `json:"total_bookings"`  // Reservas no período analisado inteiro
	BucketCount      int     `json:"bucket_count"`    // Quantidade de faixas com movimento
	AveragePerBucket float64 `json:"average_per_bucket"`
}
