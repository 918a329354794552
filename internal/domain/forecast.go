package domain

import "time"

// TotalForecast consolida a projeção de receita do período completo
type TotalForecast struct {
	ExpectedRevenue     float64 `json:"expected_revenue"`
	ExpectedBookings    int     `json:"expected_bookings"`
	AverageBookingValue float64 `json:"average_booking_value"`
	AverageDailyRevenue float64 `json:"average_daily_revenue"`
}

// DailyForecast é a projeção de receita e reservas de um único dia
type DailyForecast struct {
	Date             time.Time `json:"date"`
	DayOfWeek        string    `json:"day_of_week"`
	ExpectedRevenue  float64   `json:"expected_revenue"`
	ExpectedBookings int       `json:"expected_bookings"`
	HolidayName      string    `json:"holiday_name,omitempty"`
	UtilizationRate  float64   `json:"utilization_rate"`
}

// ForecastInsights destaca os extremos de receita do período
type ForecastInsights struct {
	PeakRevenueDay   *DailyForecast `json:"peak_revenue_day"`
	LowestRevenueDay *DailyForecast `json:"lowest_revenue_day"`
}

// RevenueForecast é a projeção de receita derivada das previsões de preço
type RevenueForecast struct {
	TotalForecast  TotalForecast    `json:"total_forecast"`
	DailyForecasts []*DailyForecast `json:"daily_forecasts"`
	TopRevenueDays []*DailyForecast `json:"top_revenue_days"` // Top 5 por receita esperada
	Insights       ForecastInsights `json:"insights"`
}
