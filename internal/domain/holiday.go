package domain

import "time"

// HolidayType classifica a origem da data comemorativa
type HolidayType string

const (
	HolidayNational      HolidayType = "national"
	HolidayInternational HolidayType = "international"
	HolidayReligious     HolidayType = "religious"
	HolidayCustom        HolidayType = "custom"
)

// Holiday representa uma data comemorativa com seu impacto esperado na demanda.
// Impact é um multiplicador base estritamente positivo; valores acima de 1
// indicam aumento de demanda. O calendário embutido só traz datas premium,
// mas feriados customizados podem carregar impacto abaixo de 1.
type Holiday struct {
	Date     time.Time   `json:"date"`
	Name     string      `json:"name"`
	Type     HolidayType `json:"type"`
	Impact   float64     `json:"impact"`
	Romantic bool        `json:"romantic,omitempty"` // Datas de casal afetam mais mesas para dois
}

// SameDay compara apenas dia/mês/ano, ignorando horário e fuso
func (h *Holiday) SameDay(date time.Time) bool {
	y1, m1, d1 := h.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
