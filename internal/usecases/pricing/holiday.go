package pricing

import (
	"sync"
	"time"

	"github.com/mesafacil/pricing-api/infrastructure/repository"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// fixedHoliday é uma data comemorativa que cai sempre no mesmo dia/mês
type fixedHoliday struct {
	Month    time.Month
	Day      int
	Name     string
	Type     domain.HolidayType
	Impact   float64
	Romantic bool
}

// Calendário embutido de datas que movimentam restaurantes no Brasil.
// Impactos refletem o aumento esperado de demanda; datas de casal são
// marcadas como românticas para pesarem mais em mesas para dois.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Ano Novo", domain.HolidayNational, 1.4, false},
	{time.February, 14, "Valentine's Day", domain.HolidayInternational, 1.5, true},
	{time.March, 8, "Dia Internacional da Mulher", domain.HolidayInternational, 1.2, false},
	{time.June, 12, "Dia dos Namorados", domain.HolidayNational, 1.6, true},
	{time.December, 24, "Véspera de Natal", domain.HolidayReligious, 1.3, false},
	{time.December, 25, "Natal", domain.HolidayReligious, 1.35, false},
	{time.December, 31, "Réveillon", domain.HolidayNational, 1.7, false},
}

// Calendar implementa HolidayResolver combinando o calendário embutido
// (datas fixas e móveis) com os feriados customizados cadastrados em banco.
// O cache de customizados é atualizado pelo cron de sincronização.
type Calendar struct {
	customRepo repository.CustomHolidayRepository

	mu     sync.RWMutex
	custom []*domain.Holiday
}

func NewCalendar(customRepo repository.CustomHolidayRepository) *Calendar {
	return &Calendar{
		customRepo: customRepo,
	}
}

// Refresh recarrega os feriados customizados do banco para o cache em memória.
// Uma falha de leitura mantém o cache anterior; o calendário embutido nunca
// depende do banco.
func (c *Calendar) Refresh() error {
	if c.customRepo == nil {
		return nil
	}

	holidays, err := c.customRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar feriados customizados, mantendo cache anterior")
		return err
	}

	c.mu.Lock()
	c.custom = holidays
	c.mu.Unlock()

	logrus.WithField("total", len(holidays)).Info("Calendário de feriados customizados atualizado")
	return nil
}

// Resolve retorna a data comemorativa do dia informado, ou nil para dias
// comuns. Feriados customizados têm precedência sobre o calendário embutido.
func (c *Calendar) Resolve(date time.Time) *domain.Holiday {
	c.mu.RLock()
	for _, holiday := range c.custom {
		if holiday.SameDay(date) {
			c.mu.RUnlock()
			return holiday
		}
	}
	c.mu.RUnlock()

	_, month, day := date.Date()
	for _, fixed := range fixedHolidays {
		if fixed.Month == month && fixed.Day == day {
			return &domain.Holiday{
				Date:     time.Date(date.Year(), fixed.Month, fixed.Day, 0, 0, 0, 0, time.UTC),
				Name:     fixed.Name,
				Type:     fixed.Type,
				Impact:   fixed.Impact,
				Romantic: fixed.Romantic,
			}
		}
	}

	return c.resolveFloating(date)
}

// resolveFloating cobre as datas móveis: Páscoa, Dia das Mães e Dia dos Pais
func (c *Calendar) resolveFloating(date time.Time) *domain.Holiday {
	year, month, day := date.Date()

	if mothers := nthWeekdayOfMonth(year, time.May, time.Sunday, 2); month == time.May && day == mothers {
		return &domain.Holiday{
			Date:   time.Date(year, time.May, mothers, 0, 0, 0, 0, time.UTC),
			Name:   "Dia das Mães",
			Type:   domain.HolidayNational,
			Impact: 1.5,
		}
	}

	if fathers := nthWeekdayOfMonth(year, time.August, time.Sunday, 2); month == time.August && day == fathers {
		return &domain.Holiday{
			Date:   time.Date(year, time.August, fathers, 0, 0, 0, 0, time.UTC),
			Name:   "Dia dos Pais",
			Type:   domain.HolidayNational,
			Impact: 1.4,
		}
	}

	if easterMonth, easterDay := easterDate(year); month == easterMonth && day == easterDay {
		return &domain.Holiday{
			Date:   time.Date(year, easterMonth, easterDay, 0, 0, 0, 0, time.UTC),
			Name:   "Páscoa",
			Type:   domain.HolidayReligious,
			Impact: 1.3,
		}
	}

	return nil
}

// nthWeekdayOfMonth retorna o dia do mês da n-ésima ocorrência do dia da semana
func nthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return 1 + offset + (n-1)*7
}

// easterDate calcula o domingo de Páscoa pelo algoritmo de Gauss
func easterDate(year int) (time.Month, int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Month(month), day
}
