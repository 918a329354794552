package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mesafacil/pricing-api/infrastructure/database/postgres"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/pkg/errors"
)

const customHolidaysTable = "custom_holidays ch"

// CustomHolidayRepository lê as datas comemorativas cadastradas pelos donos
// de restaurante (aniversários da casa, eventos locais, festivais)
type CustomHolidayRepository interface {
	ListActive() ([]*domain.Holiday, error)
}

type customHolidayRepository struct {
	conn *postgres.Connection
}

func NewCustomHolidayRepository(conn *postgres.Connection) CustomHolidayRepository {
	return &customHolidayRepository{
		conn: conn,
	}
}

func (r *customHolidayRepository) ListActive() ([]*domain.Holiday, error) {
	query, args, err := squirrel.
		Select("ch.holiday_date, ch.name, ch.impact, ch.romantic").
		From(customHolidaysTable).
		Where(squirrel.Eq{"ch.active": true}).
		OrderBy("ch.holiday_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar feriados customizados")
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		var dateStr string
		holiday := &domain.Holiday{Type: domain.HolidayCustom}

		if err := rows.Scan(&dateStr, &holiday.Name, &holiday.Impact, &holiday.Romantic); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear feriado customizado")
		}

		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, fmt.Errorf("data de feriado inválida %q: %w", dateStr, err)
		}
		holiday.Date = date

		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return holidays, nil
}
