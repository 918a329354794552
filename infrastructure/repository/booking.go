package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mesafacil/pricing-api/infrastructure/database/postgres"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/pkg/errors"
)

const bookingsTable = "bookings b"

// Status de reserva que contam como mesa ocupada
var occupyingStatuses = []string{"confirmed", "seated", "pending"}

// BookingRepository é a interface de leitura do histórico de reservas.
// O motor de precificação só lê; a criação de reservas pertence a outro serviço.
type BookingRepository interface {
	// GetOccupancy conta as mesas já reservadas do restaurante na janela
	// de data/horário informada
	GetOccupancy(restaurantID string, date time.Time, hour int) (*domain.OccupancySnapshot, error)

	// GetHistoricalStats agrega o histórico de reservas do mesmo
	// dia-da-semana/faixa de horário dentro da janela de retrospecto
	GetHistoricalStats(restaurantID string, weekday time.Weekday, hour int, lookbackDays int) (*domain.HistoricalStats, error)
}

type bookingRepository struct {
	conn *postgres.Connection
}

func NewBookingRepository(conn *postgres.Connection) BookingRepository {
	return &bookingRepository{
		conn: conn,
	}
}

func (r *bookingRepository) GetOccupancy(restaurantID string, date time.Time, hour int) (*domain.OccupancySnapshot, error) {
	query, args, err := squirrel.
		Select("COUNT(DISTINCT b.table_id)").
		From(bookingsTable).
		Where(squirrel.Eq{
			"b.restaurant_id": restaurantID,
			"b.booking_date":  date.Format(time.DateOnly),
			"b.status":        occupyingStatuses,
		}).
		Where(squirrel.Eq{"EXTRACT(HOUR FROM b.booking_time)::int": hour}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.OccupancySnapshot{}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&snapshot.BookedTables); err != nil {
		return nil, errors.Wrap(err, "erro ao contar mesas reservadas")
	}

	totalQuery, totalArgs, err := squirrel.
		Select("COUNT(*)").
		From(restaurantTablesTable).
		Where(squirrel.Eq{"rt.restaurant_id": restaurantID, "rt.active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row = r.conn.QueryRow(totalQuery, totalArgs...)
	if err := row.Scan(&snapshot.TotalTables); err != nil {
		return nil, errors.Wrap(err, "erro ao contar mesas do restaurante")
	}

	return snapshot, nil
}

func (r *bookingRepository) GetHistoricalStats(restaurantID string, weekday time.Weekday, hour int, lookbackDays int) (*domain.HistoricalStats, error) {
	cutoff := time.Now().AddDate(0, 0, -lookbackDays).Format(time.DateOnly)

	query, args, err := squirrel.
		Select(
			"COUNT(*) FILTER (WHERE EXTRACT(DOW FROM b.booking_date)::int = ? AND EXTRACT(HOUR FROM b.booking_time)::int = ?) AS bucket_bookings",
			"COUNT(*) AS total_bookings",
			"COUNT(DISTINCT (EXTRACT(DOW FROM b.booking_date), EXTRACT(HOUR FROM b.booking_time))) AS bucket_count",
		).
		From(bookingsTable).
		Where(squirrel.Eq{"b.restaurant_id": restaurantID, "b.status": occupyingStatuses}).
		Where(squirrel.GtOrEq{"b.booking_date": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	// squirrel não interpola os ? do FILTER; os dois primeiros args são
	// weekday e hour, seguidos dos args do Where
	args = append([]interface{}{int(weekday), hour}, args...)

	stats := &domain.HistoricalStats{}

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(&stats.BucketBookings, &stats.TotalBookings, &stats.BucketCount)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao escanear histórico de reservas")
	}

	if stats.BucketCount > 0 {
		stats.AveragePerBucket = float64(stats.TotalBookings) / float64(stats.BucketCount)
	}

	return stats, nil
}
