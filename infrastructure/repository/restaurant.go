package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mesafacil/pricing-api/infrastructure/database/postgres"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/pkg/errors"
)

const (
	restaurantsTable      = "restaurants r"
	restaurantTablesTable = "restaurant_tables rt"
)

type RestaurantRepository interface {
	// GetPricingConfig carrega a visão de precificação do restaurante:
	// preço base por tamanho de mesa, inventário e horário de funcionamento
	GetPricingConfig(restaurantID string) (*domain.RestaurantPricingConfig, error)
}

type restaurantRepository struct {
	conn *postgres.Connection
}

func NewRestaurantRepository(conn *postgres.Connection) RestaurantRepository {
	return &restaurantRepository{
		conn: conn,
	}
}

func (r *restaurantRepository) GetPricingConfig(restaurantID string) (*domain.RestaurantPricingConfig, error) {
	query, args, err := squirrel.
		Select("r.id, r.name, r.currency, r.default_base_price, r.opening_hour, r.closing_hour").
		From(restaurantsTable).
		Where(squirrel.Eq{"r.id": restaurantID, "r.active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	config := &domain.RestaurantPricingConfig{
		BasePriceBySize:  make(map[int]float64),
		TablesByCapacity: make(map[int]int),
	}

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&config.RestaurantID,
		&config.Name,
		&config.Currency,
		&config.DefaultBasePrice,
		&config.OpeningHour,
		&config.ClosingHour,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear configuração do restaurante")
	}

	if err := r.loadTableInventory(config); err != nil {
		return nil, err
	}

	return config, nil
}

// loadTableInventory agrega o inventário de mesas por capacidade e o menor
// preço base cadastrado para cada tamanho
func (r *restaurantRepository) loadTableInventory(config *domain.RestaurantPricingConfig) error {
	query, args, err := squirrel.
		Select("rt.capacity, COUNT(*) AS total, MIN(rt.base_price) AS base_price").
		From(restaurantTablesTable).
		Where(squirrel.Eq{"rt.restaurant_id": config.RestaurantID, "rt.active": true}).
		GroupBy("rt.capacity").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao consultar inventário de mesas")
	}
	defer rows.Close()

	for rows.Next() {
		var capacity, total int
		var basePrice sql.NullFloat64

		if err := rows.Scan(&capacity, &total, &basePrice); err != nil {
			return errors.Wrap(err, "erro ao escanear inventário de mesas")
		}

		config.TablesByCapacity[capacity] = total
		config.TotalTables += total

		if basePrice.Valid && basePrice.Float64 > 0 {
			config.BasePriceBySize[capacity] = basePrice.Float64
		}
	}

	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return nil
}
