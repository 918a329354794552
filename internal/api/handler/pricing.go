package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/mesafacil/pricing-api/internal/usecases/pricing"
	"github.com/mesafacil/pricing-api/pkg/apiErrors"
	"github.com/mesafacil/pricing-api/pkg/log"
	"github.com/mesafacil/pricing-api/pkg/utils"
)

// calculatePriceRequest é o corpo da requisição de cotação; a data chega
// como string AAAA-MM-DD
type calculatePriceRequest struct {
	RestaurantID  string `json:"restaurant_id"`
	TableID       string `json:"table_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	GuestCount    int    `json:"guest_count"`
	TableCapacity int    `json:"table_capacity"`
	TableLocation string `json:"table_location"`
}

func CalculatePrice(service pricing.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body calculatePriceRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.WithError(err).Warn("pricing: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if body.RestaurantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "restaurant_id é obrigatório", nil)
			return
		}

		if body.GuestCount <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "guest_count deve ser maior que zero", nil)
			return
		}

		if body.TableCapacity <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "table_capacity deve ser maior que zero", nil)
			return
		}

		location := domain.TableLocation(body.TableLocation)
		if body.TableLocation != "" && !location.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "table_location desconhecida", map[string]any{
				"table_location": body.TableLocation,
			})
			return
		}

		date, err := utils.ParseDate(body.Date)
		if err != nil || body.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		logger.WithFields(log.Fields{
			"restaurant_id": body.RestaurantID,
			"date":          body.Date,
			"time":          body.Time,
			"guest_count":   body.GuestCount,
		}).Info("pricing: calculating dynamic price")

		result := service.CalculatePrice(r.Context(), &domain.PricingRequest{
			RestaurantID:  body.RestaurantID,
			TableID:       body.TableID,
			Date:          *date,
			Time:          body.Time,
			GuestCount:    body.GuestCount,
			TableCapacity: body.TableCapacity,
			TableLocation: location,
		})

		if !result.Success {
			logger.WithField("restaurant_id", body.RestaurantID).Warn("pricing: fallback price returned")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("pricing: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
