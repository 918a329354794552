package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/mesafacil/pricing-api/internal/usecases/predicting"
	"github.com/mesafacil/pricing-api/pkg/apiErrors"
	"github.com/mesafacil/pricing-api/pkg/log"
	"github.com/mesafacil/pricing-api/pkg/utils"
)

// predictPricesRequest é o corpo da requisição de previsão; as datas chegam
// como string AAAA-MM-DD
type predictPricesRequest struct {
	RestaurantID    string   `json:"restaurant_id"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	TimeSlots       []string `json:"time_slots,omitempty"`
	GuestCounts     []int    `json:"guest_counts,omitempty"`
	IncludeHolidays *bool    `json:"include_holidays,omitempty"`
}

func PredictPrices(service predicting.Predictor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var body predictPricesRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.WithError(err).Warn("predicting: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		startDate, err := utils.ParseDate(body.StartDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(body.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		logger.WithFields(log.Fields{
			"restaurant_id": body.RestaurantID,
			"start_date":    body.StartDate,
			"end_date":      body.EndDate,
		}).Info("predicting: generating price predictions")

		response, err := service.Predict(r.Context(), &domain.PredictionRequest{
			RestaurantID:    body.RestaurantID,
			StartDate:       *startDate,
			EndDate:         *endDate,
			TimeSlots:       body.TimeSlots,
			GuestCounts:     body.GuestCounts,
			IncludeHolidays: body.IncludeHolidays,
		})
		if err != nil {
			writePredictionError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("predicting: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// writePredictionError traduz os erros de validação do motor de previsão
// para os códigos padronizados da API
func writePredictionError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, predicting.ErrMissingRestaurant),
		errors.Is(err, predicting.ErrMissingDateRange):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, predicting.ErrEndBeforeStart):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
	case errors.Is(err, predicting.ErrRangeTooLong):
		apiErrors.WriteError(w, apiErrors.ErrDateRangeTooLong, err.Error(), nil)
	default:
		logger.WithError(err).Error("predicting: prediction failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar previsões", nil)
	}
}
