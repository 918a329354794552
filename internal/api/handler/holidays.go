package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/mesafacil/pricing-api/internal/domain"
	"github.com/mesafacil/pricing-api/internal/usecases/pricing"
	"github.com/mesafacil/pricing-api/pkg/apiErrors"
	"github.com/mesafacil/pricing-api/pkg/log"
	"github.com/mesafacil/pricing-api/pkg/utils"
)

// Janela padrão e máxima da listagem de feriados
const (
	defaultHolidayWindowDays = 90
	maxHolidayWindowDays     = 366
)

type holidayListResponse struct {
	RestaurantID string            `json:"restaurant_id"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	Holidays     []*domain.Holiday `json:"holidays"`
}

// ListHolidays resolve as datas comemorativas do período informado,
// combinando o calendário embutido com os feriados customizados
func ListHolidays(resolver pricing.HolidayResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		restaurantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		start := *startDate
		end := *endDate
		if start.IsZero() {
			now := time.Now()
			start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		}
		if end.IsZero() {
			end = start.AddDate(0, 0, defaultHolidayWindowDays)
		}

		if !end.After(start) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "end_date deve ser posterior a start_date", nil)
			return
		}

		if days := utils.DaysBetween(start, end); days > maxHolidayWindowDays {
			apiErrors.WriteError(w, apiErrors.ErrDateRangeTooLong, "Período máximo de consulta é de um ano", map[string]any{
				"days": days,
			})
			return
		}

		holidays := make([]*domain.Holiday, 0)
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			if holiday := resolver.Resolve(date); holiday != nil {
				holidays = append(holidays, holiday)
			}
		}

		logger.WithFields(log.Fields{
			"restaurant_id": restaurantID,
			"total":         len(holidays),
		}).Info("holidays: resolved holidays for period")

		response := holidayListResponse{
			RestaurantID: restaurantID,
			StartDate:    start.Format(time.DateOnly),
			EndDate:      end.Format(time.DateOnly),
			Holidays:     holidays,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("holidays: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
