package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mesafacil/pricing-api/internal/scheduler"
	"github.com/mesafacil/pricing-api/pkg/apiErrors"
	"github.com/mesafacil/pricing-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeHolidays = "holidays"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron acionáveis manualmente
type CronJobServices struct {
	HolidaySyncService *scheduler.HolidaySyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeHolidays, CronJobTypeAll:
			if services.HolidaySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de feriados não disponível", nil)
				return
			}

			if err := services.HolidaySyncService.SyncNow(); err != nil {
				logger.WithError(err).Error("cron: holiday sync failed")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar feriados", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: holidays, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: job triggered manually")

		response := map[string]any{
			"message": "Cron job executada com sucesso",
			"type":    cronType,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"holidays": services.HolidaySyncService.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})
}
