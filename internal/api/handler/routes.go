package handler

import (
	"net/http"

	"github.com/mesafacil/pricing-api/internal/api/handler/router"
	"github.com/mesafacil/pricing-api/internal/usecases/predicting"
	"github.com/mesafacil/pricing-api/internal/usecases/pricing"
	"github.com/mesafacil/pricing-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Pricing expõe a cotação de preço dinâmico; rota pública pois é chamada
// pelo fluxo de reserva do cliente final
func Pricing(service pricing.Calculator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/pricing/calculate",
			Method:  http.MethodPost,
			Handler: CalculatePrice(service),
		},
	}
}

func Predictions(service predicting.Predictor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pricing/predict",
			Method:      http.MethodPost,
			Handler:     PredictPrices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Holidays(resolver pricing.HolidayResolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/restaurants/:id/holidays",
			Method:      http.MethodGet,
			Handler:     ListHolidays(resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
	}
}
