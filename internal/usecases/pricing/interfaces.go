package pricing

import (
	"context"
	"time"

	"github.com/mesafacil/pricing-api/internal/domain"
)

// Calculator define o contrato do cálculo de preço dinâmico.
// A implementação nunca retorna erro: qualquer falha de dados vira um
// resultado degradado com Success=false ou fatores neutros, e o chamador
// sempre recebe um preço utilizável.
type Calculator interface {
	CalculatePrice(ctx context.Context, req *domain.PricingRequest) *domain.PricingResult
}

// HolidayResolver resolve a data comemorativa de um dia, se houver.
// Retorna nil para datas comuns.
type HolidayResolver interface {
	Resolve(date time.Time) *domain.Holiday
}
