package predicting

import (
	"context"

	"github.com/mesafacil/pricing-api/internal/domain"
)

// Predictor define o contrato do motor de previsão de preços.
// O retorno agrega previsões, insights de negócio e projeção de receita.
type Predictor interface {
	Predict(ctx context.Context, req *domain.PredictionRequest) (*domain.PredictionResponse, error)
}
