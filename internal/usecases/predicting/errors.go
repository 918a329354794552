package predicting

import "errors"

// Erros de validação da fronteira de previsão. São os únicos erros duros do
// subsistema: falhas internas de célula são isoladas e nunca propagadas.
var (
	ErrMissingRestaurant = errors.New("restaurante é obrigatório")
	ErrMissingDateRange  = errors.New("as datas de início e fim são obrigatórias")
	ErrEndBeforeStart    = errors.New("a data final deve ser posterior à data inicial")
	ErrRangeTooLong      = errors.New("o período de previsão excede o máximo de dias")
)
