package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateQuoteID gera o identificador curto de uma cotação de preço,
// referenciado pelo fluxo de criação de reserva
func GenerateQuoteID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
