package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// TokenIDSize mantém a mesma entropia do alfabeto padrão do nanoid
	TokenIDSize = 21
)

// GenerateID gera um identificador alfanumérico curto, usado como jti das sessões
func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}
