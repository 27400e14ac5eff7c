package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Sem caracteres ambíguos (0/O, 1/I/l) para códigos digitados à mão
const codeCharacters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateCode gera um código curto para convites
func GenerateCode(length int) (string, error) {
	return gonanoid.Generate(codeCharacters, length)
}

// GenerateID gera o identificador de uma transação
func GenerateID() string {
	return uuid.NewString()
}
