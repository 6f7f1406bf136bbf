package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	runIDLength = 8
)

// GenerateRunID gera um identificador curto para correlacionar os logs de um ciclo de sincronização
func GenerateRunID() string {
	id, err := gonanoid.Generate(characters, runIDLength)
	if err != nil {
		return "unknown"
	}
	return id
}
