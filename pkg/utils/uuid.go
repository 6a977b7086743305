package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// GenerateID gera identificadores curtos para anúncios e execuções de kit
func GenerateID() string {
	return gonanoid.MustGenerate(characters, idLength)
}
