package domain

import (
	"strings"
	"time"
)

// ChefProjet é o faturamento atribuído a um chef de projet (CDP).
// A identidade é o par (Nom, Prenom).
type ChefProjet struct {
	ID             int64     `json:"id"`
	Nom            string    `json:"nom"`
	Prenom         string    `json:"prenom"`
	ChiffreAffaire float64   `json:"chiffre_affaire"`
	PhotoFilename  *string   `json:"photo_filename"`
	UpdatedAt      time.Time `json:"timestamp"`
}

// NormalizePhoto trata nome de foto vazio como ausente, para que o upsert
// preserve a foto já gravada.
func NormalizePhoto(photo *string) *string {
	if photo == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*photo)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
