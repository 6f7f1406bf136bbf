package domain

import "github.com/golang-jwt/jwt/v5"

const AdminRole = "admin"

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// AdminConfigShape valida a presença dos três campos obrigatórios do arquivo local
type AdminConfigShape struct {
	ObjectifAnnuel      *float64 `json:"objectif_annuel" validate:"required"`
	ChiffreAffaireTotal *float64 `json:"chiffre_affaire_total" validate:"required"`
	ChefsProjet         []any    `json:"chefs_projet" validate:"required"`
}

type PhotoUploadResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
