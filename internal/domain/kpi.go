// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// KpiSnapshot é uma fotografia imutável do faturamento global, gravada a cada sincronização
type KpiSnapshot struct {
	ID               int64      `json:"-"`
	ChiffreAffaire   float64    `json:"chiffre_affaire"`
	ObjectifAnnuel   float64    `json:"objectif_annuel"`
	ObjectifDecembre float64    `json:"objectif_decembre"`
	WinRate          float64    `json:"wr"`
	CreatedAt        *time.Time `json:"timestamp"`
}

// EmptyKpiSnapshot é o valor retornado antes da primeira sincronização
func EmptyKpiSnapshot() *KpiSnapshot {
	return &KpiSnapshot{}
}

type ObjectifResponse struct {
	ObjectifAnnuel float64 `json:"objectif_annuel"`
}

type LastUpdateResponse struct {
	LastUpdate *time.Time `json:"last_update"`
}

type LastModifiedResponse struct {
	LastModified float64 `json:"last_modified"`
}
