package domain

import (
	"errors"
	"fmt"
)

// Taxonomia de erros da sincronização e da administração
var (
	// Configuração obrigatória ausente; não há nova tentativa até corrigir o ambiente
	ErrConfiguration = errors.New("configuration error")
	// Falha transitória ao buscar os dados; nova tentativa só no próximo intervalo
	ErrSourceUnavailable = errors.New("source unavailable")
	// Entrada inválida vinda da interface de administração
	ErrValidation = errors.New("validation error")
	// Falha de persistência; interrompe o restante do ciclo
	ErrStore = errors.New("store error")
)

type SyncStage string

const (
	SyncStageFetch  SyncStage = "fetch"
	SyncStageKpi    SyncStage = "kpi"
	SyncStageUpsert SyncStage = "upsert"
)

// SyncError indica em que etapa do ciclo a sincronização falhou
type SyncError struct {
	Err   error
	Stage SyncStage
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %s", e.Stage, e.Err.Error())
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(stage SyncStage, err error) *SyncError {
	return &SyncError{Err: err, Stage: stage}
}
