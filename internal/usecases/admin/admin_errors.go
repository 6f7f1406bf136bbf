package admin

import (
	"errors"
	"fmt"

	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

var (
	ErrOfflineModeRequired = errors.New("interface de administração disponível apenas no modo offline")
	ErrAdminAuthDisabled   = errors.New("login de administração desabilitado")
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrInvalidToken        = errors.New("token inválido")
	ErrInvalidConfig       = fmt.Errorf("%w: estrutura de configuração inválida", domain.ErrValidation)
	ErrInvalidPhoto        = fmt.Errorf("%w: foto inválida", domain.ErrValidation)
	ErrPhotoTooLarge       = fmt.Errorf("%w: foto excede o tamanho máximo", domain.ErrValidation)
)

// AdminError carrega o código de erro da API junto do erro base
type AdminError struct {
	Err     error
	Code    string
	Details string
}

func (e *AdminError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AdminError) Unwrap() error {
	return e.Err
}

func NewAdminError(baseErr error, code string, details string) *AdminError {
	return &AdminError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
