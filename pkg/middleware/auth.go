package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyAdmin contextKey = "admin"
)

type TokenValidator interface {
	AuthEnabled() bool
	ValidateToken(tokenString string) (*domain.AdminClaims, error)
}

// AdminOnly exige um token de administrador quando a autenticação está habilitada
func AdminOnly(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !validator.AuthEnabled() {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if authHeader == "" || tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token é obrigatório")
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				logrus.WithError(err).Warn("Token de administração inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
