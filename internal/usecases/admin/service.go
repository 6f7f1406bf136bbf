package admin

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL            = 24 * time.Hour
	configUpdateMessage = "[ADMIN] Config updated via web interface"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Administrator interface {
	GetConfig(ctx context.Context) (map[string]any, error)
	UpdateConfig(ctx context.Context, body []byte) error
	SavePhoto(ctx context.Context, filename string, content io.Reader) (string, error)
	Login(ctx context.Context, request *domain.LoginRequest) (string, error)
	ValidateToken(tokenString string) (*domain.AdminClaims, error)
	AuthEnabled() bool
}

// RawConfigStore dá acesso ao arquivo local sem normalização
type RawConfigStore interface {
	ReadRaw() (map[string]any, error)
	WriteRaw(body []byte) error
}

type Service struct {
	configStore   RawConfigStore
	updateLogRepo repository.UpdateLogRepository
	validate      *validator.Validate
	cfg           *config.Config
	now           func() time.Time
}

func NewService(configStore RawConfigStore, updateLogRepo repository.UpdateLogRepository, cfg *config.Config) Administrator {
	return &Service{
		configStore:   configStore,
		updateLogRepo: updateLogRepo,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		cfg:           cfg,
		now:           time.Now,
	}
}

func (s *Service) requireOfflineMode() error {
	if !s.cfg.Source.OfflineMode {
		return NewAdminError(ErrOfflineModeRequired, apiErrors.ErrOfflineModeOnly, "")
	}
	return nil
}

// GetConfig devolve o arquivo local exatamente como está gravado
func (s *Service) GetConfig(ctx context.Context) (map[string]any, error) {
	if err := s.requireOfflineMode(); err != nil {
		return nil, err
	}

	document, err := s.configStore.ReadRaw()
	if err != nil {
		return nil, NewAdminError(err, apiErrors.ErrInternalServer, "")
	}

	return document, nil
}

// UpdateConfig valida e substitui o arquivo local. O novo conteúdo só é lido na próxima sincronização.
func (s *Service) UpdateConfig(ctx context.Context, body []byte) error {
	if err := s.requireOfflineMode(); err != nil {
		return err
	}

	document := map[string]any{}
	if err := json.Unmarshal(body, &document); err != nil {
		return NewAdminError(ErrInvalidConfig, apiErrors.ErrInvalidFormat, "JSON inválido")
	}

	var shape domain.AdminConfigShape
	if err := json.Unmarshal(body, &shape); err != nil {
		return NewAdminError(ErrInvalidConfig, apiErrors.ErrInvalidFormat, err.Error())
	}

	if err := s.validate.Struct(shape); err != nil {
		return NewAdminError(ErrInvalidConfig, apiErrors.ErrMissingRequiredData, err.Error())
	}

	if err := s.configStore.WriteRaw(body); err != nil {
		return NewAdminError(err, apiErrors.ErrInternalServer, "")
	}

	if err := s.updateLogRepo.Append(ctx, domain.UpdateStatusSuccess, configUpdateMessage); err != nil {
		return NewAdminError(err, apiErrors.ErrDatabaseOperation, "")
	}

	logrus.Info("Arquivo de configuração atualizado pela interface de administração")

	return nil
}

// SavePhoto grava a foto de um CDP na pasta de uploads, substituindo arquivo de mesmo nome
func (s *Service) SavePhoto(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := s.requireOfflineMode(); err != nil {
		return "", err
	}

	if strings.TrimSpace(filename) == "" {
		return "", NewAdminError(ErrInvalidPhoto, apiErrors.ErrMissingRequiredData, "nenhum arquivo selecionado")
	}

	name := SanitizeFilename(filename)
	if name == "" || !s.allowedExtension(name) {
		return "", NewAdminError(ErrInvalidPhoto, apiErrors.ErrInvalidFormat, "tipo de arquivo não permitido, apenas imagens são aceitas")
	}

	folder := s.cfg.Upload.Folder
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", NewAdminError(err, apiErrors.ErrInternalServer, "erro ao criar pasta de uploads")
	}

	tmp, err := os.CreateTemp(folder, ".upload-*")
	if err != nil {
		return "", NewAdminError(err, apiErrors.ErrInternalServer, "erro ao criar arquivo temporário")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	maxBytes := s.cfg.Upload.MaxSizeMB << 20
	written, err := io.Copy(tmp, io.LimitReader(content, maxBytes+1))
	closeErr := tmp.Close()
	if err != nil {
		return "", NewAdminError(err, apiErrors.ErrInternalServer, "erro ao gravar foto")
	}
	if closeErr != nil {
		return "", NewAdminError(closeErr, apiErrors.ErrInternalServer, "erro ao gravar foto")
	}

	if written > maxBytes {
		return "", NewAdminError(ErrPhotoTooLarge, apiErrors.ErrInvalidRequest, fmt.Sprintf("limite de %d MB", s.cfg.Upload.MaxSizeMB))
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", NewAdminError(err, apiErrors.ErrInternalServer, "erro ao ajustar permissões")
	}

	if err := os.Rename(tmpName, filepath.Join(folder, name)); err != nil {
		return "", NewAdminError(err, apiErrors.ErrInternalServer, "erro ao salvar foto")
	}

	logrus.WithFields(logrus.Fields{
		"filename": name,
		"bytes":    written,
	}).Info("Foto de CDP salva")

	return name, nil
}

func (s *Service) allowedExtension(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	return slices.Contains(s.cfg.Upload.AllowedExtensions, ext)
}

// SanitizeFilename mantém apenas o nome base com letras, dígitos e "._-" ASCII
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, `\`, "/")
	filename = filename[strings.LastIndex(filename, "/")+1:]

	var b strings.Builder
	for _, r := range filename {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	return strings.TrimLeft(b.String(), "._")
}

func (s *Service) AuthEnabled() bool {
	return s.cfg.Auth.AdminAuthEnabled()
}

// Login troca a senha de administração por um token JWT válido por 24h
func (s *Service) Login(ctx context.Context, request *domain.LoginRequest) (string, error) {
	if !s.AuthEnabled() {
		return "", NewAdminError(ErrAdminAuthDisabled, apiErrors.ErrInvalidRequest, "")
	}

	if err := s.validate.Struct(request); err != nil {
		return "", NewAdminError(domain.ErrValidation, apiErrors.ErrMissingRequiredData, "senha é obrigatória")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminPasswordHash), []byte(request.Password)); err != nil {
		logrus.Warn("Tentativa de login de administração com senha incorreta")
		return "", NewAdminError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "senha incorreta")
	}

	token, err := s.generateJWT()
	if err != nil {
		return "", NewAdminError(err, apiErrors.ErrInternalServer, "erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT() (string, error) {
	now := s.now()
	claims := &domain.AdminClaims{
		Role: domain.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   domain.AdminRole,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.AdminClaims)
	if !ok || !token.Valid || claims.Role != domain.AdminRole {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
