package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Source      Source      `mapstructure:",squash"`
	GoogleSheet GoogleSheet `mapstructure:",squash"`
	RevenueSync RevenueSync `mapstructure:",squash"`
	Upload      Upload      `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Path     string `mapstructure:"database_path"`
}

// Source define de onde vêm os dados de faturamento
type Source struct {
	OfflineMode           bool    `mapstructure:"offline_mode"`
	ConfigFilePath        string  `mapstructure:"config_file_path"`
	DefaultObjectifAnnuel float64 `mapstructure:"default_objectif_annuel"`
}

type GoogleSheet struct {
	CredentialsPath string   `mapstructure:"google_credentials_path"`
	SpreadsheetID   string   `mapstructure:"google_spreadsheet_id"`
	Range           string   `mapstructure:"google_sheet_range"`
	TotalRowLabels  []string `mapstructure:"total_row_labels"`
}

type RevenueSync struct {
	IntervalMinutes int  `mapstructure:"update_interval_minutes"`
	Enabled         bool `mapstructure:"sync_enabled"`
}

type Upload struct {
	Folder            string   `mapstructure:"upload_folder"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
	MaxSizeMB         int64    `mapstructure:"max_upload_size_mb"`
}

type Auth struct {
	Secret            string `mapstructure:"auth_secret"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

// Mode retorna o rótulo usado nos logs de sincronização
func (s Source) Mode() string {
	if s.OfflineMode {
		return "OFFLINE"
	}
	return "ONLINE"
}

// SpreadsheetConfigured indica se há uma planilha configurada para o modo online
func (g GoogleSheet) SpreadsheetConfigured() bool {
	return strings.TrimSpace(g.SpreadsheetID) != ""
}

// DefaultAuthSecret é público; só vale enquanto as rotas de admin estão abertas
const DefaultAuthSecret = "your_secret_key"

// AdminAuthEnabled indica se as rotas de administração exigem token
func (a Auth) AdminAuthEnabled() bool {
	return a.AdminPasswordHash != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_PATH", "/app/data/dashboard.db") // Apenas para sqlite3

	viper.SetDefault("OFFLINE_MODE", false)
	viper.SetDefault("CONFIG_FILE_PATH", "/app/config.json")
	viper.SetDefault("DEFAULT_OBJECTIF_ANNUEL", 100000)

	viper.SetDefault("GOOGLE_CREDENTIALS_PATH", "/app/credentials/credentials.json")
	viper.SetDefault("GOOGLE_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_SHEET_RANGE", "Sheet1!A1:C100")
	viper.SetDefault("TOTAL_ROW_LABELS", "TOTAL,JEECE")

	viper.SetDefault("UPDATE_INTERVAL_MINUTES", 15)
	viper.SetDefault("SYNC_ENABLED", true)

	viper.SetDefault("UPLOAD_FOLDER", "/app/frontend/public/images/cdp")
	viper.SetDefault("ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif,webp")
	viper.SetDefault("MAX_UPLOAD_SIZE_MB", 5)

	viper.SetDefault("AUTH_SECRET", DefaultAuthSecret)
	viper.SetDefault("ADMIN_PASSWORD_HASH", "") // Vazio = rotas de admin abertas

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize aplica as regras derivadas que não cabem em defaults simples
func (c *Config) normalize() error {
	c.Upload.AllowedExtensions = normalizeList(c.Upload.AllowedExtensions, true)
	c.GoogleSheet.TotalRowLabels = normalizeList(c.GoogleSheet.TotalRowLabels, false)
	c.Server.AllowedOrigins = normalizeList(c.Server.AllowedOrigins, false)

	if c.RevenueSync.IntervalMinutes <= 0 {
		return fmt.Errorf("config: UPDATE_INTERVAL_MINUTES deve ser positivo, recebido %d", c.RevenueSync.IntervalMinutes)
	}

	if c.Auth.AdminAuthEnabled() {
		secret := strings.TrimSpace(c.Auth.Secret)
		if secret == "" || secret == DefaultAuthSecret {
			return fmt.Errorf("config: AUTH_SECRET precisa ser definido quando ADMIN_PASSWORD_HASH está configurado")
		}
	}

	switch c.Database.Driver {
	case DriverPostgres:
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	case DriverSQLite:
		c.Database.DSN = c.Database.Path
	default:
		return fmt.Errorf("config: DATABASE_DRIVER não suportado: %q", c.Database.Driver)
	}

	return nil
}

func normalizeList(values []string, lower bool) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if lower {
			v = strings.ToLower(strings.TrimPrefix(v, "."))
		}
		out = append(out, v)
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
