package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Google         Google         `mapstructure:",squash"`
	Analytics      Analytics      `mapstructure:",squash"`
	Sheets         Sheets         `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	SessionJanitor SessionJanitor `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Google concentra as credenciais OAuth compartilhadas pelos dois
// colaboradores externos (Analytics e Sheets)
type Google struct {
	ClientID        string `mapstructure:"google_client_id"`
	ClientSecret    string `mapstructure:"google_client_secret"`
	RedirectURI     string `mapstructure:"google_redirect_uri"`
	AuthorizeURL    string `mapstructure:"google_authorize_url"`
	TokenURL        string `mapstructure:"google_token_url"`
	AnalyticsScopes string `mapstructure:"google_analytics_scopes"`
	SheetsScopes    string `mapstructure:"google_sheets_scopes"`
}

type Analytics struct {
	DataBaseURL  string `mapstructure:"analytics_data_base_url"`
	AdminBaseURL string `mapstructure:"analytics_admin_base_url"`
	LookbackDays int    `mapstructure:"analytics_lookback_days"`
}

type Sheets struct {
	BaseURL string `mapstructure:"sheets_base_url"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	SessionTTLMin int    `mapstructure:"auth_session_ttl_minutes"`
}

// SessionJanitor configura a limpeza periódica de sessões expiradas
type SessionJanitor struct {
	CronSchedule string `mapstructure:"session_janitor_cron"`
	Enabled      bool   `mapstructure:"session_janitor_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret") // ONLY LOCAL
	viper.SetDefault("GOOGLE_REDIRECT_URI", "http://localhost:8000/v1/auth/analytics/callback")
	viper.SetDefault("GOOGLE_AUTHORIZE_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ANALYTICS_SCOPES", "https://www.googleapis.com/auth/analytics.readonly")
	viper.SetDefault("GOOGLE_SHEETS_SCOPES", "https://www.googleapis.com/auth/spreadsheets https://www.googleapis.com/auth/drive")

	viper.SetDefault("ANALYTICS_DATA_BASE_URL", "https://analyticsdata.googleapis.com/v1beta")
	viper.SetDefault("ANALYTICS_ADMIN_BASE_URL", "https://analyticsadmin.googleapis.com/v1beta")
	viper.SetDefault("ANALYTICS_LOOKBACK_DAYS", 90)

	viper.SetDefault("SHEETS_BASE_URL", "https://sheets.googleapis.com/v4")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_SESSION_TTL_MINUTES", 12*60)

	viper.SetDefault("SESSION_JANITOR_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SESSION_JANITOR_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if config.Analytics.LookbackDays <= 0 {
		return nil, fmt.Errorf("janela de auditoria inválida: %d dias", config.Analytics.LookbackDays)
	}

	return config, nil
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
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
