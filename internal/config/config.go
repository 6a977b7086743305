package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	TextProviderAnthropic = "anthropic"
	TextProviderGemini    = "gemini"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Anthropic    Anthropic    `mapstructure:",squash"`
	Gemini       Gemini       `mapstructure:",squash"`
	Fal          Fal          `mapstructure:",squash"`
	Generation   Generation   `mapstructure:",squash"`
	SessionSweep SessionSweep `mapstructure:",squash"`
	BrandCache   BrandCache   `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	EnableGzip     bool     `mapstructure:"enable_gzip"`
}

type App struct {
	LogLevel           string `mapstructure:"log_level"`
	TextProvider       string `mapstructure:"text_provider"`
	HTTPTimeoutSeconds int    `mapstructure:"http_timeout_seconds"`
}

type Anthropic struct {
	APIKey  string `mapstructure:"anthropic_key"`
	BaseURL string `mapstructure:"anthropic_base_url"`
	Model   string `mapstructure:"anthropic_model"`
	Version string `mapstructure:"anthropic_version"`
}

type Gemini struct {
	APIKey string `mapstructure:"gemini_api_key"`
	Model  string `mapstructure:"gemini_model"`
}

type Fal struct {
	APIKey           string `mapstructure:"fal_key"`
	BaseURL          string `mapstructure:"fal_base_url"`
	TextToImageModel string `mapstructure:"fal_text_to_image_model"`
	EditModel        string `mapstructure:"fal_edit_model"`
}

type Generation struct {
	RequestTimeoutSeconds  int `mapstructure:"generation_request_timeout_seconds"`
	MaxConcurrentPlatforms int `mapstructure:"generation_max_concurrent_platforms"`
}

type SessionSweep struct {
	CronSchedule string `mapstructure:"session_sweep_cron"`
	TTLMinutes   int    `mapstructure:"session_ttl_minutes"`
	Enabled      bool   `mapstructure:"session_sweep_enabled"`
}

type BrandCache struct {
	SizeMB     int `mapstructure:"brand_cache_size_mb"`
	TTLSeconds int `mapstructure:"brand_cache_ttl_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("ENABLE_GZIP", true)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TEXT_PROVIDER", TextProviderAnthropic)
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 180)

	viper.SetDefault("ANTHROPIC_KEY", "")
	viper.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20240620")
	viper.SetDefault("ANTHROPIC_VERSION", "2023-06-01")

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")

	viper.SetDefault("FAL_KEY", "")
	viper.SetDefault("FAL_BASE_URL", "https://fal.run")
	viper.SetDefault("FAL_TEXT_TO_IMAGE_MODEL", "fal-ai/alpha-image-232/text-to-image")
	viper.SetDefault("FAL_EDIT_MODEL", "fal-ai/alpha-image-232/edit-image")

	viper.SetDefault("GENERATION_REQUEST_TIMEOUT_SECONDS", 120) // Timeout por plataforma
	viper.SetDefault("GENERATION_MAX_CONCURRENT_PLATFORMS", 0)  // 0 = todas ao mesmo tempo

	viper.SetDefault("SESSION_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("SESSION_SWEEP_ENABLED", true)

	viper.SetDefault("BRAND_CACHE_SIZE_MB", 16) // 0 desabilita o cache
	viper.SetDefault("BRAND_CACHE_TTL_SECONDS", 3600)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.App.TextProvider = strings.ToLower(strings.TrimSpace(config.App.TextProvider))
	config.Anthropic.BaseURL = strings.TrimRight(config.Anthropic.BaseURL, "/")
	config.Fal.BaseURL = strings.TrimRight(config.Fal.BaseURL, "/")

	if config.App.HTTPTimeoutSeconds <= 0 {
		config.App.HTTPTimeoutSeconds = 180
	}
	if config.Generation.MaxConcurrentPlatforms < 0 {
		config.Generation.MaxConcurrentPlatforms = 0
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
