package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Upload UploadConfig
	PDF    PDFConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	AllowOrigins string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type UploadConfig struct {
	MaxFileSize int64
}

type PDFConfig struct {
	PageSize string
	Margin   float64
}

type LogConfig struct {
	Level string
}

// Load reads envFile (if present) into the environment and builds the
// configuration. A missing GEMINI_API_KEY is reported but is not fatal:
// the server still starts and provider calls fail per request.
func Load(envFile string) *Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Info().Str("file", envFile).Msg("No .env file found. Using environment and default values.")
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			Env:          getEnv("ENV", "development"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", "30s"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		PDF: PDFConfig{
			PageSize: getEnv("PDF_PAGE_SIZE", "Letter"),
			Margin:   getEnvAsFloat("PDF_MARGIN", 72),
		},
		Log: LogConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "debug")),
		},
	}

	if cfg.Gemini.APIKey == "" {
		log.WithLevel(zerolog.FatalLevel).Msg("FATAL ERROR: GEMINI_API_KEY not found. Check .env file.")
	}

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
