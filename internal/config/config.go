package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "Swadesh AI"
	AppVersion = "2.0.0"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	OAuth    OAuthConfig
	Ai       AIConfig
	Events   EventsConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	ActivityLogPath    string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type SessionConfig struct {
	Secret   string
	TTL      time.Duration
	RedisURL string // empty keeps sessions in process memory
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
}

type AIConfig struct {
	Provider          string // "gemini", "openai" or "ollama"
	Model             string
	GeminiAPIKey      string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OllamaBaseURL     string
	GenerationTimeout time.Duration
}

type EventsConfig struct {
	NatsURL       string // empty disables the NATS fan-out
	ActivityTopic string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", getEnv("PORT", "5000")),
			BaseURL:            getEnv("APP_BASE_URL", getEnv("BASE_URL", "http://localhost:5000")),
			ClientURL:          getEnv("CLIENT_URL", "/"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ActivityLogPath:    getEnv("ACTIVITY_LOG_FILE_PATH", "logs/activity.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DATABASE_URL", ""),
		},
		Session: SessionConfig{
			Secret:   getEnv("SESSION_SECRET", "swadesh_dev_secret_change_in_prod"),
			TTL:      time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 168)) * time.Hour,
			RedisURL: getEnv("REDIS_URL", ""),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		},
		Ai: AIConfig{
			Provider:          getEnv("LLM_PROVIDER", "gemini"),
			Model:             getEnv("LLM_MODEL", ""),
			GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GenerationTimeout: time.Duration(getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 45)) * time.Second,
		},
		Events: EventsConfig{
			NatsURL:       getEnv("NATS_URL", ""),
			ActivityTopic: getEnv("ACTIVITY_TOPIC_NAME", "USER_ACTIVITY"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) HasDatabase() bool {
	return c.Database.Connection != ""
}

func (c *Config) HasGoogleOAuth() bool {
	return c.OAuth.GoogleClientID != "" && c.OAuth.GoogleClientSecret != "" && c.App.BaseURL != ""
}

// GoogleRedirectURL is the callback registered with the Google console.
func (c *Config) GoogleRedirectURL() string {
	return c.App.BaseURL + "/api/auth/callback/google"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
