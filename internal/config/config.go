package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Board    BoardConfig
	Redis    RedisConfig
	Logger   LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// UpstreamConfig holds the ticketing API endpoint and credentials.
type UpstreamConfig struct {
	BaseURL            string
	APIKey             string
	PublicKey          string
	AuthScheme         string
	TimeoutSeconds     int
	ChangedSinceMonths int
}

// BoardConfig controls the rendered ticket board.
type BoardConfig struct {
	Title           string
	TicketDetailURL string
}

// RedisConfig holds Redis connection values. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
	// Format is "json" or "console".
	Format string
	// Service is attached to every log line.
	Service string
}

// Load reads configuration from environment variables, applying defaults where possible.
// Missing credentials are not an error here; they surface per request.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	name := getEnv("APP_NAME", "ticket-board")
	cfg := &Config{
		App: AppConfig{
			Name:                  name,
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 60),
		},
		Upstream: UpstreamConfig{
			BaseURL:            strings.TrimRight(getEnv("API_BASE_URL", "https://api.adorbit.com"), "/"),
			APIKey:             os.Getenv("API_KEY"),
			PublicKey:          os.Getenv("PUBLIC_KEY"),
			AuthScheme:         getEnv("API_AUTH_SCHEME", "ADORBIT"),
			TimeoutSeconds:     getEnvAsInt("API_TIMEOUT_SECONDS", 30),
			ChangedSinceMonths: getEnvAsInt("API_CHANGED_SINCE_MONTHS", 3),
		},
		Board: BoardConfig{
			Title:           getEnv("BOARD_TITLE", "Active Support Tickets"),
			TicketDetailURL: getEnv("TICKET_DETAIL_URL", "https://evergreenmedia.adorbit.com/tickets/ticket/?id=%s"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level:   getEnv("LOG_LEVEL", "info"),
			Format:  getEnv("LOG_FORMAT", "json"),
			Service: name,
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout bounds a single outbound call. Zero means no limit.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// MissingCredentials lists the credential variables that are not set.
func (u UpstreamConfig) MissingCredentials() []string {
	var missing []string
	if u.APIKey == "" {
		missing = append(missing, "API_KEY")
	}
	if u.PublicKey == "" {
		missing = append(missing, "PUBLIC_KEY")
	}
	return missing
}

// Configured reports whether both credentials are present.
func (u UpstreamConfig) Configured() bool {
	return len(u.MissingCredentials()) == 0
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
