package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	LogLevel      string
	JWTSigningKey string
	Database      DatabaseConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Clerk         ClerkConfig
}

// DatabaseConfig configures the Postgres connection pool.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// RedisConfig configures the session and persona cache client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the civic event publisher. Publishing is disabled
// when Brokers is empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ClerkConfig configures the assistant pipeline.
type ClerkConfig struct {
	Provider         string // "anthropic" or "gemini"
	AnthropicAPIKey  string
	AnthropicURL     string
	GeminiAPIKey     string
	DefaultModel     string
	MaxTokens        int
	ModelTimeout     time.Duration
	StoreTimeout     time.Duration
	PersonasFile     string
	PersonaCacheTTL  time.Duration
	BreakerThreshold int // consecutive model failures before failing fast; 0 disables
	BreakerCooldown  time.Duration
	ChatRateLimit    int // messages per ChatRateWindow per caller; 0 disables
	ChatRateWindow   time.Duration
}

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          getString("TPB_ADDR", ":8080"),
		LogLevel:      getString("LOG_LEVEL", "info"),
		JWTSigningKey: jwtSigningKey,
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    getInt("DATABASE_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    getInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
			AutoMigrate:     getBool("DATABASE_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getString("KAFKA_CIVIC_TOPIC", "civic.events"),
		},
		Clerk: ClerkConfig{
			Provider:         getString("CLERK_PROVIDER", ProviderAnthropic),
			AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicURL:     getString("ANTHROPIC_API_URL", "https://api.anthropic.com/v1/messages"),
			GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
			DefaultModel:     getString("CLERK_MODEL", "claude-sonnet-4-5"),
			MaxTokens:        getInt("CLERK_MAX_TOKENS", 1024),
			ModelTimeout:     getDuration("CLERK_MODEL_TIMEOUT", 60*time.Second),
			StoreTimeout:     getDuration("CLERK_STORE_TIMEOUT", 5*time.Second),
			PersonasFile:     os.Getenv("CLERK_PERSONAS_FILE"),
			PersonaCacheTTL:  getDuration("CLERK_PERSONA_CACHE_TTL", 5*time.Minute),
			BreakerThreshold: getLimit("CLERK_BREAKER_THRESHOLD", 5),
			BreakerCooldown:  getDuration("CLERK_BREAKER_COOLDOWN", 30*time.Second),
			ChatRateLimit:    getLimit("CLERK_CHAT_RATE_LIMIT", 20),
			ChatRateWindow:   getDuration("CLERK_CHAT_RATE_WINDOW", time.Minute),
		},
	}
}

func getString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// getLimit is getInt that also accepts 0, which callers read as "off".
func getLimit(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
