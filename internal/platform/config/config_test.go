package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("TPB_ADDR", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("CLERK_MODEL_TIMEOUT", "")
	t.Setenv("CLERK_PROVIDER", "")
	t.Setenv("CLERK_BREAKER_THRESHOLD", "")
	t.Setenv("CLERK_CHAT_RATE_LIMIT", "")
	t.Setenv("CLERK_CHAT_RATE_WINDOW", "")

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "civic.events", cfg.Kafka.Topic)
	assert.Equal(t, ProviderAnthropic, cfg.Clerk.Provider)
	assert.Equal(t, 60*time.Second, cfg.Clerk.ModelTimeout)
	assert.Equal(t, 1024, cfg.Clerk.MaxTokens)
	assert.Equal(t, 5, cfg.Clerk.BreakerThreshold)
	assert.Equal(t, 20, cfg.Clerk.ChatRateLimit)
	assert.Equal(t, time.Minute, cfg.Clerk.ChatRateWindow)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TPB_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, ,kafka-2:9092")
	t.Setenv("CLERK_MODEL_TIMEOUT", "15s")
	t.Setenv("CLERK_MAX_TOKENS", "not-a-number")
	t.Setenv("DATABASE_AUTO_MIGRATE", "false")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 15*time.Second, cfg.Clerk.ModelTimeout)
	assert.Equal(t, 1024, cfg.Clerk.MaxTokens)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestLimitsCanBeDisabled(t *testing.T) {
	t.Setenv("CLERK_BREAKER_THRESHOLD", "0")
	t.Setenv("CLERK_CHAT_RATE_LIMIT", "0")

	cfg := FromEnv()
	assert.Zero(t, cfg.Clerk.BreakerThreshold)
	assert.Zero(t, cfg.Clerk.ChatRateLimit)
}
