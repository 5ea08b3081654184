package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("ENV_FILE", "testdata/does-not-exist.env")
	t.Setenv("API_USER", "operator")
	t.Setenv("API_PASS", "secret")
	t.Setenv("SECRET_KEY", "signing-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "favorites-service", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "favoritesdb", cfg.Database.Name)
	assert.Equal(t, "HS256", cfg.Auth.Algorithm)
	assert.Equal(t, 600*time.Second, cfg.Auth.TokenTTL())
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.Kafka.Enabled())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_BACKEND", "dynamodb")
	t.Setenv("EXPIRE_TIME", "30")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092;kafka-2:9092")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendDynamoDB, cfg.StoreBackend)
	assert.Equal(t, 30*time.Second, cfg.Auth.TokenTTL())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadMissingSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "SECRET_KEY")
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("TOKEN_ALGORITHM", "RS256")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "STORE_BACKEND")
	assert.ErrorContains(t, err, "TOKEN_ALGORITHM")
}
