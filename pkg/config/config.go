package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
	BackendMemory   = "memory"
)

// Config is the process configuration, decoded from the environment.
type Config struct {
	Environment    string        `env:"ENVIRONMENT,default=development"`
	ServiceName    string        `env:"OTEL_SERVICE_NAME,default=favorites-service"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	HTTPPort       string        `env:"HTTP_PORT,default=8080"`
	GRPCPort       string        `env:"GRPC_PORT,default=9090"`
	StoreBackend   string        `env:"STORE_BACKEND,default=postgres"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=30s"`

	Database  DatabaseConfig
	DynamoDB  DynamoDBConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
	Tracing   TracingConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST,default=localhost"`
	Port     string `env:"DB_PORT,default=5432"`
	User     string `env:"DB_USER,default=postgres"`
	Password string `env:"DB_PASSWORD,default=postgres"`
	Name     string `env:"DB_NAME,default=favoritesdb"`
	SSLMode  string `env:"DB_SSLMODE,default=disable"`
}

type DynamoDBConfig struct {
	Endpoint    string `env:"DYNAMODB_ENDPOINT"`
	Region      string `env:"AWS_REGION,default=us-east-1"`
	TablePrefix string `env:"DYNAMODB_TABLE_PREFIX,default=favorites_"`
}

// AuthConfig holds the single operator credential and token settings.
type AuthConfig struct {
	User       string `env:"API_USER,required"`
	Password   string `env:"API_PASS,required"`
	SecretKey  string `env:"SECRET_KEY,required"`
	Algorithm  string `env:"TOKEN_ALGORITHM,default=HS256"`
	ExpireTime int    `env:"EXPIRE_TIME,default=600"`
}

// TokenTTL returns the configured token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.ExpireTime) * time.Second
}

type RateLimitConfig struct {
	RedisAddr string        `env:"REDIS_ADDR"`
	Limit     int           `env:"LOGIN_RATE_LIMIT,default=10"`
	Window    time.Duration `env:"LOGIN_RATE_WINDOW,default=1m"`
}

type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS"`
}

// Enabled reports whether domain events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type TracingConfig struct {
	Enabled        bool   `env:"TRACING_ENABLED,default=false"`
	JaegerEndpoint string `env:"JAEGER_ENDPOINT,default=http://localhost:14268/api/traces"`
}

// IsDevelopment reports whether console logging should be used.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// Load reads an optional env file, then decodes the environment into a Config.
// The env file path defaults to .env and can be overridden with ENV_FILE.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Debug().Str("env_file", envFile).Msg("env file not loaded, using process environment")
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values envdecode cannot check on its own.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreBackend {
	case BackendPostgres, BackendDynamoDB, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend))
	}
	switch c.Auth.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, fmt.Errorf("unsupported TOKEN_ALGORITHM %q", c.Auth.Algorithm))
	}
	if c.Auth.ExpireTime <= 0 {
		errs = append(errs, errors.New("EXPIRE_TIME must be positive"))
	}
	if c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT and LOGIN_RATE_WINDOW must be positive"))
	}
	return errors.Join(errs...)
}
