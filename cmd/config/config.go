package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	InternalKey  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type MarketplaceConfig struct {
	BaseURL      string
	AuthBaseURL  string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	CallTimeout  time.Duration
	MaxRetries   int
	BackoffBase  time.Duration
}

type SyncConfig struct {
	Workers                int
	QueueBuffer            int
	PageSize               int
	PageCap                int
	PageDelay              time.Duration
	PollInterval           time.Duration
	VerifierTTL            time.Duration
	TokenExpirySkew        time.Duration
	FulfillmentWarehouseID uint64
}

type ReplenishConfig struct {
	TopupMultiplier    float64
	CriticalDays       float64
	AttentionDays      float64
	AvgDeliveryDays    int
	FullReleaseDays    int
	MinCoverageDays    int
	AnalysisPeriodDays int
}

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Marketplace MarketplaceConfig
	Sync        SyncConfig
	Replenish   ReplenishConfig
}

// Load reads configuration from environment variables, with .env as a
// convenience for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			InternalKey:  getEnv("INTERNAL_API_KEY", ""),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "estoque"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Marketplace: MarketplaceConfig{
			BaseURL:      getEnv("MARKETPLACE_BASE_URL", "https://api.mercadolibre.com"),
			AuthBaseURL:  getEnv("MARKETPLACE_AUTH_BASE_URL", "https://auth.mercadolivre.com.br"),
			ClientID:     getEnv("MARKETPLACE_CLIENT_ID", ""),
			ClientSecret: getEnv("MARKETPLACE_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("MARKETPLACE_REDIRECT_URI", ""),
			CallTimeout:  getDuration("MARKETPLACE_CALL_TIMEOUT", 30*time.Second),
			MaxRetries:   getInt("MARKETPLACE_MAX_RETRIES", 3),
			BackoffBase:  getDuration("MARKETPLACE_BACKOFF_BASE", time.Second),
		},
		Sync: SyncConfig{
			Workers:                getInt("SYNC_WORKERS", 4),
			QueueBuffer:            getInt("SYNC_QUEUE_BUFFER", 64),
			PageSize:               getInt("SYNC_PAGE_SIZE", 50),
			PageCap:                getInt("SYNC_PAGE_CAP", 50),
			PageDelay:              getDuration("SYNC_PAGE_DELAY", 500*time.Millisecond),
			PollInterval:           getDuration("SYNC_POLL_INTERVAL", 5*time.Minute),
			VerifierTTL:            getDuration("SYNC_VERIFIER_TTL", 10*time.Minute),
			TokenExpirySkew:        getDuration("SYNC_TOKEN_EXPIRY_SKEW", time.Minute),
			FulfillmentWarehouseID: uint64(getInt("SYNC_FULFILLMENT_WAREHOUSE_ID", 0)),
		},
		Replenish: ReplenishConfig{
			TopupMultiplier:    getFloat("REPLENISH_TOPUP_MULTIPLIER", 2.0),
			CriticalDays:       getFloat("REPLENISH_CRITICAL_DAYS", 3),
			AttentionDays:      getFloat("REPLENISH_ATTENTION_DAYS", 7),
			AvgDeliveryDays:    getInt("REPLENISH_AVG_DELIVERY_DAYS", 7),
			FullReleaseDays:    getInt("REPLENISH_FULL_RELEASE_DAYS", 5),
			MinCoverageDays:    getInt("REPLENISH_MIN_COVERAGE_DAYS", 15),
			AnalysisPeriodDays: getInt("REPLENISH_ANALYSIS_PERIOD_DAYS", 30),
		},
	}
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
