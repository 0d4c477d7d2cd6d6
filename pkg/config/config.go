package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	App          AppConfig
	Storage      StorageConfig
	Redis        RedisConfig
	Session      SessionConfig
	Checkout     CheckoutConfig
	PubSub       PubSubConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CALABAR_APP_ENV" default:"dev"`
	Port         string `envconfig:"CALABAR_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CALABAR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CALABAR_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects where persisted cart records live. The memory driver
// keeps carts for the process lifetime only; redis and the SQL drivers keep
// them durable across restarts.
type StorageConfig struct {
	Driver    string `envconfig:"CALABAR_STORAGE_DRIVER" default:"memory"`
	DSN       string `envconfig:"CALABAR_STORAGE_DSN"`
	KeyPrefix string `envconfig:"CALABAR_STORAGE_KEY_PREFIX" default:"calabar_cart"`

	MaxOpenConns    int           `envconfig:"CALABAR_STORAGE_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CALABAR_STORAGE_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CALABAR_STORAGE_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CALABAR_STORAGE_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (s StorageConfig) validate() error {
	switch s.Driver {
	case StorageDriverMemory, StorageDriverRedis:
		return nil
	case StorageDriverSQLite, StorageDriverPostgres:
		if strings.TrimSpace(s.DSN) == "" {
			return fmt.Errorf("storage driver %q requires CALABAR_STORAGE_DSN", s.Driver)
		}
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", s.Driver)
	}
}

type RedisConfig struct {
	URL          string        `envconfig:"CALABAR_REDIS_URL"`
	Address      string        `envconfig:"CALABAR_REDIS_ADDR"`
	Password     string        `envconfig:"CALABAR_REDIS_PASSWORD"`
	DB           int           `envconfig:"CALABAR_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CALABAR_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CALABAR_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CALABAR_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CALABAR_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CALABAR_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig signs guest shopper session tokens. These are anonymous
// browsing sessions, not user authentication.
type SessionConfig struct {
	Secret     string `envconfig:"CALABAR_SESSION_SECRET" required:"true"`
	Issuer     string `envconfig:"CALABAR_SESSION_ISSUER" default:"calabar-storefront"`
	TTLMinutes int    `envconfig:"CALABAR_SESSION_TTL_MINUTES" default:"10080"`
}

func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

// CheckoutConfig carries the order pricing policy. Amounts are minor-unit-free
// naira; the tax rate is a percentage applied to the cart subtotal only.
type CheckoutConfig struct {
	ShippingCost   int64         `envconfig:"CALABAR_CHECKOUT_SHIPPING_COST" default:"5000"`
	TaxRatePercent string        `envconfig:"CALABAR_CHECKOUT_TAX_RATE_PERCENT" default:"7.5"`
	SubmitDelay    time.Duration `envconfig:"CALABAR_CHECKOUT_SUBMIT_DELAY" default:"2s"`
}

type PubSubConfig struct {
	ProjectID   string `envconfig:"CALABAR_PUBSUB_PROJECT_ID"`
	OrdersTopic string `envconfig:"CALABAR_PUBSUB_ORDERS_TOPIC" default:"calabar-order-events"`
}

// Enabled reports whether orders should be published to Pub/Sub instead of
// the simulated submitter.
func (p PubSubConfig) Enabled() bool {
	return strings.TrimSpace(p.ProjectID) != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"CALABAR_AUTO_MIGRATE" default:"false"`

	// StrictLocations constrains shipping city/state/country to the static
	// location hierarchy instead of free text.
	StrictLocations bool `envconfig:"CALABAR_STRICT_LOCATIONS" default:"false"`
}
