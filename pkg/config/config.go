package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Shipping ShippingConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GIFTYY_APP_ENV" required:"true"`
	Port         string `envconfig:"GIFTYY_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GIFTYY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GIFTYY_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"GIFTYY_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"GIFTYY_DB_DSN"`

	LegacyHost     string `envconfig:"GIFTYY_DB_HOST"`
	LegacyPort     int    `envconfig:"GIFTYY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GIFTYY_DB_USER"`
	LegacyPassword string `envconfig:"GIFTYY_DB_PASSWORD"`
	LegacyName     string `envconfig:"GIFTYY_DB_NAME"`
	LegacySSLMode  string `envconfig:"GIFTYY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GIFTYY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GIFTYY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GIFTYY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GIFTYY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.LegacyHost == "" || d.LegacyUser == "" || d.LegacyName == "" {
		return fmt.Errorf("either GIFTYY_DB_DSN or GIFTYY_DB_HOST/USER/NAME must be set")
	}
	d.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(d.LegacyUser),
		url.QueryEscape(d.LegacyPassword),
		d.LegacyHost,
		d.LegacyPort,
		d.LegacyName,
		d.LegacySSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"GIFTYY_REDIS_URL"`
	Address      string        `envconfig:"GIFTYY_REDIS_ADDR"`
	Password     string        `envconfig:"GIFTYY_REDIS_PASSWORD"`
	DB           int           `envconfig:"GIFTYY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GIFTYY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GIFTYY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GIFTYY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GIFTYY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GIFTYY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// ShippingConfig carries the flat-policy defaults and catalog lookup limits
// used by the shipping resolver.
type ShippingConfig struct {
	DefaultCostCents       int           `envconfig:"GIFTYY_SHIPPING_DEFAULT_COST_CENTS" default:"499"`
	FreeThresholdCents     int           `envconfig:"GIFTYY_SHIPPING_FREE_THRESHOLD_CENTS" default:"5000"`
	VendorLookupTimeout    time.Duration `envconfig:"GIFTYY_SHIPPING_VENDOR_LOOKUP_TIMEOUT" default:"3s"`
	DefaultStoreName       string        `envconfig:"GIFTYY_SHIPPING_DEFAULT_STORE_NAME" default:"Giftyy"`
	VendorNameCacheTTL     time.Duration `envconfig:"GIFTYY_VENDOR_NAME_CACHE_TTL" default:"10m"`
	VendorNameCacheEnabled bool          `envconfig:"GIFTYY_VENDOR_NAME_CACHE_ENABLED" default:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"GIFTYY_CORS_ALLOWED_ORIGINS" default:"http://localhost:8081,https://giftyy.app"`
}
