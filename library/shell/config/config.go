package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of all environment variables read by Load.
const EnvPrefix = "LIBRARY_"

const (
	DriverSQLite = "sqlite"
	DriverPGX    = "pgx"
	DriverSQLDB  = "sqldb"
	DriverSQLX   = "sqlx"
)

const insecureDevSessionSecret = "insecure-dev-session-secret"

// Config is the complete service configuration.
type Config struct {
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCHealthAddr string `env:"GRPC_HEALTH_ADDR" envDefault:":8081"`

	DBDriver     string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN        string `env:"DB_DSN" envDefault:"library.db"`
	DBReplicaDSN string `env:"DB_REPLICA_DSN"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"insecure-dev-session-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	CatalogCacheSize int           `env:"CATALOG_CACHE_SIZE" envDefault:"1024"`
	CatalogCacheTTL  time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`

	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"library.events"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	OTelProtocol string `env:"OTEL_PROTOCOL" envDefault:"grpc"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"library-backend"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads an optional .env file and then the LIBRARY_ prefixed environment variables.
// Variables already set in the environment win over the .env file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that cannot be expressed with struct tags.
func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPGX, DriverSQLDB, DriverSQLX:
	default:
		return fmt.Errorf("unsupported %sDB_DRIVER %q", EnvPrefix, c.DBDriver)
	}

	switch c.OTelProtocol {
	case OTelProtocolGRPC, OTelProtocolHTTP:
	default:
		return fmt.Errorf("unsupported %sOTEL_PROTOCOL %q", EnvPrefix, c.OTelProtocol)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("%sSESSION_TTL must be positive", EnvPrefix)
	}

	return nil
}

// UsesInsecureSessionSecret reports whether the built-in development secret is in use.
func (c Config) UsesInsecureSessionSecret() bool {
	return c.SessionSecret == insecureDevSessionSecret
}
