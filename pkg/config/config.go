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

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "WISHLISTS_DB_DSN"
	EnvDBHost = "WISHLISTS_DB_HOST"
	EnvDBUser = "WISHLISTS_DB_USER"
	EnvDBName = "WISHLISTS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	API          APIConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WISHLISTS_APP_ENV" default:"dev"`
	Port         string `envconfig:"WISHLISTS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"WISHLISTS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WISHLISTS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"WISHLISTS_DB_DSN"`
	Driver string `envconfig:"WISHLISTS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"WISHLISTS_DB_HOST"`
	LegacyPort     int    `envconfig:"WISHLISTS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WISHLISTS_DB_USER"`
	LegacyPassword string `envconfig:"WISHLISTS_DB_PASSWORD"`
	LegacyName     string `envconfig:"WISHLISTS_DB_NAME"`
	LegacySSLMode  string `envconfig:"WISHLISTS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WISHLISTS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WISHLISTS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WISHLISTS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WISHLISTS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// APIConfig carries the shared-secret check for write endpoints. Handlers
// assume the caller is already authorized; the middleware gates invocation.
type APIConfig struct {
	Key        string `envconfig:"WISHLISTS_API_KEY"`
	KeyEnabled bool   `envconfig:"WISHLISTS_API_KEY_ENABLED" default:"false"`
}

func (a APIConfig) Enforced() bool {
	return a.KeyEnabled && a.Key != ""
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"WISHLISTS_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"WISHLISTS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite {
		db.Driver = "sqlite"
		if db.DSN == "" {
			db.DSN = "file::memory:?cache=shared"
		}
		return nil
	}

	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
