package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	HTTP         HTTPConfig
	Metrics      MetricsConfig
	FeatureFlags FeatureFlagsConfig
}

var validate = validator.New()

// Load reads the process environment, derives the DSN and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

type AppConfig struct {
	Env           string `envconfig:"SCORECARD_APP_ENV" required:"true" validate:"required"`
	Port          string `envconfig:"SCORECARD_APP_PORT" default:"8080" validate:"required,numeric"`
	LogLevel      string `envconfig:"SCORECARD_LOG_LEVEL" default:"info"`
	LogWarnStack  bool   `envconfig:"SCORECARD_LOG_WARN_STACK" default:"false"`
	LogErrorStack bool   `envconfig:"SCORECARD_LOG_ERROR_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev) || strings.EqualFold(a.Env, "development")
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "production")
}

type DBConfig struct {
	DSN    string `envconfig:"SCORECARD_DB_DSN"`
	Driver string `envconfig:"SCORECARD_DB_DRIVER" default:"postgres" validate:"oneof=postgres sqlite"`

	LegacyHost     string `envconfig:"SCORECARD_DB_HOST"`
	LegacyPort     int    `envconfig:"SCORECARD_DB_PORT" default:"5432" validate:"min=1,max=65535"`
	LegacyUser     string `envconfig:"SCORECARD_DB_USER"`
	LegacyPassword string `envconfig:"SCORECARD_DB_PASSWORD"`
	LegacyName     string `envconfig:"SCORECARD_DB_NAME"`
	LegacySSLMode  string `envconfig:"SCORECARD_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SCORECARD_DB_MAX_OPEN_CONNS" default:"20" validate:"min=0"`
	MaxIdleConns    int           `envconfig:"SCORECARD_DB_MAX_IDLE_CONNS" default:"10" validate:"min=0"`
	ConnMaxLifetime time.Duration `envconfig:"SCORECARD_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SCORECARD_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver is the embedded SQLite one.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration `envconfig:"SCORECARD_HTTP_READ_HEADER_TIMEOUT" default:"5s"`
	ReadTimeout       time.Duration `envconfig:"SCORECARD_HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout      time.Duration `envconfig:"SCORECARD_HTTP_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout       time.Duration `envconfig:"SCORECARD_HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout   time.Duration `envconfig:"SCORECARD_HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

type MetricsConfig struct {
	Enabled   bool   `envconfig:"SCORECARD_METRICS_ENABLED" default:"true"`
	Path      string `envconfig:"SCORECARD_METRICS_PATH" default:"/metrics" validate:"startswith=/"`
	Namespace string `envconfig:"SCORECARD_METRICS_NAMESPACE" default:"scorecard"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SCORECARD_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required when %s=%s", EnvDBDSN, EnvDBDriver, DriverSQLite)
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
