package config

// EnvPrefix is the envconfig prefix; every tag below already carries it.
const EnvPrefix = "SCORECARD"

const (
	AppEnvDev     = "dev"
	AppEnvStaging = "staging"
	AppEnvProd    = "prod"
	AppEnvTest    = "test"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv        = "SCORECARD_APP_ENV"
	EnvPort          = "SCORECARD_APP_PORT"
	EnvLogLevel      = "SCORECARD_LOG_LEVEL"
	EnvDBDSN         = "SCORECARD_DB_DSN"
	EnvDBDriver      = "SCORECARD_DB_DRIVER"
	EnvDBHost        = "SCORECARD_DB_HOST"
	EnvDBPort        = "SCORECARD_DB_PORT"
	EnvDBUser        = "SCORECARD_DB_USER"
	EnvDBPassword    = "SCORECARD_DB_PASSWORD"
	EnvDBName        = "SCORECARD_DB_NAME"
	EnvDBSSLMode     = "SCORECARD_DB_SSLMODE"
	EnvDBMaxOpen     = "SCORECARD_DB_MAX_OPEN_CONNS"
	EnvHTTPTimeout   = "SCORECARD_HTTP_WRITE_TIMEOUT"
	EnvMetricsPath   = "SCORECARD_METRICS_PATH"
	EnvAutoMigrate   = "SCORECARD_AUTO_MIGRATE"
	EnvMetricsEnable = "SCORECARD_METRICS_ENABLED"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
