package config

const (
	// EnvPrefix is passed to envconfig; individual fields carry explicit
	// envconfig names so the prefix stays empty.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv      = "PROMO_APP_ENV"
	EnvPort        = "PROMO_APP_PORT"
	EnvLogLevel    = "PROMO_LOG_LEVEL"
	EnvDatabaseURI = "DATABASE_URI"
	EnvUseSQLite   = "PROMO_USE_SQLITE"
	EnvAutoMigrate = "PROMO_AUTO_MIGRATE"
)
