package config

const (
	envSecretKey   = "JWT_SECRET_KEY"
	envDatabaseDSN = "DATABASE_DSN"
	envLogLevel    = "LOG_LEVEL"
)

func parseEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	setString(&cfg.SecretKey, getenv(envSecretKey))
	setString(&cfg.DatabaseDSN, getenv(envDatabaseDSN))
	setString(&cfg.LogLevel, getenv(envLogLevel))
}
