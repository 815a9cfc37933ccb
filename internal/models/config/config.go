package config

// AppConfig global application configuration
var AppConfig *Config

// Config root config
type Config struct {
	Environment string
	HTTP        HTTPConfig
	Database    DatabaseConfig
	Log         LogConfig
}

type HTTPConfig struct {
	Port string
}

type LogConfig struct {
	Level string // debug, info, warn, error
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
