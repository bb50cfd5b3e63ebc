// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	FCM     FCMConfig     `mapstructure:"fcm"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// FCMConfig holds settings for the FCM HTTP v1 send path.
type FCMConfig struct {
	ServiceAccount string   `mapstructure:"service_account"` // path to the key file
	BaseURL        string   `mapstructure:"base_url"`
	Scopes         []string `mapstructure:"scopes"`
	Timeout        int      `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
