package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	UI     UIConfig
	Log    LogConfig
}

// ServerConfig holds REST service settings.
type ServerConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	PageSize int    `mapstructure:"page_size"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat     string `mapstructure:"date_format"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Timezone       string
}

// LogConfig holds log sink settings.
type LogConfig struct {
	Dir   string
	Level string
}

// Load reads configuration from file and env. Env var overrides use
// prefix MONEYTRACK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.base_url", "http://127.0.0.1:8080/")
	v.SetDefault("server.page_size", 30)
	v.SetDefault("ui.date_format", "2 Jan 2006")
	v.SetDefault("ui.currency_symbol", "")
	v.SetDefault("ui.timezone", "UTC")
	v.SetDefault("log.dir", filepath.Join(os.Getenv("HOME"), ".local", "state", "moneytrack"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MONEYTRACK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "moneytrack"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MONEYTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
