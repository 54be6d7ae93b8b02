package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path         string `mapstructure:"path"`
	LogMode      bool   `mapstructure:"log_mode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type TelegramConfig struct {
	BotToken  string `mapstructure:"bot_token"`
	WebAppURL string `mapstructure:"webapp_url"`
}

type AdminConfig struct {
	JWTSecret    string `mapstructure:"jwt_secret"`
	PasswordHash string `mapstructure:"password_hash"` // bcrypt hash of the admin password
	ExpireHours  int    `mapstructure:"expire_hours"`
}

// DefaultsConfig seeds the profile created on a user's first visit.
type DefaultsConfig struct {
	Currency      string `mapstructure:"currency"`
	MonthlyIncome int64  `mapstructure:"monthly_income"`
	PaydayDay     int    `mapstructure:"payday_day"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from the given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in the current working
// directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. GDE_TELEGRAM_BOT_TOKEN
		v.SetEnvPrefix("GDE")
		v.AutomaticEnv()

		v.SetDefault("server.address", "0.0.0.0")
		v.SetDefault("server.port", 3000)
		v.SetDefault("database.path", "data/gde-dengi.db")
		v.SetDefault("database.max_open_conns", 10)
		v.SetDefault("database.max_idle_conns", 5)
		v.SetDefault("admin.expire_hours", 24)
		v.SetDefault("defaults.currency", "RUB")
		v.SetDefault("defaults.monthly_income", 50000)
		v.SetDefault("defaults.payday_day", 1)

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
