package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

// Config holds the connection settings for the target store. Everything is
// sourced from the environment with fallback defaults so the tool runs
// unconfigured inside the compose network.
type Config struct {
	Host     string `mapstructure:"db_host"`
	Port     int    `mapstructure:"db_port"`
	Database string `mapstructure:"db_name"`
	User     string `mapstructure:"db_user"`
	Password string `mapstructure:"db_password"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("db_host", "postgres")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_name", "ecommerce_db")
	v.SetDefault("db_user", "ecommerce_user")
	v.SetDefault("db_password", "ecommerce_pass")
	v.AutomaticEnv()

	for _, key := range []string{"db_host", "db_port", "db_name", "db_user", "db_password"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}
	if c.Database == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	return nil
}

// DSN builds a pgx-compatible connection URL.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Database,
	}
	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d/%s", c.Host, c.Port, c.Database)
}
