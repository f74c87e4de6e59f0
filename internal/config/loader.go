package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads the YAML file at path, applies APP_* environment overrides and validates the result.
// An empty path skips the file and relies on defaults plus environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&config.App); err != nil {
		return nil, fmt.Errorf("app config validation error: %w", err)
	}
	if err := validator.New().Struct(&config.Catalog); err != nil {
		return nil, fmt.Errorf("catalog config validation error: %w", err)
	}
	if err := validator.New().Struct(&config.Pagination); err != nil {
		return nil, fmt.Errorf("pagination config validation error: %w", err)
	}
	return &config, nil
}

// Address returns host:port for net/http.
func (c AppConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "product-pagination-service")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.host", "127.0.0.1")
	v.SetDefault("app.port", 8000)
	v.SetDefault("app.read_timeout", 5*time.Second)
	v.SetDefault("app.write_timeout", 10*time.Second)
	v.SetDefault("app.idle_timeout", 60*time.Second)
	v.SetDefault("app.shutdown_timeout", 10*time.Second)

	// logger settings are validated by logger.New after its own defaults
	v.SetDefault("logger.level", "")
	v.SetDefault("logger.env", "")

	v.SetDefault("catalog.size", 100)
	v.SetDefault("catalog.base_price", 10.0)
	v.SetDefault("catalog.price_step", 1.1)

	v.SetDefault("pagination.default_limit", 10)
	v.SetDefault("pagination.max_limit", 50)
}
