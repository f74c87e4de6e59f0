package config

import (
	"time"

	"github.com/maxviazov/product-pagination-service/internal/catalog"
	"github.com/maxviazov/product-pagination-service/internal/logger"
	"github.com/maxviazov/product-pagination-service/internal/service"
)

type Config struct {
	App        AppConfig               `mapstructure:"app"`
	Logger     logger.LoggerConfig     `mapstructure:"logger"`
	Catalog    catalog.GeneratorConfig `mapstructure:"catalog"`
	Pagination service.Limits          `mapstructure:"pagination"`
}

// AppConfig holds HTTP server settings.
type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Env             string        `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}
