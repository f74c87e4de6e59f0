package catalog

import (
	"fmt"
	"math"

	"github.com/maxviazov/product-pagination-service/internal/model"
)

// GeneratorConfig describes the synthetic dataset served at startup.
type GeneratorConfig struct {
	Size      int     `mapstructure:"size" validate:"gte=0,lte=100000"`
	BasePrice float64 `mapstructure:"base_price" validate:"gte=0"`
	PriceStep float64 `mapstructure:"price_step" validate:"gte=0"`
}

// DefaultGeneratorConfig yields 100 products priced 10 + i*1.1.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{Size: 100, BasePrice: 10, PriceStep: 1.1}
}

// Generate builds products with ids 1..Size in ascending order.
func Generate(cfg GeneratorConfig) []model.Product {
	out := make([]model.Product, 0, cfg.Size)
	for i := 1; i <= cfg.Size; i++ {
		out = append(out, model.Product{
			ID:    int64(i),
			Name:  fmt.Sprintf("Product %d", i),
			Price: roundCents(cfg.BasePrice + float64(i)*cfg.PriceStep),
		})
	}
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
