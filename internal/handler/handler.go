package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/product-pagination-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Product listings are served both at the legacy root paths and under the versioned prefix.
func Register(r *gin.Engine, catalog Pinger, productSvc service.ProductService) {
	h := NewHealthHandler(catalog)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	products := NewProductHandler(productSvc)
	products.Register(&r.RouterGroup)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		products.Register(api)
	}
}
