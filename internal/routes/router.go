package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lablabs/storefront-client/internal/handlers"
	"github.com/lablabs/storefront-client/internal/metrics"
	"github.com/lablabs/storefront-client/internal/middlewares"
)

// Settings configures the gateway router.
type Settings struct {
	MetricsPath string
	Concurrency int
}

// NewRouter assembles the read-only storefront gateway.
func NewRouter(fetcher handlers.Fetcher, m *metrics.Metrics, logger logrus.FieldLogger, settings Settings) *gin.Engine {
	if settings.MetricsPath == "" {
		settings.MetricsPath = "/metrics"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.CORS())      // For handling CORS requests
	r.Use(handlers.ErrorHandler()) // for handling error

	if m != nil {
		r.GET(settings.MetricsPath, m.Handler())
	}
	r.GET("/health", handlers.HealthCheck)

	s := handlers.NewStorefront(fetcher, m, settings.Concurrency)
	r.GET("/products", s.ListProducts)
	r.GET("/products/:id", s.GetProduct)
	r.GET("/collections", s.ListCollections)
	r.GET("/collections/:id", s.GetCollection)

	return r
}

// RunGateway serves router on listen until the server fails.
func RunGateway(router *gin.Engine, listen string, logger logrus.FieldLogger) error {
	logger.WithField("listen", listen).Info("Beginning to serve storefront gateway")
	return router.Run(listen)
}
