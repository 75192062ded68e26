package api

import (
	authUsecase "contactbook-backend/internal/auth/usecase"
	contactUsecase "contactbook-backend/internal/contact/usecase"
	"contactbook-backend/internal/middleware"
	"contactbook-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	contactUsecase contactUsecase.ContactUsecase
	config         *config.Config
	rateLimiter    *middleware.RateLimiter
	registry       *prometheus.Registry
}

func NewHandler(authUc authUsecase.AuthUsecase, contactUc contactUsecase.ContactUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		contactUsecase: contactUc,
		config:         cfg,
		rateLimiter:    middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig(cfg.RateLimitPerMin)),
		registry:       prometheus.NewRegistry(),
	}
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}

// Engine builds the gin engine with CORS, metrics and rate limiting wired
// in front of the route table.
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	metrics := middleware.NewMetrics(h.registry)
	r.Use(metrics.Middleware())

	r.GET("/metrics", middleware.Handler(h.registry))

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.contactUsecase, h.rateLimiter)

	return r
}
