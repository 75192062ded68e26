package api

import (
	"net/http"

	"contactbook-backend/internal/auth/delivery"
	authUsecase "contactbook-backend/internal/auth/usecase"
	contactDelivery "contactbook-backend/internal/contact/delivery"
	contactUsecase "contactbook-backend/internal/contact/usecase"
	"contactbook-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, contactUsecase contactUsecase.ContactUsecase, rateLimiter *middleware.RateLimiter) {
	authHandler := delivery.NewAuthHandler(authUsecase)
	contactHandler := contactDelivery.NewContactHandler(contactUsecase)

	api := r.Group("/api")
	api.Use(rateLimiter.Middleware())
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/refresh_token", authHandler.Refresh)
			auth.GET("/confirmed_email/:token", authHandler.ConfirmEmail)
			auth.POST("/request_email", authHandler.RequestEmail)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUsecase))
		{
			users.GET("/me", authHandler.Me)
			users.PATCH("/avatar", authHandler.UpdateAvatar)
		}

		// Contact routes (protected)
		contacts := api.Group("/contacts")
		contacts.Use(delivery.AuthMiddleware(authUsecase))
		{
			contacts.POST("", contactHandler.Create)
			contacts.GET("", contactHandler.List)
			contacts.GET("/search", contactHandler.Search)
			contacts.GET("/birthdays", contactHandler.Birthdays)
			contacts.GET("/:id", contactHandler.Get)
			contacts.PUT("/:id", contactHandler.Replace)
			contacts.PATCH("/:id", contactHandler.Patch)
			contacts.DELETE("/:id", contactHandler.Delete)
		}
	}
}
