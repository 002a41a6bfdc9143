// internal/app/router.go
package app

import (
	authHandler "rxautos-service/internal/handlers/auth"
	lookupHandler "rxautos-service/internal/handlers/lookup"
	profileHandler "rxautos-service/internal/handlers/profile"
	vehicleHandler "rxautos-service/internal/handlers/vehicle"
	"rxautos-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	VehicleHandler *vehicleHandler.VehicleHandler
	ProfileHandler *profileHandler.ProfileHandler
	LookupHandler  *lookupHandler.LookupHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Vehicles ====================
	// Listings are public; a valid bearer token still resolves the user so
	// responses can be personalized.
	vehicles := api.Group("/vehicles")
	vehicles.Use(h.AuthMiddleware.OptionalAuth())
	{
		vehicles.GET("", h.VehicleHandler.List)
		vehicles.GET("/brands", h.VehicleHandler.Brands)
	}

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/register", h.AuthHandler.Register)
		authPublic.POST("/login", h.AuthHandler.Login)
		authPublic.POST("/forgot-password", h.AuthHandler.ForgotPassword)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.GET("/me", h.AuthHandler.Me)
	}

	// ==================== Profile ====================
	profile := api.Group("/profile")
	profile.Use(h.AuthMiddleware.Auth())
	{
		profile.GET("", h.ProfileHandler.Get)
		profile.PUT("", h.ProfileHandler.Update)
	}

	// ==================== External Lookups ====================
	lookups := api.Group("/lookup")
	{
		lookups.GET("/cep/:cep", h.LookupHandler.CEP)
		lookups.GET("/location", h.LookupHandler.Location)
	}
}
