package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/kaloyan-drinchev/sink-shop/controllers/auth"
)

// SetupAuthRoutes registers the "/api/auth/*" endpoints (public).
func SetupAuthRoutes(api *gin.RouterGroup, deps Deps) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(deps.Store, deps.JWTExpiresIn))
		authGroup.POST("/login", authControllers.Login(deps.Store, deps.JWTExpiresIn))
		authGroup.POST("/verify", authControllers.Verify(deps.Store))
	}
}
