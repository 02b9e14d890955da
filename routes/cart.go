package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/kaloyan-drinchev/sink-shop/controllers/cart"
	"github.com/kaloyan-drinchev/sink-shop/middleware"
)

// SetupCartRoutes registers the "/api/cart/*" endpoints (JWT-protected).
func SetupCartRoutes(api *gin.RouterGroup, deps Deps) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCart(deps.Store))
		cart.POST("", cartControllers.AddToCart(deps.Store))
		cart.PUT("/:id", cartControllers.UpdateCartItem(deps.Store))
		cart.DELETE("/:id", cartControllers.RemoveCartItem(deps.Store))
		cart.DELETE("", cartControllers.ClearCart(deps.Store))
	}
}
