package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/kaloyan-drinchev/sink-shop/controllers/order"
	"github.com/kaloyan-drinchev/sink-shop/middleware"
)

// SetupOrderRoutes registers the "/api/orders/*" endpoints
// (JWT-protected order history).
func SetupOrderRoutes(api *gin.RouterGroup, deps Deps) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.GET("", orderControllers.GetUserOrders(deps.Store))
		orders.GET("/:id", orderControllers.GetOrderByID(deps.Store))
	}
}
