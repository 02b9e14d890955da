package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/kaloyan-drinchev/sink-shop/controllers/admin"
	"github.com/kaloyan-drinchev/sink-shop/middleware"
)

// SetupAdminRoutes registers the "/api/admin/*" endpoints. Requires a
// valid token with role=admin.
func SetupAdminRoutes(api *gin.RouterGroup, deps Deps) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		admin.GET("/products", adminControllers.GetAllProducts(deps.Store))
		admin.GET("/users", adminControllers.GetAllUsers(deps.Store))
		admin.GET("/stats", adminControllers.GetStats(deps.Store))

		orders := admin.Group("/orders")
		{
			orders.GET("", adminControllers.GetAllOrders(deps.Store))
			orders.PUT("/:id/status", adminControllers.UpdateOrderStatus(deps.Store))
			orders.GET("/export-excel", adminControllers.ExportOrdersToExcel(deps.Store))
			orders.GET("/ws", adminControllers.OrdersWebSocket)
		}
	}
}
