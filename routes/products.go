package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/kaloyan-drinchev/sink-shop/controllers/product"
	"github.com/kaloyan-drinchev/sink-shop/middleware"
)

// SetupProductRoutes registers the "/api/products/*" endpoints. Reads are
// public, mutations are admin-only.
func SetupProductRoutes(api *gin.RouterGroup, deps Deps) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(deps.Store))
		products.GET("/check-serial/:serialNumber", productControllers.CheckSerial(deps.Store))
		products.GET("/:id", productControllers.GetProductByID(deps.Store))

		admin := products.Group("")
		admin.Use(middleware.ValidateToken, middleware.RequireAdmin)
		{
			admin.POST("", productControllers.CreateProduct(deps.Store, deps.UploadDir))
			admin.PUT("/:id", productControllers.UpdateProduct(deps.Store, deps.UploadDir))
			admin.DELETE("/:id", productControllers.DeleteProduct(deps.Store))
		}
	}
}
