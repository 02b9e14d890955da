package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/kaloyan-drinchev/sink-shop/controllers/admin"
	checkoutControllers "github.com/kaloyan-drinchev/sink-shop/controllers/checkout"
	"github.com/kaloyan-drinchev/sink-shop/middleware"
)

// SetupPaymentRoutes registers "/api/payment/*". Auth is optional so
// guests can check out; a valid token attaches the order to the user.
func SetupPaymentRoutes(api *gin.RouterGroup, deps Deps) {
	payment := api.Group("/payment")
	payment.Use(middleware.OptionalAuth)
	{
		payment.POST("/process", checkoutControllers.ProcessPayment(
			deps.Store, deps.Payments, deps.Mailer, adminControllers.BroadcastNewOrder))
	}
}
