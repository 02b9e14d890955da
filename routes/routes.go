package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	checkoutControllers "github.com/kaloyan-drinchev/sink-shop/controllers/checkout"
	"github.com/kaloyan-drinchev/sink-shop/email"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

// Deps is everything the route groups need, wired once in main.
type Deps struct {
	Store        store.Store
	Mailer       *email.Service
	Payments     checkoutControllers.PaymentProcessor
	UploadDir    string
	JWTExpiresIn time.Duration
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")

	SetupAuthRoutes(api, deps)
	SetupProductRoutes(api, deps)
	SetupCartRoutes(api, deps)
	SetupOrderRoutes(api, deps)
	SetupPaymentRoutes(api, deps)
	SetupAdminRoutes(api, deps)
}
