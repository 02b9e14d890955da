package adminControllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/kaloyan-drinchev/sink-shop/models"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

type UpdateOrderStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
		return models.OrderStatus(status), nil
	}
	return "", errors.New("invalid order status")
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(status) {
	case models.PaymentStatusPending, models.PaymentStatusPaid,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return models.PaymentStatus(status), nil
	}
	return "", errors.New("invalid payment status")
}

// GET /api/admin/orders
func GetAllOrders(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.ListOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/admin/orders/:id/status — either field may be updated alone.
func UpdateOrderStatus(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Status == "" && req.PaymentStatus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status or paymentStatus is required"})
			return
		}

		var order *models.Order
		if req.Status != "" {
			status, err := mapOrderStatus(req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			order, err = s.UpdateOrderStatus(id, status)
			if err != nil {
				orderUpdateError(c, err)
				return
			}
		}
		if req.PaymentStatus != "" {
			paymentStatus, err := mapPaymentStatus(req.PaymentStatus)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			order, err = s.UpdateOrderPaymentStatus(id, paymentStatus)
			if err != nil {
				orderUpdateError(c, err)
				return
			}
		}

		c.JSON(http.StatusOK, order)
	}
}

func orderUpdateError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
}

// GET /api/admin/products — the catalog as admins see it.
func GetAllProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.ListProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/admin/users — without password hashes.
func GetAllUsers(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.ListUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		public := make([]models.PublicUser, 0, len(users))
		for _, u := range users {
			public = append(public, u.Public())
		}
		c.JSON(http.StatusOK, public)
	}
}

// GET /api/admin/stats — dashboard aggregates.
func GetStats(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.ListProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		orders, err := s.ListOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		users, err := s.ListUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		var revenueEur, revenueBgn float64
		for _, o := range orders {
			revenueEur += o.TotalEur
			revenueBgn += o.TotalBgn
		}

		regularUsers := 0
		for _, u := range users {
			if u.Role == models.RoleUser {
				regularUsers++
			}
		}

		// ListOrders is newest-first already.
		recent := orders
		if len(recent) > 5 {
			recent = recent[:5]
		}

		top := make([]models.Product, len(products))
		copy(top, products)
		sort.Slice(top, func(i, j int) bool { return top[i].SalesCount > top[j].SalesCount })
		if len(top) > 5 {
			top = top[:5]
		}

		c.JSON(http.StatusOK, gin.H{
			"totalProducts": len(products),
			"totalOrders":   len(orders),
			"totalUsers":    regularUsers,
			"totalRevenue":  gin.H{"eur": revenueEur, "bgn": revenueBgn},
			"recentOrders":  recent,
			"topProducts":   top,
		})
	}
}
