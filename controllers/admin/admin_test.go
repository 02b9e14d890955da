package adminControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kaloyan-drinchev/sink-shop/models"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

func adminRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/api/admin")
	{
		admin.GET("/products", GetAllProducts(s))
		admin.GET("/users", GetAllUsers(s))
		admin.GET("/stats", GetStats(s))
		admin.GET("/orders", GetAllOrders(s))
		admin.PUT("/orders/:id/status", UpdateOrderStatus(s))
		admin.GET("/orders/export-excel", ExportOrdersToExcel(s))
	}
	return r
}

func seedAdminStore(t *testing.T) (store.Store, models.Order) {
	t.Helper()
	s := store.NewMemoryStore([]models.Product{{
		ID:           "p1",
		SerialNumber: "b101",
		Title:        models.Translation{EN: "River Stone Sink"},
		PriceEur:     100,
		PriceBgn:     195,
		SalesCount:   3,
		IsActive:     true,
	}})
	require.NoError(t, s.CreateUser(&models.User{Email: "ivan@example.com", Password: "hash", Role: models.RoleUser}))
	require.NoError(t, s.CreateUser(&models.User{Email: "admin@sinkshop.bg", Password: "hash", Role: models.RoleAdmin}))

	userID := "u1"
	o := models.Order{
		OrderNumber:   "ORD-20260831-test",
		UserID:        &userID,
		Status:        models.OrderStatusProcessing,
		PaymentStatus: models.PaymentStatusPaid,
		TotalEur:      200,
		TotalBgn:      390,
		Items:         []models.OrderItem{{ProductID: "p1", Quantity: 2, PriceEur: 100, PriceBgn: 195}},
		ShippingAddress: models.Address{
			FirstName: "Ivan", LastName: "Petrov", Address: "ul. Vitosha 1",
			City: "Sofia", PostalCode: "1000", Country: "Bulgaria",
		},
	}
	require.NoError(t, s.CreateOrder(&o))
	return s, o
}

func TestGetAllOrders(t *testing.T) {
	s, _ := seedAdminStore(t)
	r := adminRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
}

func TestUpdateOrderStatus(t *testing.T) {
	s, o := seedAdminStore(t)
	r := adminRouter(s)

	put := func(body any) *httptest.ResponseRecorder {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+o.ID+"/status", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := put(UpdateOrderStatusRequest{Status: "shipped"})
	require.Equal(t, http.StatusOK, w.Code)
	got, err := s.GetOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, got.Status)

	// Payment status alone.
	w = put(UpdateOrderStatusRequest{PaymentStatus: "refunded"})
	require.Equal(t, http.StatusOK, w.Code)
	got, err = s.GetOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusRefunded, got.PaymentStatus)
	require.Equal(t, models.OrderStatusShipped, got.Status, "order status untouched")

	// Both at once.
	w = put(UpdateOrderStatusRequest{Status: "delivered", PaymentStatus: "paid"})
	require.Equal(t, http.StatusOK, w.Code)
	got, err = s.GetOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusDelivered, got.Status)
	require.Equal(t, models.PaymentStatusPaid, got.PaymentStatus)

	w = put(UpdateOrderStatusRequest{Status: "teleported"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = put(UpdateOrderStatusRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	s, _ := seedAdminStore(t)
	r := adminRouter(s)

	raw, err := json.Marshal(UpdateOrderStatusRequest{Status: "shipped"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/missing/status", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllUsersHidesPasswords(t *testing.T) {
	s, _ := seedAdminStore(t)
	r := adminRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "password")
	require.NotContains(t, w.Body.String(), "hash")

	var users []models.PublicUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
}

func TestGetStats(t *testing.T) {
	s, _ := seedAdminStore(t)
	r := adminRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalProducts int `json:"totalProducts"`
		TotalOrders   int `json:"totalOrders"`
		TotalUsers    int `json:"totalUsers"`
		TotalRevenue  struct {
			Eur float64 `json:"eur"`
			Bgn float64 `json:"bgn"`
		} `json:"totalRevenue"`
		RecentOrders []models.Order   `json:"recentOrders"`
		TopProducts  []models.Product `json:"topProducts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, 1, stats.TotalProducts)
	require.Equal(t, 1, stats.TotalOrders)
	require.Equal(t, 1, stats.TotalUsers, "admins are not counted as customers")
	require.Equal(t, 200.0, stats.TotalRevenue.Eur)
	require.Equal(t, 390.0, stats.TotalRevenue.Bgn)
	require.Len(t, stats.RecentOrders, 1)
	require.Len(t, stats.TopProducts, 1)
}

func TestExportOrdersToExcel(t *testing.T) {
	s, _ := seedAdminStore(t)
	r := adminRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/export-excel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	require.NotEmpty(t, w.Body.Bytes())
}

func TestMapStatuses(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		_, err := mapOrderStatus(valid)
		require.NoError(t, err, valid)
	}
	_, err := mapOrderStatus("unknown")
	require.Error(t, err)

	for _, valid := range []string{"pending", "paid", "failed", "refunded"} {
		_, err := mapPaymentStatus(valid)
		require.NoError(t, err, valid)
	}
	_, err = mapPaymentStatus("unknown")
	require.Error(t, err)
}
