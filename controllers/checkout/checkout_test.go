package checkoutControllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/kaloyan-drinchev/sink-shop/config"
	"github.com/kaloyan-drinchev/sink-shop/middleware"
	"github.com/kaloyan-drinchev/sink-shop/models"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

type failingProcessor struct{}

func (failingProcessor) Charge(PaymentInfo, float64) error {
	return errors.New("card declined")
}

func checkoutRouter(s store.Store, processor PaymentProcessor, onOrder func(models.Order)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/payment/process", middleware.OptionalAuth, ProcessPayment(s, processor, nil, onOrder))
	return r
}

func validRequest(lines ...CartLine) ProcessPaymentRequest {
	return ProcessPaymentRequest{
		ShippingInfo: ShippingInfo{
			FirstName:  "Ivan",
			LastName:   "Petrov",
			Email:      "ivan@example.com",
			Phone:      "+359888123456",
			Address:    "ul. Vitosha 1",
			City:       "Sofia",
			PostalCode: "1000",
			Country:    "Bulgaria",
		},
		PaymentInfo: PaymentInfo{
			CardNumber:     "4242424242424242",
			ExpiryDate:     "12/30",
			CVV:            "123",
			CardholderName: "IVAN PETROV",
		},
		CartItems: lines,
	}
}

func postCheckout(t *testing.T, r *gin.Engine, req ProcessPaymentRequest, token string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	httpReq := httptest.NewRequest(http.MethodPost, "/api/payment/process", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func TestProcessPaymentGuestCheckout(t *testing.T) {
	s := store.NewMemoryStore([]models.Product{{
		ID:            "p1",
		SerialNumber:  "b101",
		PriceEur:      100,
		PriceBgn:      195,
		StockQuantity: 5,
		IsActive:      true,
	}})

	var broadcast []models.Order
	r := checkoutRouter(s, NewMockProcessor(), func(o models.Order) { broadcast = append(broadcast, o) })

	w := postCheckout(t, r, validRequest(CartLine{ProductID: "p1", Quantity: 2}), "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Order   struct {
			ID          string `json:"id"`
			OrderNumber string `json:"orderNumber"`
			Status      string `json:"status"`
			Payment     string `json:"paymentStatus"`
			Total       struct {
				Eur float64 `json:"eur"`
				Bgn float64 `json:"bgn"`
			} `json:"total"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "processing", resp.Order.Status)
	require.Equal(t, "paid", resp.Order.Payment)
	require.Equal(t, 200.0, resp.Order.Total.Eur)
	require.Equal(t, 390.0, resp.Order.Total.Bgn)
	require.Contains(t, resp.Order.OrderNumber, "ORD-")

	order, err := s.GetOrder(resp.Order.ID)
	require.NoError(t, err)
	require.Nil(t, order.UserID, "guest order carries no user")
	require.Len(t, order.Items, 1)
	require.Equal(t, 100.0, order.Items[0].PriceEur)
	require.Equal(t, 195.0, order.Items[0].PriceBgn)
	require.Equal(t, "Sofia", order.ShippingAddress.City)
	require.Equal(t, order.ShippingAddress, order.BillingAddress)

	// Stock adjusted after the sale.
	p, err := s.GetProduct("p1")
	require.NoError(t, err)
	require.Equal(t, 3, p.StockQuantity)
	require.Equal(t, 2, p.SalesCount)

	require.Len(t, broadcast, 1)
	require.Equal(t, resp.Order.ID, broadcast[0].ID)
}

func TestProcessPaymentAttachesAuthenticatedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	s := store.NewMemoryStore([]models.Product{{
		ID: "p1", PriceEur: 100, PriceBgn: 195, StockQuantity: 1, IsActive: true,
	}})
	r := checkoutRouter(s, NewMockProcessor(), nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"email":   "ivan@example.com",
		"role":    models.RoleUser,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWTSecret()))
	require.NoError(t, err)

	w := postCheckout(t, r, validRequest(CartLine{ProductID: "p1", Quantity: 1}), signed)
	require.Equal(t, http.StatusCreated, w.Code)

	orders, err := s.ListOrdersByUser("u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestProcessPaymentEmptyCart(t *testing.T) {
	s := store.NewMemoryStore(nil)
	r := checkoutRouter(s, NewMockProcessor(), nil)

	w := postCheckout(t, r, validRequest(), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Cart is empty")

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestProcessPaymentMissingShippingInfo(t *testing.T) {
	s := store.NewMemoryStore(nil)
	r := checkoutRouter(s, NewMockProcessor(), nil)

	req := validRequest(CartLine{ProductID: "p1", Quantity: 1})
	req.ShippingInfo.Email = ""
	w := postCheckout(t, r, req, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "shipping")
}

func TestProcessPaymentMissingPaymentInfo(t *testing.T) {
	s := store.NewMemoryStore(nil)
	r := checkoutRouter(s, NewMockProcessor(), nil)

	req := validRequest(CartLine{ProductID: "p1", Quantity: 1})
	req.PaymentInfo.CVV = ""
	w := postCheckout(t, r, req, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "payment")
}

func TestProcessPaymentAllLinesStale(t *testing.T) {
	s := store.NewMemoryStore(nil)
	r := checkoutRouter(s, NewMockProcessor(), nil)

	w := postCheckout(t, r, validRequest(CartLine{ProductID: "gone", Quantity: 1}), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "No valid items")

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestProcessPaymentDropsStaleLinesButCompletes(t *testing.T) {
	s := store.NewMemoryStore([]models.Product{{
		ID: "p1", PriceEur: 143, PriceBgn: 280, StockQuantity: 2, IsActive: true,
	}})
	r := checkoutRouter(s, NewMockProcessor(), nil)

	w := postCheckout(t, r, validRequest(
		CartLine{ProductID: "p1", Quantity: 1},
		CartLine{ProductID: "deleted", Quantity: 4},
	), "")
	require.Equal(t, http.StatusCreated, w.Code)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	require.Equal(t, 143.0, orders[0].TotalEur)
	require.Equal(t, 280.0, orders[0].TotalBgn)
}

func TestProcessPaymentChargeFailure(t *testing.T) {
	s := store.NewMemoryStore([]models.Product{{
		ID: "p1", PriceEur: 100, PriceBgn: 195, StockQuantity: 5, IsActive: true,
	}})
	r := checkoutRouter(s, failingProcessor{}, nil)

	w := postCheckout(t, r, validRequest(CartLine{ProductID: "p1", Quantity: 1}), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Payment failed")

	// Nothing persisted, stock untouched.
	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Empty(t, orders)
	p, err := s.GetProduct("p1")
	require.NoError(t, err)
	require.Equal(t, 5, p.StockQuantity)
}

func TestProcessPaymentSnapshotsPrices(t *testing.T) {
	s := store.NewMemoryStore([]models.Product{{
		ID: "p1", PriceEur: 100, PriceBgn: 195, StockQuantity: 5, IsActive: true,
	}})
	r := checkoutRouter(s, NewMockProcessor(), nil)

	w := postCheckout(t, r, validRequest(CartLine{ProductID: "p1", Quantity: 2}), "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Reprice the product after the sale; the order must not move.
	p, err := s.GetProduct("p1")
	require.NoError(t, err)
	p.PriceEur = 500
	p.PriceBgn = 978
	require.NoError(t, s.UpdateProduct(p))

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, 200.0, orders[0].TotalEur)
	require.Equal(t, 390.0, orders[0].TotalBgn)
	require.Equal(t, 100.0, orders[0].Items[0].PriceEur)
	require.Equal(t, 195.0, orders[0].Items[0].PriceBgn)
}

func TestProcessPaymentSeparateBillingAddress(t *testing.T) {
	s := store.NewMemoryStore([]models.Product{{
		ID: "p1", PriceEur: 100, PriceBgn: 195, StockQuantity: 5, IsActive: true,
	}})
	r := checkoutRouter(s, NewMockProcessor(), nil)

	req := validRequest(CartLine{ProductID: "p1", Quantity: 1})
	req.BillingAddress = &models.Address{
		FirstName:  "Maria",
		LastName:   "Petrova",
		Address:    "bul. Bulgaria 10",
		City:       "Plovdiv",
		PostalCode: "4000",
		Country:    "Bulgaria",
	}
	w := postCheckout(t, r, req, "")
	require.Equal(t, http.StatusCreated, w.Code)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "Plovdiv", orders[0].BillingAddress.City)
	require.Equal(t, "Sofia", orders[0].ShippingAddress.City)
}
