package checkoutControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kaloyan-drinchev/sink-shop/email"
	"github.com/kaloyan-drinchev/sink-shop/middleware"
	"github.com/kaloyan-drinchev/sink-shop/models"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

type ShippingInfo struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type PaymentInfo struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

type ProcessPaymentRequest struct {
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	PaymentInfo  PaymentInfo  `json:"paymentInfo"`
	// Optional billing address; defaults to the shipping address.
	BillingAddress *models.Address `json:"billingAddress"`
	CartItems      []CartLine      `json:"cartItems"`
}

func (s ShippingInfo) complete() bool {
	return s.FirstName != "" && s.LastName != "" && s.Email != "" && s.Phone != "" &&
		s.Address != "" && s.City != "" && s.PostalCode != "" && s.Country != ""
}

func (p PaymentInfo) complete() bool {
	return p.CardNumber != "" && p.ExpiryDate != "" && p.CVV != "" && p.CardholderName != ""
}

func (s ShippingInfo) address() models.Address {
	return models.Address{
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		Address:    s.Address,
		City:       s.City,
		PostalCode: s.PostalCode,
		Country:    s.Country,
	}
}

// PaymentProcessor charges the customer after validation passes. The shop
// ships with the mock processor; a real gateway drops in here.
type PaymentProcessor interface {
	Charge(info PaymentInfo, amountEur float64) error
}

type mockProcessor struct{}

func (mockProcessor) Charge(info PaymentInfo, amountEur float64) error { return nil }

// NewMockProcessor returns the always-successful payment stub.
func NewMockProcessor() PaymentProcessor { return mockProcessor{} }

func generateOrderNumber() string {
	return "ORD-" + time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// ProcessPayment runs the whole checkout pipeline: validate → price the
// cart against the catalog → charge (mock) → persist order with items →
// best-effort stock adjustment → best-effort emails → notify the admin
// feed. Guests are allowed; userId stays null without a token.
// POST /api/payment/process
func ProcessPayment(s store.Store, processor PaymentProcessor, mailer *email.Service, onOrder func(models.Order)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProcessPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if !req.ShippingInfo.complete() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required shipping information"})
			return
		}
		if !req.PaymentInfo.complete() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required payment information"})
			return
		}
		if len(req.CartItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		priced, totalEur, totalBgn := PriceCart(s, req.CartItems)
		if len(priced) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No valid items in cart"})
			return
		}

		if err := processor.Charge(req.PaymentInfo, totalEur); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment failed"})
			return
		}

		var userID *string
		if id, ok := middleware.UserID(c); ok {
			userID = &id
		}

		shippingAddress := req.ShippingInfo.address()
		billingAddress := shippingAddress
		if req.BillingAddress != nil {
			billingAddress = *req.BillingAddress
		}

		items := make([]models.OrderItem, 0, len(priced))
		for _, line := range priced {
			items = append(items, models.OrderItem{
				ProductID: line.Product.ID,
				Quantity:  line.Quantity,
				PriceEur:  line.Product.PriceEur,
				PriceBgn:  line.Product.PriceBgn,
			})
		}

		order := models.Order{
			UserID:          userID,
			OrderNumber:     generateOrderNumber(),
			Items:           items,
			TotalEur:        totalEur,
			TotalBgn:        totalBgn,
			Status:          models.OrderStatusProcessing,
			PaymentStatus:   models.PaymentStatusPaid,
			ShippingAddress: shippingAddress,
			BillingAddress:  billingAddress,
		}

		if err := s.CreateOrder(&order); err != nil {
			log.Printf("❌ Failed to create order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processing failed"})
			return
		}

		// Stock adjustment is best-effort per line; a failure is logged and
		// never aborts the completed order.
		for _, line := range priced {
			if err := s.AdjustStock(line.Product.ID, line.Quantity); err != nil {
				log.Printf("⚠️ Failed to update stock for product %s: %v", line.Product.ID, err)
			}
		}

		sendOrderEmails(mailer, order, req.ShippingInfo, priced)

		if onOrder != nil {
			onOrder(order)
		}

		log.Printf("✅ Order %s created: %d items, €%.2f / %.2f лв", order.ID, len(items), totalEur, totalBgn)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"order": gin.H{
				"id":            order.ID,
				"orderNumber":   order.OrderNumber,
				"status":        order.Status,
				"paymentStatus": order.PaymentStatus,
				"total":         gin.H{"eur": totalEur, "bgn": totalBgn},
				"createdAt":     order.CreatedAt,
			},
		})
	}
}

func sendOrderEmails(mailer *email.Service, order models.Order, shipping ShippingInfo, priced []PricedLine) {
	if mailer == nil {
		return
	}

	emailItems := make([]email.OrderEmailItem, 0, len(priced))
	for _, line := range priced {
		emailItems = append(emailItems, email.OrderEmailItem{
			Title:        line.Product.Title.EN,
			SerialNumber: line.Product.SerialNumber,
			ProductID:    line.Product.ID,
			Quantity:     line.Quantity,
			PriceEur:     line.Product.PriceEur,
		})
	}

	data := email.OrderEmailData{
		OrderNumber:   order.OrderNumber,
		CustomerName:  shipping.FirstName + " " + shipping.LastName,
		CustomerEmail: shipping.Email,
		CustomerPhone: shipping.Phone,
		Address:       shipping.Address,
		City:          shipping.City,
		PostalCode:    shipping.PostalCode,
		Country:       shipping.Country,
		Items:         emailItems,
		TotalEur:      order.TotalEur,
		TotalBgn:      order.TotalBgn,
		OrderDate:     order.CreatedAt,
	}

	if err := mailer.SendOrderNotification(data); err != nil {
		log.Printf("❌ Failed to send order notification: %v", err)
	}
	if err := mailer.SendCustomerConfirmation(data); err != nil {
		log.Printf("❌ Failed to send customer confirmation: %v", err)
	}
}
