package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // payment accepted, being prepared
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Address is snapshotted onto the order at creation time so later edits to
// a customer profile never change historical orders.
type Address struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Order struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      *string `gorm:"type:uuid;index" json:"userId"` // nil for guest checkout
	OrderNumber string  `gorm:"uniqueIndex;not null" json:"orderNumber"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	// Totals are computed server-side at creation and never recomputed.
	TotalEur float64 `json:"totalEur"`
	TotalBgn float64 `json:"totalBgn"`

	Status        OrderStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`

	ShippingAddress Address `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	BillingAddress  Address `gorm:"embedded;embeddedPrefix:billing_" json:"billingAddress"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem carries price snapshots in both currencies, copied from the
// product at order-creation time and immutable afterwards.
type OrderItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string    `gorm:"type:uuid;index;not null" json:"orderId"`
	ProductID string    `gorm:"type:uuid" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	PriceEur  float64   `gorm:"not null" json:"priceEur"`
	PriceBgn  float64   `gorm:"not null" json:"priceBgn"`
	CreatedAt time.Time `json:"createdAt"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
