package store

import (
	"errors"

	"github.com/kaloyan-drinchev/sink-shop/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Store is the single persistence interface behind every route handler.
// It is selected once at startup (Postgres or in-memory mock data), never
// branched per call.
type Store interface {
	// Users
	CreateUser(u *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	ListUsers() ([]models.User, error)

	// Products. List* return active products only, newest first.
	ListProducts() ([]models.Product, error)
	ListProductsByCategory(category string) ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	GetProductBySerial(serialNumber string) (*models.Product, error)
	CreateProduct(p *models.Product) error
	UpdateProduct(p *models.Product) error
	DeleteProduct(id string) error
	// AdjustStock decrements stock_quantity and increments sales_count by
	// quantity. Best-effort from the caller's perspective.
	AdjustStock(productID string, quantity int) error

	// Cart (authenticated users only)
	CartItems(userID string) ([]models.CartItem, error)
	UpsertCartItem(userID, productID string, quantity int) (*models.CartItem, error)
	UpdateCartItem(id string, quantity int) (*models.CartItem, error)
	RemoveCartItem(id string) error
	ClearCart(userID string) error

	// Orders. CreateOrder persists the order together with its items.
	CreateOrder(o *models.Order) error
	GetOrder(id string) (*models.Order, error)
	ListOrdersByUser(userID string) ([]models.Order, error)
	ListOrders() ([]models.Order, error)
	UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error)
	UpdateOrderPaymentStatus(id string, ps models.PaymentStatus) (*models.Order, error)
}
