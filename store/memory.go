package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kaloyan-drinchev/sink-shop/models"
)

// memoryStore backs USE_MOCK_DATA=true. Unlike a plain fixture array it is
// safe for concurrent handlers; everything is guarded by one mutex and
// callers get copies, never internal slices.
type memoryStore struct {
	mu        sync.Mutex
	users     []models.User
	products  []models.Product
	cartItems []models.CartItem
	orders    []models.Order
}

// NewMemoryStore seeds the mock store with the given products.
func NewMemoryStore(products []models.Product) Store {
	now := time.Now()
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.NewString()
		}
		if products[i].CreatedAt.IsZero() {
			products[i].CreatedAt = now
			products[i].UpdatedAt = now
		}
	}
	return &memoryStore{products: products}
}

// -------- Users --------

func (s *memoryStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	s.users = append(s.users, *u)
	return nil
}

func (s *memoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) GetUserByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) ListUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

// -------- Products --------

func (s *memoryStore) ListProducts() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var products []models.Product
	for _, p := range s.products {
		if p.IsActive {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (s *memoryStore) ListProductsByCategory(category string) ([]models.Product, error) {
	products, err := s.ListProducts()
	if err != nil {
		return nil, err
	}
	var filtered []models.Product
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *memoryStore) GetProduct(id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) GetProductBySerial(serialNumber string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.SerialNumber == serialNumber {
			product := p
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) CreateProduct(p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.products = append(s.products, *p)
	return nil
}

func (s *memoryStore) UpdateProduct(p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			p.CreatedAt = s.products[i].CreatedAt
			p.UpdatedAt = time.Now()
			s.products[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryStore) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryStore) AdjustStock(productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].StockQuantity -= quantity
			s.products[i].SalesCount += quantity
			s.products[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

// -------- Cart --------

func (s *memoryStore) CartItems(userID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []models.CartItem
	for _, item := range s.cartItems {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *memoryStore) UpsertCartItem(userID, productID string, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cartItems {
		if s.cartItems[i].UserID == userID && s.cartItems[i].ProductID == productID {
			s.cartItems[i].Quantity += quantity
			s.cartItems[i].UpdatedAt = time.Now()
			item := s.cartItems[i]
			return &item, nil
		}
	}
	item := models.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.cartItems = append(s.cartItems, item)
	return &item, nil
}

func (s *memoryStore) UpdateCartItem(id string, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cartItems {
		if s.cartItems[i].ID == id {
			s.cartItems[i].Quantity = quantity
			s.cartItems[i].UpdatedAt = time.Now()
			item := s.cartItems[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) RemoveCartItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cartItems {
		if s.cartItems[i].ID == id {
			s.cartItems = append(s.cartItems[:i], s.cartItems[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryStore) ClearCart(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []models.CartItem
	for _, item := range s.cartItems {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	s.cartItems = kept
	return nil
}

// -------- Orders --------

func (s *memoryStore) CreateOrder(o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	for i := range o.Items {
		if o.Items[i].ID == "" {
			o.Items[i].ID = uuid.NewString()
		}
		o.Items[i].OrderID = o.ID
		o.Items[i].CreatedAt = o.CreatedAt
	}
	s.orders = append(s.orders, cloneOrder(*o))
	return nil
}

func (s *memoryStore) GetOrder(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			order := cloneOrder(o)
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) ListOrdersByUser(userID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []models.Order
	for _, o := range s.orders {
		if o.UserID != nil && *o.UserID == userID {
			orders = append(orders, cloneOrder(o))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *memoryStore) ListOrders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, cloneOrder(o))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *memoryStore) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now()
			order := cloneOrder(s.orders[i])
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) UpdateOrderPaymentStatus(id string, ps models.PaymentStatus) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].PaymentStatus = ps
			s.orders[i].UpdatedAt = time.Now()
			order := cloneOrder(s.orders[i])
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

// cloneOrder deep-copies the items slice so stored orders cannot be
// mutated through a returned value.
func cloneOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
