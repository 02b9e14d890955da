package store

import (
	"errors"

	"github.com/kaloyan-drinchev/sink-shop/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore opens the Postgres connection and migrates the schema.
func NewGormStore(databaseURL string) (Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, err
	}
	return &gormStore{db: db}, nil
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// -------- Users --------

func (s *gormStore) CreateUser(u *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	return s.db.Create(u).Error
}

func (s *gormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *gormStore) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *gormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// -------- Products --------

func (s *gormStore) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("is_active = ?", true).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *gormStore) ListProductsByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("category = ? AND is_active = ?", category, true).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *gormStore) GetProduct(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &product, nil
}

func (s *gormStore) GetProductBySerial(serialNumber string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "serial_number = ?", serialNumber).Error; err != nil {
		return nil, translateErr(err)
	}
	return &product, nil
}

func (s *gormStore) CreateProduct(p *models.Product) error {
	return s.db.Create(p).Error
}

func (s *gormStore) UpdateProduct(p *models.Product) error {
	res := s.db.Model(&models.Product{}).Where("id = ?", p.ID).Select("*").
		Omit("id", "created_at").Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) DeleteProduct(id string) error {
	res := s.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) AdjustStock(productID string, quantity int) error {
	res := s.db.Model(&models.Product{}).Where("id = ?", productID).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
			"sales_count":    gorm.Expr("sales_count + ?", quantity),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- Cart --------

func (s *gormStore) CartItems(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *gormStore) UpsertCartItem(userID, productID string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err == nil {
		item.Quantity += quantity
		if err := s.db.Save(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	item = models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *gormStore) UpdateCartItem(id string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	item.Quantity = quantity
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *gormStore) RemoveCartItem(id string) error {
	res := s.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ClearCart(userID string) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// -------- Orders --------

func (s *gormStore) CreateOrder(o *models.Order) error {
	// Creating the order with its Items association is a single transaction,
	// so an order can never exist without its lines.
	return s.db.Create(o).Error
}

func (s *gormStore) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

func (s *gormStore) ListOrdersByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormStore) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormStore) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	res := s.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrder(id)
}

func (s *gormStore) UpdateOrderPaymentStatus(id string, ps models.PaymentStatus) (*models.Order, error) {
	res := s.db.Model(&models.Order{}).Where("id = ?", id).Update("payment_status", ps)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrder(id)
}
