package store

import (
	"log"

	"github.com/kaloyan-drinchev/sink-shop/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedProducts returns the built-in catalog fixtures for mock data mode,
// one or two sinks per material.
func SeedProducts() []models.Product {
	handMade := models.Translation{EN: "hand-made", BG: "ръчен труд"}
	topMount := models.Translation{EN: "Top mount", BG: "Горен монтаж"}

	return []models.Product{
		{
			SerialNumber: "b101",
			Model:        models.Translation{EN: "Type 1.1", BG: "Вид 1.1"},
			Title:        models.Translation{EN: "River Stone Irregular Sink", BG: "Речна каменна неправилна мивка"},
			Description:  models.Translation{EN: "Irregular Shape", BG: "Неправилна форма"},
			Material:     models.Translation{EN: "River Stone", BG: "Речен камък"},
			Color:        models.Translation{EN: "Dark Grey/Grey", BG: "Тъмно сиво/Сиво"},
			Mounting:     topMount,
			Manufacture:  handMade,
			Tag:          models.Translation{EN: "Natural", BG: "Естествен"},
			Dimensions:   "L: 40-60, W: 31-50, H: 15",
			Weight:       "18-30 kg",
			Category:     models.CategoryRiverStone,
			Subcategory:  "natural",
			Image:        "/assets/products/b101.jpg",
			Slug:         "river-stone-irregular-sink",
			DateAdded:    "2024-01-15",
			PriceEur:     143,
			PriceBgn:     280,
			SalesCount:   28,
			StockQuantity: 3,
			IsActive:     true,
		},
		{
			SerialNumber: "c102",
			Model:        models.Translation{EN: "Type 1.3", BG: "Вид 1.3"},
			Title:        models.Translation{EN: "Polished River Stone Sink", BG: "Полирана речна каменна мивка"},
			Description:  models.Translation{EN: "Polished, Irregular Shape", BG: "Полиран, Неправилна форма"},
			Material:     models.Translation{EN: "River Stone", BG: "Речен камък"},
			Color:        models.Translation{EN: "Dark Grey/Grey", BG: "Тъмно сиво/Сиво"},
			Mounting:     topMount,
			Manufacture:  handMade,
			Tag:          models.Translation{EN: "Polished", BG: "Полиран"},
			Dimensions:   "L: 40-60, W: 31-50, H: 15",
			Weight:       "18-30 kg",
			Category:     models.CategoryRiverStone,
			Subcategory:  "polished",
			Image:        "/assets/products/c102.jpg",
			Slug:         "polished-river-stone-sink",
			DateAdded:    "2024-01-18",
			PriceEur:     194,
			PriceBgn:     380,
			SalesCount:   31,
			StockQuantity: 2,
			IsActive:     true,
		},
		{
			SerialNumber: "d201",
			Model:        models.Translation{EN: "Type 2.1", BG: "Вид 2.1"},
			Title:        models.Translation{EN: "Fossil Sink d201", BG: "Фосилна мивка d201"},
			Description:  models.Translation{EN: "Unique handcrafted fossil stone sink", BG: "Уникална ръчно изработена фосилен камък мивка"},
			Material:     models.Translation{EN: "Fossil Stone", BG: "Фосилен камък"},
			Color:        models.Translation{EN: "Cream", BG: "Кремав"},
			Mounting:     topMount,
			Manufacture:  handMade,
			Tag:          models.Translation{EN: "Natural", BG: "Естествен"},
			Dimensions:   "L: 40-60, W: 31-50, H: 15",
			Weight:       "25 kg",
			Category:     models.CategoryFossil,
			Subcategory:  "natural",
			Image:        "/assets/products/d201.jpg",
			Slug:         "fossil-sink-d201",
			DateAdded:    "2024-02-02",
			PriceEur:     180,
			PriceBgn:     350,
			SalesCount:   12,
			StockQuantity: 1,
			IsActive:     true,
		},
		{
			SerialNumber: "g301",
			Model:        models.Translation{EN: "Type 3.1", BG: "Вид 3.1"},
			Title:        models.Translation{EN: "Marble Sink g301", BG: "Мраморна мивка g301"},
			Description:  models.Translation{EN: "Unique handcrafted marble sink", BG: "Уникална ръчно изработена мрамор мивка"},
			Material:     models.Translation{EN: "Marble", BG: "Мрамор"},
			Color:        models.Translation{EN: "White/Grey", BG: "Бяло/Сиво"},
			Mounting:     topMount,
			Manufacture:  handMade,
			Tag:          models.Translation{EN: "Natural", BG: "Естествен"},
			Dimensions:   "Ø: 40, H: 15",
			Weight:       "20 kg",
			Category:     models.CategoryMarble,
			Subcategory:  "natural",
			Image:        "/assets/products/g301.jpg",
			Slug:         "marble-sink-g301",
			DateAdded:    "2024-02-10",
			PriceEur:     180,
			PriceBgn:     350,
			SalesCount:   7,
			StockQuantity: 2,
			IsActive:     true,
		},
		{
			SerialNumber: "j401",
			Model:        models.Translation{EN: "Type 4.1", BG: "Вид 4.1"},
			Title:        models.Translation{EN: "Onyx Sink j401", BG: "Ониксова мивка j401"},
			Description:  models.Translation{EN: "Unique handcrafted onyx sink", BG: "Уникална ръчно изработена оникс мивка"},
			Material:     models.Translation{EN: "Onyx", BG: "Оникс"},
			Color:        models.Translation{EN: "Amber", BG: "Кехлибарен"},
			Mounting:     topMount,
			Manufacture:  handMade,
			Tag:          models.Translation{EN: "Polished", BG: "Полиран"},
			Dimensions:   "Ø: 40, H: 90",
			Weight:       "25 kg",
			Category:     models.CategoryOnyx,
			Subcategory:  "polished",
			Image:        "/assets/products/j401.jpg",
			Slug:         "onyx-sink-j401",
			DateAdded:    "2024-03-01",
			PriceEur:     180,
			PriceBgn:     350,
			SalesCount:   19,
			StockQuantity: 1,
			IsActive:     true,
		},
	}
}

// SeedAdmin creates the default admin account in mock data mode so the
// admin panel is usable without a registration flow.
func SeedAdmin(s Store) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash seed admin password: %v", err)
		return
	}
	admin := models.User{
		Email:     "admin@sinkshop.bg",
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "User",
		Role:      models.RoleAdmin,
	}
	if err := s.CreateUser(&admin); err != nil {
		log.Printf("❌ Failed to seed admin user: %v", err)
	}
}
