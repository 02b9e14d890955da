package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog categories. Subcategories (natural, withTabHole, polished) are
// free-form strings derived from serial prefixes, see store.GenerateFromImages.
const (
	CategoryRiverStone = "riverStone"
	CategoryFossil     = "fossil"
	CategoryMarble     = "marble"
	CategoryOnyx       = "onyx"
)

type Product struct {
	ID           string      `gorm:"type:uuid;primaryKey" json:"id"`
	SerialNumber string      `gorm:"uniqueIndex;not null" json:"serialNumber"`
	Model        Translation `gorm:"type:jsonb" json:"model"` // Type 1.1, Type 2.1, ...
	Title        Translation `gorm:"type:jsonb" json:"title"`
	Description  Translation `gorm:"type:jsonb" json:"description"`
	Material     Translation `gorm:"type:jsonb" json:"material"` // River Stone, Marble, Onyx, Fossil
	Color        Translation `gorm:"type:jsonb" json:"color"`
	Mounting     Translation `gorm:"type:jsonb" json:"mounting"` // Top mount, Floor mount, Flush mount
	Manufacture  Translation `gorm:"type:jsonb" json:"manufacture"`
	Tag          Translation `gorm:"type:jsonb" json:"tag"`
	Dimensions   string      `json:"dimensions"` // L: 40-60, W: 31-50, H: 15
	Weight       string      `json:"weight"`     // 18-30 kg
	Category     string      `gorm:"index;not null" json:"category"`
	Subcategory  string      `json:"subcategory,omitempty"`
	Image        string      `json:"image"`
	Slug         string      `gorm:"index" json:"slug"`
	DateAdded    string      `json:"dateAdded"`

	// EUR and BGN are independently authoritative, never derived from an
	// exchange rate.
	PriceEur float64 `gorm:"not null" json:"priceEur"`
	PriceBgn float64 `gorm:"not null" json:"priceBgn"`

	SalesCount    int  `gorm:"default:0" json:"salesCount"`
	StockQuantity int  `gorm:"default:1" json:"stockQuantity"`
	IsActive      bool `gorm:"default:true" json:"isActive"`
	IsFeatured    bool `gorm:"default:false" json:"isFeatured"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
