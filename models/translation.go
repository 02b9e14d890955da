package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Translation is a bilingual value stored as a jsonb column.
type Translation struct {
	EN string `json:"en"`
	BG string `json:"bg"`
}

// Resolve returns the rendering for the requested language, falling back
// to English when the Bulgarian value is missing.
func (t Translation) Resolve(lang string) string {
	if lang == "bg" && t.BG != "" {
		return t.BG
	}
	return t.EN
}

func (t Translation) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *Translation) Scan(value interface{}) error {
	if value == nil {
		*t = Translation{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return errors.New("unsupported type for Translation")
	}
}

// LocalizedProduct is a Product with every bilingual field flattened to
// the requested language. This is what list/detail responses return when
// the client asks for a single language.
type LocalizedProduct struct {
	ID            string  `json:"id"`
	SerialNumber  string  `json:"serialNumber"`
	Model         string  `json:"model"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Material      string  `json:"material"`
	Color         string  `json:"color"`
	Mounting      string  `json:"mounting"`
	Manufacture   string  `json:"manufacture"`
	Tag           string  `json:"tag"`
	Dimensions    string  `json:"dimensions"`
	Weight        string  `json:"weight"`
	Category      string  `json:"category"`
	Subcategory   string  `json:"subcategory,omitempty"`
	Image         string  `json:"image"`
	Slug          string  `json:"slug"`
	PriceEur      float64 `json:"priceEur"`
	PriceBgn      float64 `json:"priceBgn"`
	SalesCount    int     `json:"salesCount"`
	StockQuantity int     `json:"stockQuantity"`
	IsActive      bool    `json:"isActive"`
	IsFeatured    bool    `json:"isFeatured"`
}

// Localize flattens all bilingual attributes of p to lang, with the EN
// fallback applied per field.
func Localize(p Product, lang string) LocalizedProduct {
	return LocalizedProduct{
		ID:            p.ID,
		SerialNumber:  p.SerialNumber,
		Model:         p.Model.Resolve(lang),
		Title:         p.Title.Resolve(lang),
		Description:   p.Description.Resolve(lang),
		Material:      p.Material.Resolve(lang),
		Color:         p.Color.Resolve(lang),
		Mounting:      p.Mounting.Resolve(lang),
		Manufacture:   p.Manufacture.Resolve(lang),
		Tag:           p.Tag.Resolve(lang),
		Dimensions:    p.Dimensions,
		Weight:        p.Weight,
		Category:      p.Category,
		Subcategory:   p.Subcategory,
		Image:         p.Image,
		Slug:          p.Slug,
		PriceEur:      p.PriceEur,
		PriceBgn:      p.PriceBgn,
		SalesCount:    p.SalesCount,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		IsFeatured:    p.IsFeatured,
	}
}
