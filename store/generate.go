package store

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/kaloyan-drinchev/sink-shop/models"
)

// The serial number's first letter encodes category and subcategory.
var serialPrefixes = map[byte]struct{ category, subcategory string }{
	'b': {models.CategoryRiverStone, "natural"},
	'c': {models.CategoryRiverStone, "polished"},
	'a': {models.CategoryRiverStone, "withTabHole"},
	'd': {models.CategoryFossil, "natural"},
	'e': {models.CategoryFossil, "withTabHole"},
	'f': {models.CategoryFossil, "polished"},
	'g': {models.CategoryMarble, "natural"},
	'h': {models.CategoryMarble, "withTabHole"},
	'i': {models.CategoryMarble, "polished"},
	'j': {models.CategoryOnyx, "natural"},
	'k': {models.CategoryOnyx, "withTabHole"},
	'l': {models.CategoryOnyx, "polished"},
}

// CategoryFromSerial maps a serial number to its category and subcategory.
// Unknown prefixes return empty strings and the file is skipped.
func CategoryFromSerial(serial string) (category, subcategory string) {
	if serial == "" {
		return "", ""
	}
	if m, ok := serialPrefixes[strings.ToLower(serial)[0]]; ok {
		return m.category, m.subcategory
	}
	return "", ""
}

// PriceForSubcategory returns the fixed price pair for a category and
// subcategory. River stone sinks are tiered; everything else shares one
// price point.
func PriceForSubcategory(category, subcategory string) (priceEur, priceBgn float64) {
	if category == models.CategoryRiverStone {
		switch subcategory {
		case "natural":
			return 143, 280
		case "withTabHole":
			return 153, 300
		case "polished":
			return 194, 380
		}
	}
	return 180, 350
}

// GenerateFromImages builds a product per .jpg in dir, deriving category,
// subcategory and price from the filename (which is the serial number).
func GenerateFromImages(dir string) ([]models.Product, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jpg") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	var products []models.Product
	for i, file := range files {
		serial := strings.TrimSuffix(file, ".jpg")
		category, subcategory := CategoryFromSerial(serial)
		if category == "" {
			continue
		}
		priceEur, priceBgn := PriceForSubcategory(category, subcategory)

		products = append(products, models.Product{
			SerialNumber: serial,
			Model: models.Translation{
				EN: fmt.Sprintf("Type %d", i+1),
				BG: fmt.Sprintf("Вид %d", i+1),
			},
			Title: models.Translation{
				EN: fmt.Sprintf("%s Sink %s", categoryTitle(category, "en"), serial),
				BG: fmt.Sprintf("%s мивка %s", categoryTitle(category, "bg"), serial),
			},
			Description: models.Translation{
				EN: fmt.Sprintf("Unique handcrafted %s sink", materialName(category, "en")),
				BG: fmt.Sprintf("Уникална ръчно изработена %s мивка", materialName(category, "bg")),
			},
			Material: models.Translation{
				EN: materialTitle(category),
				BG: materialName(category, "bg"),
			},
			Color:       models.Translation{EN: "Natural Stone Color", BG: "Естествен цвят на камъка"},
			Mounting:    models.Translation{EN: "Top mount", BG: "Горен монтаж"},
			Manufacture: models.Translation{EN: "hand-made", BG: "ръчен труд"},
			Tag:         subcategoryTag(subcategory),
			Dimensions:  "L: 40-60, W: 31-50, H: 15",
			Weight:      "18-30 kg",
			Category:    category,
			Subcategory: subcategory,
			Image:       "/assets/products/" + file,
			DateAdded:   time.Now().Format("2006-01-02"),
			PriceEur:    priceEur,
			PriceBgn:    priceBgn,
			StockQuantity: 1,
			IsActive:    true,
		})
	}
	return products, nil
}

func categoryTitle(category, lang string) string {
	titles := map[string]models.Translation{
		models.CategoryRiverStone: {EN: "River Stone", BG: "Речна каменна"},
		models.CategoryFossil:     {EN: "Fossil", BG: "Фосилна"},
		models.CategoryMarble:     {EN: "Marble", BG: "Мраморна"},
		models.CategoryOnyx:       {EN: "Onyx", BG: "Ониксова"},
	}
	return titles[category].Resolve(lang)
}

func materialName(category, lang string) string {
	names := map[string]models.Translation{
		models.CategoryRiverStone: {EN: "river stone", BG: "речен камък"},
		models.CategoryFossil:     {EN: "fossil stone", BG: "фосилен камък"},
		models.CategoryMarble:     {EN: "marble", BG: "мрамор"},
		models.CategoryOnyx:       {EN: "onyx", BG: "оникс"},
	}
	return names[category].Resolve(lang)
}

func materialTitle(category string) string {
	switch category {
	case models.CategoryRiverStone:
		return "River Stone"
	case models.CategoryFossil:
		return "Fossil Stone"
	case models.CategoryMarble:
		return "Marble"
	case models.CategoryOnyx:
		return "Onyx"
	}
	return "Stone"
}

func subcategoryTag(subcategory string) models.Translation {
	tags := map[string]models.Translation{
		"natural":     {EN: "Natural", BG: "Естествен"},
		"withTabHole": {EN: "With tab hole", BG: "С отвор за кран"},
		"polished":    {EN: "Polished", BG: "Полиран"},
	}
	if t, ok := tags[subcategory]; ok {
		return t
	}
	return models.Translation{EN: subcategory, BG: subcategory}
}
