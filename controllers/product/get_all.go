package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaloyan-drinchev/sink-shop/models"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

// GetProducts returns the active catalog, optionally filtered by category.
// With ?lang=en|bg every bilingual field is flattened to that language.
// GET /api/products?category=riverStone&lang=bg
func GetProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")

		var (
			products []models.Product
			err      error
		)
		if category != "" {
			products, err = s.ListProductsByCategory(category)
		} else {
			products, err = s.ListProducts()
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if lang := c.Query("lang"); lang != "" {
			localized := make([]models.LocalizedProduct, 0, len(products))
			for _, p := range products {
				localized = append(localized, models.Localize(p, lang))
			}
			c.JSON(http.StatusOK, localized)
			return
		}

		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}
