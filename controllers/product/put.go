package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

// UpdateProduct replaces a product's editable fields; a new image is
// optional. Admin only.
// PUT /api/products/:id
func UpdateProduct(s store.Store, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		product, err := s.GetProduct(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		form, err := parseProductForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Serial numbers stay unique across the catalog.
		if form.SerialNumber != product.SerialNumber {
			if _, err := s.GetProductBySerial(form.SerialNumber); err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Serial number already exists"})
				return
			} else if !errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check serial number"})
				return
			}
		}

		form.apply(product)

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveImage(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			product.Image = imageURL
		}

		if isActive := c.PostForm("isActive"); isActive != "" {
			product.IsActive = isActive == "true"
		}

		if err := s.UpdateProduct(product); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
