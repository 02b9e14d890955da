package productControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaloyan-drinchev/sink-shop/models"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

// CreateProduct creates a product from the admin form (multipart, image
// required). Admin only.
// POST /api/products
func CreateProduct(s store.Store, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := parseProductForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := s.GetProductBySerial(form.SerialNumber); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Serial number already exists"})
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check serial number"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product image is required"})
			return
		}
		imageURL, err := saveImage(c, file, uploadDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Image:     imageURL,
			DateAdded: time.Now().Format("2006-01-02"),
			IsActive:  true,
		}
		form.apply(&product)

		if err := s.CreateProduct(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
