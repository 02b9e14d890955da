package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

// CheckSerial reports whether a serial number is already taken.
// GET /api/products/check-serial/:serialNumber
func CheckSerial(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		serial := c.Param("serialNumber")

		_, err := s.GetProductBySerial(serial)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check serial number"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"exists": err == nil, "serialNumber": serial})
	}
}
