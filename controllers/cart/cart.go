package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaloyan-drinchev/sink-shop/middleware"
	"github.com/kaloyan-drinchev/sink-shop/models"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

type CartItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	// Pointer so a literal 0 (remove the line) passes "required".
	Quantity *int `json:"quantity" binding:"required,min=0"`
}

// populatedItem is a cart line joined with its product for display.
type populatedItem struct {
	models.CartItem
	Product *models.Product `json:"product"`
}

// GET /api/cart
func GetCart(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := s.CartItems(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		populated := make([]populatedItem, 0, len(items))
		for _, item := range items {
			product, err := s.GetProduct(item.ProductID)
			if err != nil {
				// Product removed since it was added; show the line without it.
				product = nil
			}
			populated = append(populated, populatedItem{CartItem: item, Product: product})
		}
		c.JSON(http.StatusOK, populated)
	}
}

// POST /api/cart
func AddToCart(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, err := s.GetProduct(input.ProductID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		item, err := s.UpsertCartItem(userID, input.ProductID, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /api/cart/:id — quantity 0 removes the line.
func UpdateCartItem(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if *input.Quantity == 0 {
			if err := s.RemoveCartItem(id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				}
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
			return
		}

		item, err := s.UpdateCartItem(id, *input.Quantity)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:id
func RemoveCartItem(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := s.RemoveCartItem(id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /api/cart
func ClearCart(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := s.ClearCart(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
