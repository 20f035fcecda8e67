// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinstore/admin-backend/internal/domain/cart"
	"github.com/jinstore/admin-backend/internal/interfaces/http/middleware"
	"github.com/jinstore/admin-backend/internal/pkg/i18n"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	store      *cart.Store
	translator *i18n.Translator
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store *cart.Store, translator *i18n.Translator) *CartHandler {
	return &CartHandler{
		store:      store,
		translator: translator,
	}
}

// cartResponse represents the cart with its derived totals
type cartResponse struct {
	Items  []cart.Item `json:"items"`
	Totals cart.Totals `json:"totals"`
}

// updateQuantityRequest represents a quantity update. Zero is allowed and
// removes the line.
type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": cartResponse{
			Items:  h.store.Items(),
			Totals: h.store.Totals(),
		},
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req cart.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.store.AddToCart(c.Request.Context(), req)

	c.JSON(http.StatusOK, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "cart.added"),
		"data": cartResponse{
			Items:  h.store.Items(),
			Totals: h.store.Totals(),
		},
	})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart item ID",
		})
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.store.UpdateQuantity(c.Request.Context(), id, *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"data": cartResponse{
			Items:  h.store.Items(),
			Totals: h.store.Totals(),
		},
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart item ID",
		})
		return
	}

	h.store.RemoveFromCart(c.Request.Context(), id)

	c.JSON(http.StatusOK, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "cart.removed"),
		"data": cartResponse{
			Items:  h.store.Items(),
			Totals: h.store.Totals(),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.store.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "cart.cleared"),
	})
}
