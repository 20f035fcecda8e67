// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinstore/admin-backend/internal/domain/checkout"
	"github.com/jinstore/admin-backend/internal/interfaces/http/middleware"
	"github.com/jinstore/admin-backend/internal/pkg/i18n"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	service    *checkout.Service
	translator *i18n.Translator
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(service *checkout.Service, translator *i18n.Translator) *CheckoutHandler {
	return &CheckoutHandler{
		service:    service,
		translator: translator,
	}
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	confirmation, err := h.service.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": h.translator.T(middleware.GetLanguage(c), "checkout.emptyCart"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "checkout.placed"),
		"data":    confirmation,
	})
}
