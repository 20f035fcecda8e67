// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinstore/admin-backend/internal/domain/order"
	"github.com/jinstore/admin-backend/internal/domain/selection"
	"github.com/jinstore/admin-backend/internal/interfaces/http/middleware"
	"github.com/jinstore/admin-backend/internal/pkg/i18n"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	store      *order.Store
	selections *selection.Manager
	translator *i18n.Translator
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(store *order.Store, selections *selection.Manager, translator *i18n.Translator) *OrderHandler {
	return &OrderHandler{
		store:      store,
		selections: selections,
		translator: translator,
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req order.ListRequest

	// Bind query parameters
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	result := order.List(h.store.All(), req)

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    result,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, found := h.store.Get(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": h.translator.T(middleware.GetLanguage(c), "orders.notFound"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// UpdateOrder handles PATCH /orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var patch order.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// Field-level validation blocks the save entirely; there is no
	// partial save
	if errs := patch.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": h.localizeOrderErrors(c, errs),
		})
		return
	}

	updated, found := h.store.Update(c.Param("id"), patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": h.translator.T(middleware.GetLanguage(c), "orders.notFound"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "orders.updated"),
		"data":    updated,
	})
}

// DeleteOrder handles DELETE /orders/:id. Deletion is idempotent, so an
// unknown id still answers 200.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	h.store.Delete(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "orders.deleted"),
	})
}

// BulkDeleteOrders handles POST /orders/bulk-delete: it deletes every
// order in the session's selection set, then clears the selection
func (h *OrderHandler) BulkDeleteOrders(c *gin.Context) {
	tracker := h.selections.ForSession(getOrCreateSessionID(c))

	ids := tracker.IDs()
	for _, id := range ids {
		h.store.Delete(id)
	}
	tracker.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "orders.deleted"),
		"data":    gin.H{"deleted": ids},
	})
}

// localizeOrderErrors maps validation field errors onto the order
// translation keys
func (h *OrderHandler) localizeOrderErrors(c *gin.Context, errs map[string]string) map[string]string {
	lang := middleware.GetLanguage(c)
	keys := map[string]string{
		"name":   "orders.errors.nameRequired",
		"date":   "orders.errors.dateRequired",
		"total":  "orders.errors.totalRequired",
		"status": "orders.errors.statusRequired",
	}

	out := make(map[string]string, len(errs))
	for field, msg := range errs {
		if key, ok := keys[field]; ok {
			out[field] = h.translator.T(lang, key)
		} else {
			out[field] = msg
		}
	}
	return out
}
