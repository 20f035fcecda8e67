// internal/interfaces/http/handlers/selection.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinstore/admin-backend/internal/domain/selection"
)

// SelectionHandler handles the per-session order selection set used for
// bulk table actions
type SelectionHandler struct {
	selections *selection.Manager
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(selections *selection.Manager) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

// toggleRequest identifies the order being toggled
type toggleRequest struct {
	ID string `json:"id" binding:"required"`
}

// selectAllRequest carries the ids of the currently displayed page
type selectAllRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// GetSelection handles GET /selection
func (h *SelectionHandler) GetSelection(c *gin.Context) {
	tracker := h.selections.ForSession(getOrCreateSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Selection retrieved successfully",
		"data": gin.H{
			"ids":   tracker.IDs(),
			"count": tracker.Count(),
		},
	})
}

// Toggle handles POST /selection/toggle
func (h *SelectionHandler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	tracker := h.selections.ForSession(getOrCreateSessionID(c))
	tracker.Toggle(req.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Selection updated successfully",
		"data": gin.H{
			"ids":   tracker.IDs(),
			"count": tracker.Count(),
		},
	})
}

// SelectAll handles POST /selection/all. Select-all is scoped to the ids
// of the page the client is looking at.
func (h *SelectionHandler) SelectAll(c *gin.Context) {
	var req selectAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	tracker := h.selections.ForSession(getOrCreateSessionID(c))
	tracker.SelectAll(req.IDs)

	c.JSON(http.StatusOK, gin.H{
		"message": "Selection updated successfully",
		"data": gin.H{
			"ids":   tracker.IDs(),
			"count": tracker.Count(),
		},
	})
}

// ClearSelection handles DELETE /selection
func (h *SelectionHandler) ClearSelection(c *gin.Context) {
	tracker := h.selections.ForSession(getOrCreateSessionID(c))
	tracker.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Selection cleared successfully",
	})
}
