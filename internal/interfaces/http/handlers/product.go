// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinstore/admin-backend/internal/domain/product"
	"github.com/jinstore/admin-backend/internal/interfaces/http/middleware"
	"github.com/jinstore/admin-backend/internal/pkg/i18n"
)

// Default sidebar price range, matching the filter sidebar's slider bounds
const (
	defaultPriceMin = 1
	defaultPriceMax = 2000
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	store      *product.Store
	translator *i18n.Translator
}

// NewProductHandler creates a new product handler
func NewProductHandler(store *product.Store, translator *i18n.Translator) *ProductHandler {
	return &ProductHandler{
		store:      store,
		translator: translator,
	}
}

// productListQuery binds the toolbar and sidebar filter parameters. The
// sidebar filter set only participates when at least one sidebar
// parameter is present.
type productListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category,default=all"`
	Sort     string `form:"sort,default=default"`
	Page     int    `form:"page,default=1"`
	PerPage  int    `form:"per_page,default=10"`

	Keyword    string   `form:"keyword"`
	Categories []string `form:"categories"`
	Colors     []string `form:"colors"`
	PriceMin   *float64 `form:"price_min"`
	PriceMax   *float64 `form:"price_max"`
}

func (q *productListQuery) toListRequest() product.ListRequest {
	req := product.ListRequest{
		Search:   q.Search,
		Category: q.Category,
		Sort:     q.Sort,
		Page:     q.Page,
		PerPage:  q.PerPage,
	}

	if q.Keyword != "" || len(q.Categories) > 0 || len(q.Colors) > 0 || q.PriceMin != nil || q.PriceMax != nil {
		sidebar := &product.SidebarFilters{
			Keyword:    q.Keyword,
			Categories: q.Categories,
			Colors:     q.Colors,
			PriceRange: [2]float64{defaultPriceMin, defaultPriceMax},
		}
		if q.PriceMin != nil {
			sidebar.PriceRange[0] = *q.PriceMin
		}
		if q.PriceMax != nil {
			sidebar.PriceRange[1] = *q.PriceMax
		}
		req.Sidebar = sidebar
	}

	return req
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var query productListQuery

	// Bind query parameters
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	result := product.List(h.store.All(), query.toListRequest())

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    result,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	p, found := h.store.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": h.translator.T(middleware.GetLanguage(c), "products.notFound"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    p,
	})
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var draft product.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if errs := draft.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": h.localizeProductErrors(c, errs),
		})
		return
	}

	created := h.store.Add(c.Request.Context(), draft)

	c.JSON(http.StatusCreated, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "products.created"),
		"data":    created,
	})
}

// UpdateProduct handles PATCH /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var patch product.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if errs := patch.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": h.localizeProductErrors(c, errs),
		})
		return
	}

	updated, found := h.store.Update(c.Request.Context(), id, patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": h.translator.T(middleware.GetLanguage(c), "products.notFound"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "products.updated"),
		"data":    updated,
	})
}

// DeleteProduct handles DELETE /products/:id. Deletion is idempotent.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	h.store.Delete(c.Request.Context(), id)

	c.JSON(http.StatusOK, gin.H{
		"message": h.translator.T(middleware.GetLanguage(c), "products.deleted"),
	})
}

// localizeProductErrors maps validation field errors onto the product
// translation keys
func (h *ProductHandler) localizeProductErrors(c *gin.Context, errs map[string]string) map[string]string {
	lang := middleware.GetLanguage(c)
	keys := map[string]string{
		"name":     "validation.nameRequired",
		"price":    "validation.priceRequired",
		"category": "validation.categoryRequired",
		"color":    "validation.colorRequired",
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
