// internal/domain/product/query.go
package product

import (
	"sort"
	"strings"
)

// Sort keys accepted by the product list
const (
	SortDefault   = "default"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// CategoryAll disables the toolbar category filter
const CategoryAll = "all"

// SidebarFilters is the optional sidebar filter set. A nil *SidebarFilters
// means the sidebar has not been applied at all.
type SidebarFilters struct {
	Keyword    string     `json:"keyword"`
	Categories []string   `json:"categories"`
	PriceRange [2]float64 `json:"price_range"`
	Colors     []string   `json:"colors"`
}

// ListRequest represents product list query parameters: the top search
// box, the toolbar filter and the optional sidebar filter set
type ListRequest struct {
	Search   string
	Category string
	Sort     string
	Page     int
	PerPage  int
	Sidebar  *SidebarFilters
}

// Pagination represents pagination information
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ListResult represents one page of products plus pagination
type ListResult struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// List derives one page of products from the catalog: merge the search
// term, toolbar filter and sidebar filter set, stable-sort, then slice
// out the requested page. The default sort is a pass-through that keeps
// catalog order.
func List(products []Product, req ListRequest) ListResult {
	if req.Category == "" {
		req.Category = CategoryAll
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, req) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, req.Sort)

	total := len(filtered)
	totalPages := (total + req.PerPage - 1) / req.PerPage

	start := (req.Page - 1) * req.PerPage
	end := start + req.PerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return ListResult{
		Products: filtered[start:end],
		Pagination: Pagination{
			Page:       req.Page,
			PerPage:    req.PerPage,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1 && total > 0,
		},
	}
}

func matches(p Product, req ListRequest) bool {
	if term := strings.TrimSpace(req.Search); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			return false
		}
	}

	if req.Category != CategoryAll && p.Category != req.Category {
		return false
	}

	if req.Sidebar != nil {
		return matchesSidebar(p, req.Sidebar)
	}
	return true
}

func matchesSidebar(p Product, f *SidebarFilters) bool {
	if keyword := strings.TrimSpace(f.Keyword); keyword != "" {
		if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(keyword)) {
			return false
		}
	}

	if len(f.Categories) > 0 && !contains(f.Categories, CategoryAll) {
		if !contains(f.Categories, p.Category) {
			return false
		}
	}

	// Price bounds are inclusive
	if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
		return false
	}

	// An empty color list disables the color check; a product without a
	// color fails a non-empty one
	if len(f.Colors) > 0 {
		if p.Color == "" || !contains(f.Colors, p.Color) {
			return false
		}
	}

	return true
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, sortKey string) {
	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}
