// internal/domain/order/query.go
package order

import (
	"sort"
	"strings"
)

// Sort keys accepted by the order list
const (
	SortByDate  = "date"
	SortByTotal = "total"
	SortByName  = "name"
)

// StatusAll disables the status filter
const StatusAll = "all"

// ListRequest represents order list query parameters
type ListRequest struct {
	Status  string `form:"status,default=all"`
	SortBy  string `form:"sort_by,default=date"`
	Search  string `form:"search"`
	Page    int    `form:"page,default=1"`
	PerPage int    `form:"per_page,default=10"`
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

// ListResult represents one page of orders plus pagination
type ListResult struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// List derives one page of orders from the full collection. It is a pure
// function of its inputs: filter by status and search term, stable-sort
// the filtered set, then slice out the requested page.
func List(orders []Order, req ListRequest) ListResult {
	if req.Status == "" {
		req.Status = StatusAll
	}
	if req.SortBy == "" {
		req.SortBy = SortByDate
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}

	filtered := filter(orders, req.Status, req.Search)
	sortOrders(filtered, req.SortBy)

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
		Orders: filtered[start:end],
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

// filter keeps orders matching the status filter and the free-text search
// term. Search matches case-insensitively against name or id.
func filter(orders []Order, status, search string) []Order {
	search = strings.ToLower(search)

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if status != StatusAll && string(o.Status) != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.Name), search) &&
			!strings.Contains(strings.ToLower(o.ID), search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// sortOrders sorts in place: total descending, name ascending, or the
// default date descending
func sortOrders(orders []Order, sortBy string) {
	switch sortBy {
	case SortByTotal:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].Total > orders[j].Total
		})
	case SortByName:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].Name < orders[j].Name
		})
	default:
		sort.SliceStable(orders, func(i, j int) bool {
			return parseDate(orders[i].Date).After(parseDate(orders[j].Date))
		})
	}
}
