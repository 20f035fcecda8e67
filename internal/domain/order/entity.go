// internal/domain/order/entity.go
package order

import (
	"time"
)

// Status represents the order status
type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusCompleted  Status = "completed"
	StatusRefunded   Status = "refunded"
	StatusCancelled  Status = "cancelled"
)

// ValidStatuses lists every status an order may hold
var ValidStatuses = []Status{
	StatusProcessing,
	StatusShipped,
	StatusCompleted,
	StatusRefunded,
	StatusCancelled,
}

// IsValid reports whether s is a known order status
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Order represents an order row in the admin dashboard. IDs are stored
// bare ("3210"); the "#" prefix is display-only. Date is a free-text
// display date, not strictly parsed.
type Order struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Date   string  `json:"date"`
	Total  float64 `json:"total"`
	Status Status  `json:"status"`
}

// Patch carries a partial order update. Nil fields are left untouched.
type Patch struct {
	Name   *string  `json:"name"`
	Date   *string  `json:"date"`
	Total  *float64 `json:"total"`
	Status *Status  `json:"status"`
}

// Validate checks the patch field-by-field and returns a map of field
// name to message for every violation. Empty map means the patch is
// saveable.
func (p *Patch) Validate() map[string]string {
	errs := make(map[string]string)

	if p.Name != nil && *p.Name == "" {
		errs["name"] = "Name is required"
	}
	if p.Date != nil && *p.Date == "" {
		errs["date"] = "Date is required"
	}
	if p.Total != nil && *p.Total <= 0 {
		errs["total"] = "Total must be greater than 0"
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs["status"] = "Status is required"
	}

	return errs
}

// apply merges the patch into o
func (p *Patch) apply(o *Order) {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Date != nil {
		o.Date = *p.Date
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
}

// display date layouts seen in order data ("May 23, 2021", "March 5, 2021")
var dateLayouts = []string{"Jan 2, 2006", "January 2, 2006"}

// parseDate parses a display date. An unparseable date yields the zero
// time, which sorts last under the default descending date order.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
