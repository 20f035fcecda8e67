// internal/domain/cart/entity.go
package cart

// DefaultImage is the placeholder shown for items added without an image
const DefaultImage = "/assets/images/scarmblar.svg"

// Item represents a cart line. There is at most one Item per product id
// and quantity is always >= 1; an update that would drop quantity to 0
// removes the line instead.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Totals represents derived cart totals, recomputed on every read
type Totals struct {
	ItemCount  int     `json:"item_count"`  // Sum of all quantities
	TotalPrice float64 `json:"total_price"` // Sum of price * quantity
}

// seed returns the fixed default cart used when no snapshot exists or the
// persisted snapshot cannot be decoded
func seed() []Item {
	return []Item{
		{ID: 3, Name: "Oscar Mayer Ham & Swiss Melt", Price: 1599.00, Quantity: 2, Image: DefaultImage},
	}
}
