// internal/domain/product/entity.go
package product

// Product represents a catalog product. JSON field names follow the
// snapshot format persisted under the products storage key.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	OldPrice float64 `json:"oldPrice,omitempty"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Color    string  `json:"color,omitempty"`
}

// Draft is a product without an id, as supplied to Add. The store assigns
// the id and fills default rating/reviews.
type Draft struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	OldPrice float64 `json:"oldPrice"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
}

// Validate checks the draft field-by-field and returns a map of field
// name to message for every violation
func (d *Draft) Validate() map[string]string {
	errs := make(map[string]string)

	if d.Name == "" {
		errs["name"] = "Product name is required"
	}
	if d.Price <= 0 {
		errs["price"] = "Valid price is required"
	}
	if d.Category == "" {
		errs["category"] = "Category is required"
	}
	if d.Color == "" {
		errs["color"] = "Color is required"
	}

	return errs
}

// Patch carries a partial product update. Nil fields are left untouched.
type Patch struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	OldPrice *float64 `json:"oldPrice"`
	Rating   *float64 `json:"rating"`
	Reviews  *int     `json:"reviews"`
	Image    *string  `json:"image"`
	Category *string  `json:"category"`
	Color    *string  `json:"color"`
}

// Validate checks the patch field-by-field
func (p *Patch) Validate() map[string]string {
	errs := make(map[string]string)

	if p.Name != nil && *p.Name == "" {
		errs["name"] = "Product name is required"
	}
	if p.Price != nil && *p.Price <= 0 {
		errs["price"] = "Valid price is required"
	}
	if p.Category != nil && *p.Category == "" {
		errs["category"] = "Category is required"
	}
	if p.Color != nil && *p.Color == "" {
		errs["color"] = "Color is required"
	}

	return errs
}

// apply merges the patch into p
func (patch *Patch) apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OldPrice != nil {
		p.OldPrice = *patch.OldPrice
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		p.Reviews = *patch.Reviews
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
}
