// internal/domain/product/seed.go
package product

const imageBase = "/assets/images"

// Seed returns the fixed initial product catalog, used when no snapshot
// exists or the persisted snapshot cannot be decoded
func Seed() []Product {
	return []Product{
		{ID: 1, Name: "Simply Orange Pulp-Free Juice - 52 fl OZ", Price: 499.90, OldPrice: 800, Rating: 4, Reviews: 25, Image: imageBase + "/orange.svg", Category: "beverages", Color: "orange"},
		{ID: 2, Name: "Lay's Classic Potato Snack Chips, Party Size! 13 oz Bag", Price: 1190.90, Rating: 4, Reviews: 40, Image: imageBase + "/layes.svg", Category: "snacks", Color: "lime"},
		{ID: 3, Name: "Oscar Mayer Ham & Swiss Melt Scrambles - Jar", Price: 1599.00, Rating: 5, Reviews: 8, Image: imageBase + "/scarmblar.svg", Category: "food", Color: "pink"},
		{ID: 4, Name: "Large Garden Spinach & Herb Wrap Tortillas - 15oz, 6ct", Price: 10.00, Rating: 4, Reviews: 0, Image: imageBase + "/trotaills.svg", Category: "food", Color: "mint"},
		{ID: 5, Name: "Great Value Rising Crust Pizza, Supreme", Price: 30.00, Rating: 4, Reviews: 5, Image: imageBase + "/pizza.svg", Category: "food", Color: "green"},
		{ID: 6, Name: "Real Plant Powered Protein Shake - Double Chocolate", Price: 25.00, Rating: 4, Reviews: 8, Image: imageBase + "/protein.svg", Category: "beverages", Color: "blue"},
	}
}
