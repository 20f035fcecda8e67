// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jinstore/admin-backend/internal/domain/cart"
	"github.com/jinstore/admin-backend/internal/domain/checkout"
	"github.com/jinstore/admin-backend/internal/domain/order"
	"github.com/jinstore/admin-backend/internal/domain/product"
	"github.com/jinstore/admin-backend/internal/domain/selection"
	"github.com/jinstore/admin-backend/internal/interfaces/http/handlers"
	"github.com/jinstore/admin-backend/internal/pkg/i18n"
)

// Dependencies bundles the stores and services the route handlers work
// against. Stores are constructed once at startup and passed down
// explicitly; nothing is reachable through globals.
type Dependencies struct {
	Translator *i18n.Translator
	Orders     *order.Store
	Products   *product.Store
	Cart       *cart.Store
	Checkout   *checkout.Service
	Selections *selection.Manager
}

// SetupRoutes wires all route groups under the given router group
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	SetupOrderRoutes(rg, deps)
	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupSelectionRoutes(rg, deps)
}

// SetupOrderRoutes sets up order related routes
func SetupOrderRoutes(rg *gin.RouterGroup, deps Dependencies) {
	orderHandler := handlers.NewOrderHandler(deps.Orders, deps.Selections, deps.Translator)

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.POST("/bulk-delete", orderHandler.BulkDeleteOrders)
	}
}

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, deps Dependencies) {
	productHandler := handlers.NewProductHandler(deps.Products, deps.Translator)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", productHandler.CreateProduct)
		products.PATCH("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}
}

// SetupCartRoutes sets up cart and checkout related routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Cart, deps.Translator)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout, deps.Translator)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	rg.POST("/checkout", checkoutHandler.PlaceOrder)
}

// SetupSelectionRoutes sets up the bulk-selection routes
func SetupSelectionRoutes(rg *gin.RouterGroup, deps Dependencies) {
	selectionHandler := handlers.NewSelectionHandler(deps.Selections)

	sel := rg.Group("/selection")
	{
		sel.GET("", selectionHandler.GetSelection)
		sel.POST("/toggle", selectionHandler.Toggle)
		sel.POST("/all", selectionHandler.SelectAll)
		sel.DELETE("", selectionHandler.ClearSelection)
	}
}
