// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinstore/admin-backend/internal/domain/cart"
)

// Service handles the checkout flow. There is no payment processing:
// placing an order validates the cart, issues a confirmation number and
// empties the cart.
type Service struct {
	cartStore *cart.Store
}

// NewService creates a new checkout service
func NewService(cartStore *cart.Store) *Service {
	return &Service{cartStore: cartStore}
}

// PlaceOrderRequest represents the checkout contact details
type PlaceOrderRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
}

// Confirmation represents a completed checkout
type Confirmation struct {
	ConfirmationNumber string      `json:"confirmation_number"`
	Items              []cart.Item `json:"items"`
	Totals             cart.Totals `json:"totals"`
}

// PlaceOrder validates the cart is non-empty, captures its contents and
// clears it
func (s *Service) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*Confirmation, error) {
	items := s.cartStore.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	confirmation := &Confirmation{
		ConfirmationNumber: strings.ToUpper(uuid.New().String()[:8]),
		Items:              items,
		Totals:             s.cartStore.Totals(),
	}

	s.cartStore.Clear(ctx)
	return confirmation, nil
}
