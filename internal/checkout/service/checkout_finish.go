package service

import (
	"context"
	"fmt"

	d "github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/domain"
)

// Finish is the terminal transition: it clears the shopper's cart, discards
// the checkout session and hands the completed order back to the caller. It
// is only legal from the confirmation step.
func (s *CheckoutService) Finish(ctx context.Context, sessionID string) (*d.Order, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrNoActiveCheckout
	}

	if !session.Step.IsTerminal() {
		return nil, ErrIllegalTransition
	}

	if err := s.cart.ClearCart(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.sessions.Delete(sessionID)
	return session.Order, nil
}
