package service

import (
	"context"
	"time"

	cartdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/domain"
	d "github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/domain"
	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/store"
	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/order"
)

// CartAccess is the slice of the cart service the checkout flow needs: the
// current contents for the amount snapshot, and clearing on finish.
type CartAccess interface {
	GetCart(ctx context.Context, sessionID string) (*cartdomain.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type CheckoutService struct {
	sessions store.SessionStore
	cart     CartAccess
	ids      order.IDGenerator
}

func NewCheckoutService(sessions store.SessionStore, cart CartAccess, ids order.IDGenerator) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		cart:     cart,
		ids:      ids,
	}
}

// Begin starts a checkout for the shopper session, or returns the one already
// in progress. A checkout cannot start on an empty cart.
func (s *CheckoutService) Begin(ctx context.Context, sessionID string) (*d.Session, error) {
	existing, err := s.sessions.Get(sessionID)
	if err == nil {
		return existing, nil
	}

	cart, err := s.cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	session := &d.Session{
		SessionID: sessionID,
		Step:      d.StepBilling,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions.Put(session)

	return session, nil
}

// Current returns the in-progress checkout session.
func (s *CheckoutService) Current(ctx context.Context, sessionID string) (*d.Session, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrNoActiveCheckout
	}
	return session, nil
}

// Abandon discards an in-progress checkout. The cart is untouched; only the
// terminal finish transition clears it. Abandoning when no checkout is in
// progress is a no-op.
func (s *CheckoutService) Abandon(ctx context.Context, sessionID string) error {
	s.sessions.Delete(sessionID)
	return nil
}
