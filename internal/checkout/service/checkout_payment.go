package service

import (
	"context"
	"time"

	d "github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/domain"
)

// SubmitPayment validates the selected payment variant and advances the flow
// to confirmation. The cart total at this instant is captured as the order's
// payable amount; the order id is best-effort random, not guaranteed unique.
func (s *CheckoutService) SubmitPayment(ctx context.Context, sessionID string, method d.PaymentMethod) (*d.Session, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrNoActiveCheckout
	}

	if !d.CanTransitionTo(session.Step, d.StepConfirmation) {
		return nil, ErrIllegalTransition
	}

	if field := method.MissingField(); field != "" {
		return nil, &ValidationError{Field: field}
	}

	cart, err := s.cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Payment = &method
	session.Order = &d.Order{
		ID:       s.ids.NewOrderID(),
		Amount:   cart.Total(),
		PlacedAt: time.Now(),
	}
	session.Step = d.StepConfirmation
	session.UpdatedAt = session.Order.PlacedAt
	s.sessions.Put(session)

	return session, nil
}
