package service

import (
	"context"
	"time"

	d "github.com/Shubhamqu2002/F.M.E.S-Service/internal/checkout/domain"
)

// SubmitBilling validates the billing record and advances the flow to the
// payment step. On a validation failure the step does not change and no other
// state is touched.
func (s *CheckoutService) SubmitBilling(ctx context.Context, sessionID string, details d.BillingDetails) (*d.Session, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrNoActiveCheckout
	}

	if !d.CanTransitionTo(session.Step, d.StepPayment) {
		return nil, ErrIllegalTransition
	}

	if field := details.MissingField(); field != "" {
		return nil, &ValidationError{Field: field}
	}

	session.Billing = &details
	session.Step = d.StepPayment
	session.UpdatedAt = time.Now()
	s.sessions.Put(session)

	return session, nil
}
