package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition = errors.New("illegal transition of checkout step")
	ErrNoActiveCheckout  = errors.New("no active checkout session")
)

// ValidationError reports a required billing or payment field that is
// missing. The flow stays at the current step so the caller can correct the
// input and resubmit.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}
