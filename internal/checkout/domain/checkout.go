package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Step is the current phase of an in-progress checkout.
type Step string

const (
	StepBilling      Step = "BILLING"
	StepPayment      Step = "PAYMENT"
	StepConfirmation Step = "CONFIRMATION"
)

// String representation (for logging)
func (s Step) String() string {
	return string(s)
}

func (s Step) IsTerminal() bool {
	return s == StepConfirmation
}

// CanTransitionTo reports whether the flow may advance from one step to the
// next. The flow is strictly forward: billing to payment, payment to
// confirmation, nothing else.
func CanTransitionTo(from, to Step) bool {
	switch from {
	case StepBilling:
		return to == StepPayment
	case StepPayment:
		return to == StepConfirmation
	default:
		return false
	}
}

// BillingDetails is the value record collected at the billing step. Every
// field is mandatory.
type BillingDetails struct {
	Name        string
	PhoneNumber string
	Email       string
	Address     string
	City        string
	State       string
	Pincode     string
}

// MissingField returns the name of the first empty field in form order, or ""
// when the record is complete.
func (b BillingDetails) MissingField() string {
	fields := []struct {
		name  string
		value string
	}{
		{"name", b.Name},
		{"phoneNumber", b.PhoneNumber},
		{"email", b.Email},
		{"address", b.Address},
		{"city", b.City},
		{"state", b.State},
		{"pincode", b.Pincode},
	}

	for _, f := range fields {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

// PaymentKind selects one of the two mutually exclusive payment variants.
type PaymentKind string

const (
	PaymentCard PaymentKind = "card"
	PaymentUPI  PaymentKind = "upi"
)

type CardPayment struct {
	Number string
	Expiry string // MM/YY
	CVV    string
}

type UPIPayment struct {
	ID string
}

// PaymentMethod is a tagged variant: exactly one of Card or UPI is set,
// matching Kind. Only field presence is validated; card numbers, expiry
// dates and CVVs are never checked for format.
type PaymentMethod struct {
	Kind PaymentKind
	Card *CardPayment
	UPI  *UPIPayment
}

// MissingField returns the name of the first missing required field for the
// selected variant, or "" when complete. An unknown kind reports "method".
func (p PaymentMethod) MissingField() string {
	switch p.Kind {
	case PaymentCard:
		if p.Card == nil || p.Card.Number == "" {
			return "cardNumber"
		}
		if p.Card.Expiry == "" {
			return "expiryDate"
		}
		if p.Card.CVV == "" {
			return "cvv"
		}
		return ""
	case PaymentUPI:
		if p.UPI == nil || p.UPI.ID == "" {
			return "upiId"
		}
		return ""
	default:
		return "method"
	}
}

// Order is the outcome of a completed payment step. Amount is the cart total
// captured at submission time; it never recomputes, since the cart is cleared
// when the flow finishes.
type Order struct {
	ID       string
	Amount   decimal.Decimal
	PlacedAt time.Time
}

// Session tracks one in-progress checkout. It advances monotonically through
// the three steps and is discarded on finish or abandon.
type Session struct {
	SessionID string
	Step      Step
	Billing   *BillingDetails
	Payment   *PaymentMethod
	Order     *Order
	CreatedAt time.Time
	UpdatedAt time.Time
}
