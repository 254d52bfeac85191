package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo_ForwardOnly(t *testing.T) {
	assert.True(t, CanTransitionTo(StepBilling, StepPayment))
	assert.True(t, CanTransitionTo(StepPayment, StepConfirmation))

	// no skipping, no going back
	assert.False(t, CanTransitionTo(StepBilling, StepConfirmation))
	assert.False(t, CanTransitionTo(StepPayment, StepBilling))
	assert.False(t, CanTransitionTo(StepConfirmation, StepBilling))
	assert.False(t, CanTransitionTo(StepConfirmation, StepPayment))
	assert.False(t, CanTransitionTo(StepConfirmation, StepConfirmation))
}

func TestStep_IsTerminal(t *testing.T) {
	assert.False(t, StepBilling.IsTerminal())
	assert.False(t, StepPayment.IsTerminal())
	assert.True(t, StepConfirmation.IsTerminal())
}

func TestBillingDetails_MissingField_FormOrder(t *testing.T) {
	complete := BillingDetails{
		Name:        "Asha",
		PhoneNumber: "9999999999",
		Email:       "asha@example.com",
		Address:     "12 Harbour Road",
		City:        "Kochi",
		State:       "Kerala",
		Pincode:     "682001",
	}
	assert.Empty(t, complete.MissingField())

	missingEmail := complete
	missingEmail.Email = ""
	assert.Equal(t, "email", missingEmail.MissingField())

	// the first empty field in form order wins
	missingTwo := complete
	missingTwo.PhoneNumber = ""
	missingTwo.State = ""
	assert.Equal(t, "phoneNumber", missingTwo.MissingField())

	assert.Equal(t, "name", BillingDetails{}.MissingField())
}

func TestPaymentMethod_MissingField(t *testing.T) {
	card := PaymentMethod{Kind: PaymentCard, Card: &CardPayment{Number: "4111111111111111", Expiry: "12/27", CVV: "123"}}
	assert.Empty(t, card.MissingField())

	noCVV := PaymentMethod{Kind: PaymentCard, Card: &CardPayment{Number: "4111111111111111", Expiry: "12/27"}}
	assert.Equal(t, "cvv", noCVV.MissingField())

	noCard := PaymentMethod{Kind: PaymentCard}
	assert.Equal(t, "cardNumber", noCard.MissingField())

	upi := PaymentMethod{Kind: PaymentUPI, UPI: &UPIPayment{ID: "asha@upi"}}
	assert.Empty(t, upi.MissingField())

	emptyUPI := PaymentMethod{Kind: PaymentUPI, UPI: &UPIPayment{}}
	assert.Equal(t, "upiId", emptyUPI.MissingField())

	unknown := PaymentMethod{Kind: PaymentKind("cheque")}
	assert.Equal(t, "method", unknown.MissingField())
}
