package tracking

import (
	"context"
	"errors"
	"math/rand/v2"
	"regexp"

	"github.com/sony/gobreaker/v2"
)

// Status is one of the fixed order-status labels.
type Status string

const (
	StatusProcessing     Status = "Processing"
	StatusShipped        Status = "Shipped"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

var statuses = []Status{
	StatusProcessing,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

var ErrInvalidOrderID = errors.New("invalid order id")

var orderIDPattern = regexp.MustCompile(`^[A-Z0-9]{3,}$`)

// StatusProvider is the external order-tracking collaborator. The service
// does not own tracking data; it treats the lookup as opaque.
type StatusProvider interface {
	Status(ctx context.Context, orderID string) (Status, error)
}

// RandomStatusProvider is the stand-in provider: every lookup returns a
// random label, as there is no real tracking data source.
type RandomStatusProvider struct{}

func (RandomStatusProvider) Status(context.Context, string) (Status, error) {
	return statuses[rand.IntN(len(statuses))], nil
}

// Service fronts the provider with a circuit breaker so a misbehaving
// collaborator fails fast instead of being hammered.
type Service struct {
	provider StatusProvider
	cb       *gobreaker.CircuitBreaker[Status]
}

func NewService(provider StatusProvider) *Service {
	return &Service{
		provider: provider,
		cb: gobreaker.NewCircuitBreaker[Status](gobreaker.Settings{
			Name: "order-tracking",
		}),
	}
}

// Track returns the status for the given order id. Ids must look like order
// ids (uppercase alphanumeric, at least 3 characters); anything else is
// rejected before reaching the provider.
func (s *Service) Track(ctx context.Context, orderID string) (Status, error) {
	if !orderIDPattern.MatchString(orderID) {
		return "", ErrInvalidOrderID
	}

	return s.cb.Execute(func() (Status, error) {
		return s.provider.Status(ctx, orderID)
	})
}
