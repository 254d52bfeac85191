package store

import (
	"errors"

	cartdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/domain"
	catalogdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/domain"
)

// Common errors returned by the store
var (
	ErrLineNotFound = errors.New("cart line not found")
)

// CartStore owns the authoritative cart state per shopper session.
type CartStore interface {
	// Get returns a copy of the session's cart. A session with no cart yet
	// gets an empty one.
	Get(sessionID string) *cartdomain.Cart

	// AddLine increments the line for the product by 1, or appends a new
	// line with quantity 1 after the existing ones.
	AddLine(sessionID string, product catalogdomain.Product)

	// UpdateQuantity sets the line's quantity to max(0, quantity); at 0 the
	// line is removed. Returns ErrLineNotFound if no line exists.
	UpdateQuantity(sessionID string, productID int64, quantity int) error

	// RemoveLine deletes the line for the product.
	// Returns ErrLineNotFound if no line exists.
	RemoveLine(sessionID string, productID int64) error

	// Clear removes every line from the session's cart.
	Clear(sessionID string)

	// Close shuts down the store and any background processes
	Close() error
}
