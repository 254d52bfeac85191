package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one catalog item held in a cart. Quantity is always >= 1 while the
// line exists; a line whose quantity would drop to 0 is removed instead.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	AddedAt   time.Time
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the lines of a single shopper session, insertion order preserved.
// At most one line exists per product id.
type Cart struct {
	SessionID string
	Lines     []Line
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total is the sum of UnitPrice * Quantity over all lines. Recomputed on every
// call; the cart is small enough that caching would only invite staleness.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount is the sum of quantities, used for the cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}
