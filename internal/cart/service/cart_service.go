package service

import (
	"context"
	"errors"
	"log/slog"

	cartdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/domain"
	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/store"
	catalogdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/domain"
)

// ProductGetter resolves catalog items when lines are added.
type ProductGetter interface {
	Get(ctx context.Context, id int64) (*catalogdomain.Product, error)
}

type CartService struct {
	store   store.CartStore
	catalog ProductGetter
}

func NewCartService(store store.CartStore, catalog ProductGetter) *CartService {
	return &CartService{
		store:   store,
		catalog: catalog,
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*cartdomain.Cart, error) {
	return s.store.Get(sessionID), nil
}

// AddItem resolves the product and adds one unit of it to the session's cart.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID int64) (*cartdomain.Cart, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.store.AddLine(sessionID, *product)
	return s.store.Get(sessionID), nil
}

// UpdateQuantity sets the line's quantity to max(0, quantity), removing the
// line at 0. An absent line is a no-op, not an error.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*cartdomain.Cart, error) {
	err := s.store.UpdateQuantity(sessionID, productID, quantity)
	if err != nil {
		if errors.Is(err, store.ErrLineNotFound) {
			slog.Debug("update quantity for absent line ignored", "session_id", sessionID, "product_id", productID)
			return s.store.Get(sessionID), nil
		}
		return nil, err
	}

	return s.store.Get(sessionID), nil
}

// RemoveItem deletes the line for the product. An absent line is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (*cartdomain.Cart, error) {
	err := s.store.RemoveLine(sessionID, productID)
	if err != nil {
		if errors.Is(err, store.ErrLineNotFound) {
			slog.Debug("remove of absent line ignored", "session_id", sessionID, "product_id", productID)
			return s.store.Get(sessionID), nil
		}
		return nil, err
	}

	return s.store.Get(sessionID), nil
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	s.store.Clear(sessionID)
	return nil
}
