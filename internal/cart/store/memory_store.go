package store

import (
	"sync"
	"time"

	cartdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/domain"
	catalogdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/domain"
)

const (
	// DefaultIdleTTL is how long an untouched cart survives before the
	// background cleanup drops it
	DefaultIdleTTL = 24 * time.Hour

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = 1 * time.Minute
)

// MemoryStore implements CartStore with in-memory storage. Each cart belongs
// to exactly one shopper session; the mutex only guards the session map.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*cartdomain.Cart // sessionID -> cart
	ttl   time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewMemoryStore creates a new in-memory cart store. Carts idle longer than
// ttl are dropped by a background cleanup; ttl <= 0 means DefaultIdleTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}

	s := &MemoryStore{
		carts:       make(map[string]*cartdomain.Cart),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

func (s *MemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.dropIdle()
		case <-s.stopCleanup:
			return
		}
	}
}

// dropIdle removes every cart untouched for longer than the TTL
func (s *MemoryStore) dropIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for sessionID, cart := range s.carts {
		if cart.UpdatedAt.Before(cutoff) {
			delete(s.carts, sessionID)
		}
	}
}

func (s *MemoryStore) Get(sessionID string) *cartdomain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		now := time.Now()
		return &cartdomain.Cart{SessionID: sessionID, CreatedAt: now, UpdatedAt: now}
	}

	return copyCart(cart)
}

func (s *MemoryStore) AddLine(sessionID string, product catalogdomain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cart, exists := s.carts[sessionID]
	if !exists {
		cart = &cartdomain.Cart{SessionID: sessionID, CreatedAt: now}
		s.carts[sessionID] = cart
	}

	for i := range cart.Lines {
		if cart.Lines[i].ProductID == product.ID {
			cart.Lines[i].Quantity++
			cart.UpdatedAt = now
			return
		}
	}

	cart.Lines = append(cart.Lines, cartdomain.Line{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
		AddedAt:   now,
	})
	cart.UpdatedAt = now
}

func (s *MemoryStore) UpdateQuantity(sessionID string, productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		return ErrLineNotFound
	}

	if quantity < 0 {
		quantity = 0
	}

	for i := range cart.Lines {
		if cart.Lines[i].ProductID != productID {
			continue
		}
		if quantity == 0 {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		} else {
			cart.Lines[i].Quantity = quantity
		}
		cart.UpdatedAt = time.Now()
		return nil
	}

	return ErrLineNotFound
}

func (s *MemoryStore) RemoveLine(sessionID string, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		return ErrLineNotFound
	}

	for i, line := range cart.Lines {
		if line.ProductID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			cart.UpdatedAt = time.Now()
			return nil
		}
	}

	return ErrLineNotFound
}

func (s *MemoryStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}

// Close stops the background cleanup and waits for it to finish
func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}

func copyCart(cart *cartdomain.Cart) *cartdomain.Cart {
	dup := *cart
	dup.Lines = make([]cartdomain.Line, len(cart.Lines))
	copy(dup.Lines, cart.Lines)
	return &dup
}
