package service

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/domain"
	"github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/repository"
)

// CatalogService serves the static product catalog. The full product list is
// loaded from the repository on first use and kept in memory; the catalog is
// immutable so the loaded slice never goes stale.
type CatalogService struct {
	repo repository.RepoInterface
	sfg  singleflight.Group // Prevents concurrent first-loads hitting the repo

	mu       sync.RWMutex
	products []domain.Product
}

func NewCatalogService(repo repository.RepoInterface) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) load(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	cached := s.products
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	v, err, _ := s.sfg.Do("catalog", func() (interface{}, error) {
		// re-check under the flight: a previous flight may have finished
		// between the caller's cache miss and joining this one
		s.mu.RLock()
		cached := s.products
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		products, err := s.repo.GetAllProducts(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.products = products
		s.mu.Unlock()
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

// List returns every product in catalog order.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.load(ctx)
}

// Filter returns the products whose category matches (CategoryAll matches
// every product) and whose name contains term case-insensitively. An empty
// term matches every name. Catalog order is preserved.
func (s *CatalogService) Filter(ctx context.Context, category domain.Category, term string) ([]domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != domain.CategoryAll && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered, nil
}

// Get returns the product with the given id or repository.ErrProductNotFound.
func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// Categories returns the fixed category tags in display order.
func (s *CatalogService) Categories() []domain.Category {
	return domain.Categories
}
