package http

import (
	"context"
	"net/http"
	"time"

	catalogdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/domain"
	catalogservice "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/service"
)

type CatalogHandler struct {
	catalog *catalogservice.CatalogService
	timeout time.Duration
}

func NewCatalogHandler(catalog *catalogservice.CatalogService, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

type ProductDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Image    string `json:"image"`
}

type ProductListDTO struct {
	Categories []string     `json:"categories"`
	Products   []ProductDTO `json:"products"`
}

// GET /api/v1/products?category=&q=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	category := catalogdomain.Category(r.URL.Query().Get("category"))
	if category == "" {
		category = catalogdomain.CategoryAll
	}
	term := r.URL.Query().Get("q")

	products, err := h.catalog.Filter(ctx, category, term)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := ProductListDTO{
		Categories: make([]string, 0, len(catalogdomain.Categories)),
		Products:   make([]ProductDTO, 0, len(products)),
	}
	for _, c := range h.catalog.Categories() {
		resp.Categories = append(resp.Categories, c.String())
	}
	for _, p := range products {
		resp.Products = append(resp.Products, ProductDTO{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category.String(),
			Price:    p.Price.String(),
			Image:    p.ImageURL,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}
