package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/domain"
	catalogservice "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/service"
)

type catalogRepoMock struct {
	products []catalogdomain.Product
}

func (m *catalogRepoMock) GetAllProducts(context.Context) ([]catalogdomain.Product, error) {
	return m.products, nil
}

func (m *catalogRepoMock) GetProduct(context.Context, int64) (*catalogdomain.Product, error) {
	return nil, nil
}

func (m *catalogRepoMock) RunMigrations(string) error { return nil }
func (m *catalogRepoMock) Close() error               { return nil }

func newTestCatalogHandler() *CatalogHandler {
	repo := &catalogRepoMock{products: []catalogdomain.Product{
		{ID: 1, Name: "Atlantic Salmon", Category: catalogdomain.CategoryFish, Price: decimal.NewFromInt(899), ImageURL: "/Img/p1.jpg"},
		{ID: 3, Name: "Chicken Breast", Category: catalogdomain.CategoryMeat, Price: decimal.NewFromInt(299), ImageURL: "/Img/p3.jpg"},
		{ID: 5, Name: "Organic Eggs", Category: catalogdomain.CategoryEggs, Price: decimal.NewFromInt(149), ImageURL: "/Img/p5.jpg"},
	}}
	return NewCatalogHandler(catalogservice.NewCatalogService(repo), 5*time.Second)
}

func TestListProducts_NoFilters(t *testing.T) {
	handler := newTestCatalogHandler()

	recorder := httptest.NewRecorder()
	handler.ListProducts(recorder, httptest.NewRequest("GET", "/products", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response ProductListDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Len(t, response.Products, 3)
	assert.Equal(t, []string{"all", "fish", "meat", "eggs", "seafood"}, response.Categories)
	assert.Equal(t, "899", response.Products[0].Price)
}

func TestListProducts_CategoryFilter(t *testing.T) {
	handler := newTestCatalogHandler()

	recorder := httptest.NewRecorder()
	handler.ListProducts(recorder, httptest.NewRequest("GET", "/products?category=meat", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response ProductListDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response.Products, 1)
	assert.Equal(t, "Chicken Breast", response.Products[0].Name)
}

func TestListProducts_SearchTerm(t *testing.T) {
	handler := newTestCatalogHandler()

	recorder := httptest.NewRecorder()
	handler.ListProducts(recorder, httptest.NewRequest("GET", "/products?q=EGGS", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response ProductListDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response.Products, 1)
	assert.Equal(t, "Organic Eggs", response.Products[0].Name)
}
