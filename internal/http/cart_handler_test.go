package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartservice "github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/service"
	cartstore "github.com/Shubhamqu2002/F.M.E.S-Service/internal/cart/store"
	catalogdomain "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/domain"
	catalogrepo "github.com/Shubhamqu2002/F.M.E.S-Service/internal/catalog/repository"
)

type catalogMock struct {
	products map[int64]catalogdomain.Product
}

func (c *catalogMock) Get(_ context.Context, id int64) (*catalogdomain.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, catalogrepo.ErrProductNotFound
	}
	return &p, nil
}

func newTestCartHandler(t *testing.T) *CartHandler {
	store := cartstore.NewMemoryStore(0)
	t.Cleanup(func() { store.Close() })

	catalog := &catalogMock{products: map[int64]catalogdomain.Product{
		1: {ID: 1, Name: "Atlantic Salmon", Category: catalogdomain.CategoryFish, Price: decimal.NewFromInt(899)},
		3: {ID: 3, Name: "Chicken Breast", Category: catalogdomain.CategoryMeat, Price: decimal.NewFromInt(299)},
	}}

	return NewCartHandler(cartservice.NewCartService(store, catalog), 5*time.Second)
}

func withSession(r *http.Request, sessionID string) *http.Request {
	ctx := context.WithValue(r.Context(), "session_id", sessionID)
	return r.WithContext(ctx)
}

func cartRouter(handler *CartHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/cart", handler.GetCart)
	r.Delete("/cart", handler.ClearCart)
	r.Post("/cart/items", handler.AddItem)
	r.Put("/cart/items/{product_id}", handler.UpdateQuantity)
	r.Delete("/cart/items/{product_id}", handler.RemoveItem)
	return r
}

func TestGetCart_NoSession_Unauthorized(t *testing.T) {
	handler := newTestCartHandler(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/", nil)

	handler.GetCart(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "unauthorized", response.Code)
}

func TestAddItem_Success(t *testing.T) {
	handler := newTestCartHandler(t)

	body := bytes.NewBufferString(`{"product_id": 1}`)
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/", body), "s1")

	handler.AddItem(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response CartDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response.Lines, 1)
	assert.Equal(t, "Atlantic Salmon", response.Lines[0].Name)
	assert.Equal(t, "899", response.Total)
	assert.Equal(t, 1, response.ItemCount)
}

func TestAddItem_UnknownProduct_NotFound(t *testing.T) {
	handler := newTestCartHandler(t)

	body := bytes.NewBufferString(`{"product_id": 999}`)
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/", body), "s1")

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "product_not_found", response.Code)
}

func TestAddItem_InvalidBody(t *testing.T) {
	handler := newTestCartHandler(t)

	body := bytes.NewBufferString(`{not json`)
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/", body), "s1")

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddItem_NonPositiveProductID(t *testing.T) {
	handler := newTestCartHandler(t)

	body := bytes.NewBufferString(`{"product_id": 0}`)
	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/", body), "s1")

	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCartFlow_TotalsAcrossRequests(t *testing.T) {
	handler := newTestCartHandler(t)
	router := cartRouter(handler)

	post := func(path, body string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request := withSession(httptest.NewRequest("POST", path, bytes.NewBufferString(body)), "s1")
		router.ServeHTTP(recorder, request)
		return recorder
	}

	// one salmon, two chicken breasts
	require.Equal(t, http.StatusCreated, post("/cart/items", `{"product_id": 1}`).Code)
	require.Equal(t, http.StatusCreated, post("/cart/items", `{"product_id": 3}`).Code)
	recorder := post("/cart/items", `{"product_id": 3}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var cart CartDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&cart))
	assert.Equal(t, "1497", cart.Total)
	assert.Equal(t, 3, cart.ItemCount)
	require.Len(t, cart.Lines, 2)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	handler := newTestCartHandler(t)
	router := cartRouter(handler)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/cart/items", bytes.NewBufferString(`{"product_id": 1}`)), "s1")
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	request = withSession(httptest.NewRequest("PUT", "/cart/items/1", bytes.NewBufferString(`{"quantity": 0}`)), "s1")
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var cart CartDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&cart))
	assert.Empty(t, cart.Lines)
	assert.Equal(t, "0", cart.Total)
}

func TestUpdateQuantity_TooLarge_Rejected(t *testing.T) {
	handler := newTestCartHandler(t)
	router := cartRouter(handler)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("PUT", "/cart/items/1", bytes.NewBufferString(`{"quantity": 100}`)), "s1")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRemoveItem_AbsentLine_StillOK(t *testing.T) {
	handler := newTestCartHandler(t)
	router := cartRouter(handler)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("DELETE", "/cart/items/42", nil), "s1")
	router.ServeHTTP(recorder, request)

	// absent lines are a benign no-op
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestClearCart(t *testing.T) {
	handler := newTestCartHandler(t)
	router := cartRouter(handler)

	recorder := httptest.NewRecorder()
	request := withSession(httptest.NewRequest("POST", "/cart/items", bytes.NewBufferString(`{"product_id": 1}`)), "s1")
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	request = withSession(httptest.NewRequest("DELETE", "/cart", nil), "s1")
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var cart CartDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&cart))
	assert.Empty(t, cart.Lines)
	assert.Equal(t, 0, cart.ItemCount)
}
