package shopapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
)

func testRouter(t *testing.T) (*httptest.Server, *Store) {
	t.Helper()
	store := NewStore([]domain.Product{
		{ID: "p1", Title: "first", Category: domain.CategoryOther, Price: price(100)},
		{ID: "p2", Title: "second", Category: domain.CategoryAdditional, Price: nil},
	})
	srv := httptest.NewServer(NewRouter("production", store, zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv, store
}

func validOrder() domain.Order {
	order := domain.NewOrder()
	order.Items = []string{"p1", "p2"}
	order.Payment = domain.PaymentCash
	order.Total = price(100)
	order.Address = "Main st 1"
	order.Email = "a@b.com"
	order.Phone = "123"
	return order
}

func postOrder(t *testing.T, url string, order domain.Order, key string) *http.Response {
	t.Helper()
	body, err := json.Marshal(order)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url+"/order", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestGetProductReturnsSeededCatalog(t *testing.T) {
	srv, _ := testRouter(t)

	resp, err := http.Get(srv.URL + "/product")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Items []domain.Product `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 2)
	assert.Nil(t, out.Items[1].Price)
}

func TestPlaceOrderEchoesTotalOfPricedItems(t *testing.T) {
	srv, store := testRouter(t)

	resp := postOrder(t, srv.URL, validOrder(), "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.ID)
	// The priceless item contributes nothing
	assert.Equal(t, 100.0, out.Total)
	assert.Equal(t, 1, store.OrderCount())
}

func TestPlaceOrderRejectsMissingFields(t *testing.T) {
	srv, store := testRouter(t)

	order := validOrder()
	order.Address = ""
	order.Payment = domain.PaymentUnset

	resp := postOrder(t, srv.URL, order, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "invalid order", out.Error)
	assert.Zero(t, store.OrderCount())
}

func TestPlaceOrderRejectsUnknownProduct(t *testing.T) {
	srv, _ := testRouter(t)

	order := validOrder()
	order.Items = []string{"missing"}
	order.Total = price(0)

	resp := postOrder(t, srv.URL, order, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlaceOrderRejectsWrongTotal(t *testing.T) {
	srv, _ := testRouter(t)

	order := validOrder()
	order.Total = price(999)

	resp := postOrder(t, srv.URL, order, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlaceOrderReplaysIdempotencyKey(t *testing.T) {
	srv, store := testRouter(t)

	first := postOrder(t, srv.URL, validOrder(), "key-1")
	defer first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)
	var firstOut OrderResponse
	require.NoError(t, json.NewDecoder(first.Body).Decode(&firstOut))

	second := postOrder(t, srv.URL, validOrder(), "key-1")
	defer second.Body.Close()
	require.Equal(t, http.StatusOK, second.StatusCode)
	var secondOut OrderResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&secondOut))

	assert.Equal(t, firstOut.ID, secondOut.ID)
	assert.Equal(t, 1, store.OrderCount())
}
