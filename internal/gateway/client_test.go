package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"weblarek/internal/domain"
	"weblarek/internal/gateway"
)

func TestFetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/product", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total":2,"items":[
			{"id":"hammer-001","title":"+1 hour in a day","category":"hard-skill","price":750,"image":"products/hammer-001.svg"},
			{"id":"backend-003","title":"Framework for solving problems","category":"other","price":null,"image":"products/backend-003.svg"}
		]}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, "https://cdn.example.com")
	products, err := c.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	require.NotNil(t, products[0].Price)
	require.Equal(t, 750.0, *products[0].Price)
	require.Equal(t, "https://cdn.example.com/products/hammer-001.svg", products[0].Image)

	require.Nil(t, products[1].Price, "null price must arrive as nil, not zero")
	require.Equal(t, "priceless", products[1].DisplayPrice())
}

func TestFetchProductsBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, "")
	_, err := c.FetchProducts(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestSubmitOrder(t *testing.T) {
	var received domain.OrderPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/order", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"o-1","total":1500,"status":"pending"}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, "")
	payload := domain.OrderPayload{
		Payment: "card",
		Email:   "a@b.com",
		Phone:   "12345678901",
		Address: "Main st 1",
		Total:   1500,
		Items:   []string{"hammer-001", "hammer-001"},
	}
	conf, err := c.SubmitOrder(context.Background(), payload)
	require.NoError(t, err)
	require.Equal(t, domain.OrderConfirmation{ID: "o-1", Total: 1500, Status: "pending"}, conf)
	require.Equal(t, payload, received)
}

func TestSubmitOrderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"unknown product ghost"}`))
	}))
	defer srv.Close()

	c := gateway.NewClient(srv.URL, "")
	_, err := c.SubmitOrder(context.Background(), domain.OrderPayload{Items: []string{"ghost"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown product")
}
