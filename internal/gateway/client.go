// Package gateway is the HTTP client for the storefront backend: it fetches
// the catalog and submits finalized orders.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"weblarek/internal/domain"
)

// Backend is what the checkout orchestrator needs from the network. Tests
// substitute a fake.
type Backend interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	SubmitOrder(ctx context.Context, payload domain.OrderPayload) (domain.OrderConfirmation, error)
}

type Client struct {
	baseURL string
	cdnURL  string
	http    *http.Client
}

func NewClient(baseURL, cdnURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cdnURL:  strings.TrimRight(cdnURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type productList struct {
	Total int              `json:"total"`
	Items []domain.Product `json:"items"`
}

// FetchProducts loads the whole catalog. Relative image paths are prefixed
// with the CDN base so views can use them as-is.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/product", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch products: backend returned %d", resp.StatusCode)
	}
	var list productList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("fetch products: decode: %w", err)
	}
	for i := range list.Items {
		list.Items[i].Image = c.imageURL(list.Items[i].Image)
	}
	return list.Items, nil
}

// SubmitOrder posts the finalized order. A non-2xx status is returned as an
// error; the caller decides what to do with its stores (nothing is cleared
// here).
func (c *Client) SubmitOrder(ctx context.Context, payload domain.OrderPayload) (domain.OrderConfirmation, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.OrderConfirmation{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/order", bytes.NewReader(body))
	if err != nil {
		return domain.OrderConfirmation{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.OrderConfirmation{}, fmt.Errorf("submit order: backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	var conf domain.OrderConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&conf); err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("submit order: decode: %w", err)
	}
	return conf, nil
}

func (c *Client) imageURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.cdnURL + "/" + strings.TrimLeft(path, "/")
}
