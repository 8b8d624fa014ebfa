// Package api implements the gateway ports against the remote catalog/order
// service. Failures are classified into exactly three shapes: transport
// problems (errs.ErrNetwork), non-2xx responses (*errs.ServerError) and
// undecodable payloads (errs.ErrDecode).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"laman-client/internal/domain/catalog"
	"laman-client/internal/domain/order"
	"laman-client/internal/domain/store"
	"laman-client/internal/pkg/config"
	"laman-client/internal/pkg/errs"
	"laman-client/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const maxErrorBodyBytes = 4 << 10

type Client struct {
	baseURL *url.URL
	httpc   *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

var (
	_ usecase.CatalogGateway = (*Client)(nil)
	_ usecase.StoreGateway   = (*Client)(nil)
	_ usecase.OrderGateway   = (*Client)(nil)
)

func NewClient(cfg config.Config, log *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid API base URL")
	}
	return &Client{
		baseURL: base,
		httpc:   &http.Client{Timeout: cfg.API.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.API.RateLimit), cfg.API.RateBurst),
		log:     log,
	}, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var out []catalog.Category
	if err := c.get(ctx, "api/v1/catalog/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListProducts(ctx context.Context, q usecase.ProductQuery) ([]catalog.Product, error) {
	v := url.Values{}
	v.Set("available_only", "true")
	if q.CategoryID != nil {
		v.Set("category_id", q.CategoryID.String())
	}
	if q.SubcategoryID != nil {
		v.Set("subcategory_id", q.SubcategoryID.String())
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	var out []catalog.Product
	if err := c.get(ctx, "api/v1/catalog/products", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]catalog.Subcategory, error) {
	v := url.Values{}
	v.Set("category_id", categoryID.String())
	var out []catalog.Subcategory
	if err := c.get(ctx, "api/v1/catalog/subcategories", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListStores(ctx context.Context, q usecase.StoreQuery) ([]store.Store, error) {
	v := url.Values{}
	if q.CategoryType != nil {
		v.Set("category_type", string(*q.CategoryType))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	var out []store.Store
	if err := c.get(ctx, "api/v1/stores", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetStore(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	var out store.Store
	if err := c.get(ctx, "api/v1/stores/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListStoreProducts(ctx context.Context, storeID uuid.UUID, q usecase.StoreProductQuery) ([]catalog.Product, error) {
	v := url.Values{}
	if q.AvailableOnly {
		v.Set("available_only", "true")
	} else {
		v.Set("available_only", "false")
	}
	if q.SubcategoryID != nil {
		v.Set("subcategory_id", q.SubcategoryID.String())
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	var out []catalog.Product
	if err := c.get(ctx, "api/v1/stores/"+storeID.String()+"/products", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListStoreSubcategories(ctx context.Context, storeID uuid.UUID) ([]catalog.Subcategory, error) {
	var out []catalog.Subcategory
	if err := c.get(ctx, "api/v1/stores/"+storeID.String()+"/subcategories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, req order.CreateRequest) (*order.Order, error) {
	var resp orderResponse
	if err := c.send(ctx, http.MethodPost, "api/v1/orders", nil, newCreateOrderRequest(req), &resp); err != nil {
		return nil, err
	}
	return resp.toDomain()
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status order.Status) error {
	body := updateStatusRequest{Status: string(status)}
	return c.send(ctx, http.MethodPut, "api/v1/orders/"+orderID.String()+"/status", nil, body, nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.send(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errs.Mark(err, errs.ErrNetwork)
	}

	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		marked := errs.Mark(err, errs.ErrNetwork)
		c.log.Warn("request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(marked, 5)))
		return marked
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &errs.ServerError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(err, errs.ErrDecode)
	}
	return nil
}
