package itemstore

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/item"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ItemStore = (*Client)(nil)

const apiPrefix = "/api/v0/datastores"

// Client implements [ports.ItemStore] against the item store's REST API.
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff, and tracing for every call.
type Client struct {
	http   *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through client. token is
// sent as a bearer credential when non-empty.
func NewClient(client *httpclient.Client, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http:   client,
		req:    NewRequester(client, token, logger),
		logger: logger,
	}
}

// CreateItem sends POST /api/v0/datastores/{ds}/items and returns the
// created item with its store-assigned id.
func (c *Client) CreateItem(ctx context.Context, datastore string, fields item.Fields) (item.Item, error) {
	var resp itemDTO
	err := c.req.Do(ctx, http.MethodPost, itemsPath(datastore), http.StatusCreated,
		itemRequest{Item: fields}, &resp)
	if err != nil {
		return item.Item{}, err
	}
	return toItem(resp, datastore), nil
}

// GetItem fetches GET /api/v0/datastores/{ds}/items/{id}.
func (c *Client) GetItem(ctx context.Context, ref item.Ref) (item.Item, error) {
	var resp itemDTO
	if err := c.req.Do(ctx, http.MethodGet, itemPath(ref), http.StatusOK, nil, &resp); err != nil {
		return item.Item{}, err
	}
	return toItem(resp, ref.Datastore), nil
}

// UpdateItem sends PATCH /api/v0/datastores/{ds}/items/{id}. Only the given
// fields are written. The values are absolute, so the call is retried like a
// PUT.
func (c *Client) UpdateItem(ctx context.Context, ref item.Ref, fields item.Fields) error {
	return c.req.Do(httpclient.Idempotent(ctx), http.MethodPatch, itemPath(ref), http.StatusOK, itemRequest{Item: fields}, nil)
}

// DeleteItem sends DELETE /api/v0/datastores/{ds}/items/{id}.
func (c *Client) DeleteItem(ctx context.Context, ref item.Ref) error {
	return c.req.Do(ctx, http.MethodDelete, itemPath(ref), http.StatusNoContent, nil, nil)
}

// LinkItems links a and b. Links are bidirectional in the store.
func (c *Client) LinkItems(ctx context.Context, a, b item.Ref) error {
	return c.req.Do(ctx, http.MethodPost, itemPath(a)+"/links", http.StatusNoContent,
		linkRequest{DatastoreID: b.Datastore, ItemID: b.ID}, nil)
}

// UnlinkItems removes the link between a and b.
func (c *Client) UnlinkItems(ctx context.Context, a, b item.Ref) error {
	path := fmt.Sprintf("%s/links/%s/%s", itemPath(a), url.PathEscape(b.Datastore), url.PathEscape(b.ID))
	return c.req.Do(ctx, http.MethodDelete, path, http.StatusNoContent, nil, nil)
}

// LinkedItems returns the items in datastore linked to ref.
func (c *Client) LinkedItems(ctx context.Context, ref item.Ref, datastore string) ([]item.Item, error) {
	path := itemPath(ref) + "/links?" + url.Values{"d_id": {datastore}}.Encode()

	var resp itemListResponse
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &resp); err != nil {
		return nil, err
	}
	return toItems(resp.Items, datastore), nil
}

// ListItems runs POST /api/v0/datastores/{ds}/items/search for one page.
func (c *Client) ListItems(ctx context.Context, datastore string, q item.Query) (item.Page, error) {
	body := searchRequest{
		Page:         q.Page,
		PerPage:      q.PerPage,
		SortFieldID:  q.SortField,
		SortOrder:    string(q.SortOrder),
		IncludeLinks: true,
	}

	var resp itemListResponse
	if err := c.req.Do(httpclient.Idempotent(ctx), http.MethodPost, itemsPath(datastore)+"/search", http.StatusOK, body, &resp); err != nil {
		return item.Page{}, err
	}
	return item.Page{Items: toItems(resp.Items, datastore), TotalCount: resp.TotalItems}, nil
}

func itemsPath(datastore string) string {
	return apiPrefix + "/" + url.PathEscape(datastore) + "/items"
}

func itemPath(ref item.Ref) string {
	return itemsPath(ref.Datastore) + "/" + url.PathEscape(ref.ID)
}
