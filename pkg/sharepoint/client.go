package sharepoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultBaseURL = "https://graph.microsoft.com/v1.0"

// Config holds the settings needed to talk to the Graph API for a single
// SharePoint site.
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// SiteHostname is e.g. "contoso.sharepoint.com".
	SiteHostname string
	// SitePath is the server-relative site path, e.g. "/sites/intranet".
	SitePath string
	// BaseURL overrides the Graph endpoint; used by tests.
	BaseURL string
	// HTTPClient overrides the OAuth2 client-credentials client; used by tests.
	HTTPClient *http.Client
}

// Item is a raw list item: an opaque identifier plus a flat field bag.
type Item struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Column describes one list column as reported by schema introspection.
type Column struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Client is a thin Graph API client for SharePoint list access. The
// constructor performs no I/O.
type Client struct {
	cfg     Config
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client from cfg. Token acquisition happens lazily on
// the first request via the OAuth2 client-credentials flow.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.TenantID),
			Scopes:       []string{"https://graph.microsoft.com/.default"},
		}
		httpc = cc.Client(context.Background())
	}
	return &Client{cfg: cfg, baseURL: strings.TrimRight(base, "/"), httpc: httpc}
}

// ResolveSite looks up the Graph identifier of the configured site.
func (c *Client) ResolveSite(ctx context.Context) (string, error) {
	path := fmt.Sprintf("/sites/%s:%s", c.cfg.SiteHostname, c.cfg.SitePath)
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("site %s%s resolved to an empty id", c.cfg.SiteHostname, c.cfg.SitePath)
	}
	return out.ID, nil
}

// ResolveList looks up a list id by its display name within the site.
func (c *Client) ResolveList(ctx context.Context, siteID, listName string) (string, error) {
	path := fmt.Sprintf("/sites/%s/lists/%s", siteID, url.PathEscape(listName))
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// ListItems fetches up to top items with their field bags expanded.
func (c *Client) ListItems(ctx context.Context, siteID, listID string, top int) ([]Item, error) {
	path := fmt.Sprintf("/sites/%s/lists/%s/items?expand=fields&$top=%d", siteID, listID, top)
	var out struct {
		Value []Item `json:"value"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

// GetItem fetches a single item by id. A store-side 404 is reported as
// apperrors.ErrNotFound.
func (c *Client) GetItem(ctx context.Context, siteID, listID, itemID string) (*Item, error) {
	path := fmt.Sprintf("/sites/%s/lists/%s/items/%s?expand=fields", siteID, listID, itemID)
	var out Item
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if apperrors.StatusOf(err) == http.StatusNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// CreateItem creates an item with the given field payload and returns the
// created item as reported by the store.
func (c *Client) CreateItem(ctx context.Context, siteID, listID string, fields map[string]any) (*Item, error) {
	path := fmt.Sprintf("/sites/%s/lists/%s/items", siteID, listID)
	body := map[string]any{"fields": fields}
	var out Item
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItemFields patches a subset of an item's fields.
func (c *Client) UpdateItemFields(ctx context.Context, siteID, listID, itemID string, fields map[string]any) error {
	path := fmt.Sprintf("/sites/%s/lists/%s/items/%s/fields", siteID, listID, itemID)
	return c.do(ctx, http.MethodPatch, path, fields, nil)
}

// DeleteItem permanently removes an item. Irreversible.
func (c *Client) DeleteItem(ctx context.Context, siteID, listID, itemID string) error {
	path := fmt.Sprintf("/sites/%s/lists/%s/items/%s", siteID, listID, itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListColumns returns the list's column schema. Used for startup
// dictionary/schema mismatch diagnostics, not runtime validation.
func (c *Client) ListColumns(ctx context.Context, siteID, listID string) ([]Column, error) {
	path := fmt.Sprintf("/sites/%s/lists/%s/columns", siteID, listID)
	var out struct {
		Value []Column `json:"value"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

// EnsureList creates a generic list with the given display name if it does
// not already exist. Used by the provisioning CLI only.
func (c *Client) EnsureList(ctx context.Context, siteID, listName string) (string, error) {
	id, err := c.ResolveList(ctx, siteID, listName)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && apperrors.StatusOf(err) != http.StatusNotFound {
		return "", err
	}
	body := map[string]any{
		"displayName": listName,
		"list":        map[string]any{"template": "genericList"},
	}
	path := fmt.Sprintf("/sites/%s/lists", siteID)
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// CreateColumn adds a column definition to a list. definition must follow
// the Graph columnDefinition shape. Used by the provisioning CLI only.
func (c *Client) CreateColumn(ctx context.Context, siteID, listID string, definition map[string]any) error {
	path := fmt.Sprintf("/sites/%s/lists/%s/columns", siteID, listID)
	return c.do(ctx, http.MethodPost, path, definition, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("graph %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Preserve the raw error body for diagnostics.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.NewStatusError(
			fmt.Errorf("graph %s %s failed", method, path),
			resp.StatusCode,
			strings.TrimSpace(string(raw)),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode graph response for %s %s: %w", method, path, err)
	}
	return nil
}
