package sharepoint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(Config{
		SiteHostname: "contoso.sharepoint.com",
		SitePath:     "/sites/intranet",
		BaseURL:      server.URL,
		HTTPClient:   server.Client(),
	})
	return client, server
}

func TestResolveSite(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sites/contoso.sharepoint.com:/sites/intranet", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"id": "site-123"})
	}))
	defer server.Close()

	siteID, err := client.ResolveSite(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "site-123", siteID)
}

func TestResolveSite_EmptyIDIsError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	_, err := client.ResolveSite(context.Background())

	assert.Error(t, err)
}

func TestGetItem_404BecomesNotFound(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"itemNotFound"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	item, err := client.GetItem(context.Background(), "site-1", "list-1", "42")

	assert.Nil(t, item)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateItem_WrapsFieldsEnvelope(t *testing.T) {
	var received map[string]any
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sites/site-1/lists/list-1/items", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Item{ID: "7", Fields: map[string]any{"Title": "Laptop"}})
	}))
	defer server.Close()

	item, err := client.CreateItem(context.Background(), "site-1", "list-1", map[string]any{"Title": "Laptop"})

	require.NoError(t, err)
	assert.Equal(t, "7", item.ID)
	fields, ok := received["fields"].(map[string]any)
	require.True(t, ok, "field payload must be nested under a fields envelope")
	assert.Equal(t, "Laptop", fields["Title"])
}

func TestUpdateItemFields_PatchesFieldsResource(t *testing.T) {
	var gotMethod, gotPath string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := client.UpdateItemFields(context.Background(), "site-1", "list-1", "7", map[string]any{"Category": "IT"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/sites/site-1/lists/list-1/items/7/fields", gotPath)
}

func TestErrorBodyPreservedInStatusError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"throttled"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := client.ListItems(context.Background(), "site-1", "list-1", 100)

	require.Error(t, err)
	assert.Equal(t, http.StatusTooManyRequests, apperrors.StatusOf(err))
	assert.Contains(t, err.Error(), "throttled")
}

func TestEnsureList_CreatesWhenMissing(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			http.Error(w, `{"error":{"code":"itemNotFound"}}`, http.StatusNotFound)
		case r.Method == http.MethodPost:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "Assets", body["displayName"])
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"id": "list-new"})
		}
	}))
	defer server.Close()

	listID, err := client.EnsureList(context.Background(), "site-1", "Assets")

	require.NoError(t, err)
	assert.Equal(t, "list-new", listID)
}

func TestEnsureList_ReusesExisting(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method, "no create call expected for an existing list")
		json.NewEncoder(w).Encode(map[string]string{"id": "list-existing"})
	}))
	defer server.Close()

	listID, err := client.EnsureList(context.Background(), "site-1", "Assets")

	require.NoError(t, err)
	assert.Equal(t, "list-existing", listID)
}
