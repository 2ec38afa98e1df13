// Package sharepoint implements the entity repositories over the Graph
// list-store client. Each repository is a thin composition of a field
// dictionary, a decoder and the shared list repository base.
package sharepoint

import (
	"context"

	spclient "github.com/nimbusworks/intranet_portal_app/pkg/sharepoint"
)

// listStore is the slice of the Graph client the repositories consume.
// Tests substitute an in-memory fake.
type listStore interface {
	ResolveSite(ctx context.Context) (string, error)
	ResolveList(ctx context.Context, siteID, listName string) (string, error)
	ListItems(ctx context.Context, siteID, listID string, top int) ([]spclient.Item, error)
	GetItem(ctx context.Context, siteID, listID, itemID string) (*spclient.Item, error)
	CreateItem(ctx context.Context, siteID, listID string, fields map[string]any) (*spclient.Item, error)
	UpdateItemFields(ctx context.Context, siteID, listID, itemID string, fields map[string]any) error
	DeleteItem(ctx context.Context, siteID, listID, itemID string) error
	ListColumns(ctx context.Context, siteID, listID string) ([]spclient.Column, error)
}

var _ listStore = (*spclient.Client)(nil)
