package services

import (
	"context"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// AssetReaderSvc defines read operations for the asset register.
type AssetReaderSvc interface {
	// ListAssets retrieves all live assets visible to the actor.
	ListAssets(ctx context.Context, actor domain.Actor) ([]domain.Asset, error)

	// GetAssetByID retrieves a single asset. Returns apperrors.ErrNotFound
	// if the asset does not exist or is soft-deleted.
	GetAssetByID(ctx context.Context, actor domain.Actor, assetID string) (*domain.Asset, error)
}

// AssetWriterSvc defines write operations for the asset register.
type AssetWriterSvc interface {
	// CreateAsset registers a new asset.
	CreateAsset(ctx context.Context, actor domain.Actor, req dto.CreateAssetRequest) (*domain.Asset, error)

	// UpdateAsset applies a partial update; only fields present in the
	// request are written.
	UpdateAsset(ctx context.Context, actor domain.Actor, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error)

	// DeleteAsset soft-deletes an asset.
	DeleteAsset(ctx context.Context, actor domain.Actor, assetID string) error

	// RestoreAsset clears the soft-delete markers on an asset.
	RestoreAsset(ctx context.Context, actor domain.Actor, assetID string) (*domain.Asset, error)

	// PurgeAsset permanently removes an asset. Admin only.
	PurgeAsset(ctx context.Context, actor domain.Actor, assetID string) error
}

// AssetSvcFacade combines all asset-related service interfaces.
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
