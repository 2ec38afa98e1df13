package services

import (
	"context"
	"log/slog"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

type assetService struct {
	entityCRUD[domain.Asset]
}

// NewAssetService creates the asset register service.
func NewAssetService(repo portsrepo.AssetRepository) portssvc.AssetSvcFacade {
	return &assetService{entityCRUD[domain.Asset]{repo: repo, kind: "asset"}}
}

func (s *assetService) ListAssets(ctx context.Context, actor domain.Actor) ([]domain.Asset, error) {
	return s.list(ctx, actor)
}

func (s *assetService) GetAssetByID(ctx context.Context, actor domain.Actor, assetID string) (*domain.Asset, error) {
	return s.get(ctx, actor, assetID)
}

func (s *assetService) CreateAsset(ctx context.Context, actor domain.Actor, req dto.CreateAssetRequest) (*domain.Asset, error) {
	record := map[string]any{
		"name":              req.Name,
		"asset_tag":         req.AssetTag,
		"category":          req.Category,
		"serial_number":     req.SerialNumber,
		"status":            req.Status,
		"assigned_to_email": req.AssignedToEmail,
		"assigned_to_name":  req.AssignedToName,
		"purchase_date":     req.PurchaseDate,
		"cost":              req.Cost,
		"notes":             req.Notes,
	}
	if req.Specifications != nil {
		record["specifications"] = req.Specifications
	}
	asset, err := s.create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Asset registered",
		slog.String("asset_id", asset.AssetID),
		slog.String("asset_tag", asset.AssetTag))
	return asset, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, actor domain.Actor, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	record := map[string]any{}
	setIf(record, "name", req.Name)
	setIf(record, "asset_tag", req.AssetTag)
	setIf(record, "category", req.Category)
	setIf(record, "serial_number", req.SerialNumber)
	setIf(record, "status", req.Status)
	setIf(record, "assigned_to_email", req.AssignedToEmail)
	setIf(record, "assigned_to_name", req.AssignedToName)
	setIf(record, "purchase_date", req.PurchaseDate)
	setIf(record, "cost", req.Cost)
	setIf(record, "specifications", req.Specifications)
	setIf(record, "notes", req.Notes)
	return s.update(ctx, actor, assetID, record)
}

func (s *assetService) DeleteAsset(ctx context.Context, actor domain.Actor, assetID string) error {
	return s.softDelete(ctx, actor, assetID)
}

func (s *assetService) RestoreAsset(ctx context.Context, actor domain.Actor, assetID string) (*domain.Asset, error) {
	return s.restore(ctx, actor, assetID)
}

func (s *assetService) PurgeAsset(ctx context.Context, actor domain.Actor, assetID string) error {
	return s.purge(ctx, actor, assetID)
}
