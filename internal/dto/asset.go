package dto

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// CreateAssetRequest defines the data for registering an asset. Dates are
// date-only or fully qualified RFC3339 strings.
type CreateAssetRequest struct {
	Name            string   `json:"name" binding:"required"`
	AssetTag        string   `json:"assetTag"`
	Category        string   `json:"category"`
	SerialNumber    string   `json:"serialNumber"`
	Status          string   `json:"status" binding:"omitempty,oneof=Available Assigned InRepair Retired"`
	AssignedToEmail string   `json:"assignedToEmail" binding:"omitempty,email"`
	AssignedToName  string   `json:"assignedToName"`
	PurchaseDate    string   `json:"purchaseDate" binding:"omitempty,dateonly"`
	Cost            float64  `json:"cost" binding:"omitempty,gte=0"`
	Specifications  []string `json:"specifications"`
	Notes           string   `json:"notes"`
}

// UpdateAssetRequest defines a partial asset update. Pointers distinguish
// omitted fields from zero values.
type UpdateAssetRequest struct {
	Name            *string   `json:"name"`
	AssetTag        *string   `json:"assetTag"`
	Category        *string   `json:"category"`
	SerialNumber    *string   `json:"serialNumber"`
	Status          *string   `json:"status" binding:"omitempty,oneof=Available Assigned InRepair Retired"`
	AssignedToEmail *string   `json:"assignedToEmail" binding:"omitempty,email"`
	AssignedToName  *string   `json:"assignedToName"`
	PurchaseDate    *string   `json:"purchaseDate" binding:"omitempty,dateonly"`
	Cost            *float64  `json:"cost" binding:"omitempty,gte=0"`
	Specifications  *[]string `json:"specifications"`
	Notes           *string   `json:"notes"`
}

// AssetListResponse wraps an asset listing.
type AssetListResponse struct {
	Assets []domain.Asset `json:"assets"`
}
