package domain

import "time"

// AssetStatus enumerates the lifecycle states of a company asset.
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "Available"
	AssetStatusAssigned    AssetStatus = "Assigned"
	AssetStatusInRepair    AssetStatus = "InRepair"
	AssetStatusRetired     AssetStatus = "Retired"
)

// Asset is a company asset tracked in the asset register list.
type Asset struct {
	AssetID         string      `json:"assetId"`
	AssetTag        string      `json:"assetTag"`
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	SerialNumber    string      `json:"serialNumber"`
	Status          AssetStatus `json:"status"`
	AssignedToEmail string      `json:"assignedToEmail"`
	AssignedToName  string      `json:"assignedToName"`
	PurchaseDate    *time.Time  `json:"purchaseDate,omitempty"`
	Cost            float64     `json:"cost"`
	Specifications  []string    `json:"specifications"`
	Notes           string      `json:"notes"`
	SoftDeleteFields
	AuditFields
}

// OwnerIdentity returns the assignee email used for visibility filtering.
func (a Asset) OwnerIdentity() string {
	return a.AssignedToEmail
}
