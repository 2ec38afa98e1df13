package mapping

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// AssetDict maps asset register domain fields to list columns. Cost is a
// numeric-as-text column in the live schema; the Number type parses it
// tolerantly on the way back.
var AssetDict = withCommon(
	FieldDef{Domain: "name", External: "Title", Type: Text},
	FieldDef{Domain: "asset_tag", External: "AssetTag", Type: Text},
	FieldDef{Domain: "category", External: "Category", Type: Text},
	FieldDef{Domain: "serial_number", External: "SerialNumber", Type: Text},
	FieldDef{Domain: "status", External: "AssetStatus", Type: Text},
	FieldDef{Domain: "assigned_to_email", External: "AssignedToEmail", Type: Text},
	FieldDef{Domain: "assigned_to_name", External: "AssignedToName", Type: Text},
	FieldDef{Domain: "purchase_date", External: "PurchaseDate", Type: Date},
	FieldDef{Domain: "cost", External: "Cost", Type: Number},
	FieldDef{Domain: "specifications", External: "Specifications", Type: JSONBlob},
	FieldDef{Domain: "notes", External: "Notes", Type: Text},
)

// DecodeAsset projects a raw item field bag into a domain Asset.
func DecodeAsset(id string, fields map[string]any) domain.Asset {
	vals := AssetDict.FromExternal(fields)
	return domain.Asset{
		AssetID:          id,
		AssetTag:         Str(vals, "asset_tag"),
		Name:             Str(vals, "name"),
		Category:         Str(vals, "category"),
		SerialNumber:     Str(vals, "serial_number"),
		Status:           domain.AssetStatus(Str(vals, "status")),
		AssignedToEmail:  Str(vals, "assigned_to_email"),
		AssignedToName:   Str(vals, "assigned_to_name"),
		PurchaseDate:     TimePtr(vals, "purchase_date"),
		Cost:             F64(vals, "cost"),
		Specifications:   StrList(vals, "specifications"),
		Notes:            Str(vals, "notes"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}
