package mapping

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// SoftDeleteDomainFields names the soft-delete triple in domain terms; the
// repositories use them to build delete and restore payloads.
var SoftDeleteDomainFields = []string{"is_deleted", "deleted_at", "deleted_by"}

// commonDefs are the soft-delete triple and the store-maintained audit
// columns shared by every entity dictionary.
func commonDefs() []FieldDef {
	return []FieldDef{
		{Domain: "is_deleted", External: "IsDeleted", Type: Boolean},
		{Domain: "deleted_at", External: "DeletedAt", Type: Date},
		{Domain: "deleted_by", External: "DeletedBy", Type: Text},
		{Domain: "created_at", External: "Created", Type: Date},
		{Domain: "created_by", External: "Author", Type: Text},
		{Domain: "last_updated_at", External: "Modified", Type: Date},
		{Domain: "last_updated_by", External: "Editor", Type: Text},
	}
}

func withCommon(defs ...FieldDef) Dictionary {
	return NewDictionary(append(defs, commonDefs()...)...)
}

func decodeSoftDelete(vals map[string]any) domain.SoftDeleteFields {
	return domain.SoftDeleteFields{
		IsDeleted: BoolVal(vals, "is_deleted"),
		DeletedAt: TimePtr(vals, "deleted_at"),
		DeletedBy: Str(vals, "deleted_by"),
	}
}

func decodeAudit(vals map[string]any) domain.AuditFields {
	audit := domain.AuditFields{
		CreatedBy:     Str(vals, "created_by"),
		LastUpdatedBy: Str(vals, "last_updated_by"),
	}
	if t := TimePtr(vals, "created_at"); t != nil {
		audit.CreatedAt = *t
	}
	if t := TimePtr(vals, "last_updated_at"); t != nil {
		audit.LastUpdatedAt = *t
	}
	return audit
}
