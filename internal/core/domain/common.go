package domain

import "time"

// AuditFields holds standard audit information for portal entities. The
// values are populated by the list store's own change tracking on read;
// this layer never computes them.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// SoftDeleteFields is the soft-delete triple shared by every entity. The
// three fields are set together on delete and cleared together on restore.
type SoftDeleteFields struct {
	IsDeleted bool       `json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	DeletedBy string     `json:"deletedBy,omitempty"`
}

// Deleted reports whether the record has been soft-deleted.
func (s SoftDeleteFields) Deleted() bool {
	return s.IsDeleted
}

// Ref is a reference to another list's item: an opaque id plus an optional
// cached display label. Referents are never validated to exist.
type Ref struct {
	ID    string `json:"id,omitempty"`
	Label string `json:"label,omitempty"`
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return r.ID == "" && r.Label == ""
}

// LabelOrUnknown returns the cached label, or "Unknown" when the reference
// is dangling or unlabeled. Consumers must tolerate unresolved references.
func (r Ref) LabelOrUnknown() string {
	if r.Label != "" {
		return r.Label
	}
	return "Unknown"
}
