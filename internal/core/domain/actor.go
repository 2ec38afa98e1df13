package domain

import "strings"

// PortalRole is the coarse privilege level carried by an authenticated actor.
type PortalRole string

const (
	RoleAdmin   PortalRole = "ADMIN"
	RoleManager PortalRole = "MANAGER"
	RoleMember  PortalRole = "MEMBER"
)

// Actor is the externally obtained identity performing an operation. This
// layer never resolves identity itself; the auth middleware supplies it.
type Actor struct {
	Email string     `json:"email"`
	Name  string     `json:"name,omitempty"`
	Role  PortalRole `json:"role"`
}

// Privileged reports whether the actor sees unfiltered listings.
func (a Actor) Privileged() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// Owned is implemented by records that carry an owner/assignee identity
// used for visibility filtering.
type Owned interface {
	OwnerIdentity() string
}

// FilterVisible restricts records to those the actor may see: privileged
// actors receive the full set, everyone else only records whose owner
// identity equals the actor's email, compared case-insensitively.
func FilterVisible[T Owned](records []T, actor Actor) []T {
	if actor.Privileged() {
		return records
	}
	visible := make([]T, 0, len(records))
	for _, rec := range records {
		if strings.EqualFold(rec.OwnerIdentity(), actor.Email) {
			visible = append(visible, rec)
		}
	}
	return visible
}
