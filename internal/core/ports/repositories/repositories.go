package repositories

import (
	"context"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
)

// Record is the shape every list-backed entity satisfies: it carries an
// owner identity for visibility filtering and a soft-delete flag.
type Record interface {
	domain.Owned
	Deleted() bool
}

// CRUDRepository is the shared contract of every entity repository. A
// partial record is a map keyed by domain field names; only present keys
// are translated and sent to the store.
type CRUDRepository[T Record] interface {
	// Open resolves and caches the backing site and list identifiers.
	// Constructors perform no I/O; every operation opens lazily, but
	// callers may open eagerly to fail fast and to run the schema
	// mismatch diagnostics.
	Open(ctx context.Context) error

	// List returns all active (non-soft-deleted) records visible to actor.
	List(ctx context.Context, actor domain.Actor) ([]T, error)

	// FindByID returns a record by id, including soft-deleted records.
	// A missing record is a (nil, nil) return, not an error.
	FindByID(ctx context.Context, id string) (*T, error)

	// Add creates a record in two phases (minimal seed, then the
	// remaining fields) and returns the re-fetched projection. A phase-b
	// failure surfaces ErrWrite and leaves the seed record live.
	Add(ctx context.Context, record map[string]any) (*T, error)

	// Update patches only the fields present in record and returns the
	// re-fetched projection.
	Update(ctx context.Context, id string, record map[string]any) (*T, error)

	// SoftDelete sets the soft-delete triple.
	SoftDelete(ctx context.Context, id string, actorEmail string) error

	// Restore clears the soft-delete triple and returns the projection.
	Restore(ctx context.Context, id string) (*T, error)

	// HardDelete permanently removes the record. Irreversible; callers
	// must gate this behind privilege checks.
	HardDelete(ctx context.Context, id string) error
}

// RepositoryProvider bundles all entity repositories for service wiring.
type RepositoryProvider struct {
	Assets     AssetRepository
	Payments   PaymentRepository
	Employees  EmployeeRepository
	Leaves     LeaveRepository
	KRAs       KRARepository
	KPIs       KPIRepository
	Objectives ObjectiveRepository
	Projects   ProjectRepository
	Tasks      TaskRepository
	Risks      RiskRepository
	Events     CalendarRepository
}
