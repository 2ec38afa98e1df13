package repositories

import (
	"context"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
)

// AssetRepository manages the asset register list.
type AssetRepository interface {
	CRUDRepository[domain.Asset]
}

// PaymentRepository manages the payments list. The workflow wrappers are
// thin updates setting a fixed combination of status/actor/timestamp
// fields; they do not validate that the prior state permits the
// transition.
type PaymentRepository interface {
	CRUDRepository[domain.Payment]

	Approve(ctx context.Context, id string, approver string) (*domain.Payment, error)
	Reject(ctx context.Context, id string, approver string, reason string) (*domain.Payment, error)
	MarkAsPaid(ctx context.Context, id string, payer string) (*domain.Payment, error)
}

// EmployeeRepository manages the HR master list.
type EmployeeRepository interface {
	CRUDRepository[domain.Employee]
}

// LeaveRepository manages the leave requests list. AdvanceStage records
// the given stage's approver and timestamp and bumps the step counter;
// stage ordering is not enforced here.
type LeaveRepository interface {
	CRUDRepository[domain.LeaveRequest]

	AdvanceStage(ctx context.Context, id string, step int, approver string) (*domain.LeaveRequest, error)
	RejectRequest(ctx context.Context, id string, approver string, reason string) (*domain.LeaveRequest, error)
}

// Strategy planning repositories.
type (
	KRARepository       interface{ CRUDRepository[domain.KRA] }
	KPIRepository       interface{ CRUDRepository[domain.KPI] }
	ObjectiveRepository interface{ CRUDRepository[domain.Objective] }
	ProjectRepository   interface{ CRUDRepository[domain.Project] }
	TaskRepository      interface{ CRUDRepository[domain.Task] }
	RiskRepository      interface{ CRUDRepository[domain.Risk] }
)

// CalendarRepository manages the shared calendar list.
type CalendarRepository interface {
	CRUDRepository[domain.CalendarEvent]
}
