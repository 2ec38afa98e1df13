package sharepoint

import (
	"context"
	"time"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	"github.com/nimbusworks/intranet_portal_app/internal/utils/mapping"
)

// EmployeeRepository manages the HR master list.
type EmployeeRepository struct {
	*listRepository[domain.Employee]
}

var _ portsrepo.EmployeeRepository = (*EmployeeRepository)(nil)

// NewEmployeeRepository builds the repository; no I/O happens here.
func NewEmployeeRepository(store listStore, listName string) *EmployeeRepository {
	return &EmployeeRepository{
		listRepository: newListRepository(
			store,
			listName,
			mapping.EmployeeDict,
			mapping.DecodeEmployee,
			[]string{"employee_number"},
			map[string]any{"is_active": true},
		),
	}
}

// LeaveRepository manages the leave requests list.
type LeaveRepository struct {
	*listRepository[domain.LeaveRequest]
}

var _ portsrepo.LeaveRepository = (*LeaveRepository)(nil)

// NewLeaveRepository builds the repository; no I/O happens here.
func NewLeaveRepository(store listStore, listName string) *LeaveRepository {
	return &LeaveRepository{
		listRepository: newListRepository(
			store,
			listName,
			mapping.LeaveDict,
			mapping.DecodeLeaveRequest,
			[]string{"request_number"},
			map[string]any{
				"status":       string(domain.LeaveStatusPending),
				"current_step": domain.LeaveStepManager,
			},
		),
	}
}

// AdvanceStage stamps the given stage's approver and timestamp and bumps
// the step counter. The final stage flips the status to Approved. Stage
// ordering is convention; skipped or out-of-order stages are not rejected
// here.
func (r *LeaveRepository) AdvanceStage(ctx context.Context, id string, step int, approver string) (*domain.LeaveRequest, error) {
	now := time.Now().UTC()
	record := map[string]any{"current_step": step + 1}
	switch step {
	case domain.LeaveStepManager:
		record["manager_approver"] = approver
		record["manager_action_at"] = now
	case domain.LeaveStepDirector:
		record["director_approver"] = approver
		record["director_action_at"] = now
	case domain.LeaveStepHR:
		record["hr_approver"] = approver
		record["hr_action_at"] = now
		record["status"] = string(domain.LeaveStatusApproved)
		record["current_step"] = step
	}
	return r.Update(ctx, id, record)
}

// RejectRequest moves the request to Rejected with the given reason. The
// rejecting actor is recorded in the reason trail only; per-stage approver
// columns stay untouched.
func (r *LeaveRepository) RejectRequest(ctx context.Context, id string, approver string, reason string) (*domain.LeaveRequest, error) {
	if reason == "" {
		reason = "Rejected by " + approver
	}
	return r.Update(ctx, id, map[string]any{
		"status":           string(domain.LeaveStatusRejected),
		"rejection_reason": reason,
	})
}
