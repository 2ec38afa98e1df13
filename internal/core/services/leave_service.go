package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

type leaveService struct {
	entityCRUD[domain.LeaveRequest]
	leaves portsrepo.LeaveRepository
}

// NewLeaveService creates the leave request service.
func NewLeaveService(repo portsrepo.LeaveRepository) portssvc.LeaveSvcFacade {
	return &leaveService{
		entityCRUD: entityCRUD[domain.LeaveRequest]{repo: repo, kind: "leave request"},
		leaves:     repo,
	}
}

func (s *leaveService) ListLeaves(ctx context.Context, actor domain.Actor) ([]domain.LeaveRequest, error) {
	return s.list(ctx, actor)
}

func (s *leaveService) GetLeaveByID(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveRequest, error) {
	return s.get(ctx, actor, leaveID)
}

func (s *leaveService) CreateLeave(ctx context.Context, actor domain.Actor, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error) {
	record := map[string]any{
		"request_number":  req.RequestNumber,
		"requester_email": actor.Email,
		"requester_name":  actor.Name,
		"leave_type":      req.LeaveType,
		"start_date":      req.StartDate,
		"end_date":        req.EndDate,
		"days":            req.Days,
		"reason":          req.Reason,
	}
	leave, err := s.create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Leave request filed",
		slog.String("leave_id", leave.LeaveID),
		slog.String("request_number", leave.RequestNumber),
		slog.String("requester", leave.RequesterEmail))
	return leave, nil
}

func (s *leaveService) UpdateLeave(ctx context.Context, actor domain.Actor, leaveID string, req dto.UpdateLeaveRequest) (*domain.LeaveRequest, error) {
	record := map[string]any{}
	setIf(record, "leave_type", req.LeaveType)
	setIf(record, "start_date", req.StartDate)
	setIf(record, "end_date", req.EndDate)
	setIf(record, "days", req.Days)
	setIf(record, "reason", req.Reason)
	return s.update(ctx, actor, leaveID, record)
}

func (s *leaveService) DeleteLeave(ctx context.Context, actor domain.Actor, leaveID string) error {
	return s.softDelete(ctx, actor, leaveID)
}

func (s *leaveService) RestoreLeave(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveRequest, error) {
	return s.restore(ctx, actor, leaveID)
}

func (s *leaveService) PurgeLeave(ctx context.Context, actor domain.Actor, leaveID string) error {
	return s.purge(ctx, actor, leaveID)
}

func (s *leaveService) AdvanceLeave(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveRequest, error) {
	if err := s.RequirePrivileged(ctx, actor, "advance leave request"); err != nil {
		return nil, err
	}
	leave, err := s.requirePendingLeave(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if leave.CurrentStep > domain.LeaveStepHR {
		return nil, fmt.Errorf("leave request %s has no further approval stages: %w", leaveID, apperrors.ErrValidation)
	}
	advanced, err := s.leaves.AdvanceStage(ctx, leaveID, leave.CurrentStep, actor.Email)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Leave request advanced",
		slog.String("leave_id", leaveID),
		slog.Int("step", leave.CurrentStep),
		slog.String("approver", actor.Email))
	return advanced, nil
}

func (s *leaveService) RejectLeave(ctx context.Context, actor domain.Actor, leaveID string, reason string) (*domain.LeaveRequest, error) {
	if err := s.RequirePrivileged(ctx, actor, "reject leave request"); err != nil {
		return nil, err
	}
	if _, err := s.requirePendingLeave(ctx, leaveID); err != nil {
		return nil, err
	}
	rejected, err := s.leaves.RejectRequest(ctx, leaveID, actor.Email, reason)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Leave request rejected",
		slog.String("leave_id", leaveID),
		slog.String("approver", actor.Email))
	return rejected, nil
}

// requirePendingLeave guards workflow actions: the request must exist,
// be live, and still be in the Pending state.
func (s *leaveService) requirePendingLeave(ctx context.Context, leaveID string) (*domain.LeaveRequest, error) {
	leave, err := s.leaves.FindByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if leave == nil || leave.Deleted() {
		return nil, notFound("leave request", leaveID)
	}
	if leave.Status != domain.LeaveStatusPending {
		return nil, fmt.Errorf("leave request %s is already %s: %w", leaveID, leave.Status, apperrors.ErrValidation)
	}
	return leave, nil
}
