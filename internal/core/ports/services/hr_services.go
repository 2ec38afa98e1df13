package services

import (
	"context"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for the HR master list.
type EmployeeReaderSvc interface {
	ListEmployees(ctx context.Context, actor domain.Actor) ([]domain.Employee, error)
	GetEmployeeByID(ctx context.Context, actor domain.Actor, employeeID string) (*domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for the HR master list.
// All writes require a privileged actor.
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, actor domain.Actor, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, actor domain.Actor, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, actor domain.Actor, employeeID string) error
	RestoreEmployee(ctx context.Context, actor domain.Actor, employeeID string) (*domain.Employee, error)
	PurgeEmployee(ctx context.Context, actor domain.Actor, employeeID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces.
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}

// LeaveReaderSvc defines read operations for leave requests.
type LeaveReaderSvc interface {
	ListLeaves(ctx context.Context, actor domain.Actor) ([]domain.LeaveRequest, error)
	GetLeaveByID(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveRequest, error)
}

// LeaveWriterSvc defines write operations for leave requests.
type LeaveWriterSvc interface {
	CreateLeave(ctx context.Context, actor domain.Actor, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error)
	UpdateLeave(ctx context.Context, actor domain.Actor, leaveID string, req dto.UpdateLeaveRequest) (*domain.LeaveRequest, error)
	DeleteLeave(ctx context.Context, actor domain.Actor, leaveID string) error
	RestoreLeave(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveRequest, error)
	PurgeLeave(ctx context.Context, actor domain.Actor, leaveID string) error
}

// LeaveWorkflowSvc defines the staged approval operations. Both require
// a privileged actor.
type LeaveWorkflowSvc interface {
	// AdvanceLeave records the actor's approval at the request's current
	// step and moves the request to the next step. Approval at the final
	// (HR) step sets the overall status to Approved.
	AdvanceLeave(ctx context.Context, actor domain.Actor, leaveID string) (*domain.LeaveRequest, error)

	// RejectLeave sets the overall status to Rejected with a reason.
	RejectLeave(ctx context.Context, actor domain.Actor, leaveID string, reason string) (*domain.LeaveRequest, error)
}

// LeaveSvcFacade combines all leave-related service interfaces.
type LeaveSvcFacade interface {
	LeaveReaderSvc
	LeaveWriterSvc
	LeaveWorkflowSvc
}
