package dto

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// CreateEmployeeRequest defines the data for onboarding an employee.
type CreateEmployeeRequest struct {
	EmployeeNumber string   `json:"employeeNumber" binding:"required"`
	FirstName      string   `json:"firstName" binding:"required"`
	LastName       string   `json:"lastName" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	JobTitle       string   `json:"jobTitle"`
	DivisionID     int      `json:"divisionId" binding:"omitempty,gt=0"`
	ManagerEmail   string   `json:"managerEmail" binding:"omitempty,email"`
	HireDate       string   `json:"hireDate" binding:"omitempty,dateonly"`
	IsActive       *bool    `json:"isActive"`
	Skills         []string `json:"skills"`
}

// UpdateEmployeeRequest defines a partial employee update. Pointers
// distinguish omitted fields from zero values.
type UpdateEmployeeRequest struct {
	EmployeeNumber *string   `json:"employeeNumber"`
	FirstName      *string   `json:"firstName"`
	LastName       *string   `json:"lastName"`
	Email          *string   `json:"email" binding:"omitempty,email"`
	JobTitle       *string   `json:"jobTitle"`
	DivisionID     *int      `json:"divisionId" binding:"omitempty,gt=0"`
	ManagerEmail   *string   `json:"managerEmail" binding:"omitempty,email"`
	HireDate       *string   `json:"hireDate" binding:"omitempty,dateonly"`
	IsActive       *bool     `json:"isActive"`
	Skills         *[]string `json:"skills"`
}

// CreateLeaveRequest defines the data for filing a leave request. The
// requester is taken from the authenticated actor, not the body.
type CreateLeaveRequest struct {
	RequestNumber string  `json:"requestNumber" binding:"required"`
	LeaveType     string  `json:"leaveType" binding:"required"`
	StartDate     string  `json:"startDate" binding:"required,dateonly"`
	EndDate       string  `json:"endDate" binding:"required,dateonly"`
	Days          float64 `json:"days" binding:"required,gt=0"`
	Reason        string  `json:"reason"`
}

// UpdateLeaveRequest defines a partial leave request update. Approval
// fields are managed by the workflow endpoints only.
type UpdateLeaveRequest struct {
	LeaveType *string  `json:"leaveType"`
	StartDate *string  `json:"startDate" binding:"omitempty,dateonly"`
	EndDate   *string  `json:"endDate" binding:"omitempty,dateonly"`
	Days      *float64 `json:"days" binding:"omitempty,gt=0"`
	Reason    *string  `json:"reason"`
}

// RejectLeaveRequest carries the reason for rejecting a leave request.
type RejectLeaveRequest struct {
	Reason string `json:"reason"`
}

// EmployeeListResponse wraps an employee listing.
type EmployeeListResponse struct {
	Employees []domain.Employee `json:"employees"`
}

// LeaveListResponse wraps a leave request listing.
type LeaveListResponse struct {
	Leaves []domain.LeaveRequest `json:"leaves"`
}
