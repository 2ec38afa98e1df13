package domain

import "time"

// Employee is an HR master record.
type Employee struct {
	EmployeeID     string     `json:"employeeId"`
	EmployeeNumber string     `json:"employeeNumber"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	JobTitle       string     `json:"jobTitle"`
	Division       Ref        `json:"division"`
	ManagerEmail   string     `json:"managerEmail"`
	HireDate       *time.Time `json:"hireDate,omitempty"`
	IsActive       bool       `json:"isActive"`
	Skills         []string   `json:"skills"`
	SoftDeleteFields
	AuditFields
}

// OwnerIdentity returns the employee's own email; non-privileged actors
// only see their own record.
func (e Employee) OwnerIdentity() string {
	return e.Email
}

// LeaveStatus enumerates leave request workflow states.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// Leave approval stages. The current step is a plain counter checked by
// callers; stage ordering is convention, not an enforced state machine.
const (
	LeaveStepManager  = 1
	LeaveStepDirector = 2
	LeaveStepHR       = 3
)

// LeaveRequest is a staged leave approval record.
type LeaveRequest struct {
	LeaveID          string      `json:"leaveId"`
	RequestNumber    string      `json:"requestNumber"`
	RequesterEmail   string      `json:"requesterEmail"`
	RequesterName    string      `json:"requesterName"`
	LeaveType        string      `json:"leaveType"`
	StartDate        *time.Time  `json:"startDate,omitempty"`
	EndDate          *time.Time  `json:"endDate,omitempty"`
	Days             float64     `json:"days"`
	Reason           string      `json:"reason"`
	Status           LeaveStatus `json:"status"`
	CurrentStep      int         `json:"currentStep"`
	ManagerApprover  string      `json:"managerApprover,omitempty"`
	ManagerActionAt  *time.Time  `json:"managerActionAt,omitempty"`
	DirectorApprover string      `json:"directorApprover,omitempty"`
	DirectorActionAt *time.Time  `json:"directorActionAt,omitempty"`
	HRApprover       string      `json:"hrApprover,omitempty"`
	HRActionAt       *time.Time  `json:"hrActionAt,omitempty"`
	RejectionReason  string      `json:"rejectionReason,omitempty"`
	SoftDeleteFields
	AuditFields
}

// OwnerIdentity returns the requester email used for visibility filtering.
func (l LeaveRequest) OwnerIdentity() string {
	return l.RequesterEmail
}
