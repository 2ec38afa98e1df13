package mapping

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// EmployeeDict maps HR master records to list columns. Division is a
// lookup column: the id arrives under DivisionLookupId and the display
// title, when expanded, under Division.
var EmployeeDict = withCommon(
	FieldDef{Domain: "employee_number", External: "Title", Type: Text},
	FieldDef{Domain: "first_name", External: "FirstName", Type: Text},
	FieldDef{Domain: "last_name", External: "LastName", Type: Text},
	FieldDef{Domain: "email", External: "WorkEmail", Type: Text},
	FieldDef{Domain: "job_title", External: "JobTitle", Type: Text},
	FieldDef{Domain: "division_id", External: "DivisionLookupId", Type: LookupID},
	FieldDef{Domain: "division_title", External: "Division", Type: Text},
	FieldDef{Domain: "manager_email", External: "ManagerEmail", Type: Text},
	FieldDef{Domain: "hire_date", External: "HireDate", Type: Date},
	FieldDef{Domain: "is_active", External: "IsActive", Type: Boolean},
	FieldDef{Domain: "skills", External: "Skills", Type: JSONBlob},
)

// DecodeEmployee projects a raw item field bag into a domain Employee.
func DecodeEmployee(id string, fields map[string]any) domain.Employee {
	vals := EmployeeDict.FromExternal(fields)
	return domain.Employee{
		EmployeeID:     id,
		EmployeeNumber: Str(vals, "employee_number"),
		FirstName:      Str(vals, "first_name"),
		LastName:       Str(vals, "last_name"),
		Email:          Str(vals, "email"),
		JobTitle:       Str(vals, "job_title"),
		Division: domain.Ref{
			ID:    Str(vals, "division_id"),
			Label: Str(vals, "division_title"),
		},
		ManagerEmail:     Str(vals, "manager_email"),
		HireDate:         TimePtr(vals, "hire_date"),
		IsActive:         BoolVal(vals, "is_active"),
		Skills:           StrList(vals, "skills"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}

// LeaveDict maps leave requests to list columns. The stage counter is a
// plain number; ordering of the approval stages is inferred by callers.
var LeaveDict = withCommon(
	FieldDef{Domain: "request_number", External: "Title", Type: Text},
	FieldDef{Domain: "requester_email", External: "RequesterEmail", Type: Text},
	FieldDef{Domain: "requester_name", External: "RequesterName", Type: Text},
	FieldDef{Domain: "leave_type", External: "LeaveType", Type: Text},
	FieldDef{Domain: "start_date", External: "StartDate", Type: Date},
	FieldDef{Domain: "end_date", External: "EndDate", Type: Date},
	FieldDef{Domain: "days", External: "DaysRequested", Type: Number},
	FieldDef{Domain: "reason", External: "Reason", Type: Text},
	FieldDef{Domain: "status", External: "LeaveStatus", Type: Text},
	FieldDef{Domain: "current_step", External: "CurrentStep", Type: Number},
	FieldDef{Domain: "manager_approver", External: "ManagerApprover", Type: Text},
	FieldDef{Domain: "manager_action_at", External: "ManagerActionAt", Type: Date},
	FieldDef{Domain: "director_approver", External: "DirectorApprover", Type: Text},
	FieldDef{Domain: "director_action_at", External: "DirectorActionAt", Type: Date},
	FieldDef{Domain: "hr_approver", External: "HRApprover", Type: Text},
	FieldDef{Domain: "hr_action_at", External: "HRActionAt", Type: Date},
	FieldDef{Domain: "rejection_reason", External: "RejectionReason", Type: Text},
)

// DecodeLeaveRequest projects a raw item field bag into a domain LeaveRequest.
func DecodeLeaveRequest(id string, fields map[string]any) domain.LeaveRequest {
	vals := LeaveDict.FromExternal(fields)
	return domain.LeaveRequest{
		LeaveID:          id,
		RequestNumber:    Str(vals, "request_number"),
		RequesterEmail:   Str(vals, "requester_email"),
		RequesterName:    Str(vals, "requester_name"),
		LeaveType:        Str(vals, "leave_type"),
		StartDate:        TimePtr(vals, "start_date"),
		EndDate:          TimePtr(vals, "end_date"),
		Days:             F64(vals, "days"),
		Reason:           Str(vals, "reason"),
		Status:           domain.LeaveStatus(Str(vals, "status")),
		CurrentStep:      IntVal(vals, "current_step"),
		ManagerApprover:  Str(vals, "manager_approver"),
		ManagerActionAt:  TimePtr(vals, "manager_action_at"),
		DirectorApprover: Str(vals, "director_approver"),
		DirectorActionAt: TimePtr(vals, "director_action_at"),
		HRApprover:       Str(vals, "hr_approver"),
		HRActionAt:       TimePtr(vals, "hr_action_at"),
		RejectionReason:  Str(vals, "rejection_reason"),
		SoftDeleteFields: decodeSoftDelete(vals),
		AuditFields:      decodeAudit(vals),
	}
}
