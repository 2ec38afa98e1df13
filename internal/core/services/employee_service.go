package services

import (
	"context"
	"log/slog"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

type employeeService struct {
	entityCRUD[domain.Employee]
}

// NewEmployeeService creates the HR master record service. All writes
// are restricted to privileged actors; members only read their own
// record.
func NewEmployeeService(repo portsrepo.EmployeeRepository) portssvc.EmployeeSvcFacade {
	return &employeeService{entityCRUD[domain.Employee]{repo: repo, kind: "employee"}}
}

func (s *employeeService) ListEmployees(ctx context.Context, actor domain.Actor) ([]domain.Employee, error) {
	return s.list(ctx, actor)
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, actor domain.Actor, employeeID string) (*domain.Employee, error) {
	return s.get(ctx, actor, employeeID)
}

func (s *employeeService) CreateEmployee(ctx context.Context, actor domain.Actor, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := s.RequirePrivileged(ctx, actor, "create employee"); err != nil {
		return nil, err
	}
	record := map[string]any{
		"employee_number": req.EmployeeNumber,
		"first_name":      req.FirstName,
		"last_name":       req.LastName,
		"email":           req.Email,
		"job_title":       req.JobTitle,
		"manager_email":   req.ManagerEmail,
		"hire_date":       req.HireDate,
	}
	if req.DivisionID > 0 {
		record["division_id"] = req.DivisionID
	}
	if req.IsActive != nil {
		record["is_active"] = *req.IsActive
	}
	if req.Skills != nil {
		record["skills"] = req.Skills
	}
	employee, err := s.create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Employee onboarded",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("employee_number", employee.EmployeeNumber))
	return employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, actor domain.Actor, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := s.RequirePrivileged(ctx, actor, "update employee"); err != nil {
		return nil, err
	}
	record := map[string]any{}
	setIf(record, "employee_number", req.EmployeeNumber)
	setIf(record, "first_name", req.FirstName)
	setIf(record, "last_name", req.LastName)
	setIf(record, "email", req.Email)
	setIf(record, "job_title", req.JobTitle)
	setIf(record, "division_id", req.DivisionID)
	setIf(record, "manager_email", req.ManagerEmail)
	setIf(record, "hire_date", req.HireDate)
	setIf(record, "is_active", req.IsActive)
	setIf(record, "skills", req.Skills)
	return s.update(ctx, actor, employeeID, record)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, actor domain.Actor, employeeID string) error {
	if err := s.RequirePrivileged(ctx, actor, "delete employee"); err != nil {
		return err
	}
	return s.softDelete(ctx, actor, employeeID)
}

func (s *employeeService) RestoreEmployee(ctx context.Context, actor domain.Actor, employeeID string) (*domain.Employee, error) {
	if err := s.RequirePrivileged(ctx, actor, "restore employee"); err != nil {
		return nil, err
	}
	return s.restore(ctx, actor, employeeID)
}

func (s *employeeService) PurgeEmployee(ctx context.Context, actor domain.Actor, employeeID string) error {
	return s.purge(ctx, actor, employeeID)
}
