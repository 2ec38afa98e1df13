package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// employeeHandler handles HTTP requests for the HR master list.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
		employees.POST("/:id/restore", h.restoreEmployee)
		employees.DELETE("/:id/purge", h.purgeEmployee)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Privileged actors see everyone; members see only their own record
// @Tags employees
// @Produce json
// @Success 200 {object} dto.EmployeeListResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "list employees")
		return
	}
	c.JSON(http.StatusOK, dto.EmployeeListResponse{Employees: employees})
}

// getEmployee godoc
// @Summary Get an employee by id
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// createEmployee godoc
// @Summary Onboard an employee
// @Description Creates the HR master record. Admin or manager only.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} domain.Employee
// @Failure 403 {object} map[string]string "Privileged role required"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "create employee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} domain.Employee
// @Failure 403 {object} map[string]string "Privileged role required"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}
	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "update employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// deleteEmployee godoc
// @Summary Soft-delete an employee
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]string "Privileged role required"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreEmployee godoc
// @Summary Restore a soft-deleted employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Security BearerAuth
// @Router /employees/{id}/restore [post]
func (h *employeeHandler) restoreEmployee(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	employee, err := h.employeeService.RestoreEmployee(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "restore employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// purgeEmployee godoc
// @Summary Permanently delete an employee
// @Description Irreversibly removes the record. Admin only.
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204 "Purged"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /employees/{id}/purge [delete]
func (h *employeeHandler) purgeEmployee(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.employeeService.PurgeEmployee(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "purge employee")
		return
	}
	c.Status(http.StatusNoContent)
}
