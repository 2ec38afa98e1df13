package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// leaveHandler handles HTTP requests for leave requests.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

func newLeaveHandler(ls portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{leaveService: ls}
}

// registerLeaveRoutes registers routes related to leave requests.
func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(leaveService)

	leaves := rg.Group("/leaves")
	{
		leaves.GET("", h.listLeaves)
		leaves.POST("", h.createLeave)
		leaves.GET("/:id", h.getLeave)
		leaves.PUT("/:id", h.updateLeave)
		leaves.DELETE("/:id", h.deleteLeave)
		leaves.POST("/:id/restore", h.restoreLeave)
		leaves.DELETE("/:id/purge", h.purgeLeave)
		leaves.POST("/:id/advance", h.advanceLeave)
		leaves.POST("/:id/reject", h.rejectLeave)
	}
}

// listLeaves godoc
// @Summary List leave requests
// @Tags leaves
// @Produce json
// @Success 200 {object} dto.LeaveListResponse
// @Security BearerAuth
// @Router /leaves [get]
func (h *leaveHandler) listLeaves(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	leaves, err := h.leaveService.ListLeaves(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "list leaves")
		return
	}
	c.JSON(http.StatusOK, dto.LeaveListResponse{Leaves: leaves})
}

// getLeave godoc
// @Summary Get a leave request by id
// @Tags leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} domain.LeaveRequest
// @Failure 404 {object} map[string]string "Leave request not found"
// @Security BearerAuth
// @Router /leaves/{id} [get]
func (h *leaveHandler) getLeave(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	leave, err := h.leaveService.GetLeaveByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get leave")
		return
	}
	c.JSON(http.StatusOK, leave)
}

// createLeave godoc
// @Summary File a leave request
// @Description The requester is the authenticated caller; the request starts Pending at the manager stage
// @Tags leaves
// @Accept json
// @Produce json
// @Param leave body dto.CreateLeaveRequest true "Leave details"
// @Success 201 {object} domain.LeaveRequest
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /leaves [post]
func (h *leaveHandler) createLeave(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateLeaveRequest
	if !bindJSON(c, &req) {
		return
	}
	leave, err := h.leaveService.CreateLeave(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "create leave")
		return
	}
	c.JSON(http.StatusCreated, leave)
}

// updateLeave godoc
// @Summary Update a leave request
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param leave body dto.UpdateLeaveRequest true "Fields to update"
// @Success 200 {object} domain.LeaveRequest
// @Security BearerAuth
// @Router /leaves/{id} [put]
func (h *leaveHandler) updateLeave(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateLeaveRequest
	if !bindJSON(c, &req) {
		return
	}
	leave, err := h.leaveService.UpdateLeave(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "update leave")
		return
	}
	c.JSON(http.StatusOK, leave)
}

// deleteLeave godoc
// @Summary Soft-delete a leave request
// @Tags leaves
// @Param id path string true "Leave ID"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /leaves/{id} [delete]
func (h *leaveHandler) deleteLeave(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.leaveService.DeleteLeave(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "delete leave")
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreLeave godoc
// @Summary Restore a soft-deleted leave request
// @Tags leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} domain.LeaveRequest
// @Security BearerAuth
// @Router /leaves/{id}/restore [post]
func (h *leaveHandler) restoreLeave(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	leave, err := h.leaveService.RestoreLeave(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "restore leave")
		return
	}
	c.JSON(http.StatusOK, leave)
}

// purgeLeave godoc
// @Summary Permanently delete a leave request
// @Description Irreversibly removes the record. Admin only.
// @Tags leaves
// @Param id path string true "Leave ID"
// @Success 204 "Purged"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /leaves/{id}/purge [delete]
func (h *leaveHandler) purgeLeave(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.leaveService.PurgeLeave(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "purge leave")
		return
	}
	c.Status(http.StatusNoContent)
}

// advanceLeave godoc
// @Summary Approve the current stage of a leave request
// @Description Stamps the caller at the current stage (manager, director, HR) and advances the step. HR approval finalizes the request. Admin or manager only.
// @Tags leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} domain.LeaveRequest
// @Failure 400 {object} map[string]string "Request not pending"
// @Failure 403 {object} map[string]string "Privileged role required"
// @Security BearerAuth
// @Router /leaves/{id}/advance [post]
func (h *leaveHandler) advanceLeave(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	leave, err := h.leaveService.AdvanceLeave(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "advance leave")
		return
	}
	c.JSON(http.StatusOK, leave)
}

// rejectLeave godoc
// @Summary Reject a leave request
// @Description Sets the overall status to Rejected with a reason. Admin or manager only.
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param rejection body dto.RejectLeaveRequest true "Rejection reason"
// @Success 200 {object} domain.LeaveRequest
// @Failure 403 {object} map[string]string "Privileged role required"
// @Security BearerAuth
// @Router /leaves/{id}/reject [post]
func (h *leaveHandler) rejectLeave(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RejectLeaveRequest
	if !bindJSON(c, &req) {
		return
	}
	leave, err := h.leaveService.RejectLeave(c.Request.Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		respondServiceError(c, err, "reject leave")
		return
	}
	c.JSON(http.StatusOK, leave)
}
