package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// planningHandler handles HTTP requests for the strategy planning
// hierarchy. The six entities share one CRUD shape, so their routes are
// bound through planningCRUD instead of six hand-written handler sets.
type planningHandler struct {
	planningService portssvc.PlanningSvcFacade
}

// planningCRUD adapts one planning entity's service methods to the
// shared route set.
type planningCRUD[T any, C any, U any] struct {
	list    func(ctx context.Context, actor domain.Actor) ([]T, error)
	get     func(ctx context.Context, actor domain.Actor, id string) (*T, error)
	create  func(ctx context.Context, actor domain.Actor, req C) (*T, error)
	update  func(ctx context.Context, actor domain.Actor, id string, req U) (*T, error)
	delete  func(ctx context.Context, actor domain.Actor, id string) error
	restore func(ctx context.Context, actor domain.Actor, id string) (*T, error)
	purge   func(ctx context.Context, actor domain.Actor, id string) error
	action  string
}

func registerPlanningCRUD[T any, C any, U any](rg *gin.RouterGroup, path string, ops planningCRUD[T, C, U]) {
	group := rg.Group(path)
	group.GET("", func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}
		items, err := ops.list(c.Request.Context(), actor)
		if err != nil {
			respondServiceError(c, err, "list "+ops.action)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	})
	group.GET("/:id", func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}
		item, err := ops.get(c.Request.Context(), actor, c.Param("id"))
		if err != nil {
			respondServiceError(c, err, "get "+ops.action)
			return
		}
		c.JSON(http.StatusOK, item)
	})
	group.POST("", func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}
		var req C
		if !bindJSON(c, &req) {
			return
		}
		item, err := ops.create(c.Request.Context(), actor, req)
		if err != nil {
			respondServiceError(c, err, "create "+ops.action)
			return
		}
		c.JSON(http.StatusCreated, item)
	})
	group.PUT("/:id", func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}
		var req U
		if !bindJSON(c, &req) {
			return
		}
		item, err := ops.update(c.Request.Context(), actor, c.Param("id"), req)
		if err != nil {
			respondServiceError(c, err, "update "+ops.action)
			return
		}
		c.JSON(http.StatusOK, item)
	})
	group.DELETE("/:id", func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}
		if err := ops.delete(c.Request.Context(), actor, c.Param("id")); err != nil {
			respondServiceError(c, err, "delete "+ops.action)
			return
		}
		c.Status(http.StatusNoContent)
	})
	group.POST("/:id/restore", func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}
		item, err := ops.restore(c.Request.Context(), actor, c.Param("id"))
		if err != nil {
			respondServiceError(c, err, "restore "+ops.action)
			return
		}
		c.JSON(http.StatusOK, item)
	})
	group.DELETE("/:id/purge", func(c *gin.Context) {
		actor, ok := requireActor(c)
		if !ok {
			return
		}
		if err := ops.purge(c.Request.Context(), actor, c.Param("id")); err != nil {
			respondServiceError(c, err, "purge "+ops.action)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// registerPlanningRoutes registers the strategy planning routes.
func registerPlanningRoutes(rg *gin.RouterGroup, svc portssvc.PlanningSvcFacade) {
	h := &planningHandler{planningService: svc}

	planning := rg.Group("/planning")
	planning.GET("/overview", h.getOverview)

	registerPlanningCRUD(planning, "/kras", planningCRUD[domain.KRA, dto.CreateKRARequest, dto.UpdateKRARequest]{
		list: svc.ListKRAs, get: svc.GetKRAByID,
		create: svc.CreateKRA, update: svc.UpdateKRA,
		delete: svc.DeleteKRA, restore: svc.RestoreKRA, purge: svc.PurgeKRA,
		action: "kra",
	})
	registerPlanningCRUD(planning, "/kpis", planningCRUD[domain.KPI, dto.CreateKPIRequest, dto.UpdateKPIRequest]{
		list: svc.ListKPIs, get: svc.GetKPIByID,
		create: svc.CreateKPI, update: svc.UpdateKPI,
		delete: svc.DeleteKPI, restore: svc.RestoreKPI, purge: svc.PurgeKPI,
		action: "kpi",
	})
	registerPlanningCRUD(planning, "/objectives", planningCRUD[domain.Objective, dto.CreateObjectiveRequest, dto.UpdateObjectiveRequest]{
		list: svc.ListObjectives, get: svc.GetObjectiveByID,
		create: svc.CreateObjective, update: svc.UpdateObjective,
		delete: svc.DeleteObjective, restore: svc.RestoreObjective, purge: svc.PurgeObjective,
		action: "objective",
	})
	registerPlanningCRUD(planning, "/projects", planningCRUD[domain.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]{
		list: svc.ListProjects, get: svc.GetProjectByID,
		create: svc.CreateProject, update: svc.UpdateProject,
		delete: svc.DeleteProject, restore: svc.RestoreProject, purge: svc.PurgeProject,
		action: "project",
	})
	registerPlanningCRUD(planning, "/tasks", planningCRUD[domain.Task, dto.CreateTaskRequest, dto.UpdateTaskRequest]{
		list: svc.ListTasks, get: svc.GetTaskByID,
		create: svc.CreateTask, update: svc.UpdateTask,
		delete: svc.DeleteTask, restore: svc.RestoreTask, purge: svc.PurgeTask,
		action: "task",
	})
	registerPlanningCRUD(planning, "/risks", planningCRUD[domain.Risk, dto.CreateRiskRequest, dto.UpdateRiskRequest]{
		list: svc.ListRisks, get: svc.GetRiskByID,
		create: svc.CreateRisk, update: svc.UpdateRisk,
		delete: svc.DeleteRisk, restore: svc.RestoreRisk, purge: svc.PurgeRisk,
		action: "risk",
	})
}

// getOverview godoc
// @Summary Get the strategy planning overview
// @Description Assembles the full KRA / KPI / objective / project / task / risk tree visible to the caller
// @Tags planning
// @Produce json
// @Success 200 {object} dto.PlanningOverviewResponse
// @Failure 502 {object} map[string]string "Document store unavailable"
// @Security BearerAuth
// @Router /planning/overview [get]
func (h *planningHandler) getOverview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	overview, err := h.planningService.GetOverview(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "planning overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}
