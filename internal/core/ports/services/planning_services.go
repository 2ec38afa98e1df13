package services

import (
	"context"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// PlanningReaderSvc defines read operations across the strategy planning
// hierarchy (KRA -> KPI/Objective -> Project -> Task/Risk).
type PlanningReaderSvc interface {
	ListKRAs(ctx context.Context, actor domain.Actor) ([]domain.KRA, error)
	GetKRAByID(ctx context.Context, actor domain.Actor, kraID string) (*domain.KRA, error)
	ListKPIs(ctx context.Context, actor domain.Actor) ([]domain.KPI, error)
	GetKPIByID(ctx context.Context, actor domain.Actor, kpiID string) (*domain.KPI, error)
	ListObjectives(ctx context.Context, actor domain.Actor) ([]domain.Objective, error)
	GetObjectiveByID(ctx context.Context, actor domain.Actor, objectiveID string) (*domain.Objective, error)
	ListProjects(ctx context.Context, actor domain.Actor) ([]domain.Project, error)
	GetProjectByID(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)
	ListTasks(ctx context.Context, actor domain.Actor) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, actor domain.Actor, taskID string) (*domain.Task, error)
	ListRisks(ctx context.Context, actor domain.Actor) ([]domain.Risk, error)
	GetRiskByID(ctx context.Context, actor domain.Actor, riskID string) (*domain.Risk, error)

	// GetOverview assembles the full planning tree visible to the actor.
	// Children whose parent reference cannot be resolved are attached
	// under a placeholder labelled "Unknown".
	GetOverview(ctx context.Context, actor domain.Actor) (*dto.PlanningOverviewResponse, error)
}

// PlanningWriterSvc defines write operations across the planning
// hierarchy.
type PlanningWriterSvc interface {
	CreateKRA(ctx context.Context, actor domain.Actor, req dto.CreateKRARequest) (*domain.KRA, error)
	UpdateKRA(ctx context.Context, actor domain.Actor, kraID string, req dto.UpdateKRARequest) (*domain.KRA, error)
	DeleteKRA(ctx context.Context, actor domain.Actor, kraID string) error
	RestoreKRA(ctx context.Context, actor domain.Actor, kraID string) (*domain.KRA, error)
	PurgeKRA(ctx context.Context, actor domain.Actor, kraID string) error

	CreateKPI(ctx context.Context, actor domain.Actor, req dto.CreateKPIRequest) (*domain.KPI, error)
	UpdateKPI(ctx context.Context, actor domain.Actor, kpiID string, req dto.UpdateKPIRequest) (*domain.KPI, error)
	DeleteKPI(ctx context.Context, actor domain.Actor, kpiID string) error
	RestoreKPI(ctx context.Context, actor domain.Actor, kpiID string) (*domain.KPI, error)
	PurgeKPI(ctx context.Context, actor domain.Actor, kpiID string) error

	CreateObjective(ctx context.Context, actor domain.Actor, req dto.CreateObjectiveRequest) (*domain.Objective, error)
	UpdateObjective(ctx context.Context, actor domain.Actor, objectiveID string, req dto.UpdateObjectiveRequest) (*domain.Objective, error)
	DeleteObjective(ctx context.Context, actor domain.Actor, objectiveID string) error
	RestoreObjective(ctx context.Context, actor domain.Actor, objectiveID string) (*domain.Objective, error)
	PurgeObjective(ctx context.Context, actor domain.Actor, objectiveID string) error

	CreateProject(ctx context.Context, actor domain.Actor, req dto.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(ctx context.Context, actor domain.Actor, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, actor domain.Actor, projectID string) error
	RestoreProject(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error)
	PurgeProject(ctx context.Context, actor domain.Actor, projectID string) error

	CreateTask(ctx context.Context, actor domain.Actor, req dto.CreateTaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, actor domain.Actor, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, actor domain.Actor, taskID string) error
	RestoreTask(ctx context.Context, actor domain.Actor, taskID string) (*domain.Task, error)
	PurgeTask(ctx context.Context, actor domain.Actor, taskID string) error

	CreateRisk(ctx context.Context, actor domain.Actor, req dto.CreateRiskRequest) (*domain.Risk, error)
	UpdateRisk(ctx context.Context, actor domain.Actor, riskID string, req dto.UpdateRiskRequest) (*domain.Risk, error)
	DeleteRisk(ctx context.Context, actor domain.Actor, riskID string) error
	RestoreRisk(ctx context.Context, actor domain.Actor, riskID string) (*domain.Risk, error)
	PurgeRisk(ctx context.Context, actor domain.Actor, riskID string) error
}

// PlanningSvcFacade combines all planning-related service interfaces.
type PlanningSvcFacade interface {
	PlanningReaderSvc
	PlanningWriterSvc
}
