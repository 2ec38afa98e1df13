package dto

import "github.com/nimbusworks/intranet_portal_app/internal/core/domain"

// CreateKRARequest defines the data for creating a key result area.
type CreateKRARequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	OwnerEmail  string  `json:"ownerEmail" binding:"omitempty,email"`
	Division    string  `json:"division"`
	Weight      float64 `json:"weight" binding:"omitempty,gte=0,lte=100"`
}

// UpdateKRARequest defines a partial KRA update.
type UpdateKRARequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	OwnerEmail  *string  `json:"ownerEmail" binding:"omitempty,email"`
	Division    *string  `json:"division"`
	Weight      *float64 `json:"weight" binding:"omitempty,gte=0,lte=100"`
}

// CreateKPIRequest defines the data for creating a KPI under a KRA.
type CreateKPIRequest struct {
	Title      string  `json:"title" binding:"required"`
	KRAID      int     `json:"kraId" binding:"omitempty,gt=0"`
	OwnerEmail string  `json:"ownerEmail" binding:"omitempty,email"`
	Target     float64 `json:"target"`
	Actual     float64 `json:"actual"`
	Unit       string  `json:"unit"`
	DueDate    string  `json:"dueDate" binding:"omitempty,dateonly"`
}

// UpdateKPIRequest defines a partial KPI update.
type UpdateKPIRequest struct {
	Title      *string  `json:"title"`
	KRAID      *int     `json:"kraId" binding:"omitempty,gt=0"`
	OwnerEmail *string  `json:"ownerEmail" binding:"omitempty,email"`
	Target     *float64 `json:"target"`
	Actual     *float64 `json:"actual"`
	Unit       *string  `json:"unit"`
	DueDate    *string  `json:"dueDate" binding:"omitempty,dateonly"`
}

// CreateObjectiveRequest defines the data for creating an objective.
type CreateObjectiveRequest struct {
	Title      string  `json:"title" binding:"required"`
	KRAID      int     `json:"kraId" binding:"omitempty,gt=0"`
	OwnerEmail string  `json:"ownerEmail" binding:"omitempty,email"`
	Progress   float64 `json:"progress" binding:"omitempty,gte=0,lte=100"`
	StartDate  string  `json:"startDate" binding:"omitempty,dateonly"`
	EndDate    string  `json:"endDate" binding:"omitempty,dateonly"`
}

// UpdateObjectiveRequest defines a partial objective update.
type UpdateObjectiveRequest struct {
	Title      *string  `json:"title"`
	KRAID      *int     `json:"kraId" binding:"omitempty,gt=0"`
	OwnerEmail *string  `json:"ownerEmail" binding:"omitempty,email"`
	Progress   *float64 `json:"progress" binding:"omitempty,gte=0,lte=100"`
	StartDate  *string  `json:"startDate" binding:"omitempty,dateonly"`
	EndDate    *string  `json:"endDate" binding:"omitempty,dateonly"`
}

// CreateProjectRequest defines the data for creating a project.
type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	ObjectiveID int     `json:"objectiveId" binding:"omitempty,gt=0"`
	OwnerEmail  string  `json:"ownerEmail" binding:"omitempty,email"`
	Status      string  `json:"status" binding:"omitempty,oneof=NotStarted InProgress OnHold Completed Closed"`
	Progress    float64 `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Budget      float64 `json:"budget" binding:"omitempty,gte=0"`
	StartDate   string  `json:"startDate" binding:"omitempty,dateonly"`
	EndDate     string  `json:"endDate" binding:"omitempty,dateonly"`
}

// UpdateProjectRequest defines a partial project update.
type UpdateProjectRequest struct {
	Title       *string  `json:"title"`
	ObjectiveID *int     `json:"objectiveId" binding:"omitempty,gt=0"`
	OwnerEmail  *string  `json:"ownerEmail" binding:"omitempty,email"`
	Status      *string  `json:"status" binding:"omitempty,oneof=NotStarted InProgress OnHold Completed Closed"`
	Progress    *float64 `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Budget      *float64 `json:"budget" binding:"omitempty,gte=0"`
	StartDate   *string  `json:"startDate" binding:"omitempty,dateonly"`
	EndDate     *string  `json:"endDate" binding:"omitempty,dateonly"`
}

// CreateTaskRequest defines the data for creating a task on a project.
type CreateTaskRequest struct {
	Title         string  `json:"title" binding:"required"`
	ProjectID     int     `json:"projectId" binding:"omitempty,gt=0"`
	AssigneeEmail string  `json:"assigneeEmail" binding:"omitempty,email"`
	Status        string  `json:"status" binding:"omitempty,oneof=NotStarted InProgress OnHold Completed Closed"`
	Priority      string  `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
	Progress      float64 `json:"progress" binding:"omitempty,gte=0,lte=100"`
	DueDate       string  `json:"dueDate" binding:"omitempty,dateonly"`
}

// UpdateTaskRequest defines a partial task update.
type UpdateTaskRequest struct {
	Title         *string  `json:"title"`
	ProjectID     *int     `json:"projectId" binding:"omitempty,gt=0"`
	AssigneeEmail *string  `json:"assigneeEmail" binding:"omitempty,email"`
	Status        *string  `json:"status" binding:"omitempty,oneof=NotStarted InProgress OnHold Completed Closed"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=Low Medium High Critical"`
	Progress      *float64 `json:"progress" binding:"omitempty,gte=0,lte=100"`
	DueDate       *string  `json:"dueDate" binding:"omitempty,dateonly"`
}

// CreateRiskRequest defines the data for logging a project risk.
type CreateRiskRequest struct {
	Title      string `json:"title" binding:"required"`
	ProjectID  int    `json:"projectId" binding:"omitempty,gt=0"`
	OwnerEmail string `json:"ownerEmail" binding:"omitempty,email"`
	Likelihood int    `json:"likelihood" binding:"omitempty,gte=1,lte=5"`
	Impact     int    `json:"impact" binding:"omitempty,gte=1,lte=5"`
	Mitigation string `json:"mitigation"`
	Status     string `json:"status" binding:"omitempty,oneof=NotStarted InProgress OnHold Completed Closed"`
}

// UpdateRiskRequest defines a partial risk update.
type UpdateRiskRequest struct {
	Title      *string `json:"title"`
	ProjectID  *int    `json:"projectId" binding:"omitempty,gt=0"`
	OwnerEmail *string `json:"ownerEmail" binding:"omitempty,email"`
	Likelihood *int    `json:"likelihood" binding:"omitempty,gte=1,lte=5"`
	Impact     *int    `json:"impact" binding:"omitempty,gte=1,lte=5"`
	Mitigation *string `json:"mitigation"`
	Status     *string `json:"status" binding:"omitempty,oneof=NotStarted InProgress OnHold Completed Closed"`
}

// PlanningOverviewResponse is the aggregated strategy planning tree. Each
// level carries its children resolved client-side from lookup references.
type PlanningOverviewResponse struct {
	KRAs []KRAOverview `json:"kras"`
}

// KRAOverview is a KRA with its KPIs and objectives attached.
type KRAOverview struct {
	KRA        domain.KRA          `json:"kra"`
	KPIs       []domain.KPI        `json:"kpis"`
	Objectives []ObjectiveOverview `json:"objectives"`
}

// ObjectiveOverview is an objective with its projects attached.
type ObjectiveOverview struct {
	Objective domain.Objective  `json:"objective"`
	Projects  []ProjectOverview `json:"projects"`
}

// ProjectOverview is a project with its tasks and risks attached.
type ProjectOverview struct {
	Project domain.Project `json:"project"`
	Tasks   []domain.Task  `json:"tasks"`
	Risks   []domain.Risk  `json:"risks"`
}
