package domain

import "time"

// PlanningStatus is the shared status enum for projects, tasks and risks.
type PlanningStatus string

const (
	PlanningStatusNotStarted PlanningStatus = "NotStarted"
	PlanningStatusInProgress PlanningStatus = "InProgress"
	PlanningStatusOnHold     PlanningStatus = "OnHold"
	PlanningStatusCompleted  PlanningStatus = "Completed"
	PlanningStatusClosed     PlanningStatus = "Closed"
)

// KRA is a key result area, the root of the strategy planning hierarchy.
type KRA struct {
	KRAID       string  `json:"kraId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	OwnerEmail  string  `json:"ownerEmail"`
	Division    string  `json:"division"`
	Weight      float64 `json:"weight"`
	SoftDeleteFields
	AuditFields
}

func (k KRA) OwnerIdentity() string { return k.OwnerEmail }

// KPI measures progress against a KRA.
type KPI struct {
	KPIID      string     `json:"kpiId"`
	Title      string     `json:"title"`
	KRA        Ref        `json:"kra"`
	OwnerEmail string     `json:"ownerEmail"`
	Target     float64    `json:"target"`
	Actual     float64    `json:"actual"`
	Unit       string     `json:"unit"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	SoftDeleteFields
	AuditFields
}

func (k KPI) OwnerIdentity() string { return k.OwnerEmail }

// Objective is a strategic objective under a KRA.
type Objective struct {
	ObjectiveID string     `json:"objectiveId"`
	Title       string     `json:"title"`
	KRA         Ref        `json:"kra"`
	OwnerEmail  string     `json:"ownerEmail"`
	Progress    float64    `json:"progress"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	SoftDeleteFields
	AuditFields
}

func (o Objective) OwnerIdentity() string { return o.OwnerEmail }

// Project delivers an objective.
type Project struct {
	ProjectID  string         `json:"projectId"`
	Title      string         `json:"title"`
	Objective  Ref            `json:"objective"`
	OwnerEmail string         `json:"ownerEmail"`
	Status     PlanningStatus `json:"status"`
	Progress   float64        `json:"progress"`
	Budget     float64        `json:"budget"`
	StartDate  *time.Time     `json:"startDate,omitempty"`
	EndDate    *time.Time     `json:"endDate,omitempty"`
	SoftDeleteFields
	AuditFields
}

func (p Project) OwnerIdentity() string { return p.OwnerEmail }

// Task is a unit of work within a project.
type Task struct {
	TaskID        string         `json:"taskId"`
	Title         string         `json:"title"`
	Project       Ref            `json:"project"`
	AssigneeEmail string         `json:"assigneeEmail"`
	Status        PlanningStatus `json:"status"`
	Priority      string         `json:"priority"`
	Progress      float64        `json:"progress"`
	DueDate       *time.Time     `json:"dueDate,omitempty"`
	SoftDeleteFields
	AuditFields
}

func (t Task) OwnerIdentity() string { return t.AssigneeEmail }

// Risk is a tracked project risk.
type Risk struct {
	RiskID     string         `json:"riskId"`
	Title      string         `json:"title"`
	Project    Ref            `json:"project"`
	OwnerEmail string         `json:"ownerEmail"`
	Likelihood int            `json:"likelihood"`
	Impact     int            `json:"impact"`
	Mitigation string         `json:"mitigation"`
	Status     PlanningStatus `json:"status"`
	SoftDeleteFields
	AuditFields
}

func (r Risk) OwnerIdentity() string { return r.OwnerEmail }
