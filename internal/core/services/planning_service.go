package services

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

type planningService struct {
	BaseService
	kras       entityCRUD[domain.KRA]
	kpis       entityCRUD[domain.KPI]
	objectives entityCRUD[domain.Objective]
	projects   entityCRUD[domain.Project]
	tasks      entityCRUD[domain.Task]
	risks      entityCRUD[domain.Risk]
}

// NewPlanningService creates the strategy planning service covering the
// whole KRA -> KPI/Objective -> Project -> Task/Risk hierarchy.
func NewPlanningService(
	kras portsrepo.KRARepository,
	kpis portsrepo.KPIRepository,
	objectives portsrepo.ObjectiveRepository,
	projects portsrepo.ProjectRepository,
	tasks portsrepo.TaskRepository,
	risks portsrepo.RiskRepository,
) portssvc.PlanningSvcFacade {
	return &planningService{
		kras:       entityCRUD[domain.KRA]{repo: kras, kind: "kra"},
		kpis:       entityCRUD[domain.KPI]{repo: kpis, kind: "kpi"},
		objectives: entityCRUD[domain.Objective]{repo: objectives, kind: "objective"},
		projects:   entityCRUD[domain.Project]{repo: projects, kind: "project"},
		tasks:      entityCRUD[domain.Task]{repo: tasks, kind: "task"},
		risks:      entityCRUD[domain.Risk]{repo: risks, kind: "risk"},
	}
}

func (s *planningService) ListKRAs(ctx context.Context, actor domain.Actor) ([]domain.KRA, error) {
	return s.kras.list(ctx, actor)
}

func (s *planningService) GetKRAByID(ctx context.Context, actor domain.Actor, kraID string) (*domain.KRA, error) {
	return s.kras.get(ctx, actor, kraID)
}

func (s *planningService) CreateKRA(ctx context.Context, actor domain.Actor, req dto.CreateKRARequest) (*domain.KRA, error) {
	record := map[string]any{
		"title":       req.Title,
		"description": req.Description,
		"owner_email": ownerOrActor(req.OwnerEmail, actor),
		"division":    req.Division,
		"weight":      req.Weight,
	}
	return s.kras.create(ctx, record)
}

func (s *planningService) UpdateKRA(ctx context.Context, actor domain.Actor, kraID string, req dto.UpdateKRARequest) (*domain.KRA, error) {
	record := map[string]any{}
	setIf(record, "title", req.Title)
	setIf(record, "description", req.Description)
	setIf(record, "owner_email", req.OwnerEmail)
	setIf(record, "division", req.Division)
	setIf(record, "weight", req.Weight)
	return s.kras.update(ctx, actor, kraID, record)
}

func (s *planningService) DeleteKRA(ctx context.Context, actor domain.Actor, kraID string) error {
	return s.kras.softDelete(ctx, actor, kraID)
}

func (s *planningService) RestoreKRA(ctx context.Context, actor domain.Actor, kraID string) (*domain.KRA, error) {
	return s.kras.restore(ctx, actor, kraID)
}

func (s *planningService) PurgeKRA(ctx context.Context, actor domain.Actor, kraID string) error {
	return s.kras.purge(ctx, actor, kraID)
}

func (s *planningService) ListKPIs(ctx context.Context, actor domain.Actor) ([]domain.KPI, error) {
	return s.kpis.list(ctx, actor)
}

func (s *planningService) GetKPIByID(ctx context.Context, actor domain.Actor, kpiID string) (*domain.KPI, error) {
	return s.kpis.get(ctx, actor, kpiID)
}

func (s *planningService) CreateKPI(ctx context.Context, actor domain.Actor, req dto.CreateKPIRequest) (*domain.KPI, error) {
	record := map[string]any{
		"title":       req.Title,
		"owner_email": ownerOrActor(req.OwnerEmail, actor),
		"target":      req.Target,
		"actual":      req.Actual,
		"unit":        req.Unit,
		"due_date":    req.DueDate,
	}
	if req.KRAID > 0 {
		record["kra_id"] = req.KRAID
	}
	return s.kpis.create(ctx, record)
}

func (s *planningService) UpdateKPI(ctx context.Context, actor domain.Actor, kpiID string, req dto.UpdateKPIRequest) (*domain.KPI, error) {
	record := map[string]any{}
	setIf(record, "title", req.Title)
	setIf(record, "kra_id", req.KRAID)
	setIf(record, "owner_email", req.OwnerEmail)
	setIf(record, "target", req.Target)
	setIf(record, "actual", req.Actual)
	setIf(record, "unit", req.Unit)
	setIf(record, "due_date", req.DueDate)
	return s.kpis.update(ctx, actor, kpiID, record)
}

func (s *planningService) DeleteKPI(ctx context.Context, actor domain.Actor, kpiID string) error {
	return s.kpis.softDelete(ctx, actor, kpiID)
}

func (s *planningService) RestoreKPI(ctx context.Context, actor domain.Actor, kpiID string) (*domain.KPI, error) {
	return s.kpis.restore(ctx, actor, kpiID)
}

func (s *planningService) PurgeKPI(ctx context.Context, actor domain.Actor, kpiID string) error {
	return s.kpis.purge(ctx, actor, kpiID)
}

func (s *planningService) ListObjectives(ctx context.Context, actor domain.Actor) ([]domain.Objective, error) {
	return s.objectives.list(ctx, actor)
}

func (s *planningService) GetObjectiveByID(ctx context.Context, actor domain.Actor, objectiveID string) (*domain.Objective, error) {
	return s.objectives.get(ctx, actor, objectiveID)
}

func (s *planningService) CreateObjective(ctx context.Context, actor domain.Actor, req dto.CreateObjectiveRequest) (*domain.Objective, error) {
	record := map[string]any{
		"title":       req.Title,
		"owner_email": ownerOrActor(req.OwnerEmail, actor),
		"progress":    req.Progress,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
	}
	if req.KRAID > 0 {
		record["kra_id"] = req.KRAID
	}
	return s.objectives.create(ctx, record)
}

func (s *planningService) UpdateObjective(ctx context.Context, actor domain.Actor, objectiveID string, req dto.UpdateObjectiveRequest) (*domain.Objective, error) {
	record := map[string]any{}
	setIf(record, "title", req.Title)
	setIf(record, "kra_id", req.KRAID)
	setIf(record, "owner_email", req.OwnerEmail)
	setIf(record, "progress", req.Progress)
	setIf(record, "start_date", req.StartDate)
	setIf(record, "end_date", req.EndDate)
	return s.objectives.update(ctx, actor, objectiveID, record)
}

func (s *planningService) DeleteObjective(ctx context.Context, actor domain.Actor, objectiveID string) error {
	return s.objectives.softDelete(ctx, actor, objectiveID)
}

func (s *planningService) RestoreObjective(ctx context.Context, actor domain.Actor, objectiveID string) (*domain.Objective, error) {
	return s.objectives.restore(ctx, actor, objectiveID)
}

func (s *planningService) PurgeObjective(ctx context.Context, actor domain.Actor, objectiveID string) error {
	return s.objectives.purge(ctx, actor, objectiveID)
}

func (s *planningService) ListProjects(ctx context.Context, actor domain.Actor) ([]domain.Project, error) {
	return s.projects.list(ctx, actor)
}

func (s *planningService) GetProjectByID(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	return s.projects.get(ctx, actor, projectID)
}

func (s *planningService) CreateProject(ctx context.Context, actor domain.Actor, req dto.CreateProjectRequest) (*domain.Project, error) {
	record := map[string]any{
		"title":       req.Title,
		"owner_email": ownerOrActor(req.OwnerEmail, actor),
		"status":      req.Status,
		"progress":    req.Progress,
		"budget":      req.Budget,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
	}
	if req.ObjectiveID > 0 {
		record["objective_id"] = req.ObjectiveID
	}
	return s.projects.create(ctx, record)
}

func (s *planningService) UpdateProject(ctx context.Context, actor domain.Actor, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	record := map[string]any{}
	setIf(record, "title", req.Title)
	setIf(record, "objective_id", req.ObjectiveID)
	setIf(record, "owner_email", req.OwnerEmail)
	setIf(record, "status", req.Status)
	setIf(record, "progress", req.Progress)
	setIf(record, "budget", req.Budget)
	setIf(record, "start_date", req.StartDate)
	setIf(record, "end_date", req.EndDate)
	return s.projects.update(ctx, actor, projectID, record)
}

func (s *planningService) DeleteProject(ctx context.Context, actor domain.Actor, projectID string) error {
	return s.projects.softDelete(ctx, actor, projectID)
}

func (s *planningService) RestoreProject(ctx context.Context, actor domain.Actor, projectID string) (*domain.Project, error) {
	return s.projects.restore(ctx, actor, projectID)
}

func (s *planningService) PurgeProject(ctx context.Context, actor domain.Actor, projectID string) error {
	return s.projects.purge(ctx, actor, projectID)
}

func (s *planningService) ListTasks(ctx context.Context, actor domain.Actor) ([]domain.Task, error) {
	return s.tasks.list(ctx, actor)
}

func (s *planningService) GetTaskByID(ctx context.Context, actor domain.Actor, taskID string) (*domain.Task, error) {
	return s.tasks.get(ctx, actor, taskID)
}

func (s *planningService) CreateTask(ctx context.Context, actor domain.Actor, req dto.CreateTaskRequest) (*domain.Task, error) {
	record := map[string]any{
		"title":          req.Title,
		"assignee_email": ownerOrActor(req.AssigneeEmail, actor),
		"status":         req.Status,
		"priority":       req.Priority,
		"progress":       req.Progress,
		"due_date":       req.DueDate,
	}
	if req.ProjectID > 0 {
		record["project_id"] = req.ProjectID
	}
	return s.tasks.create(ctx, record)
}

func (s *planningService) UpdateTask(ctx context.Context, actor domain.Actor, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	record := map[string]any{}
	setIf(record, "title", req.Title)
	setIf(record, "project_id", req.ProjectID)
	setIf(record, "assignee_email", req.AssigneeEmail)
	setIf(record, "status", req.Status)
	setIf(record, "priority", req.Priority)
	setIf(record, "progress", req.Progress)
	setIf(record, "due_date", req.DueDate)
	return s.tasks.update(ctx, actor, taskID, record)
}

func (s *planningService) DeleteTask(ctx context.Context, actor domain.Actor, taskID string) error {
	return s.tasks.softDelete(ctx, actor, taskID)
}

func (s *planningService) RestoreTask(ctx context.Context, actor domain.Actor, taskID string) (*domain.Task, error) {
	return s.tasks.restore(ctx, actor, taskID)
}

func (s *planningService) PurgeTask(ctx context.Context, actor domain.Actor, taskID string) error {
	return s.tasks.purge(ctx, actor, taskID)
}

func (s *planningService) ListRisks(ctx context.Context, actor domain.Actor) ([]domain.Risk, error) {
	return s.risks.list(ctx, actor)
}

func (s *planningService) GetRiskByID(ctx context.Context, actor domain.Actor, riskID string) (*domain.Risk, error) {
	return s.risks.get(ctx, actor, riskID)
}

func (s *planningService) CreateRisk(ctx context.Context, actor domain.Actor, req dto.CreateRiskRequest) (*domain.Risk, error) {
	record := map[string]any{
		"title":       req.Title,
		"owner_email": ownerOrActor(req.OwnerEmail, actor),
		"likelihood":  req.Likelihood,
		"impact":      req.Impact,
		"mitigation":  req.Mitigation,
		"status":      req.Status,
	}
	if req.ProjectID > 0 {
		record["project_id"] = req.ProjectID
	}
	return s.risks.create(ctx, record)
}

func (s *planningService) UpdateRisk(ctx context.Context, actor domain.Actor, riskID string, req dto.UpdateRiskRequest) (*domain.Risk, error) {
	record := map[string]any{}
	setIf(record, "title", req.Title)
	setIf(record, "project_id", req.ProjectID)
	setIf(record, "owner_email", req.OwnerEmail)
	setIf(record, "likelihood", req.Likelihood)
	setIf(record, "impact", req.Impact)
	setIf(record, "mitigation", req.Mitigation)
	setIf(record, "status", req.Status)
	return s.risks.update(ctx, actor, riskID, record)
}

func (s *planningService) DeleteRisk(ctx context.Context, actor domain.Actor, riskID string) error {
	return s.risks.softDelete(ctx, actor, riskID)
}

func (s *planningService) RestoreRisk(ctx context.Context, actor domain.Actor, riskID string) (*domain.Risk, error) {
	return s.risks.restore(ctx, actor, riskID)
}

func (s *planningService) PurgeRisk(ctx context.Context, actor domain.Actor, riskID string) error {
	return s.risks.purge(ctx, actor, riskID)
}

// GetOverview fans out over the six planning lists and assembles the
// tree client-side from the lookup references. Children pointing at a
// parent the actor cannot see, or at no parent at all, hang off a
// placeholder node so nothing silently disappears from the overview.
func (s *planningService) GetOverview(ctx context.Context, actor domain.Actor) (*dto.PlanningOverviewResponse, error) {
	var (
		kras       []domain.KRA
		kpis       []domain.KPI
		objectives []domain.Objective
		projects   []domain.Project
		tasks      []domain.Task
		risks      []domain.Risk
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { kras, err = s.kras.list(gctx, actor); return })
	g.Go(func() (err error) { kpis, err = s.kpis.list(gctx, actor); return })
	g.Go(func() (err error) { objectives, err = s.objectives.list(gctx, actor); return })
	g.Go(func() (err error) { projects, err = s.projects.list(gctx, actor); return })
	g.Go(func() (err error) { tasks, err = s.tasks.list(gctx, actor); return })
	g.Go(func() (err error) { risks, err = s.risks.list(gctx, actor); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Project level: attach tasks and risks.
	projectNodes := make([]*dto.ProjectOverview, 0, len(projects))
	projectByID := make(map[string]*dto.ProjectOverview, len(projects))
	for _, p := range projects {
		node := &dto.ProjectOverview{Project: p, Tasks: []domain.Task{}, Risks: []domain.Risk{}}
		projectNodes = append(projectNodes, node)
		projectByID[p.ProjectID] = node
	}
	projectPlaceholder := func(ref domain.Ref) *dto.ProjectOverview {
		if node, ok := projectByID[ref.ID]; ok {
			return node
		}
		node := &dto.ProjectOverview{
			Project: domain.Project{ProjectID: ref.ID, Title: ref.LabelOrUnknown()},
			Tasks:   []domain.Task{},
			Risks:   []domain.Risk{},
		}
		projectNodes = append(projectNodes, node)
		projectByID[ref.ID] = node
		return node
	}
	for _, t := range tasks {
		node := projectPlaceholder(t.Project)
		node.Tasks = append(node.Tasks, t)
	}
	for _, r := range risks {
		node := projectPlaceholder(r.Project)
		node.Risks = append(node.Risks, r)
	}

	// Objective level: attach projects.
	objectiveNodes := make([]*dto.ObjectiveOverview, 0, len(objectives))
	objectiveByID := make(map[string]*dto.ObjectiveOverview, len(objectives))
	for _, o := range objectives {
		node := &dto.ObjectiveOverview{Objective: o, Projects: []dto.ProjectOverview{}}
		objectiveNodes = append(objectiveNodes, node)
		objectiveByID[o.ObjectiveID] = node
	}
	objectivePlaceholder := func(ref domain.Ref) *dto.ObjectiveOverview {
		if node, ok := objectiveByID[ref.ID]; ok {
			return node
		}
		node := &dto.ObjectiveOverview{
			Objective: domain.Objective{ObjectiveID: ref.ID, Title: ref.LabelOrUnknown()},
			Projects:  []dto.ProjectOverview{},
		}
		objectiveNodes = append(objectiveNodes, node)
		objectiveByID[ref.ID] = node
		return node
	}
	for _, node := range projectNodes {
		parent := objectivePlaceholder(node.Project.Objective)
		parent.Projects = append(parent.Projects, *node)
	}

	// KRA level: attach KPIs and objectives.
	kraNodes := make([]*dto.KRAOverview, 0, len(kras))
	kraByID := make(map[string]*dto.KRAOverview, len(kras))
	for _, k := range kras {
		node := &dto.KRAOverview{KRA: k, KPIs: []domain.KPI{}, Objectives: []dto.ObjectiveOverview{}}
		kraNodes = append(kraNodes, node)
		kraByID[k.KRAID] = node
	}
	kraPlaceholder := func(ref domain.Ref) *dto.KRAOverview {
		if node, ok := kraByID[ref.ID]; ok {
			return node
		}
		node := &dto.KRAOverview{
			KRA:        domain.KRA{KRAID: ref.ID, Title: ref.LabelOrUnknown()},
			KPIs:       []domain.KPI{},
			Objectives: []dto.ObjectiveOverview{},
		}
		kraNodes = append(kraNodes, node)
		kraByID[ref.ID] = node
		return node
	}
	for _, kpi := range kpis {
		node := kraPlaceholder(kpi.KRA)
		node.KPIs = append(node.KPIs, kpi)
	}
	for _, node := range objectiveNodes {
		parent := kraPlaceholder(node.Objective.KRA)
		parent.Objectives = append(parent.Objectives, *node)
	}

	out := &dto.PlanningOverviewResponse{KRAs: make([]dto.KRAOverview, 0, len(kraNodes))}
	for _, node := range kraNodes {
		out.KRAs = append(out.KRAs, *node)
	}
	s.LogDebug(ctx, "Planning overview assembled",
		slog.Int("kras", len(kras)),
		slog.Int("projects", len(projects)),
		slog.Int("tasks", len(tasks)))
	return out, nil
}

// ownerOrActor defaults an omitted owner to the acting user.
func ownerOrActor(owner string, actor domain.Actor) string {
	if owner != "" {
		return owner
	}
	return actor.Email
}
