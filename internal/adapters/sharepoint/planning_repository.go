package sharepoint

import (
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	"github.com/nimbusworks/intranet_portal_app/internal/utils/mapping"
)

// Strategy planning repositories. All six entities share the base; only
// the dictionary, decoder and seed configuration differ.

type KRARepository struct {
	*listRepository[domain.KRA]
}

var _ portsrepo.KRARepository = (*KRARepository)(nil)

func NewKRARepository(store listStore, listName string) *KRARepository {
	return &KRARepository{
		listRepository: newListRepository(
			store, listName, mapping.KRADict, mapping.DecodeKRA,
			[]string{"title"}, nil,
		),
	}
}

type KPIRepository struct {
	*listRepository[domain.KPI]
}

var _ portsrepo.KPIRepository = (*KPIRepository)(nil)

func NewKPIRepository(store listStore, listName string) *KPIRepository {
	return &KPIRepository{
		listRepository: newListRepository(
			store, listName, mapping.KPIDict, mapping.DecodeKPI,
			[]string{"title"}, nil,
		),
	}
}

type ObjectiveRepository struct {
	*listRepository[domain.Objective]
}

var _ portsrepo.ObjectiveRepository = (*ObjectiveRepository)(nil)

func NewObjectiveRepository(store listStore, listName string) *ObjectiveRepository {
	return &ObjectiveRepository{
		listRepository: newListRepository(
			store, listName, mapping.ObjectiveDict, mapping.DecodeObjective,
			[]string{"title"}, nil,
		),
	}
}

type ProjectRepository struct {
	*listRepository[domain.Project]
}

var _ portsrepo.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(store listStore, listName string) *ProjectRepository {
	return &ProjectRepository{
		listRepository: newListRepository(
			store, listName, mapping.ProjectDict, mapping.DecodeProject,
			[]string{"title"},
			map[string]any{"status": string(domain.PlanningStatusNotStarted)},
		),
	}
}

type TaskRepository struct {
	*listRepository[domain.Task]
}

var _ portsrepo.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(store listStore, listName string) *TaskRepository {
	return &TaskRepository{
		listRepository: newListRepository(
			store, listName, mapping.TaskDict, mapping.DecodeTask,
			[]string{"title"},
			map[string]any{"status": string(domain.PlanningStatusNotStarted)},
		),
	}
}

type RiskRepository struct {
	*listRepository[domain.Risk]
}

var _ portsrepo.RiskRepository = (*RiskRepository)(nil)

func NewRiskRepository(store listStore, listName string) *RiskRepository {
	return &RiskRepository{
		listRepository: newListRepository(
			store, listName, mapping.RiskDict, mapping.DecodeRisk,
			[]string{"title"},
			map[string]any{"status": string(domain.PlanningStatusInProgress)},
		),
	}
}
