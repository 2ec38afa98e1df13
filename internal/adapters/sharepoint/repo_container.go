package sharepoint

import (
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
)

// ListNames carries the display names of the SharePoint lists backing each
// entity. The names must match the provisioned site.
type ListNames struct {
	Assets     string
	Payments   string
	Employees  string
	Leaves     string
	KRAs       string
	KPIs       string
	Objectives string
	Projects   string
	Tasks      string
	Risks      string
	Events     string
}

// DefaultListNames are the names used by the standard provisioning run.
func DefaultListNames() ListNames {
	return ListNames{
		Assets:     "Assets",
		Payments:   "Payments",
		Employees:  "Employees",
		Leaves:     "LeaveRequests",
		KRAs:       "KRAs",
		KPIs:       "KPIs",
		Objectives: "Objectives",
		Projects:   "Projects",
		Tasks:      "Tasks",
		Risks:      "Risks",
		Events:     "CalendarEvents",
	}
}

// NewRepositoryProvider wires every entity repository over the given
// store. Construction performs no I/O; each repository resolves its list
// lazily on first use.
func NewRepositoryProvider(store listStore, lists ListNames) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Assets:     NewAssetRepository(store, lists.Assets),
		Payments:   NewPaymentRepository(store, lists.Payments),
		Employees:  NewEmployeeRepository(store, lists.Employees),
		Leaves:     NewLeaveRepository(store, lists.Leaves),
		KRAs:       NewKRARepository(store, lists.KRAs),
		KPIs:       NewKPIRepository(store, lists.KPIs),
		Objectives: NewObjectiveRepository(store, lists.Objectives),
		Projects:   NewProjectRepository(store, lists.Projects),
		Tasks:      NewTaskRepository(store, lists.Tasks),
		Risks:      NewRiskRepository(store, lists.Risks),
		Events:     NewCalendarRepository(store, lists.Events),
	}
}
