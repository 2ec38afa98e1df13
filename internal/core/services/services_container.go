package services

import (
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
)

// NewServiceContainer wires every application service from the
// repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, authCfg AuthServiceConfig) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Asset:    NewAssetService(repos.Assets),
		Payment:  NewPaymentService(repos.Payments),
		Employee: NewEmployeeService(repos.Employees),
		Leave:    NewLeaveService(repos.Leaves),
		Planning: NewPlanningService(repos.KRAs, repos.KPIs, repos.Objectives, repos.Projects, repos.Tasks, repos.Risks),
		Calendar: NewCalendarService(repos.Events),
		Auth:     NewAuthService(authCfg),
	}
}
