package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portsrepo "github.com/nimbusworks/intranet_portal_app/internal/core/ports/repositories"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/core/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// MockPlanningRepository is a generic mock shared by the six planning
// repositories; they have no methods beyond the CRUD contract.
type MockPlanningRepository[T portsrepo.Record] struct {
	mock.Mock
}

func (m *MockPlanningRepository[T]) Open(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlanningRepository[T]) List(ctx context.Context, actor domain.Actor) ([]T, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockPlanningRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockPlanningRepository[T]) Add(ctx context.Context, record map[string]any) (*T, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockPlanningRepository[T]) Update(ctx context.Context, id string, record map[string]any) (*T, error) {
	args := m.Called(ctx, id, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockPlanningRepository[T]) SoftDelete(ctx context.Context, id string, actorEmail string) error {
	args := m.Called(ctx, id, actorEmail)
	return args.Error(0)
}

func (m *MockPlanningRepository[T]) Restore(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockPlanningRepository[T]) HardDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type PlanningServiceTestSuite struct {
	suite.Suite
	kras       *MockPlanningRepository[domain.KRA]
	kpis       *MockPlanningRepository[domain.KPI]
	objectives *MockPlanningRepository[domain.Objective]
	projects   *MockPlanningRepository[domain.Project]
	tasks      *MockPlanningRepository[domain.Task]
	risks      *MockPlanningRepository[domain.Risk]
	service    portssvc.PlanningSvcFacade

	admin  domain.Actor
	member domain.Actor
}

func (suite *PlanningServiceTestSuite) SetupTest() {
	suite.kras = new(MockPlanningRepository[domain.KRA])
	suite.kpis = new(MockPlanningRepository[domain.KPI])
	suite.objectives = new(MockPlanningRepository[domain.Objective])
	suite.projects = new(MockPlanningRepository[domain.Project])
	suite.tasks = new(MockPlanningRepository[domain.Task])
	suite.risks = new(MockPlanningRepository[domain.Risk])
	suite.service = services.NewPlanningService(
		suite.kras, suite.kpis, suite.objectives, suite.projects, suite.tasks, suite.risks)
	suite.admin = domain.Actor{Email: "admin@nimbusworks.example", Role: domain.RoleAdmin}
	suite.member = domain.Actor{Email: "member@nimbusworks.example", Role: domain.RoleMember}
}

func (suite *PlanningServiceTestSuite) expectLists(
	kras []domain.KRA, kpis []domain.KPI, objectives []domain.Objective,
	projects []domain.Project, tasks []domain.Task, risks []domain.Risk,
) {
	suite.kras.On("List", mock.Anything, suite.admin).Return(kras, nil).Once()
	suite.kpis.On("List", mock.Anything, suite.admin).Return(kpis, nil).Once()
	suite.objectives.On("List", mock.Anything, suite.admin).Return(objectives, nil).Once()
	suite.projects.On("List", mock.Anything, suite.admin).Return(projects, nil).Once()
	suite.tasks.On("List", mock.Anything, suite.admin).Return(tasks, nil).Once()
	suite.risks.On("List", mock.Anything, suite.admin).Return(risks, nil).Once()
}

// --- Test Cases ---

func (suite *PlanningServiceTestSuite) TestCreateKRA_OwnerDefaultsToActor() {
	ctx := context.Background()
	created := &domain.KRA{KRAID: "1", Title: "Customer Satisfaction", OwnerEmail: suite.member.Email}

	suite.kras.On("Add", ctx, mock.MatchedBy(func(record map[string]any) bool {
		return record["owner_email"] == suite.member.Email
	})).Return(created, nil).Once()

	kra, err := suite.service.CreateKRA(ctx, suite.member, dto.CreateKRARequest{Title: "Customer Satisfaction"})

	suite.Require().NoError(err)
	suite.Equal(suite.member.Email, kra.OwnerEmail)
	suite.kras.AssertExpectations(suite.T())
}

func (suite *PlanningServiceTestSuite) TestCreateKRA_ExplicitOwnerKept() {
	ctx := context.Background()
	created := &domain.KRA{KRAID: "1", OwnerEmail: "dana@nimbusworks.example"}

	suite.kras.On("Add", ctx, mock.MatchedBy(func(record map[string]any) bool {
		return record["owner_email"] == "dana@nimbusworks.example"
	})).Return(created, nil).Once()

	_, err := suite.service.CreateKRA(ctx, suite.member, dto.CreateKRARequest{
		Title:      "Customer Satisfaction",
		OwnerEmail: "dana@nimbusworks.example",
	})

	suite.Require().NoError(err)
	suite.kras.AssertExpectations(suite.T())
}

func (suite *PlanningServiceTestSuite) TestGetTaskByID_InvisibleReportsNotFound() {
	ctx := context.Background()
	task := &domain.Task{TaskID: "5", AssigneeEmail: "someone-else@nimbusworks.example"}

	suite.tasks.On("FindByID", ctx, "5").Return(task, nil).Once()

	_, err := suite.service.GetTaskByID(ctx, suite.member, "5")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PlanningServiceTestSuite) TestPurgeRisk_AdminOnly() {
	ctx := context.Background()

	err := suite.service.PurgeRisk(ctx, suite.member, "3")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.risks.AssertNotCalled(suite.T(), "HardDelete")
}

func (suite *PlanningServiceTestSuite) TestGetOverview_AssemblesHierarchy() {
	ctx := context.Background()
	suite.expectLists(
		[]domain.KRA{{KRAID: "k1", Title: "Customer Satisfaction"}},
		[]domain.KPI{{KPIID: "i1", Title: "NPS", KRA: domain.Ref{ID: "k1"}}},
		[]domain.Objective{{ObjectiveID: "o1", Title: "Self-service portal", KRA: domain.Ref{ID: "k1"}}},
		[]domain.Project{{ProjectID: "p1", Title: "Portal Phase 1", Objective: domain.Ref{ID: "o1"}}},
		[]domain.Task{{TaskID: "t1", Title: "Build login flow", Project: domain.Ref{ID: "p1"}}},
		[]domain.Risk{{RiskID: "r1", Title: "API deprecation", Project: domain.Ref{ID: "p1"}}},
	)

	overview, err := suite.service.GetOverview(ctx, suite.admin)

	suite.Require().NoError(err)
	suite.Require().Len(overview.KRAs, 1)
	kra := overview.KRAs[0]
	suite.Equal("Customer Satisfaction", kra.KRA.Title)
	suite.Require().Len(kra.KPIs, 1)
	suite.Equal("NPS", kra.KPIs[0].Title)
	suite.Require().Len(kra.Objectives, 1)
	objective := kra.Objectives[0]
	suite.Equal("Self-service portal", objective.Objective.Title)
	suite.Require().Len(objective.Projects, 1)
	project := objective.Projects[0]
	suite.Equal("Portal Phase 1", project.Project.Title)
	suite.Require().Len(project.Tasks, 1)
	suite.Equal("Build login flow", project.Tasks[0].Title)
	suite.Require().Len(project.Risks, 1)
	suite.Equal("API deprecation", project.Risks[0].Title)
}

func (suite *PlanningServiceTestSuite) TestGetOverview_DanglingRefsGetPlaceholders() {
	ctx := context.Background()
	suite.expectLists(
		[]domain.KRA{},
		[]domain.KPI{},
		[]domain.Objective{},
		[]domain.Project{},
		[]domain.Task{{TaskID: "t1", Title: "Orphan task", Project: domain.Ref{ID: "p-gone"}}},
		[]domain.Risk{},
	)

	overview, err := suite.service.GetOverview(ctx, suite.admin)

	suite.Require().NoError(err)
	suite.Require().Len(overview.KRAs, 1, "a placeholder chain is synthesized up to the root")
	kra := overview.KRAs[0]
	suite.Equal("Unknown", kra.KRA.Title)
	suite.Require().Len(kra.Objectives, 1)
	suite.Equal("Unknown", kra.Objectives[0].Objective.Title)
	suite.Require().Len(kra.Objectives[0].Projects, 1)
	project := kra.Objectives[0].Projects[0]
	suite.Equal("Unknown", project.Project.Title)
	suite.Require().Len(project.Tasks, 1)
	suite.Equal("Orphan task", project.Tasks[0].Title)
}

func (suite *PlanningServiceTestSuite) TestGetOverview_ListErrorPropagates() {
	suite.kras.On("List", mock.Anything, suite.admin).Return(nil, apperrors.ErrFetch).Maybe()
	suite.kpis.On("List", mock.Anything, suite.admin).Return([]domain.KPI{}, nil).Maybe()
	suite.objectives.On("List", mock.Anything, suite.admin).Return([]domain.Objective{}, nil).Maybe()
	suite.projects.On("List", mock.Anything, suite.admin).Return(nil, apperrors.ErrFetch).Once()
	suite.tasks.On("List", mock.Anything, suite.admin).Return([]domain.Task{}, nil).Maybe()
	suite.risks.On("List", mock.Anything, suite.admin).Return([]domain.Risk{}, nil).Maybe()

	overview, err := suite.service.GetOverview(context.Background(), suite.admin)

	suite.Require().Error(err)
	suite.Nil(overview)
	suite.ErrorIs(err, apperrors.ErrFetch)
}

// --- Run Suite ---
func TestPlanningService(t *testing.T) {
	suite.Run(t, new(PlanningServiceTestSuite))
}
