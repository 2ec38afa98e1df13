package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nimbusworks/intranet_portal_app/internal/apperrors"
	"github.com/nimbusworks/intranet_portal_app/internal/core/domain"
	portssvc "github.com/nimbusworks/intranet_portal_app/internal/core/ports/services"
	"github.com/nimbusworks/intranet_portal_app/internal/core/services"
	"github.com/nimbusworks/intranet_portal_app/internal/dto"
)

// --- Mock LeaveRepository ---
type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) Open(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLeaveRepository) List(ctx context.Context, actor domain.Actor) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) Add(ctx context.Context, record map[string]any) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) Update(ctx context.Context, id string, record map[string]any) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, id, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) SoftDelete(ctx context.Context, id string, actorEmail string) error {
	args := m.Called(ctx, id, actorEmail)
	return args.Error(0)
}

func (m *MockLeaveRepository) Restore(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) HardDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeaveRepository) AdvanceStage(ctx context.Context, id string, step int, approver string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, id, step, approver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) RejectRequest(ctx context.Context, id string, approver string, reason string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, id, approver, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

// --- Test Suite ---
type LeaveServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLeaveRepository
	service  portssvc.LeaveSvcFacade

	manager domain.Actor
	member  domain.Actor
}

func (suite *LeaveServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLeaveRepository)
	suite.service = services.NewLeaveService(suite.mockRepo)
	suite.manager = domain.Actor{Email: "manager@nimbusworks.example", Name: "Dana Osei", Role: domain.RoleManager}
	suite.member = domain.Actor{Email: "member@nimbusworks.example", Name: "Jordan Reyes", Role: domain.RoleMember}
}

// --- Test Cases ---

func (suite *LeaveServiceTestSuite) TestCreateLeave_RequesterComesFromActor() {
	ctx := context.Background()
	req := dto.CreateLeaveRequest{
		RequestNumber: "LR-2026-031",
		LeaveType:     "Annual",
		StartDate:     "2026-10-01",
		EndDate:       "2026-10-05",
		Days:          5,
	}
	created := &domain.LeaveRequest{LeaveID: "9", RequestNumber: req.RequestNumber, RequesterEmail: suite.member.Email}

	suite.mockRepo.On("Add", ctx, mock.MatchedBy(func(record map[string]any) bool {
		return record["requester_email"] == suite.member.Email && record["requester_name"] == suite.member.Name
	})).Return(created, nil).Once()

	leave, err := suite.service.CreateLeave(ctx, suite.member, req)

	suite.Require().NoError(err)
	suite.Equal(suite.member.Email, leave.RequesterEmail)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestAdvanceLeave_MemberForbidden() {
	ctx := context.Background()

	_, err := suite.service.AdvanceLeave(ctx, suite.member, "9")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "AdvanceStage")
}

func (suite *LeaveServiceTestSuite) TestAdvanceLeave_PassesCurrentStep() {
	ctx := context.Background()
	pending := &domain.LeaveRequest{LeaveID: "9", Status: domain.LeaveStatusPending, CurrentStep: domain.LeaveStepDirector}
	advanced := &domain.LeaveRequest{LeaveID: "9", Status: domain.LeaveStatusPending, CurrentStep: domain.LeaveStepHR}

	suite.mockRepo.On("FindByID", ctx, "9").Return(pending, nil).Once()
	suite.mockRepo.On("AdvanceStage", ctx, "9", domain.LeaveStepDirector, suite.manager.Email).Return(advanced, nil).Once()

	leave, err := suite.service.AdvanceLeave(ctx, suite.manager, "9")

	suite.Require().NoError(err)
	suite.Equal(domain.LeaveStepHR, leave.CurrentStep)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestAdvanceLeave_AlreadyDecidedIsValidationError() {
	ctx := context.Background()
	approved := &domain.LeaveRequest{LeaveID: "9", Status: domain.LeaveStatusApproved, CurrentStep: domain.LeaveStepHR}

	suite.mockRepo.On("FindByID", ctx, "9").Return(approved, nil).Once()

	_, err := suite.service.AdvanceLeave(ctx, suite.manager, "9")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "already Approved")
	suite.mockRepo.AssertNotCalled(suite.T(), "AdvanceStage")
}

func (suite *LeaveServiceTestSuite) TestAdvanceLeave_BeyondFinalStageIsValidationError() {
	ctx := context.Background()
	exhausted := &domain.LeaveRequest{LeaveID: "9", Status: domain.LeaveStatusPending, CurrentStep: domain.LeaveStepHR + 1}

	suite.mockRepo.On("FindByID", ctx, "9").Return(exhausted, nil).Once()

	_, err := suite.service.AdvanceLeave(ctx, suite.manager, "9")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AdvanceStage")
}

func (suite *LeaveServiceTestSuite) TestAdvanceLeave_DeletedRequestNotFound() {
	ctx := context.Background()
	deleted := &domain.LeaveRequest{LeaveID: "9", Status: domain.LeaveStatusPending}
	deleted.IsDeleted = true

	suite.mockRepo.On("FindByID", ctx, "9").Return(deleted, nil).Once()

	_, err := suite.service.AdvanceLeave(ctx, suite.manager, "9")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LeaveServiceTestSuite) TestRejectLeave_Success() {
	ctx := context.Background()
	pending := &domain.LeaveRequest{LeaveID: "9", Status: domain.LeaveStatusPending, CurrentStep: domain.LeaveStepManager}
	rejected := &domain.LeaveRequest{LeaveID: "9", Status: domain.LeaveStatusRejected, RejectionReason: "coverage gap"}

	suite.mockRepo.On("FindByID", ctx, "9").Return(pending, nil).Once()
	suite.mockRepo.On("RejectRequest", ctx, "9", suite.manager.Email, "coverage gap").Return(rejected, nil).Once()

	leave, err := suite.service.RejectLeave(ctx, suite.manager, "9", "coverage gap")

	suite.Require().NoError(err)
	suite.Equal(domain.LeaveStatusRejected, leave.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestRejectLeave_AlreadyRejectedIsValidationError() {
	ctx := context.Background()
	already := &domain.LeaveRequest{LeaveID: "9", Status: domain.LeaveStatusRejected}

	suite.mockRepo.On("FindByID", ctx, "9").Return(already, nil).Once()

	_, err := suite.service.RejectLeave(ctx, suite.manager, "9", "again")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "RejectRequest")
}

// --- Run Suite ---
func TestLeaveService(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}
