package service

import (
	"context"
	"time"

	"feedbackhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Testify mocks for the repository interfaces and the email service.
// Shared by the service tests in this package.

type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepo) List(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrganizationRepo) Update(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, orgID, id int32) (*domain.User, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, orgID int32, email string) (*domain.User, error) {
	args := m.Called(ctx, orgID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) ListByOrg(ctx context.Context, orgID int32) ([]domain.User, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) ListByManager(ctx context.Context, orgID, managerID int32) ([]domain.User, error) {
	args := m.Called(ctx, orgID, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) CountByOrg(ctx context.Context, orgID int32) (int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateLastLogin(ctx context.Context, id int32, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type MockInvitationRepo struct {
	mock.Mock
}

func (m *MockInvitationRepo) Create(ctx context.Context, invite *domain.Invitation) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}

func (m *MockInvitationRepo) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepo) GetPendingByEmail(ctx context.Context, orgID int32, email string, now time.Time) (*domain.Invitation, error) {
	args := m.Called(ctx, orgID, email, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepo) ListPendingByOrg(ctx context.Context, orgID int32, now time.Time) ([]domain.Invitation, error) {
	args := m.Called(ctx, orgID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invitation), args.Error(1)
}

func (m *MockInvitationRepo) MarkAccepted(ctx context.Context, id int32, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *MockFeedbackRepo) GetByID(ctx context.Context, orgID, id int32) (*domain.Feedback, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) UpdateContent(ctx context.Context, fb *domain.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *MockFeedbackRepo) Delete(ctx context.Context, orgID, id int32) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockFeedbackRepo) ListByEmployee(ctx context.Context, orgID, employeeID int32) ([]domain.Feedback, error) {
	args := m.Called(ctx, orgID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) ListByManager(ctx context.Context, orgID, managerID int32) ([]domain.Feedback, error) {
	args := m.Called(ctx, orgID, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) SetAcknowledged(ctx context.Context, orgID, id int32) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

func (m *MockFeedbackRepo) SetEmployeeComment(ctx context.Context, orgID, id int32, comment string) error {
	args := m.Called(ctx, orgID, id, comment)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInvitation(ctx context.Context, email, orgName string, role domain.Role, token, invitedBy string) error {
	args := m.Called(ctx, email, orgName, role, token, invitedBy)
	return args.Error(0)
}
