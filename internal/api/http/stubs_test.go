package http

import (
	"context"

	"feedbackhub-backend/internal/auth"
	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/service"
)

// Function-field stubs for the service interfaces. A nil field means the
// test does not expect that call.

type stubAuthService struct {
	register func(ctx context.Context, orgID int32, name, email, password string) (*domain.User, string, error)
	login    func(ctx context.Context, orgID int32, email, password string) (*domain.User, string, error)
	me       func(ctx context.Context, actor auth.Actor) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, orgID int32, name, email, password string) (*domain.User, string, error) {
	return s.register(ctx, orgID, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, orgID int32, email, password string) (*domain.User, string, error) {
	return s.login(ctx, orgID, email, password)
}

func (s *stubAuthService) Me(ctx context.Context, actor auth.Actor) (*domain.User, error) {
	return s.me(ctx, actor)
}

type stubOrgService struct {
	create     func(ctx context.Context, name, emailDomain string) (*domain.Organization, error)
	list       func(ctx context.Context) ([]domain.Organization, error)
	get        func(ctx context.Context, id int32) (*domain.Organization, error)
	deactivate func(ctx context.Context, actor auth.Actor, id int32) error
}

func (s *stubOrgService) Create(ctx context.Context, name, emailDomain string) (*domain.Organization, error) {
	return s.create(ctx, name, emailDomain)
}

func (s *stubOrgService) List(ctx context.Context) ([]domain.Organization, error) {
	return s.list(ctx)
}

func (s *stubOrgService) Get(ctx context.Context, id int32) (*domain.Organization, error) {
	return s.get(ctx, id)
}

func (s *stubOrgService) Deactivate(ctx context.Context, actor auth.Actor, id int32) error {
	return s.deactivate(ctx, actor, id)
}

type stubInvitationService struct {
	invite      func(ctx context.Context, actor auth.Actor, email string, role domain.Role) (*domain.Invitation, error)
	accept      func(ctx context.Context, token, name, password string) (*domain.User, string, error)
	listPending func(ctx context.Context, actor auth.Actor) ([]domain.Invitation, error)
}

func (s *stubInvitationService) Invite(ctx context.Context, actor auth.Actor, email string, role domain.Role) (*domain.Invitation, error) {
	return s.invite(ctx, actor, email, role)
}

func (s *stubInvitationService) Accept(ctx context.Context, token, name, password string) (*domain.User, string, error) {
	return s.accept(ctx, token, name, password)
}

func (s *stubInvitationService) ListPending(ctx context.Context, actor auth.Actor) ([]domain.Invitation, error) {
	return s.listPending(ctx, actor)
}

type stubUserService struct {
	listUsers     func(ctx context.Context, actor auth.Actor) ([]domain.User, error)
	listEmployees func(ctx context.Context, actor auth.Actor) ([]domain.EmployeeSummary, error)
	getEmployee   func(ctx context.Context, actor auth.Actor, id int32) (*domain.User, error)
	updateUser    func(ctx context.Context, actor auth.Actor, id int32, params service.UpdateUserParams) (*domain.User, error)
}

func (s *stubUserService) ListUsers(ctx context.Context, actor auth.Actor) ([]domain.User, error) {
	return s.listUsers(ctx, actor)
}

func (s *stubUserService) ListEmployees(ctx context.Context, actor auth.Actor) ([]domain.EmployeeSummary, error) {
	return s.listEmployees(ctx, actor)
}

func (s *stubUserService) GetEmployee(ctx context.Context, actor auth.Actor, id int32) (*domain.User, error) {
	return s.getEmployee(ctx, actor, id)
}

func (s *stubUserService) UpdateUser(ctx context.Context, actor auth.Actor, id int32, params service.UpdateUserParams) (*domain.User, error) {
	return s.updateUser(ctx, actor, id, params)
}

type stubFeedbackService struct {
	create       func(ctx context.Context, actor auth.Actor, params service.FeedbackParams) (*domain.Feedback, error)
	get          func(ctx context.Context, actor auth.Actor, id int32) (*domain.Feedback, error)
	update       func(ctx context.Context, actor auth.Actor, id int32, params service.FeedbackParams) (*domain.Feedback, error)
	delete       func(ctx context.Context, actor auth.Actor, id int32) error
	received     func(ctx context.Context, actor auth.Actor) ([]domain.Feedback, error)
	forEmployee  func(ctx context.Context, actor auth.Actor, employeeID int32) ([]domain.Feedback, error)
	acknowledge  func(ctx context.Context, actor auth.Actor, id int32) error
	comment      func(ctx context.Context, actor auth.Actor, id int32, comment string) error
	managerStats func(ctx context.Context, actor auth.Actor) (*domain.ManagerStats, error)
}

func (s *stubFeedbackService) Create(ctx context.Context, actor auth.Actor, params service.FeedbackParams) (*domain.Feedback, error) {
	return s.create(ctx, actor, params)
}

func (s *stubFeedbackService) Get(ctx context.Context, actor auth.Actor, id int32) (*domain.Feedback, error) {
	return s.get(ctx, actor, id)
}

func (s *stubFeedbackService) Update(ctx context.Context, actor auth.Actor, id int32, params service.FeedbackParams) (*domain.Feedback, error) {
	return s.update(ctx, actor, id, params)
}

func (s *stubFeedbackService) Delete(ctx context.Context, actor auth.Actor, id int32) error {
	return s.delete(ctx, actor, id)
}

func (s *stubFeedbackService) Received(ctx context.Context, actor auth.Actor) ([]domain.Feedback, error) {
	return s.received(ctx, actor)
}

func (s *stubFeedbackService) ForEmployee(ctx context.Context, actor auth.Actor, employeeID int32) ([]domain.Feedback, error) {
	return s.forEmployee(ctx, actor, employeeID)
}

func (s *stubFeedbackService) Acknowledge(ctx context.Context, actor auth.Actor, id int32) error {
	return s.acknowledge(ctx, actor, id)
}

func (s *stubFeedbackService) Comment(ctx context.Context, actor auth.Actor, id int32, comment string) error {
	return s.comment(ctx, actor, id, comment)
}

func (s *stubFeedbackService) ManagerStats(ctx context.Context, actor auth.Actor) (*domain.ManagerStats, error) {
	return s.managerStats(ctx, actor)
}
