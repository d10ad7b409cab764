package service

import (
	"context"

	"feedbackhub-backend/internal/auth"
	"feedbackhub-backend/internal/domain"
)

type AuthService interface {
	// Register bootstraps a fresh organization with its first user, who
	// becomes the owner. Rejected once the org has any users.
	Register(ctx context.Context, orgID int32, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, orgID int32, email, password string) (*domain.User, string, error)
	Me(ctx context.Context, actor auth.Actor) (*domain.User, error)
}

type OrganizationService interface {
	Create(ctx context.Context, name, emailDomain string) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
	Get(ctx context.Context, id int32) (*domain.Organization, error)
	Deactivate(ctx context.Context, actor auth.Actor, id int32) error
}

type InvitationService interface {
	Invite(ctx context.Context, actor auth.Actor, email string, role domain.Role) (*domain.Invitation, error)
	Accept(ctx context.Context, token, name, password string) (*domain.User, string, error)
	ListPending(ctx context.Context, actor auth.Actor) ([]domain.Invitation, error)
}

// UpdateUserParams carries the admin-mutable user fields. Nil means
// leave unchanged; ManagerID uses ClearManager to distinguish "unset"
// from "leave alone".
type UpdateUserParams struct {
	Role         *domain.Role
	IsActive     *bool
	ManagerID    *int32
	ClearManager bool
}

type UserService interface {
	ListUsers(ctx context.Context, actor auth.Actor) ([]domain.User, error)
	ListEmployees(ctx context.Context, actor auth.Actor) ([]domain.EmployeeSummary, error)
	GetEmployee(ctx context.Context, actor auth.Actor, id int32) (*domain.User, error)
	UpdateUser(ctx context.Context, actor auth.Actor, id int32, params UpdateUserParams) (*domain.User, error)
}

type FeedbackParams struct {
	EmployeeID   int32
	Strengths    string
	Improvements string
	Sentiment    domain.Sentiment
	Tags         []string
}

type FeedbackService interface {
	Create(ctx context.Context, actor auth.Actor, params FeedbackParams) (*domain.Feedback, error)
	Get(ctx context.Context, actor auth.Actor, id int32) (*domain.Feedback, error)
	Update(ctx context.Context, actor auth.Actor, id int32, params FeedbackParams) (*domain.Feedback, error)
	Delete(ctx context.Context, actor auth.Actor, id int32) error
	Received(ctx context.Context, actor auth.Actor) ([]domain.Feedback, error)
	ForEmployee(ctx context.Context, actor auth.Actor, employeeID int32) ([]domain.Feedback, error)
	Acknowledge(ctx context.Context, actor auth.Actor, id int32) error
	Comment(ctx context.Context, actor auth.Actor, id int32, comment string) error
	ManagerStats(ctx context.Context, actor auth.Actor) (*domain.ManagerStats, error)
}

type EmailService interface {
	SendInvitation(ctx context.Context, email, orgName string, role domain.Role, token, invitedBy string) error
}
