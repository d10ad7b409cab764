package repository

import (
	"context"
	"time"

	"feedbackhub-backend/internal/domain"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
}

// UserRepository is org-scoped on every lookup: a user id from another
// organization behaves exactly like a missing row.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, orgID, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, orgID int32, email string) (*domain.User, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.User, error)
	ListByManager(ctx context.Context, orgID, managerID int32) ([]domain.User, error)
	CountByOrg(ctx context.Context, orgID int32) (int32, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateLastLogin(ctx context.Context, id int32, at time.Time) error
}

type InvitationRepository interface {
	Create(ctx context.Context, invite *domain.Invitation) error
	GetByToken(ctx context.Context, token string) (*domain.Invitation, error)
	// GetPendingByEmail returns the unaccepted, unexpired invitation for
	// (org, email), if any. Expired rows do not count.
	GetPendingByEmail(ctx context.Context, orgID int32, email string, now time.Time) (*domain.Invitation, error)
	ListPendingByOrg(ctx context.Context, orgID int32, now time.Time) ([]domain.Invitation, error)
	MarkAccepted(ctx context.Context, id int32, at time.Time) error
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	GetByID(ctx context.Context, orgID, id int32) (*domain.Feedback, error)
	// UpdateContent refreshes the author-owned fields only; acknowledged
	// and employee_comment are never touched by it.
	UpdateContent(ctx context.Context, fb *domain.Feedback) error
	Delete(ctx context.Context, orgID, id int32) error
	ListByEmployee(ctx context.Context, orgID, employeeID int32) ([]domain.Feedback, error)
	ListByManager(ctx context.Context, orgID, managerID int32) ([]domain.Feedback, error)
	SetAcknowledged(ctx context.Context, orgID, id int32) error
	SetEmployeeComment(ctx context.Context, orgID, id int32, comment string) error
}
