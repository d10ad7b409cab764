package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedbackhub-backend/internal/auth"
	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/repository"
)

type userService struct {
	userRepo     repository.UserRepository
	feedbackRepo repository.FeedbackRepository
}

func NewUserService(userRepo repository.UserRepository, feedbackRepo repository.FeedbackRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *userService) ListUsers(ctx context.Context, actor auth.Actor) ([]domain.User, error) {
	if err := auth.CanManageUsers(actor); err != nil {
		return nil, err
	}
	return s.userRepo.ListByOrg(ctx, actor.OrgID)
}

// ListEmployees returns the actor's visible team with feedback
// aggregates: direct reports for a manager, every active user for
// admins and owners.
func (s *userService) ListEmployees(ctx context.Context, actor auth.Actor) ([]domain.EmployeeSummary, error) {
	if err := auth.CanViewTeam(actor); err != nil {
		return nil, err
	}

	var team []domain.User
	var err error
	if auth.CanManageUsers(actor) == nil {
		team, err = s.userRepo.ListByOrg(ctx, actor.OrgID)
	} else {
		team, err = s.userRepo.ListByManager(ctx, actor.OrgID, actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}

	summaries := make([]domain.EmployeeSummary, 0, len(team))
	for _, member := range team {
		if member.ID == actor.ID || !member.IsActive {
			continue
		}
		summary := domain.EmployeeSummary{
			ID:    member.ID,
			Name:  member.Name,
			Email: member.Email,
			// No feedback yet reads as neutral, not negative.
			AvgSentiment: 0.5,
		}
		history, err := s.feedbackRepo.ListByEmployee(ctx, actor.OrgID, member.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load feedback for employee %d: %w", member.ID, err)
		}
		if len(history) > 0 {
			summary.FeedbackCount = int32(len(history))
			latest := history[0].CreatedAt
			summary.LastFeedbackDate = &latest
			var total float64
			for _, fb := range history {
				total += fb.Sentiment.Score()
			}
			summary.AvgSentiment = total / float64(len(history))
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *userService) GetEmployee(ctx context.Context, actor auth.Actor, id int32) (*domain.User, error) {
	target, err := s.getUser(ctx, actor.OrgID, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanViewEmployee(actor, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *userService) UpdateUser(ctx context.Context, actor auth.Actor, id int32, params UpdateUserParams) (*domain.User, error) {
	target, err := s.getUser(ctx, actor.OrgID, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanManageUsers(actor); err != nil {
		return nil, err
	}

	if params.Role != nil {
		newRole := *params.Role
		if !newRole.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, newRole)
		}
		if err := auth.CanSetRole(actor, target, newRole); err != nil {
			return nil, err
		}
		target.Role = newRole
	}

	if params.IsActive != nil {
		if target.Role == domain.RoleOwner && actor.Role != domain.RoleOwner {
			return nil, fmt.Errorf("%w: owner accounts are managed by owners", domain.ErrForbidden)
		}
		target.IsActive = *params.IsActive
	}

	if params.ClearManager {
		target.ManagerID = nil
	} else if params.ManagerID != nil {
		managerID := *params.ManagerID
		if managerID == target.ID {
			return nil, fmt.Errorf("%w: a user cannot manage themselves", domain.ErrValidation)
		}
		manager, err := s.getUser(ctx, actor.OrgID, managerID)
		if err != nil {
			return nil, err
		}
		if !manager.Role.CanManageReports() {
			return nil, fmt.Errorf("%w: role %s cannot hold reports", domain.ErrValidation, manager.Role)
		}
		target.ManagerID = &managerID
	}

	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return target, nil
}

func (s *userService) getUser(ctx context.Context, orgID, id int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
