package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"feedbackhub-backend/internal/auth"
	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/logger"
	"feedbackhub-backend/internal/repository"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, userRepo repository.UserRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
	}
}

func (s *feedbackService) Create(ctx context.Context, actor auth.Actor, params FeedbackParams) (*domain.Feedback, error) {
	if err := validateContent(params); err != nil {
		return nil, err
	}

	employee, err := s.getUser(ctx, actor.OrgID, params.EmployeeID)
	if err != nil {
		return nil, err
	}
	if err := auth.CanCreateFeedback(actor, employee); err != nil {
		return nil, err
	}

	fb := &domain.Feedback{
		OrgID:        actor.OrgID,
		EmployeeID:   employee.ID,
		ManagerID:    actor.ID,
		Strengths:    strings.TrimSpace(params.Strengths),
		Improvements: strings.TrimSpace(params.Improvements),
		Sentiment:    params.Sentiment,
		Tags:         domain.NormalizeTags(params.Tags),
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	logger.Info("Feedback created", "org_id", fb.OrgID, "feedback_id", fb.ID, "employee_id", fb.EmployeeID, "manager_id", fb.ManagerID)
	return fb, nil
}

func (s *feedbackService) Get(ctx context.Context, actor auth.Actor, id int32) (*domain.Feedback, error) {
	fb, err := s.getFeedback(ctx, actor.OrgID, id)
	if err != nil {
		return nil, err
	}
	employee, _ := s.userRepo.GetByID(ctx, actor.OrgID, fb.EmployeeID)
	if err := auth.CanReadFeedback(actor, fb, employee); err != nil {
		return nil, err
	}
	return fb, nil
}

// Update refreshes the author-owned content only. Acknowledgment and
// the employee's comment survive every edit.
func (s *feedbackService) Update(ctx context.Context, actor auth.Actor, id int32, params FeedbackParams) (*domain.Feedback, error) {
	if err := validateContent(params); err != nil {
		return nil, err
	}

	fb, err := s.getFeedback(ctx, actor.OrgID, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanManageFeedback(actor, fb); err != nil {
		return nil, err
	}

	fb.Strengths = strings.TrimSpace(params.Strengths)
	fb.Improvements = strings.TrimSpace(params.Improvements)
	fb.Sentiment = params.Sentiment
	fb.Tags = domain.NormalizeTags(params.Tags)
	if err := s.feedbackRepo.UpdateContent(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackService) Delete(ctx context.Context, actor auth.Actor, id int32) error {
	fb, err := s.getFeedback(ctx, actor.OrgID, id)
	if err != nil {
		return err
	}
	if err := auth.CanManageFeedback(actor, fb); err != nil {
		return err
	}
	if err := s.feedbackRepo.Delete(ctx, actor.OrgID, id); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	logger.Info("Feedback deleted", "org_id", actor.OrgID, "feedback_id", id, "deleted_by", actor.ID)
	return nil
}

func (s *feedbackService) Received(ctx context.Context, actor auth.Actor) ([]domain.Feedback, error) {
	return s.feedbackRepo.ListByEmployee(ctx, actor.OrgID, actor.ID)
}

// ForEmployee returns an employee's feedback history, scoped by role:
// the employee sees their own, a manager sees a direct report's full
// history or only the items they authored for anyone else, admins and
// owners see everything in-org.
func (s *feedbackService) ForEmployee(ctx context.Context, actor auth.Actor, employeeID int32) ([]domain.Feedback, error) {
	employee, err := s.getUser(ctx, actor.OrgID, employeeID)
	if err != nil {
		return nil, err
	}

	scope := auth.ScopeForHistory(actor)
	switch {
	case scope.All:
		return s.feedbackRepo.ListByEmployee(ctx, actor.OrgID, employee.ID)
	case scope.ManagerID != 0:
		if employee.ManagerID != nil && *employee.ManagerID == actor.ID {
			return s.feedbackRepo.ListByEmployee(ctx, actor.OrgID, employee.ID)
		}
		// Not a direct report: only the rows this manager authored.
		history, err := s.feedbackRepo.ListByEmployee(ctx, actor.OrgID, employee.ID)
		if err != nil {
			return nil, err
		}
		authored := make([]domain.Feedback, 0, len(history))
		for _, fb := range history {
			if fb.ManagerID == actor.ID {
				authored = append(authored, fb)
			}
		}
		if len(authored) == 0 {
			return nil, fmt.Errorf("%w: employee is not a direct report", domain.ErrNotFound)
		}
		return authored, nil
	default:
		if employee.ID != actor.ID {
			return nil, fmt.Errorf("%w: you can only view your own feedback", domain.ErrForbidden)
		}
		return s.feedbackRepo.ListByEmployee(ctx, actor.OrgID, actor.ID)
	}
}

// Acknowledge flips the one-way flag. Re-acknowledging is a no-op
// success, never an error.
func (s *feedbackService) Acknowledge(ctx context.Context, actor auth.Actor, id int32) error {
	fb, err := s.getFeedback(ctx, actor.OrgID, id)
	if err != nil {
		return err
	}
	if err := auth.CanRespondToFeedback(actor, fb); err != nil {
		return err
	}
	if fb.Acknowledged {
		return nil
	}
	if err := s.feedbackRepo.SetAcknowledged(ctx, actor.OrgID, id); err != nil {
		return fmt.Errorf("failed to acknowledge feedback: %w", err)
	}
	return nil
}

// Comment stores the employee's single response. A later comment
// overwrites the earlier one.
func (s *feedbackService) Comment(ctx context.Context, actor auth.Actor, id int32, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}
	fb, err := s.getFeedback(ctx, actor.OrgID, id)
	if err != nil {
		return err
	}
	if err := auth.CanRespondToFeedback(actor, fb); err != nil {
		return err
	}
	if err := s.feedbackRepo.SetEmployeeComment(ctx, actor.OrgID, id, comment); err != nil {
		return fmt.Errorf("failed to store comment: %w", err)
	}
	return nil
}

func (s *feedbackService) ManagerStats(ctx context.Context, actor auth.Actor) (*domain.ManagerStats, error) {
	if err := auth.CanViewTeam(actor); err != nil {
		return nil, err
	}

	team, err := s.userRepo.ListByManager(ctx, actor.OrgID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}
	authored, err := s.feedbackRepo.ListByManager(ctx, actor.OrgID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list authored feedback: %w", err)
	}

	stats := &domain.ManagerStats{
		TotalEmployees: int32(len(team)),
		TotalFeedback:  int32(len(authored)),
		SentimentDistribution: map[string]int32{
			string(domain.SentimentPositive): 0,
			string(domain.SentimentNeutral):  0,
			string(domain.SentimentNegative): 0,
		},
	}
	for _, fb := range authored {
		stats.SentimentDistribution[string(fb.Sentiment)]++
	}
	return stats, nil
}

func validateContent(params FeedbackParams) error {
	if strings.TrimSpace(params.Strengths) == "" || strings.TrimSpace(params.Improvements) == "" {
		return fmt.Errorf("%w: strengths and improvements are required", domain.ErrValidation)
	}
	if !params.Sentiment.Valid() {
		return fmt.Errorf("%w: sentiment must be positive, neutral or negative", domain.ErrValidation)
	}
	return nil
}

func (s *feedbackService) getFeedback(ctx context.Context, orgID, id int32) (*domain.Feedback, error) {
	fb, err := s.feedbackRepo.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: feedback %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackService) getUser(ctx context.Context, orgID, id int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	return user, nil
}
