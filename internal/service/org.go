package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"feedbackhub-backend/internal/auth"
	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/repository"
)

type organizationService struct {
	orgRepo repository.OrganizationRepository
}

func NewOrganizationService(orgRepo repository.OrganizationRepository) OrganizationService {
	return &organizationService{orgRepo: orgRepo}
}

func (s *organizationService) Create(ctx context.Context, name, emailDomain string) (*domain.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: organization name is required", domain.ErrValidation)
	}
	org := &domain.Organization{
		Name:   name,
		Domain: strings.TrimSpace(emailDomain),
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) List(ctx context.Context) ([]domain.Organization, error) {
	return s.orgRepo.List(ctx)
}

func (s *organizationService) Get(ctx context.Context, id int32) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: organization %d", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load organization: %w", err)
	}
	return org, nil
}

// Deactivate soft-disables the tenant. Organizations are never hard
// deleted.
func (s *organizationService) Deactivate(ctx context.Context, actor auth.Actor, id int32) error {
	if !auth.SameOrg(actor, id) {
		return domain.ErrNotFound
	}
	if actor.Role != domain.RoleOwner {
		return fmt.Errorf("%w: only the owner may deactivate the organization", domain.ErrForbidden)
	}
	org, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	org.IsActive = false
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return fmt.Errorf("failed to deactivate organization: %w", err)
	}
	return nil
}
