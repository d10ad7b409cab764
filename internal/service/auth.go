package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"feedbackhub-backend/internal/auth"
	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/logger"
	"feedbackhub-backend/internal/repository"
	"feedbackhub-backend/internal/security"
)

var ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthenticated)

type authService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, orgID int32, name, email, password string) (*domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", fmt.Errorf("%w: organization %d", domain.ErrNotFound, orgID)
		}
		return nil, "", fmt.Errorf("failed to load organization: %w", err)
	}
	if !org.IsActive {
		return nil, "", fmt.Errorf("%w: organization is deactivated", domain.ErrForbidden)
	}

	// The bootstrap registration only stands while the org is empty;
	// everyone after the owner joins by invitation.
	count, err := s.userRepo.CountByOrg(ctx, orgID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil, "", fmt.Errorf("%w: organization already has members, request an invitation", domain.ErrConflict)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		OrgID:        orgID,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleOwner,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}
	logger.Info("Owner registered", "org_id", orgID, "user_id", user.ID)

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, orgID int32, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, orgID, email)
	if err != nil {
		// Indistinguishable from a bad password.
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}
	if !security.VerifyPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logger.Warn("Failed to stamp last login", "user_id", user.ID, "error", err)
	} else {
		user.LastLogin = &now
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Me(ctx context.Context, actor auth.Actor) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, actor.OrgID, actor.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account deactivated", domain.ErrUnauthenticated)
	}
	return user, nil
}
