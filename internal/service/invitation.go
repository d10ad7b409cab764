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

var (
	ErrInviteExpired = fmt.Errorf("%w: invitation has expired", domain.ErrExpired)
	ErrInviteUsed    = fmt.Errorf("%w: invitation already accepted", domain.ErrConflict)
)

type invitationService struct {
	inviteRepo repository.InvitationRepository
	userRepo   repository.UserRepository
	orgRepo    repository.OrganizationRepository
	emailSvc   EmailService
	tokens     security.TokenManager
	expiry     time.Duration
}

func NewInvitationService(
	inviteRepo repository.InvitationRepository,
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	emailSvc EmailService,
	tokens security.TokenManager,
	expiryHours int,
) InvitationService {
	return &invitationService{
		inviteRepo: inviteRepo,
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		emailSvc:   emailSvc,
		tokens:     tokens,
		expiry:     time.Duration(expiryHours) * time.Hour,
	}
}

func (s *invitationService) Invite(ctx context.Context, actor auth.Actor, email string, role domain.Role) (*domain.Invitation, error) {
	if err := auth.CanManageUsers(actor); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	// Pre-assigning the owner role is itself an owner-role grant.
	if role == domain.RoleOwner && actor.Role != domain.RoleOwner {
		return nil, fmt.Errorf("%w: owner role changes are reserved to owners", domain.ErrForbidden)
	}

	if existing, err := s.userRepo.GetByEmail(ctx, actor.OrgID, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: user already exists in this organization", domain.ErrConflict)
	}

	// One pending (unaccepted, unexpired) invitation per (org, email).
	// An expired leftover does not block a fresh invitation.
	now := time.Now()
	if pending, err := s.inviteRepo.GetPendingByEmail(ctx, actor.OrgID, email, now); err == nil && pending != nil {
		return nil, fmt.Errorf("%w: a pending invitation already exists for %s", domain.ErrConflict, email)
	}

	token, err := security.GenerateInviteToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	inv := &domain.Invitation{
		OrgID:       actor.OrgID,
		Email:       email,
		Role:        role,
		Token:       token,
		InvitedByID: actor.ID,
		ExpiresAt:   now.Add(s.expiry),
	}
	if err := s.inviteRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	// Delivery is best-effort; the invitation row is the source of truth
	// and the token is also returned to the inviting admin.
	org, err := s.orgRepo.GetByID(ctx, actor.OrgID)
	if err == nil {
		inviter, _ := s.userRepo.GetByID(ctx, actor.OrgID, actor.ID)
		inviterName := ""
		if inviter != nil {
			inviterName = inviter.Name
		}
		if err := s.emailSvc.SendInvitation(ctx, email, org.Name, role, token, inviterName); err != nil {
			logger.Warn("Failed to send invitation email", "org_id", actor.OrgID, "email", email, "error", err)
		}
	}

	return inv, nil
}

func (s *invitationService) Accept(ctx context.Context, token, name, password string) (*domain.User, string, error) {
	name = strings.TrimSpace(name)
	if token == "" || name == "" || password == "" {
		return nil, "", fmt.Errorf("%w: token, name and password are required", domain.ErrValidation)
	}

	inv, err := s.inviteRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", fmt.Errorf("%w: invitation", domain.ErrNotFound)
		}
		return nil, "", fmt.Errorf("failed to look up invitation: %w", err)
	}

	switch inv.State(time.Now()) {
	case domain.InvitationAccepted:
		return nil, "", ErrInviteUsed
	case domain.InvitationExpired:
		return nil, "", ErrInviteExpired
	}

	if existing, err := s.userRepo.GetByEmail(ctx, inv.OrgID, inv.Email); err == nil && existing != nil {
		return nil, "", fmt.Errorf("%w: user already exists in this organization", domain.ErrConflict)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		OrgID:        inv.OrgID,
		Email:        inv.Email,
		Name:         name,
		PasswordHash: hash,
		Role:         inv.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	now := time.Now()
	if err := s.inviteRepo.MarkAccepted(ctx, inv.ID, now); err != nil {
		return nil, "", fmt.Errorf("failed to consume invitation: %w", err)
	}
	logger.Info("Invitation accepted", "org_id", inv.OrgID, "user_id", user.ID, "role", user.Role)

	sessionToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, sessionToken, nil
}

func (s *invitationService) ListPending(ctx context.Context, actor auth.Actor) ([]domain.Invitation, error) {
	if err := auth.CanManageUsers(actor); err != nil {
		return nil, err
	}
	return s.inviteRepo.ListPendingByOrg(ctx, actor.OrgID, time.Now())
}
