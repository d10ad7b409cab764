package postgres

import (
	"context"
	"database/sql"
	"time"

	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/repository"
)

type invitationRepository struct {
	db *sql.DB
}

func NewInvitationRepository(db *sql.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

const invitationColumns = `id, org_id, email, role, token, invited_by, expires_at, accepted_at, created_at`

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `INSERT INTO invitations (org_id, email, role, token, invited_by, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		inv.OrgID, inv.Email, inv.Role, inv.Token, inv.InvitedByID, inv.ExpiresAt, time.Now(),
	).Scan(&inv.ID, &inv.CreatedAt)
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE token = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, token))
}

func (r *invitationRepository) GetPendingByEmail(ctx context.Context, orgID int32, email string, now time.Time) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations
	          WHERE org_id = $1 AND LOWER(email) = LOWER($2) AND accepted_at IS NULL AND expires_at > $3`
	return r.scanOne(r.db.QueryRowContext(ctx, query, orgID, email, now))
}

func (r *invitationRepository) ListPendingByOrg(ctx context.Context, orgID int32, now time.Time) ([]domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations
	          WHERE org_id = $1 AND accepted_at IS NULL AND expires_at > $2 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, *inv)
	}
	return invites, rows.Err()
}

func (r *invitationRepository) MarkAccepted(ctx context.Context, id int32, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE invitations SET accepted_at=$1 WHERE id=$2`, at, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *invitationRepository) scanOne(row *sql.Row) (*domain.Invitation, error) {
	return scanInvitation(row)
}

func scanInvitation(s scanner) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var acceptedAt sql.NullTime
	err := s.Scan(&inv.ID, &inv.OrgID, &inv.Email, &inv.Role, &inv.Token, &inv.InvitedByID, &inv.ExpiresAt, &acceptedAt, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	if acceptedAt.Valid {
		t := acceptedAt.Time
		inv.AcceptedAt = &t
	}
	return inv, nil
}
