package postgres

import (
	"context"
	"database/sql"
	"time"

	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	query := `INSERT INTO organizations (name, domain, is_active, created_at)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	o.IsActive = true
	return r.db.QueryRowContext(ctx, query, o.Name, nullString(o.Domain), o.IsActive, time.Now()).Scan(&o.ID, &o.CreatedAt)
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	o := &domain.Organization{}
	query := `SELECT id, name, COALESCE(domain, ''), is_active, created_at FROM organizations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.Domain, &o.IsActive, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, COALESCE(domain, ''), is_active, created_at FROM organizations WHERE is_active ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Domain, &o.IsActive, &o.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (r *organizationRepository) Update(ctx context.Context, o *domain.Organization) error {
	query := `UPDATE organizations SET name=$1, domain=$2, is_active=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, o.Name, nullString(o.Domain), o.IsActive, o.ID)
	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
