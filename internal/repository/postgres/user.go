package postgres

import (
	"context"
	"database/sql"
	"time"

	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, org_id, email, name, password_hash, role, manager_id, is_active, last_login, created_at`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (org_id, email, name, password_hash, role, manager_id, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	u.IsActive = true
	return r.db.QueryRowContext(ctx, query,
		u.OrgID, u.Email, u.Name, u.PasswordHash, u.Role, u.ManagerID, u.IsActive, time.Now(),
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, orgID, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE org_id = $1 AND id = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, orgID, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, orgID int32, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE org_id = $1 AND LOWER(email) = LOWER($2)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, orgID, email))
}

func (r *userRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE org_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *userRepository) ListByManager(ctx context.Context, orgID, managerID int32) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE org_id = $1 AND manager_id = $2 AND is_active ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, orgID, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *userRepository) CountByOrg(ctx context.Context, orgID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE org_id = $1`, orgID).Scan(&count)
	return count, err
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, name=$2, role=$3, manager_id=$4, is_active=$5 WHERE org_id=$6 AND id=$7`
	_, err := r.db.ExecContext(ctx, query, u.Email, u.Name, u.Role, u.ManagerID, u.IsActive, u.OrgID, u.ID)
	return err
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int32, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login=$1 WHERE id=$2`, at, id)
	return err
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var managerID sql.NullInt32
	var lastLogin sql.NullTime
	err := row.Scan(&u.ID, &u.OrgID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &managerID, &u.IsActive, &lastLogin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	if managerID.Valid {
		id := managerID.Int32
		u.ManagerID = &id
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}

func (r *userRepository) scanMany(rows *sql.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		var u domain.User
		var managerID sql.NullInt32
		var lastLogin sql.NullTime
		if err := rows.Scan(&u.ID, &u.OrgID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &managerID, &u.IsActive, &lastLogin, &u.CreatedAt); err != nil {
			return nil, err
		}
		if managerID.Valid {
			id := managerID.Int32
			u.ManagerID = &id
		}
		if lastLogin.Valid {
			t := lastLogin.Time
			u.LastLogin = &t
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
