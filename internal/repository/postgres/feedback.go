package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/repository"
)

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Reads join the employee and manager rows for display names.
const feedbackSelect = `SELECT f.id, f.org_id, f.employee_id, f.manager_id, f.strengths, f.improvements,
	       f.sentiment, f.tags, f.acknowledged, f.employee_comment, f.created_at, f.updated_at,
	       e.name, m.name
	FROM feedback f
	JOIN users e ON e.id = f.employee_id
	JOIN users m ON m.id = f.manager_id`

func (r *feedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	tags, err := json.Marshal(fb.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO feedback (org_id, employee_id, manager_id, strengths, improvements, sentiment, tags, acknowledged, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $8) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		fb.OrgID, fb.EmployeeID, fb.ManagerID, fb.Strengths, fb.Improvements, fb.Sentiment, tags, time.Now(),
	).Scan(&fb.ID, &fb.CreatedAt, &fb.UpdatedAt)
}

func (r *feedbackRepository) GetByID(ctx context.Context, orgID, id int32) (*domain.Feedback, error) {
	query := feedbackSelect + ` WHERE f.org_id = $1 AND f.id = $2`
	return scanFeedback(r.db.QueryRowContext(ctx, query, orgID, id))
}

func (r *feedbackRepository) UpdateContent(ctx context.Context, fb *domain.Feedback) error {
	tags, err := json.Marshal(fb.Tags)
	if err != nil {
		return err
	}
	query := `UPDATE feedback SET strengths=$1, improvements=$2, sentiment=$3, tags=$4, updated_at=$5
	          WHERE org_id=$6 AND id=$7`
	fb.UpdatedAt = time.Now()
	_, err = r.db.ExecContext(ctx, query, fb.Strengths, fb.Improvements, fb.Sentiment, tags, fb.UpdatedAt, fb.OrgID, fb.ID)
	return err
}

func (r *feedbackRepository) Delete(ctx context.Context, orgID, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM feedback WHERE org_id=$1 AND id=$2`, orgID, id)
	return err
}

func (r *feedbackRepository) ListByEmployee(ctx context.Context, orgID, employeeID int32) ([]domain.Feedback, error) {
	query := feedbackSelect + ` WHERE f.org_id = $1 AND f.employee_id = $2 ORDER BY f.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeedbackRows(rows)
}

func (r *feedbackRepository) ListByManager(ctx context.Context, orgID, managerID int32) ([]domain.Feedback, error) {
	query := feedbackSelect + ` WHERE f.org_id = $1 AND f.manager_id = $2 ORDER BY f.created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeedbackRows(rows)
}

func (r *feedbackRepository) SetAcknowledged(ctx context.Context, orgID, id int32) error {
	// One-way transition; re-running is a no-op.
	_, err := r.db.ExecContext(ctx, `UPDATE feedback SET acknowledged=true WHERE org_id=$1 AND id=$2`, orgID, id)
	return err
}

func (r *feedbackRepository) SetEmployeeComment(ctx context.Context, orgID, id int32, comment string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE feedback SET employee_comment=$1, updated_at=$2 WHERE org_id=$3 AND id=$4`,
		comment, time.Now(), orgID, id)
	return err
}

func scanFeedback(row *sql.Row) (*domain.Feedback, error) {
	fb, err := scanFeedbackFrom(row)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

func scanFeedbackRows(rows *sql.Rows) ([]domain.Feedback, error) {
	var out []domain.Feedback
	for rows.Next() {
		fb, err := scanFeedbackFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *fb)
	}
	return out, rows.Err()
}

func scanFeedbackFrom(s scanner) (*domain.Feedback, error) {
	fb := &domain.Feedback{}
	var tags []byte
	var comment sql.NullString
	err := s.Scan(&fb.ID, &fb.OrgID, &fb.EmployeeID, &fb.ManagerID, &fb.Strengths, &fb.Improvements,
		&fb.Sentiment, &tags, &fb.Acknowledged, &comment, &fb.CreatedAt, &fb.UpdatedAt,
		&fb.EmployeeName, &fb.ManagerName)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &fb.Tags); err != nil {
			return nil, err
		}
	}
	if fb.Tags == nil {
		fb.Tags = []string{}
	}
	if comment.Valid {
		c := comment.String
		fb.EmployeeComment = &c
	}
	return fb, nil
}
