package postgres

import (
	"context"
	"testing"
	"time"

	"feedbackhub-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedbackRows(t *testing.T) *sqlmock.Rows {
	t.Helper()
	return sqlmock.NewRows([]string{
		"id", "org_id", "employee_id", "manager_id", "strengths", "improvements",
		"sentiment", "tags", "acknowledged", "employee_comment", "created_at", "updated_at",
		"e_name", "m_name",
	})
}

func TestFeedbackGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewFeedbackRepository(db)

	now := time.Now()
	rows := newFeedbackRows(t).AddRow(
		100, 10, 5, 20, "Strong writer", "More planning input",
		"positive", []byte(`["communication","planning"]`), false, nil, now, now,
		"Bob", "Alice",
	)

	mock.ExpectQuery(`SELECT (.+) FROM feedback f`).
		WithArgs(int32(10), int32(100)).
		WillReturnRows(rows)

	fb, err := repo.GetByID(context.Background(), 10, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentPositive, fb.Sentiment)
	assert.Equal(t, []string{"communication", "planning"}, fb.Tags)
	assert.Equal(t, "Bob", fb.EmployeeName)
	assert.Equal(t, "Alice", fb.ManagerName)
	assert.Nil(t, fb.EmployeeComment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackGetByID_EmptyTags(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewFeedbackRepository(db)

	now := time.Now()
	rows := newFeedbackRows(t).AddRow(
		100, 10, 5, 20, "s", "i",
		"neutral", []byte(`[]`), true, "Thanks", now, now,
		"Bob", "Alice",
	)

	mock.ExpectQuery(`SELECT (.+) FROM feedback f`).
		WithArgs(int32(10), int32(100)).
		WillReturnRows(rows)

	fb, err := repo.GetByID(context.Background(), 10, 100)
	require.NoError(t, err)
	assert.NotNil(t, fb.Tags)
	assert.Empty(t, fb.Tags)
	require.NotNil(t, fb.EmployeeComment)
	assert.Equal(t, "Thanks", *fb.EmployeeComment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewFeedbackRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO feedback`).
		WithArgs(int32(10), int32(5), int32(20), "Strong writer", "More planning input",
			domain.SentimentPositive, []byte(`["communication"]`), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(100, now, now))

	fb := &domain.Feedback{
		OrgID: 10, EmployeeID: 5, ManagerID: 20,
		Strengths: "Strong writer", Improvements: "More planning input",
		Sentiment: domain.SentimentPositive, Tags: []string{"communication"},
	}
	require.NoError(t, repo.Create(context.Background(), fb))
	assert.Equal(t, int32(100), fb.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackSetAcknowledged(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewFeedbackRepository(db)

	mock.ExpectExec(`UPDATE feedback SET acknowledged=true WHERE org_id=\$1 AND id=\$2`).
		WithArgs(int32(10), int32(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetAcknowledged(context.Background(), 10, 100))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackSetEmployeeComment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewFeedbackRepository(db)

	mock.ExpectExec(`UPDATE feedback SET employee_comment=\$1, updated_at=\$2 WHERE org_id=\$3 AND id=\$4`).
		WithArgs("Thanks, noted.", sqlmock.AnyArg(), int32(10), int32(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetEmployeeComment(context.Background(), 10, 100, "Thanks, noted."))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackListByEmployee(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewFeedbackRepository(db)

	now := time.Now()
	rows := newFeedbackRows(t).
		AddRow(101, 10, 5, 20, "s1", "i1", "positive", []byte(`[]`), false, nil, now, now, "Bob", "Alice").
		AddRow(100, 10, 5, 30, "s2", "i2", "negative", []byte(`[]`), true, nil, now.Add(-time.Hour), now, "Bob", "Dave")

	mock.ExpectQuery(`SELECT (.+) FROM feedback f (.+) WHERE f.org_id = \$1 AND f.employee_id = \$2 ORDER BY f.created_at DESC`).
		WithArgs(int32(10), int32(5)).
		WillReturnRows(rows)

	history, err := repo.ListByEmployee(context.Background(), 10, 5)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int32(101), history[0].ID, "newest first")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewFeedbackRepository(db)

	mock.ExpectExec(`DELETE FROM feedback WHERE org_id=\$1 AND id=\$2`).
		WithArgs(int32(10), int32(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 10, 100))
	assert.NoError(t, mock.ExpectationsWereMet())
}
