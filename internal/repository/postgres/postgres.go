package postgres

import (
	"database/sql"

	"feedbackhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.OrganizationRepository
	repository.UserRepository
	repository.InvitationRepository
	repository.FeedbackRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		OrganizationRepository: NewOrganizationRepository(db),
		UserRepository:         NewUserRepository(db),
		InvitationRepository:   NewInvitationRepository(db),
		FeedbackRepository:     NewFeedbackRepository(db),
	}
}
