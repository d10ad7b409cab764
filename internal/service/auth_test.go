package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"feedbackhub-backend/internal/auth"
	"feedbackhub-backend/internal/domain"
	"feedbackhub-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*MockUserRepo, *MockOrganizationRepo, AuthService) {
	userRepo := new(MockUserRepo)
	orgRepo := new(MockOrganizationRepo)
	tokens := security.NewTokenManager("auth-test-secret-0123456789abcdef01", 30)
	return userRepo, orgRepo, NewAuthService(userRepo, orgRepo, tokens)
}

func TestRegister_BootstrapsOwner(t *testing.T) {
	userRepo, orgRepo, svc := newAuthFixture()

	orgRepo.On("GetByID", mock.Anything, int32(10)).Return(&domain.Organization{ID: 10, Name: "Acme", IsActive: true}, nil)
	userRepo.On("CountByOrg", mock.Anything, int32(10)).Return(int32(0), nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 1
	}).Return(nil)

	user, token, err := svc.Register(context.Background(), 10, "Alice", "alice@acme.test", "hunter2-hunter2")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, user.Role, "first user becomes owner")
	assert.NotEmpty(t, token)
	assert.True(t, security.VerifyPassword(user.PasswordHash, "hunter2-hunter2"))
}

func TestRegister_RejectedOncePopulated(t *testing.T) {
	userRepo, orgRepo, svc := newAuthFixture()

	orgRepo.On("GetByID", mock.Anything, int32(10)).Return(&domain.Organization{ID: 10, Name: "Acme", IsActive: true}, nil)
	userRepo.On("CountByOrg", mock.Anything, int32(10)).Return(int32(3), nil)

	_, _, err := svc.Register(context.Background(), 10, "Mallory", "mallory@acme.test", "hunter2-hunter2")
	assert.ErrorIs(t, err, domain.ErrConflict)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_UnknownOrg(t *testing.T) {
	_, orgRepo, svc := newAuthFixture()

	orgRepo.On("GetByID", mock.Anything, int32(99)).Return(nil, sql.ErrNoRows)

	_, _, err := svc.Register(context.Background(), 99, "Alice", "alice@acme.test", "hunter2-hunter2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_DeactivatedOrg(t *testing.T) {
	_, orgRepo, svc := newAuthFixture()

	orgRepo.On("GetByID", mock.Anything, int32(10)).Return(&domain.Organization{ID: 10, Name: "Acme", IsActive: false}, nil)

	_, _, err := svc.Register(context.Background(), 10, "Alice", "alice@acme.test", "hunter2-hunter2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_Validation(t *testing.T) {
	_, _, svc := newAuthFixture()

	_, _, err := svc.Register(context.Background(), 10, "  ", "alice@acme.test", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = svc.Register(context.Background(), 10, "Alice", "", "pw")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           1,
		OrgID:        10,
		Email:        "alice@acme.test",
		Name:         "Alice",
		PasswordHash: hash,
		Role:         domain.RoleOwner,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	userRepo, _, svc := newAuthFixture()
	stored := activeUser(t, "hunter2-hunter2")

	userRepo.On("GetByEmail", mock.Anything, int32(10), "alice@acme.test").Return(stored, nil)
	userRepo.On("UpdateLastLogin", mock.Anything, int32(1), mock.AnythingOfType("time.Time")).Return(nil)

	user, token, err := svc.Login(context.Background(), 10, "alice@acme.test", "hunter2-hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, user.LastLogin)
	assert.WithinDuration(t, time.Now(), *user.LastLogin, time.Minute)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	userRepo, _, svc := newAuthFixture()
	stored := activeUser(t, "hunter2-hunter2")
	inactive := activeUser(t, "hunter2-hunter2")
	inactive.IsActive = false

	userRepo.On("GetByEmail", mock.Anything, int32(10), "alice@acme.test").Return(stored, nil)
	userRepo.On("GetByEmail", mock.Anything, int32(10), "ghost@acme.test").Return(nil, sql.ErrNoRows)
	userRepo.On("GetByEmail", mock.Anything, int32(10), "gone@acme.test").Return(inactive, nil)

	_, _, badPassword := svc.Login(context.Background(), 10, "alice@acme.test", "wrong")
	_, _, unknownUser := svc.Login(context.Background(), 10, "ghost@acme.test", "hunter2-hunter2")
	_, _, deactivated := svc.Login(context.Background(), 10, "gone@acme.test", "hunter2-hunter2")

	for _, err := range []error{badPassword, unknownUser, deactivated} {
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
		assert.Equal(t, ErrInvalidCredentials.Error(), err.Error())
	}
}

func TestLogin_LastLoginStampIsBestEffort(t *testing.T) {
	userRepo, _, svc := newAuthFixture()
	stored := activeUser(t, "hunter2-hunter2")

	userRepo.On("GetByEmail", mock.Anything, int32(10), "alice@acme.test").Return(stored, nil)
	userRepo.On("UpdateLastLogin", mock.Anything, int32(1), mock.AnythingOfType("time.Time")).Return(assert.AnError)

	_, token, err := svc.Login(context.Background(), 10, "alice@acme.test", "hunter2-hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestMe(t *testing.T) {
	userRepo, _, svc := newAuthFixture()
	actor := auth.Actor{ID: 1, OrgID: 10, Role: domain.RoleOwner}

	t.Run("Active", func(t *testing.T) {
		stored := activeUser(t, "hunter2-hunter2")
		userRepo.On("GetByID", mock.Anything, int32(10), int32(1)).Return(stored, nil).Once()

		user, err := svc.Me(context.Background(), actor)
		require.NoError(t, err)
		assert.Equal(t, "alice@acme.test", user.Email)
	})

	t.Run("Deactivated", func(t *testing.T) {
		stored := activeUser(t, "hunter2-hunter2")
		stored.IsActive = false
		userRepo.On("GetByID", mock.Anything, int32(10), int32(1)).Return(stored, nil).Once()

		_, err := svc.Me(context.Background(), actor)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}
