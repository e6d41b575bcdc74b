package auth

import (
	"context"
	"testing"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uuid.UUID) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func storedUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &models.User{ID: uuid.New(), Name: "Tester", Email: email, Password: hash}
}

func TestCredentialVerifier_Success(t *testing.T) {
	t.Parallel()

	user := storedUser(t, "user@test.com", "password")
	v := NewCredentialVerifier(&userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, nil
		},
	})

	got, err := v.Verify(context.Background(), "user@test.com", "password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestCredentialVerifier_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	user := storedUser(t, "user@test.com", "password")
	v := NewCredentialVerifier(&userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, nil
		},
	})

	_, wrongPassword := v.Verify(context.Background(), "user@test.com", "nope")
	_, unknownEmail := v.Verify(context.Background(), "nobody@test.com", "password")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword, unknownEmail)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.Equal(t, "Incorrect email or password.", wrongPassword.Error())
}

func TestCredentialVerifier_RepoErrorPassesThrough(t *testing.T) {
	t.Parallel()

	boom := models.NewInternalError(assert.AnError)
	v := NewCredentialVerifier(&userRepoStub{
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, boom
		},
	})

	_, err := v.Verify(context.Background(), "user@test.com", "password")
	assert.ErrorIs(t, err, boom)
}
