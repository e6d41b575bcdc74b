package auth

import (
	"context"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single error both failure paths of Verify
// return. The wording never distinguishes an unknown email from a wrong
// password.
var ErrInvalidCredentials = models.NewUnauthorizedError("Incorrect email or password.")

// dummyHash is compared against when the email is unknown so both failure
// paths pay the bcrypt cost.
var dummyHash []byte

func init() {
	h, err := bcrypt.GenerateFromPassword([]byte("credential-verifier-pad"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	dummyHash = h
}

// CredentialVerifier checks a submitted email/password pair against the
// stored user records.
type CredentialVerifier struct {
	users repository.UserRepository
}

// NewCredentialVerifier returns a verifier backed by the given user store.
func NewCredentialVerifier(users repository.UserRepository) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

// Verify returns the user whose credentials match, or ErrInvalidCredentials.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (*models.User, error) {
	user, err := v.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// HashPassword returns the bcrypt hash stored for a user password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return string(h), nil
}
