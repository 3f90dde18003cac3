package auth

import (
	"errors"
	"fmt"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
)

// Verifier checks a presented username/password pair against the
// stored salted hash. It has no side effects beyond the user lookup.
type Verifier struct {
	users store.UserStore
}

// NewVerifier builds a Verifier over the given user store.
func NewVerifier(users store.UserStore) *Verifier {
	return &Verifier{users: users}
}

// Verify returns the user when the credentials match. Unknown username
// and wrong password are the same failure so callers cannot tell which
// one it was.
func (v *Verifier) Verify(username, password string) (*models.User, error) {
	user, err := v.users.UserByUsername(username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if !CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
