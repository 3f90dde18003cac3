package auth

import (
	"errors"
	"fmt"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
)

// Guard is the access-control facade the handlers talk to. It composes
// header extraction, credential verification, session validation and
// the authorization policy; every method takes the raw authorization
// header value as supplied by the transport.
type Guard struct {
	users    store.UserStore
	verifier *Verifier
	sessions *SessionManager
}

// NewGuard wires the facade.
func NewGuard(users store.UserStore, verifier *Verifier, sessions *SessionManager) *Guard {
	return &Guard{users: users, verifier: verifier, sessions: sessions}
}

// Sessions exposes the underlying session manager (used by tests and
// the signout handler response).
func (g *Guard) Sessions() *SessionManager { return g.sessions }

// SignIn decodes Basic credentials from the header, verifies them and
// issues a new session.
func (g *Guard) SignIn(rawHeader string) (*models.User, *models.Session, error) {
	username, password, err := ExtractBasicCredentials(rawHeader)
	if err != nil {
		return nil, nil, err
	}
	user, err := g.verifier.Verify(username, password)
	if err != nil {
		return nil, nil, err
	}
	session, err := g.sessions.Create(user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// SignOut terminates the session named by the bearer token.
func (g *Guard) SignOut(rawHeader string) (*models.User, *models.Session, error) {
	token, err := ExtractBearerToken(rawHeader)
	if err != nil {
		return nil, nil, err
	}
	session, err := g.sessions.Terminate(token)
	if err != nil {
		return nil, nil, err
	}
	user, err := g.principal(session)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// AuthenticateRead resolves the bearer token to a live session and
// returns its principal. Used by read endpoints where being signed in
// is the only requirement.
func (g *Guard) AuthenticateRead(rawHeader string) (*models.User, error) {
	token, err := ExtractBearerToken(rawHeader)
	if err != nil {
		return nil, err
	}
	session, err := g.sessions.RequireActive(token)
	if err != nil {
		return nil, err
	}
	return g.principal(session)
}

// AuthorizeMutation authenticates the caller and applies the ownership
// rule against the resource owner.
func (g *Guard) AuthorizeMutation(rawHeader string, ownerID uint) (*models.User, error) {
	user, err := g.AuthenticateRead(rawHeader)
	if err != nil {
		return nil, err
	}
	if err := CanMutate(user, ownerID); err != nil {
		return nil, err
	}
	return user, nil
}

// AuthorizeUserDelete authenticates the caller and applies the
// admin-not-self rule against the target account.
func (g *Guard) AuthorizeUserDelete(rawHeader, targetUUID string) (*models.User, error) {
	user, err := g.AuthenticateRead(rawHeader)
	if err != nil {
		return nil, err
	}
	if err := CanDeleteUser(user, targetUUID); err != nil {
		return nil, err
	}
	return user, nil
}

func (g *Guard) principal(session *models.Session) (*models.User, error) {
	user, err := g.users.UserByID(session.UserID)
	if errors.Is(err, store.ErrNotFound) {
		// Session outlived its account; treat like a dead session.
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, fmt.Errorf("look up session principal: %w", err)
	}
	return user, nil
}
