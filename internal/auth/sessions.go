package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
)

// DefaultSessionTTL is the session lifetime applied when the config
// does not override it.
const DefaultSessionTTL = 8 * time.Hour

// SessionManager issues, resolves and terminates login sessions. The
// clock is injectable for expiry tests.
type SessionManager struct {
	sessions store.SessionStore
	signer   *Signer
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionManager builds a SessionManager. A non-positive ttl falls
// back to DefaultSessionTTL.
func NewSessionManager(sessions store.SessionStore, signer *Signer, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		sessions: sessions,
		signer:   signer,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a fresh session for the user. Repeated logins create
// independent, simultaneously valid sessions.
func (m *SessionManager) Create(user *models.User) (*models.Session, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	token, err := m.signer.Mint(user.UUID, now, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}

	session := &models.Session{
		UUID:        user.UUID,
		UserID:      user.ID,
		AccessToken: token,
		LoginAt:     now,
		ExpiresAt:   expiresAt,
	}
	if err := m.sessions.CreateSession(session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return session, nil
}

// Resolve looks the token up by exact match.
func (m *SessionManager) Resolve(token string) (*models.Session, error) {
	session, err := m.sessions.SessionByToken(token)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoSuchSession
	}
	if err != nil {
		return nil, fmt.Errorf("look up session: %w", err)
	}
	return session, nil
}

// RequireActive resolves the token and rejects sessions that are signed
// out or past their expiry. A signed-out session and an expired one are
// indistinguishable to the caller.
func (m *SessionManager) RequireActive(token string) (*models.Session, error) {
	session, err := m.Resolve(token)
	if err != nil {
		return nil, err
	}
	if !session.ActiveAt(m.now()) {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Terminate signs the session out. Signing out twice is rejected, not
// idempotent: any already-inactive (or unknown) session fails with
// ErrNotSignedIn. Logout time and the collapsed expiry are stamped with
// one captured instant so the two can never disagree.
func (m *SessionManager) Terminate(token string) (*models.Session, error) {
	if _, err := m.RequireActive(token); err != nil {
		if errors.Is(err, ErrNoSuchSession) || errors.Is(err, ErrSessionExpired) {
			return nil, ErrNotSignedIn
		}
		return nil, err
	}

	at := m.now()
	session, err := m.sessions.LogoutSession(token, at)
	if errors.Is(err, store.ErrNotFound) {
		// Lost a race against a concurrent signout.
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("sign out session: %w", err)
	}
	return session, nil
}
