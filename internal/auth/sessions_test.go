package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
)

func newTestManager(t *testing.T) (*SessionManager, *store.MemoryStore, *time.Time) {
	t.Helper()
	st := store.NewMemoryStore()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewSessionManager(st, NewSigner("test-secret"), 8*time.Hour)
	m.now = func() time.Time { return now }
	return m, st, &now
}

func testUser() *models.User {
	return &models.User{ID: 1, UUID: "u1", Username: "alice", Role: models.RoleStandard}
}

func TestSessionCreate(t *testing.T) {
	m, _, _ := newTestManager(t)
	user := testUser()

	session, err := m.Create(user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.NotEmpty(t, session.AccessToken)
	assert.LessOrEqual(t, len(session.AccessToken), 500)
	assert.Nil(t, session.LogoutAt)
	assert.Equal(t, session.LoginAt.Add(8*time.Hour), session.ExpiresAt)
}

func TestSessionCreateConcurrentSessions(t *testing.T) {
	m, _, _ := newTestManager(t)
	user := testUser()

	s1, err := m.Create(user)
	require.NoError(t, err)
	s2, err := m.Create(user)
	require.NoError(t, err)

	// Same principal may hold several live sessions at once.
	_, err = m.RequireActive(s1.AccessToken)
	assert.NoError(t, err)
	_, err = m.RequireActive(s2.AccessToken)
	assert.NoError(t, err)
}

func TestSessionCreateTokensDistinct(t *testing.T) {
	m, _, _ := newTestManager(t)
	user := testUser()

	// The clock is pinned, so both sign-ins share issue and expiry
	// instants. Tokens must still differ or the second session row
	// would collide with the first.
	s1, err := m.Create(user)
	require.NoError(t, err)
	s2, err := m.Create(user)
	require.NoError(t, err)
	assert.NotEqual(t, s1.AccessToken, s2.AccessToken)

	r1, err := m.RequireActive(s1.AccessToken)
	require.NoError(t, err)
	r2, err := m.RequireActive(s2.AccessToken)
	require.NoError(t, err)
	assert.NotEqual(t, r1.ID, r2.ID)
}

func TestResolveUnknownToken(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.Resolve("no-such-token")
	assert.ErrorIs(t, err, ErrNoSuchSession)
	_, err = m.RequireActive("no-such-token")
	assert.ErrorIs(t, err, ErrNoSuchSession)
}

func TestRequireActiveExpiry(t *testing.T) {
	m, _, now := newTestManager(t)
	session, err := m.Create(testUser())
	require.NoError(t, err)

	// Still active one second before expiry.
	*now = session.ExpiresAt.Add(-time.Second)
	_, err = m.RequireActive(session.AccessToken)
	assert.NoError(t, err)

	// now == expiry is already inactive.
	*now = session.ExpiresAt
	_, err = m.RequireActive(session.AccessToken)
	assert.ErrorIs(t, err, ErrSessionExpired)

	*now = session.ExpiresAt.Add(time.Second)
	_, err = m.RequireActive(session.AccessToken)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestTerminate(t *testing.T) {
	m, _, now := newTestManager(t)
	session, err := m.Create(testUser())
	require.NoError(t, err)

	*now = (*now).Add(time.Hour)
	out, err := m.Terminate(session.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, out.LogoutAt)
	// Logout stamp and collapsed expiry are the same captured instant.
	assert.Equal(t, *out.LogoutAt, out.ExpiresAt)

	// A signed-out session rejects validation even though the wall
	// clock never reached the original expiry.
	_, err = m.RequireActive(session.AccessToken)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestTerminateNotIdempotent(t *testing.T) {
	m, _, _ := newTestManager(t)
	session, err := m.Create(testUser())
	require.NoError(t, err)

	_, err = m.Terminate(session.AccessToken)
	require.NoError(t, err)
	_, err = m.Terminate(session.AccessToken)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestTerminateExpiredOrUnknown(t *testing.T) {
	m, _, now := newTestManager(t)
	session, err := m.Create(testUser())
	require.NoError(t, err)

	_, err = m.Terminate("no-such-token")
	assert.ErrorIs(t, err, ErrNotSignedIn)

	*now = session.ExpiresAt.Add(time.Minute)
	_, err = m.Terminate(session.AccessToken)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestTerminateRace(t *testing.T) {
	m, st, _ := newTestManager(t)
	session, err := m.Create(testUser())
	require.NoError(t, err)

	// Simulate a racing signout winning between our active check and
	// the conditional update.
	_, err = st.LogoutSession(session.AccessToken, time.Now())
	require.NoError(t, err)
	_, err = st.LogoutSession(session.AccessToken, time.Now())
	assert.ErrorIs(t, err, store.ErrNotFound, "second conditional logout must lose")
}
