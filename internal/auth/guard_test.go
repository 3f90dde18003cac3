package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
)

type guardFixture struct {
	guard *Guard
	store *store.MemoryStore
	now   *time.Time
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()
	st := store.NewMemoryStore()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := NewSessionManager(st, NewSigner("test-secret"), 8*time.Hour)
	sessions.now = func() time.Time { return now }
	return &guardFixture{
		guard: NewGuard(st, NewVerifier(st), sessions),
		store: st,
		now:   &now,
	}
}

func (f *guardFixture) addUser(t *testing.T, uuid, username, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	u := &models.User{
		UUID:     uuid,
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
		Role:     role,
	}
	require.NoError(t, f.store.CreateUser(u))
	return u
}

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func TestGuardSignIn(t *testing.T) {
	f := newGuardFixture(t)
	f.addUser(t, "u1", "alice", "s3cret", models.RoleStandard)

	user, session, err := f.guard.SignIn(basicHeader("alice", "s3cret"))
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UUID)
	assert.NotEmpty(t, session.AccessToken)

	// Unknown user and wrong password are one indistinguishable failure.
	_, _, err = f.guard.SignIn(basicHeader("alice", "wrong"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.guard.SignIn(basicHeader("nobody", "s3cret"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = f.guard.SignIn("Basic !!!")
	assert.ErrorIs(t, err, ErrMalformedAuthHeader)
}

func TestGuardAuthenticateRead(t *testing.T) {
	f := newGuardFixture(t)
	f.addUser(t, "u1", "alice", "s3cret", models.RoleStandard)
	_, session, err := f.guard.SignIn(basicHeader("alice", "s3cret"))
	require.NoError(t, err)

	user, err := f.guard.AuthenticateRead("Bearer " + session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UUID)

	// Permissive decode: no scheme prefix, whole value is the token.
	user, err = f.guard.AuthenticateRead(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UUID)

	_, err = f.guard.AuthenticateRead("Bearer ")
	assert.ErrorIs(t, err, ErrMalformedAuthHeader)

	_, err = f.guard.AuthenticateRead("Bearer bogus-token")
	assert.ErrorIs(t, err, ErrNoSuchSession)

	// Token resolved at 8h+1s past login is expired.
	*f.now = session.ExpiresAt.Add(time.Second)
	_, err = f.guard.AuthenticateRead("Bearer " + session.AccessToken)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestGuardAuthorizeMutationOwnership(t *testing.T) {
	f := newGuardFixture(t)
	owner := f.addUser(t, "u1", "alice", "s3cret", models.RoleStandard)
	f.addUser(t, "u2", "bob", "hunter2", models.RoleStandard)
	admin := f.addUser(t, "adm1", "root", "t0psecret", models.RoleAdmin)

	_, ownerSess, err := f.guard.SignIn(basicHeader("alice", "s3cret"))
	require.NoError(t, err)
	_, strangerSess, err := f.guard.SignIn(basicHeader("bob", "hunter2"))
	require.NoError(t, err)
	_, adminSess, err := f.guard.SignIn(basicHeader("root", "t0psecret"))
	require.NoError(t, err)

	// B deleting A's question is denied; A and an admin both succeed.
	_, err = f.guard.AuthorizeMutation("Bearer "+strangerSess.AccessToken, owner.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	user, err := f.guard.AuthorizeMutation("Bearer "+ownerSess.AccessToken, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.UUID, user.UUID)

	user, err = f.guard.AuthorizeMutation("Bearer "+adminSess.AccessToken, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.UUID, user.UUID)
}

func TestGuardAuthorizeUserDelete(t *testing.T) {
	f := newGuardFixture(t)
	f.addUser(t, "u1", "alice", "s3cret", models.RoleStandard)
	f.addUser(t, "u2", "bob", "hunter2", models.RoleStandard)
	f.addUser(t, "adm1", "root", "t0psecret", models.RoleAdmin)

	_, standardSess, err := f.guard.SignIn(basicHeader("alice", "s3cret"))
	require.NoError(t, err)
	_, adminSess, err := f.guard.SignIn(basicHeader("root", "t0psecret"))
	require.NoError(t, err)

	_, err = f.guard.AuthorizeUserDelete("Bearer "+standardSess.AccessToken, "u2")
	assert.ErrorIs(t, err, ErrNotAdmin)

	_, err = f.guard.AuthorizeUserDelete("Bearer "+adminSess.AccessToken, "adm1")
	assert.ErrorIs(t, err, ErrCannotDeleteSelf)

	_, err = f.guard.AuthorizeUserDelete("Bearer "+adminSess.AccessToken, "u2")
	assert.NoError(t, err)
}

func TestGuardSignOut(t *testing.T) {
	f := newGuardFixture(t)
	f.addUser(t, "u1", "alice", "s3cret", models.RoleStandard)
	_, session, err := f.guard.SignIn(basicHeader("alice", "s3cret"))
	require.NoError(t, err)

	user, out, err := f.guard.SignOut("Bearer " + session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UUID)
	require.NotNil(t, out.LogoutAt)

	_, _, err = f.guard.SignOut("Bearer " + session.AccessToken)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	// A signed-out token no longer authenticates reads.
	_, err = f.guard.AuthenticateRead("Bearer " + session.AccessToken)
	assert.ErrorIs(t, err, ErrSessionExpired)
}
