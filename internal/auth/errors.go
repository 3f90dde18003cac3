// Package auth implements credential verification, session issuance and
// validation, and the ownership/role authorization policy. It is the
// single entry point the handlers use for anything access-control
// related; all state lives in the store, never in process memory.
package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrMalformedAuthHeader means the authorization header value could
	// not be decoded into a payload at all (empty token, undecodable
	// Basic credentials).
	ErrMalformedAuthHeader = errors.New("malformed authorization header")
	// ErrNoSuchSession means the token matches no session row.
	ErrNoSuchSession = errors.New("user has not signed in")
	// ErrSessionExpired means the token resolved but the session is
	// signed out or past its expiry.
	ErrSessionExpired = errors.New("user is signed out, sign in first")
	// ErrNotSignedIn is the signout-specific failure: the session is
	// already inactive (or never existed), so signing out is rejected.
	ErrNotSignedIn = errors.New("user is not signed in")
	// ErrNotAuthorized means the actor is neither the resource owner
	// nor an admin.
	ErrNotAuthorized = errors.New("only the owner or an admin can modify this resource")
	// ErrNotAdmin means the operation requires the admin role.
	ErrNotAdmin = errors.New("unauthorized access, entered user is not an admin")
	// ErrCannotDeleteSelf means an admin tried to delete their own
	// account; that is always denied.
	ErrCannotDeleteSelf = errors.New("not allowed to delete yourself")
)
