package auth

import "github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"

// CanMutate is the ownership rule for editing or deleting a question
// or answer: the actor must own the resource or hold the admin role.
// Pure function, same inputs always give the same decision.
func CanMutate(actor *models.User, ownerID uint) error {
	if actor.ID == ownerID || actor.IsAdmin() {
		return nil
	}
	return ErrNotAuthorized
}

// CanDeleteUser is the admin-only rule for deleting an account: the
// actor must be an admin and must not be deleting themselves. The two
// denials are distinct so the transport can report which one applied.
func CanDeleteUser(actor *models.User, targetUUID string) error {
	if !actor.IsAdmin() {
		return ErrNotAdmin
	}
	if actor.UUID == targetUUID {
		return ErrCannotDeleteSelf
	}
	return nil
}
