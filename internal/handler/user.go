package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/auth"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/util"
)

// UserHandler serves profile reads.
type UserHandler struct {
	Store store.Store
	Guard *auth.Guard
}

// NewUserHandler wires the handler.
func NewUserHandler(st store.Store, guard *auth.Guard) *UserHandler {
	return &UserHandler{Store: st, Guard: guard}
}

// Profile returns any user's profile to a signed-in caller.
func (h *UserHandler) Profile(c *gin.Context) {
	if _, err := h.Guard.AuthenticateRead(c.GetHeader("Authorization")); err != nil {
		util.AuthError(c, err)
		return
	}

	user, err := h.Store.UserByUUID(c.Param("userId"))
	if errors.Is(err, store.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeUserNotFound,
			"User with entered uuid does not exist")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up user failed")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"user_name":      user.Username,
		"first_name":     user.FirstName,
		"last_name":      user.LastName,
		"email_address":  user.Email,
		"about_me":       user.AboutMe,
		"dob":            user.DOB,
		"country":        user.Country,
		"contact_number": user.ContactNumber,
	})
}
