package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/auth"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/util"
)

// AdminHandler serves account deletion, the one admin-only operation.
type AdminHandler struct {
	Store store.Store
	Guard *auth.Guard
}

// NewAdminHandler wires the handler.
func NewAdminHandler(st store.Store, guard *auth.Guard) *AdminHandler {
	return &AdminHandler{Store: st, Guard: guard}
}

// DeleteUser removes an account. Only admins may delete, and never
// themselves.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	targetUUID := c.Param("userId")

	if _, err := h.Guard.AuthorizeUserDelete(c.GetHeader("Authorization"), targetUUID); err != nil {
		util.AuthError(c, err)
		return
	}

	target, err := h.Store.UserByUUID(targetUUID)
	if errors.Is(err, store.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeUserNotFound,
			"User with entered uuid does not exist")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up user failed")
		return
	}

	if err := h.Store.DeleteUser(target); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "delete user failed")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"id":     target.UUID,
		"status": "USER SUCCESSFULLY DELETED",
	})
}
