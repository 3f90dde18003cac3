package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/auth"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/util"
)

// AuthHandler serves signup, signin and signout.
type AuthHandler struct {
	Store store.Store
	Guard *auth.Guard
}

// NewAuthHandler wires the handler.
func NewAuthHandler(st store.Store, guard *auth.Guard) *AuthHandler {
	return &AuthHandler{Store: st, Guard: guard}
}

type signupReq struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	UserName      string `json:"user_name"`
	EmailAddress  string `json:"email_address"`
	Password      string `json:"password"`
	AboutMe       string `json:"about_me"`
	DOB           string `json:"dob"`
	Country       string `json:"country"`
	ContactNumber string `json:"contact_number"`
}

// Signup registers a new account. Every new account gets the standard
// role; admins are promoted out of band.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusConflict, util.CodeSignupRequired,
			"No input provided for required fields")
		return
	}

	req.UserName = strings.TrimSpace(req.UserName)
	req.EmailAddress = strings.TrimSpace(req.EmailAddress)

	if req.FirstName == "" || req.LastName == "" || req.UserName == "" ||
		req.EmailAddress == "" || req.Password == "" {
		util.Error(c, http.StatusConflict, util.CodeSignupRequired,
			"No input provided for required fields")
		return
	}

	_, emailErr := h.Store.UserByEmail(req.EmailAddress)
	_, nameErr := h.Store.UserByUsername(req.UserName)
	if (emailErr != nil && !errors.Is(emailErr, store.ErrNotFound)) ||
		(nameErr != nil && !errors.Is(nameErr, store.ErrNotFound)) {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up user failed")
		return
	}
	emailTaken := emailErr == nil
	nameTaken := nameErr == nil
	switch {
	case emailTaken && nameTaken:
		util.Error(c, http.StatusConflict, util.CodeSignupBothTaken,
			"Users with same username & email id already exists")
		return
	case nameTaken:
		util.Error(c, http.StatusConflict, util.CodeUsernameTaken,
			"Try any other Username, this Username has already been taken")
		return
	case emailTaken:
		util.Error(c, http.StatusConflict, util.CodeEmailTaken,
			"This user has already been registered, try with any other emailId")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "hash password failed")
		return
	}

	user := models.User{
		UUID:          uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Username:      req.UserName,
		Email:         req.EmailAddress,
		Password:      hash,
		Role:          models.RoleStandard,
		AboutMe:       req.AboutMe,
		DOB:           req.DOB,
		Country:       req.Country,
		ContactNumber: req.ContactNumber,
	}
	if err := h.Store.CreateUser(&user); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "create user failed")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"id":     user.UUID,
		"status": "USER SUCCESSFULLY REGISTERED",
	})
}

// Signin authenticates Basic credentials from the authorization header
// and issues a session. The access token travels back in the
// access-token response header.
func (h *AuthHandler) Signin(c *gin.Context) {
	user, session, err := h.Guard.SignIn(c.GetHeader("Authorization"))
	if err != nil {
		util.AuthError(c, err)
		return
	}

	c.Header("access-token", session.AccessToken)
	util.Success(c, http.StatusOK, util.Response{
		"id":      user.UUID,
		"message": "SIGNED IN SUCCESSFULLY",
	})
}

// Signout terminates the bearer session. Signing out an already
// inactive session is rejected.
func (h *AuthHandler) Signout(c *gin.Context) {
	user, session, err := h.Guard.SignOut(c.GetHeader("Authorization"))
	if err != nil {
		util.AuthError(c, err)
		return
	}

	c.Header("access-token", session.AccessToken)
	util.Success(c, http.StatusOK, util.Response{
		"id":      user.UUID,
		"message": "SIGNED OUT SUCCESSFULLY",
	})
}
