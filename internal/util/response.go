package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/auth"
)

// Response is the data payload of a successful reply.
type Response map[string]interface{}

// Business error codes carried alongside the HTTP status.
const (
	CodeSignupRequired      = "USE-001"
	CodeSignupBothTaken     = "USE-002"
	CodeUsernameTaken       = "SGR-001"
	CodeEmailTaken          = "SGR-002"
	CodeInvalidCredentials  = "ATH-002"
	CodeMalformedAuthHeader = "ATH-005"
	CodeNotSignedIn         = "ATHR-001"
	CodeSignedOut           = "ATHR-002"
	CodeNotOwner            = "ATHR-003"
	CodeDeleteSelf          = "ATH-006"
	CodeSignOutRestricted   = "SGR-001"
	CodeUserNotFound        = "USR-001"
	CodeQuestionNotFound    = "QUES-001"
	CodeQuestionInvalid     = "QUE-888"
	CodeQuestionDuplicate   = "QUE-999"
	CodeAnswerNotFound      = "ANS-001"
	CodeServerError         = "GEN-001"
)

// Success writes a JSON body with the given status.
func Success(c *gin.Context, status int, data Response) {
	c.JSON(status, data)
}

// Error writes the code+message error shape every failure uses.
func Error(c *gin.Context, httpStatus int, code, message string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": message,
	})
}

// AuthError maps an auth package failure to its HTTP status and
// business code. A header the server cannot decode is 400, credential
// and session failures are 401, policy failures are 403.
func AuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrMalformedAuthHeader):
		Error(c, http.StatusBadRequest, CodeMalformedAuthHeader, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		Error(c, http.StatusUnauthorized, CodeInvalidCredentials, err.Error())
	case errors.Is(err, auth.ErrNoSuchSession):
		Error(c, http.StatusUnauthorized, CodeNotSignedIn, err.Error())
	case errors.Is(err, auth.ErrSessionExpired):
		Error(c, http.StatusUnauthorized, CodeSignedOut, err.Error())
	case errors.Is(err, auth.ErrNotSignedIn):
		Error(c, http.StatusUnauthorized, CodeSignOutRestricted, err.Error())
	case errors.Is(err, auth.ErrNotAuthorized):
		Error(c, http.StatusForbidden, CodeNotOwner, err.Error())
	case errors.Is(err, auth.ErrNotAdmin):
		Error(c, http.StatusForbidden, CodeNotOwner, err.Error())
	case errors.Is(err, auth.ErrCannotDeleteSelf):
		Error(c, http.StatusForbidden, CodeDeleteSelf, err.Error())
	default:
		Error(c, http.StatusInternalServerError, CodeServerError, "internal error")
	}
}
