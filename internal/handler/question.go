package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/auth"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/util"
)

// QuestionHandler serves question CRUD.
type QuestionHandler struct {
	Store store.Store
	Guard *auth.Guard
}

// NewQuestionHandler wires the handler.
func NewQuestionHandler(st store.Store, guard *auth.Guard) *QuestionHandler {
	return &QuestionHandler{Store: st, Guard: guard}
}

type questionReq struct {
	Content string `json:"content"`
}

// Create posts a new question. Empty content and duplicate content are
// rejected.
func (h *QuestionHandler) Create(c *gin.Context) {
	user, err := h.Guard.AuthenticateRead(c.GetHeader("Authorization"))
	if err != nil {
		util.AuthError(c, err)
		return
	}

	var req questionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeQuestionInvalid,
			"Content can't be null or empty")
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		util.Error(c, http.StatusBadRequest, util.CodeQuestionInvalid,
			"Content can't be null or empty")
		return
	}
	if _, err := h.Store.QuestionByContent(content); err == nil {
		util.Error(c, http.StatusConflict, util.CodeQuestionDuplicate,
			"Question already exists. Duplicate question not allowed")
		return
	}

	question := models.Question{
		UUID:    uuid.NewString(),
		Content: content,
		Date:    time.Now(),
		UserID:  user.ID,
	}
	if err := h.Store.CreateQuestion(&question); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "create question failed")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"id":     question.UUID,
		"status": "QUESTION CREATED",
	})
}

// All lists every question.
func (h *QuestionHandler) All(c *gin.Context) {
	if _, err := h.Guard.AuthenticateRead(c.GetHeader("Authorization")); err != nil {
		util.AuthError(c, err)
		return
	}

	questions, err := h.Store.AllQuestions()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "list questions failed")
		return
	}
	c.JSON(http.StatusOK, questionList(questions))
}

// AllByUser lists every question posted by one user.
func (h *QuestionHandler) AllByUser(c *gin.Context) {
	if _, err := h.Guard.AuthenticateRead(c.GetHeader("Authorization")); err != nil {
		util.AuthError(c, err)
		return
	}

	owner, err := h.Store.UserByUUID(c.Param("userId"))
	if errors.Is(err, store.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeUserNotFound,
			"User with entered uuid whose question details are to be seen does not exist")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up user failed")
		return
	}

	questions, err := h.Store.QuestionsByUser(owner.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "list questions failed")
		return
	}
	c.JSON(http.StatusOK, questionList(questions))
}

func questionList(questions []models.Question) []gin.H {
	out := make([]gin.H, 0, len(questions))
	for _, q := range questions {
		out = append(out, gin.H{"id": q.UUID, "content": q.Content})
	}
	return out
}

// Edit replaces a question's content. Owner or admin only; the new
// content must be non-empty and different from the current content.
func (h *QuestionHandler) Edit(c *gin.Context) {
	question, err := h.Store.QuestionByUUID(c.Param("questionId"))
	if errors.Is(err, store.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeQuestionNotFound,
			"Entered question uuid does not exist")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up question failed")
		return
	}

	if _, err := h.Guard.AuthorizeMutation(c.GetHeader("Authorization"), question.UserID); err != nil {
		util.AuthError(c, err)
		return
	}

	var req questionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeQuestionInvalid,
			"Content can't be null or empty or equal to existing content")
		return
	}
	content := strings.TrimSpace(req.Content)
	// Case-only rewording counts as unchanged content.
	if content == "" || strings.EqualFold(content, question.Content) {
		util.Error(c, http.StatusBadRequest, util.CodeQuestionInvalid,
			"Content can't be null or empty or equal to existing content")
		return
	}

	question.Content = content
	if err := h.Store.UpdateQuestion(question); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "update question failed")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"id":     question.UUID,
		"status": "QUESTION EDITED",
	})
}

// Delete removes a question. Owner or admin only.
func (h *QuestionHandler) Delete(c *gin.Context) {
	question, err := h.Store.QuestionByUUID(c.Param("questionId"))
	if errors.Is(err, store.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeQuestionNotFound,
			"Entered question uuid does not exist")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up question failed")
		return
	}

	if _, err := h.Guard.AuthorizeMutation(c.GetHeader("Authorization"), question.UserID); err != nil {
		util.AuthError(c, err)
		return
	}

	if err := h.Store.DeleteQuestion(question); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "delete question failed")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"id":     question.UUID,
		"status": "QUESTION DELETED",
	})
}
