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

// AnswerHandler serves answer CRUD.
type AnswerHandler struct {
	Store store.Store
	Guard *auth.Guard
}

// NewAnswerHandler wires the handler.
func NewAnswerHandler(st store.Store, guard *auth.Guard) *AnswerHandler {
	return &AnswerHandler{Store: st, Guard: guard}
}

type answerReq struct {
	Answer string `json:"answer"`
}

// Create posts an answer to a question.
func (h *AnswerHandler) Create(c *gin.Context) {
	user, err := h.Guard.AuthenticateRead(c.GetHeader("Authorization"))
	if err != nil {
		util.AuthError(c, err)
		return
	}

	question, err := h.Store.QuestionByUUID(c.Param("questionId"))
	if errors.Is(err, store.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeQuestionNotFound,
			"The question entered is invalid")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up question failed")
		return
	}

	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeAnswerNotFound,
			"Answer can't be null or empty")
		return
	}
	content := strings.TrimSpace(req.Answer)
	if content == "" {
		util.Error(c, http.StatusBadRequest, util.CodeAnswerNotFound,
			"Answer can't be null or empty")
		return
	}

	answer := models.Answer{
		UUID:       uuid.NewString(),
		Ans:        content,
		Date:       time.Now(),
		UserID:     user.ID,
		QuestionID: question.ID,
	}
	if err := h.Store.CreateAnswer(&answer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "create answer failed")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"id":     answer.UUID,
		"status": "ANSWER CREATED",
	})
}

// All lists every answer to a question.
func (h *AnswerHandler) All(c *gin.Context) {
	if _, err := h.Guard.AuthenticateRead(c.GetHeader("Authorization")); err != nil {
		util.AuthError(c, err)
		return
	}

	question, err := h.Store.QuestionByUUID(c.Param("questionId"))
	if errors.Is(err, store.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeQuestionNotFound,
			"The question with entered uuid whose details are to be seen does not exist")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up question failed")
		return
	}

	answers, err := h.Store.AnswersByQuestion(question.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "list answers failed")
		return
	}

	out := make([]gin.H, 0, len(answers))
	for _, a := range answers {
		out = append(out, gin.H{
			"id":               a.UUID,
			"question_content": question.Content,
			"answer_content":   a.Ans,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Edit replaces an answer's content. Owner or admin only.
func (h *AnswerHandler) Edit(c *gin.Context) {
	answer, err := h.Store.AnswerByUUID(c.Param("answerId"))
	if errors.Is(err, store.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeAnswerNotFound,
			"Entered answer uuid does not exist")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up answer failed")
		return
	}

	if _, err := h.Guard.AuthorizeMutation(c.GetHeader("Authorization"), answer.UserID); err != nil {
		util.AuthError(c, err)
		return
	}

	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeAnswerNotFound,
			"Answer can't be null or empty")
		return
	}
	content := strings.TrimSpace(req.Answer)
	if content == "" {
		util.Error(c, http.StatusBadRequest, util.CodeAnswerNotFound,
			"Answer can't be null or empty")
		return
	}

	answer.Ans = content
	if err := h.Store.UpdateAnswer(answer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "update answer failed")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"id":     answer.UUID,
		"status": "ANSWER EDITED",
	})
}

// Delete removes an answer. Owner or admin only.
func (h *AnswerHandler) Delete(c *gin.Context) {
	answer, err := h.Store.AnswerByUUID(c.Param("answerId"))
	if errors.Is(err, store.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeAnswerNotFound,
			"Entered answer uuid does not exist")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "look up answer failed")
		return
	}

	if _, err := h.Guard.AuthorizeMutation(c.GetHeader("Authorization"), answer.UserID); err != nil {
		util.AuthError(c, err)
		return
	}

	if err := h.Store.DeleteAnswer(answer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerError, "delete answer failed")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"id":     answer.UUID,
		"status": "ANSWER DELETED",
	})
}
