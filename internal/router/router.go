package router

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/auth"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/config"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/handler"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/middleware"
	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/store"
)

// Setup configures the Gin engine with all routes.
func Setup(cfg *config.Config, st store.Store, log *slog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	signer := auth.NewSigner(cfg.Auth.TokenSecret)
	verifier := auth.NewVerifier(st)
	sessions := auth.NewSessionManager(st, signer,
		time.Duration(cfg.Auth.SessionHours)*time.Hour)
	guard := auth.NewGuard(st, verifier, sessions)

	authHandler := handler.NewAuthHandler(st, guard)
	r.POST("/user/signup", authHandler.Signup)
	r.POST("/user/signin", authHandler.Signin)
	r.POST("/user/signout", authHandler.Signout)

	userHandler := handler.NewUserHandler(st, guard)
	r.GET("/userprofile/:userId", userHandler.Profile)

	adminHandler := handler.NewAdminHandler(st, guard)
	r.DELETE("/admin/user/:userId", adminHandler.DeleteUser)

	questionHandler := handler.NewQuestionHandler(st, guard)
	r.POST("/question/create", questionHandler.Create)
	r.GET("/question/all", questionHandler.All)
	r.GET("/question/all/:userId", questionHandler.AllByUser)
	r.PUT("/question/edit/:questionId", questionHandler.Edit)
	r.DELETE("/question/delete/:questionId", questionHandler.Delete)

	answerHandler := handler.NewAnswerHandler(st, guard)
	r.POST("/question/:questionId/answer/create", answerHandler.Create)
	r.GET("/answer/all/:questionId", answerHandler.All)
	r.PUT("/answer/edit/:answerId", answerHandler.Edit)
	r.DELETE("/answer/delete/:answerId", answerHandler.Delete)

	return r
}
