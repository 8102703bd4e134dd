package routes

import (
	"net/http"

	"quizhub/handlers"
	"quizhub/middleware"
	"quizhub/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	tipHandler *handlers.TipHandler,
	userHandler *handlers.UserHandler,
	quizRepo *services.QuizRepository,
	jwtSecret string,
) {
	loadQuiz := middleware.LoadQuiz(quizRepo)
	loginRequired := middleware.Auth(jwtSecret)
	optionalAuth := middleware.OptionalAuth(jwtSecret)
	adminOrAuthor := middleware.AdminOrAuthorRequired()
	adminOrSelf := middleware.AdminOrSelfRequired()

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", loginRequired, authHandler.Profile)
		}

		// Reading and playing quizzes is public; a token, when present,
		// unlocks the "my quizzes" scope.
		quizzes := api.Group("/quizzes")
		quizzes.Use(optionalAuth)
		{
			quizzes.GET("", quizHandler.Index)
			quizzes.GET("/:id", loadQuiz, quizHandler.Show)
			quizzes.GET("/:id/play", loadQuiz, quizHandler.Play)
			quizzes.GET("/:id/check", loadQuiz, quizHandler.Check)

			quizzes.POST("", loginRequired, quizHandler.Create)
			quizzes.PUT("/:id", loginRequired, loadQuiz, adminOrAuthor, quizHandler.Update)
			quizzes.DELETE("/:id", loginRequired, loadQuiz, adminOrAuthor, quizHandler.Delete)

			quizzes.POST("/:id/tips", loginRequired, loadQuiz, tipHandler.Create)
			quizzes.PUT("/:id/tips/:tipId/accept", loginRequired, loadQuiz, adminOrAuthor, tipHandler.Accept)
			quizzes.DELETE("/:id/tips/:tipId", loginRequired, loadQuiz, adminOrAuthor, tipHandler.Delete)
		}

		users := api.Group("/users")
		{
			users.GET("/:id/quizzes", optionalAuth, quizHandler.Index)

			users.GET("", loginRequired, userHandler.Index)
			users.GET("/:id", loginRequired, userHandler.Show)
			users.PUT("/:id", loginRequired, adminOrSelf, userHandler.Update)
			users.DELETE("/:id", loginRequired, adminOrSelf, userHandler.Delete)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
