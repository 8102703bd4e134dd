package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"quizhub/authz"
	"quizhub/models"
	"quizhub/services"

	"github.com/gin-gonic/gin"
)

const quizKey = "quiz"

// LoadQuiz resolves the :id route param to a quiz and stores it on the
// context, so the authorization gates and the handler all see the same
// loaded entity. Ids that do not parse as positive integers are NotFound,
// never a query error.
func LoadQuiz(quizzes *services.QuizRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}

		quiz, err := quizzes.FindByID(c.Request.Context(), uint(id))
		if errors.Is(err, services.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}

		c.Set(quizKey, quiz)
		c.Next()
	}
}

// LoadedQuiz returns the quiz put on the context by LoadQuiz.
func LoadedQuiz(c *gin.Context) *models.Quiz {
	value, exists := c.Get(quizKey)
	if !exists {
		return nil
	}
	quiz, ok := value.(*models.Quiz)
	if !ok {
		return nil
	}
	return quiz
}

// AdminOrAuthorRequired gates mutating quiz operations and tip curation.
// Denial is terminal, a 403, not something the client can retry.
func AdminOrAuthorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authz.AdminOrAuthor(CurrentSession(c), LoadedQuiz(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// AdminOrSelfRequired gates user-management operations on the :id user.
func AdminOrSelfRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil || !authz.AdminOrSelf(CurrentSession(c), uint(id)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
