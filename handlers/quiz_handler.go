package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"quizhub/flash"
	"quizhub/middleware"
	"quizhub/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
	flashes     *flash.Store
}

func NewQuizHandler(quizService *services.QuizService, flashes *flash.Store) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		flashes:     flashes,
	}
}

// Index lists quizzes, paginated 10 at a time. ?search= narrows by
// question text, ?mine=true scopes to the authenticated user's quizzes, and
// GET /users/:id/quizzes scopes to that user.
func (h *QuizHandler) Index(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	var scopeUserID uint
	if raw := c.Param("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		scopeUserID = uint(id)
	} else if c.Query("mine") == "true" {
		session := middleware.CurrentSession(c)
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		scopeUserID = session.ID
	}

	listing, err := h.quizService.List(c.Request.Context(), search, scopeUserID, page, c.Request.URL.RequestURI())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quizzes":    listing.Quizzes,
		"pagination": listing.Pagination,
		"search":     listing.Search,
		"title":      listing.Title,
		"flash":      h.flashes.Take(c),
	})
}

// Show returns one quiz with its tips annotated with author usernames.
func (h *QuizHandler) Show(c *gin.Context) {
	quiz := middleware.LoadedQuiz(c)

	detail, err := h.quizService.Show(c.Request.Context(), quiz.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quiz":  detail,
		"flash": h.flashes.Take(c),
	})
}

// Create stores a new quiz authored by the session user. Validation
// failures echo the submitted draft so the form can be repopulated.
func (h *QuizHandler) Create(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var draft services.QuizDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), draft, session.ID)
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			h.flashes.Error(c, "There are errors in the form")
			c.JSON(http.StatusBadRequest, gin.H{"fields": validation.Fields, "quiz": draft})
			return
		}
		respondError(c, err)
		return
	}

	h.flashes.Success(c, "Quiz created successfully")
	c.JSON(http.StatusCreated, quiz)
}

// Update replaces a quiz's question and answer. Gated by admin-or-author.
func (h *QuizHandler) Update(c *gin.Context) {
	quiz := middleware.LoadedQuiz(c)

	var draft services.QuizDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.quizService.Update(c.Request.Context(), quiz.ID, draft)
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			h.flashes.Error(c, "There are errors in the form")
			c.JSON(http.StatusBadRequest, gin.H{"fields": validation.Fields, "quiz": draft})
			return
		}
		respondError(c, err)
		return
	}

	h.flashes.Success(c, "Quiz updated successfully")
	c.JSON(http.StatusOK, updated)
}

// Delete removes a quiz and, with it, every tip it accumulated.
func (h *QuizHandler) Delete(c *gin.Context) {
	quiz := middleware.LoadedQuiz(c)

	if err := h.quizService.Delete(c.Request.Context(), quiz.ID); err != nil {
		respondError(c, err)
		return
	}

	h.flashes.Success(c, "Quiz deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}

// Play returns the quiz to attempt, echoing ?answer= for prefill.
func (h *QuizHandler) Play(c *gin.Context) {
	quiz := middleware.LoadedQuiz(c)

	result, err := h.quizService.Play(c.Request.Context(), quiz.ID, c.Query("answer"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Check grades the submitted ?answer= against the stored one.
func (h *QuizHandler) Check(c *gin.Context) {
	quiz := middleware.LoadedQuiz(c)

	result, err := h.quizService.Check(c.Request.Context(), quiz.ID, c.Query("answer"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
