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

type TipHandler struct {
	tipService *services.TipService
	flashes    *flash.Store
}

func NewTipHandler(tipService *services.TipService, flashes *flash.Store) *TipHandler {
	return &TipHandler{
		tipService: tipService,
		flashes:    flashes,
	}
}

type createTipRequest struct {
	Text string `json:"text"`
}

// Create submits a hint on someone else's quiz. Login required.
func (h *TipHandler) Create(c *gin.Context) {
	quiz := middleware.LoadedQuiz(c)
	session := middleware.CurrentSession(c)

	var req createTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tip, err := h.tipService.Create(c.Request.Context(), quiz.ID, session.ID, req.Text)
	if err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			h.flashes.Error(c, "There are errors in the form")
			c.JSON(http.StatusBadRequest, gin.H{"fields": validation.Fields, "tip": req})
			return
		}
		respondError(c, err)
		return
	}

	h.flashes.Success(c, "Tip created successfully")
	c.JSON(http.StatusCreated, tip)
}

// Accept marks a tip as curated. Gated by admin-or-author of the quiz.
func (h *TipHandler) Accept(c *gin.Context) {
	quiz := middleware.LoadedQuiz(c)

	tipID, err := strconv.ParseUint(c.Param("tipId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	tip, err := h.tipService.Accept(c.Request.Context(), quiz.ID, uint(tipID))
	if err != nil {
		respondError(c, err)
		return
	}

	h.flashes.Success(c, "Tip accepted successfully")
	c.JSON(http.StatusOK, tip)
}

// Delete removes a tip from a quiz. Login required.
func (h *TipHandler) Delete(c *gin.Context) {
	quiz := middleware.LoadedQuiz(c)

	tipID, err := strconv.ParseUint(c.Param("tipId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := h.tipService.Delete(c.Request.Context(), quiz.ID, uint(tipID)); err != nil {
		respondError(c, err)
		return
	}

	h.flashes.Success(c, "Tip deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Tip deleted successfully"})
}
