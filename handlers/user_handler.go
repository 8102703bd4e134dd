package handlers

import (
	"net/http"
	"strconv"

	"quizhub/flash"
	"quizhub/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
	resolver    *services.UsernameResolver
	flashes     *flash.Store
}

func NewUserHandler(userService *services.UserService, resolver *services.UsernameResolver, flashes *flash.Store) *UserHandler {
	return &UserHandler{
		userService: userService,
		resolver:    resolver,
		flashes:     flashes,
	}
}

func (h *UserHandler) Index(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	user, err := h.userService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Password string `json:"password"`
}

// Update changes a user's password. Gated by admin-or-self.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), uint(id), req.Password); err != nil {
		respondError(c, err)
		return
	}

	h.flashes.Success(c, "User updated successfully")
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// Delete removes a user account. Gated by admin-or-self.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := h.userService.Delete(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err)
		return
	}
	h.resolver.Forget(c.Request.Context(), uint(id))

	h.flashes.Success(c, "User deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
