package handlers

import (
	"net/http"
	"strconv"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body is empty"})
		return
	}

	user, err := h.userService.CreateUser(req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.UserResponse{ID: user.ID, Username: user.Username})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{ID: user.ID, Username: user.Username})
}

// parseIDParam reads a numeric path parameter; a malformed one is a client
// error and the response is already written.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `" + name + "`"})
		return 0, false
	}
	return uint(id), true
}
