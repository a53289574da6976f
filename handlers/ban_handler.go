package handlers

import (
	"net/http"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type BanHandler struct {
	banService services.BanService
}

func NewBanHandler(banService services.BanService) *BanHandler {
	return &BanHandler{banService: banService}
}

func (h *BanHandler) CreateBan(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}

	var req models.CreateBanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body is empty"})
		return
	}

	ban, err := h.banService.CreateBan(userID, postID, req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.BanResponse{
		ID:     ban.ID,
		UserID: ban.UserID,
		PostID: ban.PostID,
	})
}

func (h *BanHandler) DeleteBan(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}
	banID, ok := parseIDParam(c, "ban_id")
	if !ok {
		return
	}

	if err := h.banService.DeleteBan(userID, postID, banID); err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
