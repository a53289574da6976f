package handlers

import (
	"net/http"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body is empty"})
		return
	}

	comment, err := h.commentService.CreateComment(userID, postID, req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CommentCreatedResponse{
		ID:      comment.ID,
		PubDate: comment.PubDate,
	})
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}

	comments, err := h.commentService.GetComments(userID, postID, c.Query("sort"))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	res := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		res = append(res, models.CommentResponse{
			ID:      comment.ID,
			Body:    comment.Body,
			PubDate: comment.PubDate,
		})
	}
	c.JSON(http.StatusOK, res)
}
