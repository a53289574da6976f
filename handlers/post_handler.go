package handlers

import (
	"net/http"

	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Body is empty"})
		return
	}

	post, err := h.postService.CreatePost(userID, req)
	if err != nil {
		helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.PostCreatedResponse{
		ID:      post.ID,
		PubDate: post.PubDate,
		Title:   post.Title,
		Tags:    tagNames(post.Tags),
	})
}

func (h *PostHandler) GetUserPosts(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	posts, err := h.postService.GetUserPosts(userID, c.Query("sort"))
	if err != nil {
		helper.SendError(c, err)
		return
	}

	res := make([]models.PostResponse, 0, len(posts))
	for _, post := range posts {
		res = append(res, models.PostResponse{
			ID:      post.ID,
			Title:   post.Title,
			Body:    post.Body,
			PubDate: post.PubDate,
			Tags:    tagNames(post.Tags),
		})
	}
	c.JSON(http.StatusOK, res)
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
