package repositories

import (
	"blog-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByPost(postID uint, sort string) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByPost(postID uint, sort string) ([]models.Comment, error) {
	var comments []models.Comment
	query := r.db.Where("post_id = ?", postID)
	query = applySort(query, sort)
	err := query.Find(&comments).Error
	return comments, err
}
