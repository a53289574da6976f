package repositories

import (
	"blog-api/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetByUser(userID uint, sort string) ([]models.Post, error)
	Search(filter models.SearchFilter) ([]models.SearchResult, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create persists the post row and its tag_post associations in a single
// transaction.
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Tags").First(&post, id).Error
	return &post, err
}

func (r *postRepository) GetByUser(userID uint, sort string) ([]models.Post, error) {
	var posts []models.Post
	query := r.db.Preload("Tags").Where("user_id = ?", userID)
	query = applySort(query, sort)
	err := query.Find(&posts).Error
	return posts, err
}

// Search stacks one WHERE clause per supplied filter. The tags filter is set
// membership: a post qualifies when it carries at least one of the names,
// hence the DISTINCT.
func (r *postRepository) Search(filter models.SearchFilter) ([]models.SearchResult, error) {
	query := r.db.Model(&models.Post{}).
		Select("DISTINCT posts.id, posts.title, posts.body, posts.pub_date")

	if len(filter.Tags) > 0 {
		query = query.
			Joins("JOIN tag_post ON tag_post.post_id = posts.id").
			Joins("JOIN tags ON tags.id = tag_post.tag_id").
			Where("tags.name IN ?", filter.Tags)
	}
	if filter.Title != "" {
		query = query.Where("posts.title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.DateBegin != nil {
		query = query.Where("posts.pub_date >= ?", *filter.DateBegin)
	}
	if filter.DateEnd != nil {
		query = query.Where("posts.pub_date <= ?", *filter.DateEnd)
	}

	var results []models.SearchResult
	err := query.Scan(&results).Error
	return results, err
}

// applySort recognizes pub_date and -pub_date; anything else keeps the store
// order.
func applySort(query *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case "pub_date":
		return query.Order("pub_date")
	case "-pub_date":
		return query.Order("pub_date desc")
	}
	return query
}
