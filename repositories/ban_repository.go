package repositories

import (
	"blog-api/models"

	"gorm.io/gorm"
)

type BanRepository interface {
	Create(ban *models.Ban) error
	GetByID(id uint) (*models.Ban, error)
	GetByPostAndUser(postID, userID uint) (*models.Ban, error)
	Delete(id uint) (int64, error)
}

type banRepository struct {
	db *gorm.DB
}

func NewBanRepository(db *gorm.DB) BanRepository {
	return &banRepository{db: db}
}

func (r *banRepository) Create(ban *models.Ban) error {
	return r.db.Create(ban).Error
}

func (r *banRepository) GetByID(id uint) (*models.Ban, error) {
	var ban models.Ban
	err := r.db.First(&ban, id).Error
	return &ban, err
}

func (r *banRepository) GetByPostAndUser(postID, userID uint) (*models.Ban, error) {
	var ban models.Ban
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&ban).Error
	return &ban, err
}

// Delete reports how many rows went away so the caller can tell a successful
// delete from one that raced with another.
func (r *banRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Ban{}, id)
	return res.RowsAffected, res.Error
}
