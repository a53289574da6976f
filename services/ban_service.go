package services

import (
	"errors"

	"blog-api/models"
	"blog-api/repositories"
	"blog-api/validation"

	"gorm.io/gorm"
)

type BanService interface {
	CreateBan(userID, postID uint, req models.CreateBanRequest) (*models.Ban, error)
	DeleteBan(userID, postID, banID uint) error
}

type banService struct {
	banRepo  repositories.BanRepository
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

func NewBanService(banRepo repositories.BanRepository, userRepo repositories.UserRepository, postRepo repositories.PostRepository) BanService {
	return &banService{
		banRepo:  banRepo,
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *banService) CreateBan(userID, postID uint, req models.CreateBanRequest) (*models.Ban, error) {
	if err := s.checkPath(userID, postID); err != nil {
		return nil, err
	}

	cleaned, err := validation.ValidateBan(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(cleaned.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User does not exist")
		}
		return nil, models.NewInternalError(err)
	}

	if _, err := s.banRepo.GetByPostAndUser(postID, cleaned.UserID); err == nil {
		return nil, models.NewConflictError("Ban for this user and post already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError(err)
	}

	ban := &models.Ban{PostID: postID, UserID: cleaned.UserID}
	if err := s.banRepo.Create(ban); err != nil {
		// The composite unique index backstops the pre-read above when two
		// identical bans race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("Ban for this user and post already exists")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.NewConflictError("Post or user does not exist")
		}
		return nil, models.NewInternalError(err)
	}
	return ban, nil
}

func (s *banService) DeleteBan(userID, postID, banID uint) error {
	if err := s.checkPath(userID, postID); err != nil {
		return err
	}

	if _, err := s.banRepo.GetByID(banID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Ban does not exist")
		}
		return models.NewInternalError(err)
	}

	rows, err := s.banRepo.Delete(banID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if rows == 0 {
		return models.NewConflictError("Already deleted")
	}
	return nil
}

func (s *banService) checkPath(userID, postID uint) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("User does not exist")
		}
		return models.NewInternalError(err)
	}
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post does not exist")
		}
		return models.NewInternalError(err)
	}
	return nil
}
