package services

import (
	"errors"

	"blog-api/models"
	"blog-api/repositories"
	"blog-api/validation"

	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(req models.CreateUserRequest) (*models.User, error)
	GetUser(id uint) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser relies on the unique index as the race arbiter: no pre-read,
// the insert either lands or reports a duplicate.
func (s *userService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	cleaned, err := validation.ValidateUser(req)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: cleaned.Username}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("User already exists")
		}
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User does not exist")
		}
		return nil, models.NewInternalError(err)
	}
	return user, nil
}
