package services

import (
	"errors"
	"time"

	"blog-api/models"
	"blog-api/repositories"
	"blog-api/validation"

	"gorm.io/gorm"
)

type PostService interface {
	CreatePost(userID uint, req models.CreatePostRequest) (*models.Post, error)
	GetUserPosts(userID uint, sort string) ([]models.Post, error)
}

type postService struct {
	postRepo   repositories.PostRepository
	userRepo   repositories.UserRepository
	tagService TagService
}

func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, tagService TagService) PostService {
	return &postService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		tagService: tagService,
	}
}

func (s *postService) CreatePost(userID uint, req models.CreatePostRequest) (*models.Post, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User does not exist")
		}
		return nil, models.NewInternalError(err)
	}

	cleaned, err := validation.ValidatePost(req)
	if err != nil {
		return nil, err
	}

	// Tags created here are shared rows and stay even if the post insert
	// fails below.
	tags, err := s.tagService.ResolveAll(cleaned.Tags)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   cleaned.Title,
		Body:    cleaned.Body,
		PubDate: time.Now(),
		UserID:  userID,
		Tags:    tags,
	}
	if err := s.postRepo.Create(post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.NewConflictError("Could not create post")
		}
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

func (s *postService) GetUserPosts(userID uint, sort string) ([]models.Post, error) {
	posts, err := s.postRepo.GetByUser(userID, sort)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
