package services

import (
	"errors"
	"time"

	"blog-api/models"
	"blog-api/repositories"
	"blog-api/validation"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(userID, postID uint, req models.CreateCommentRequest) (*models.Comment, error)
	GetComments(userID, postID uint, sort string) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	banRepo     repositories.BanRepository
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, banRepo repositories.BanRepository, userRepo repositories.UserRepository, postRepo repositories.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		banRepo:     banRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
	}
}

// CreateComment gates on the post's ban list before any write. The ban check
// targets the author named in the body, not the user in the path.
func (s *commentService) CreateComment(userID, postID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	if err := s.checkPath(userID, postID); err != nil {
		return nil, err
	}

	cleaned, err := validation.ValidateComment(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.banRepo.GetByPostAndUser(postID, cleaned.UserID); err == nil {
		return nil, models.NewForbiddenError("This user is not allowed to create comments")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError(err)
	}

	comment := &models.Comment{
		Body:    cleaned.Body,
		PubDate: time.Now(),
		UserID:  cleaned.UserID,
		PostID:  postID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.NewConflictError("Post does not belong this user")
		}
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

func (s *commentService) GetComments(userID, postID uint, sort string) ([]models.Comment, error) {
	if err := s.checkPath(userID, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetByPost(postID, sort)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (s *commentService) checkPath(userID, postID uint) error {
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
