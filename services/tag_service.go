package services

import (
	"errors"

	"blog-api/models"
	"blog-api/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	ResolveOrCreate(name string) (*models.Tag, error)
	ResolveAll(names []string) ([]models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// ResolveOrCreate maps a tag name to exactly one row. Tag creation is
// expected to race under concurrent post creation: when the insert loses to
// a concurrent creator, the unique index rejects it and we re-read the row
// that won instead of failing the request. This is the primary concurrency
// hazard of the core; a single re-read resolves it, no retry loop.
func (s *tagService) ResolveOrCreate(name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByName(name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError(err)
	}

	newTag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(newTag); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewInternalError(err)
		}
		tag, err = s.tagRepo.GetByName(name)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		return tag, nil
	}
	return newTag, nil
}

func (s *tagService) ResolveAll(names []string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, name := range names {
		tag, err := s.ResolveOrCreate(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
