package services

import (
	"blog-api/models"
	"blog-api/repositories"
	"blog-api/validation"
)

type SearchService interface {
	Search(params models.SearchParams) ([]models.SearchResult, error)
}

type searchService struct {
	postRepo repositories.PostRepository
}

func NewSearchService(postRepo repositories.PostRepository) SearchService {
	return &searchService{postRepo: postRepo}
}

// Search narrows by conjunction of the supplied filters. With no filters at
// all it returns an empty result without touching the store.
func (s *searchService) Search(params models.SearchParams) ([]models.SearchResult, error) {
	filter, err := validation.ValidateSearch(params)
	if err != nil {
		return nil, err
	}

	if filter.Empty() {
		return []models.SearchResult{}, nil
	}

	results, err := s.postRepo.Search(*filter)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return results, nil
}
