package service

import (
	"context"

	"github.com/muhammadumair512/movieweb/internal/model"
)

// MovieService handles catalog reads.
type MovieService struct {
	store MovieStore
}

// NewMovieService creates a new MovieService.
func NewMovieService(store MovieStore) *MovieService {
	return &MovieService{store: store}
}

// List returns the whole catalog.
func (s *MovieService) List(ctx context.Context) ([]model.Movie, error) {
	return s.store.GetAll(ctx)
}

// Search returns movies whose title contains the substring,
// case-insensitively.
func (s *MovieService) Search(ctx context.Context, title string) ([]model.Movie, error) {
	return s.store.SearchByTitle(ctx, title)
}

// ByIDs returns the movies behind a user's liked or watch-later id-set.
func (s *MovieService) ByIDs(ctx context.Context, ids []int) ([]model.Movie, error) {
	return s.store.GetByIDs(ctx, ids)
}
