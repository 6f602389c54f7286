package service

import (
	"context"
	"errors"

	"github.com/muhammadumair512/movieweb/internal/model"
	"github.com/muhammadumair512/movieweb/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// UserService handles profile reads and the server side of the
// liked/watch-later toggle.
type UserService struct {
	store UserStore
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// GetAll returns every user. The web client uses this for its
// client-side username uniqueness check at signup.
func (s *UserService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.store.GetAll(ctx)
}

// GetByEmail returns the authoritative profile for an email. This is the
// reconciliation read the client runs after login and toggles.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	user, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// ToggleLiked flips movieID in the user's liked set and returns the
// updated user. The id is not checked against the catalog: flipping an
// id with no matching movie is allowed and merely stores it.
func (s *UserService) ToggleLiked(ctx context.Context, req model.ToggleRequest) (*model.User, error) {
	return s.toggle(ctx, req, model.ListLiked)
}

// ToggleWatchLater flips movieID in the user's watch-later set.
func (s *UserService) ToggleWatchLater(ctx context.Context, req model.ToggleRequest) (*model.User, error) {
	return s.toggle(ctx, req, model.ListWatchLater)
}

func (s *UserService) toggle(ctx context.Context, req model.ToggleRequest, list model.List) (*model.User, error) {
	if req.Email == "" {
		return nil, ErrEmailRequired
	}
	user, err := s.store.ToggleList(ctx, req.Email, req.MovieID, list)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
