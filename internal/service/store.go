package service

import (
	"context"

	"github.com/muhammadumair512/movieweb/internal/model"
)

// UserStore is the data-access contract the user-facing services depend
// on. The MySQL implementation lives in internal/repository; tests use
// in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetBySession(ctx context.Context, token string) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	UpdateSession(ctx context.Context, email, token string) error
	ToggleList(ctx context.Context, email string, movieID int, list model.List) (*model.User, error)
}

// MovieStore is the data-access contract for catalog reads.
type MovieStore interface {
	GetAll(ctx context.Context) ([]model.Movie, error)
	SearchByTitle(ctx context.Context, title string) ([]model.Movie, error)
	GetByIDs(ctx context.Context, ids []int) ([]model.Movie, error)
}
