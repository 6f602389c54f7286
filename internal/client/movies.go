package client

import (
	"context"
	"net/url"

	"github.com/muhammadumair512/movieweb/internal/model"
)

// Movies fetches the whole catalog.
func (c *Client) Movies(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.get(ctx, "/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// SearchMovies fetches movies whose title contains the substring,
// case-insensitively.
func (c *Client) SearchMovies(ctx context.Context, title string) ([]model.Movie, error) {
	var movies []model.Movie
	q := url.Values{"title": {title}}
	if err := c.get(ctx, "/movies/search?"+q.Encode(), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// MoviesByIDs fetches the movies behind an id-set. Ids with no matching
// movie are silently absent from the result.
func (c *Client) MoviesByIDs(ctx context.Context, ids []int) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.post(ctx, "/movies/user-lists", model.UserListsRequest{MovieIDs: ids}, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// LikedMovies fetches the movies in the cached profile's liked list.
func (c *Client) LikedMovies(ctx context.Context) ([]model.Movie, error) {
	return c.listMovies(ctx, model.ListLiked)
}

// WatchLaterMovies fetches the movies in the cached profile's watch-later
// list.
func (c *Client) WatchLaterMovies(ctx context.Context) ([]model.Movie, error) {
	return c.listMovies(ctx, model.ListWatchLater)
}

func (c *Client) listMovies(ctx context.Context, list model.List) ([]model.Movie, error) {
	c.mu.Lock()
	if c.profile == nil {
		c.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	ids := *c.profile.Clone().ListFor(list)
	c.mu.Unlock()

	return c.MoviesByIDs(ctx, ids)
}
