package client

import (
	"context"
	"slices"

	"github.com/muhammadumair512/movieweb/internal/model"
)

// ToggleLike flips movieID's membership in the liked list. A toggle is a
// flip, not a set: calling it twice with the same id restores the
// original state. That is intentional, not a bug.
func (c *Client) ToggleLike(ctx context.Context, movieID int) (*model.User, error) {
	return c.toggle(ctx, "/users/toggle-like", model.ListLiked, movieID)
}

// ToggleWatchLater flips movieID's membership in the watch-later list.
func (c *Client) ToggleWatchLater(ctx context.Context, movieID int) (*model.User, error) {
	return c.toggle(ctx, "/users/toggle-later", model.ListWatchLater, movieID)
}

// toggle implements the optimistic flip: local state changes before the
// request goes out, the server's response overwrites it on success, and
// the flip is undone on failure so the net effect is a no-op.
func (c *Client) toggle(ctx context.Context, path string, list model.List, movieID int) (*model.User, error) {
	// One flight per list. Without this, a slow first request's late
	// response would overwrite the result of a faster second one.
	lk := c.listMu[list]
	lk.Lock()
	defer lk.Unlock()

	c.mu.Lock()
	if c.profile == nil {
		c.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	email := c.profile.Email
	wasMember := c.profile.Flip(list, movieID)
	c.persistLocked()
	c.mu.Unlock()

	// The id is not validated against the catalog: flipping an unknown id
	// stores it anyway, matching the server.
	var updated model.User
	err := c.post(ctx, path, model.ToggleRequest{Email: email, MovieID: movieID}, &updated)
	if err != nil {
		c.mu.Lock()
		if c.profile != nil {
			if slices.Contains(*c.profile.ListFor(list), movieID) != wasMember {
				c.profile.Flip(list, movieID)
			}
			c.persistLocked()
		}
		c.mu.Unlock()
		return nil, err
	}

	// Reconcile: the server's record is authoritative. Overwrite the
	// whole profile, never merge.
	c.setProfile(&updated)
	return updated.Clone(), nil
}
