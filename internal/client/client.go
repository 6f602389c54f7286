// Package client is the Go counterpart of the original web front end's
// data layer: cookie-based sessions, an optimistic toggle coordinator for
// the liked/watch-later lists, a profile refresher, and a polling session
// watcher. All state lives on the Client — there is no package-level
// cache; create a Client per session and drop it on logout.
package client

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/muhammadumair512/movieweb/internal/client/localstore"
	"github.com/muhammadumair512/movieweb/internal/model"
	"github.com/muhammadumair512/movieweb/internal/session"
)

// Client talks to the movieweb API and keeps the authenticated user's
// cached profile in sync with it. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	store   *localstore.Store

	mu      sync.Mutex
	profile *model.User // authoritative cached profile; nil when anonymous
	watcher *SessionWatcher

	// listMu serializes toggles per id-set, so a slow request's late
	// response cannot overwrite the result of a faster later one.
	listMu map[model.List]*sync.Mutex
}

// New creates a Client for the API at baseURL. store holds the durable
// profile mirror and may be nil, in which case nothing survives restarts.
func New(baseURL string, store *localstore.Store) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
		store:   store,
		listMu: map[model.List]*sync.Mutex{
			model.ListLiked:      {},
			model.ListWatchLater: {},
		},
	}, nil
}

// Authenticated reports whether a profile is currently cached.
func (c *Client) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile != nil
}

// Profile returns a copy of the cached profile, or nil when anonymous.
func (c *Client) Profile() *model.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return nil
	}
	return c.profile.Clone()
}

// Resume loads the stored profile from the durable mirror into the
// session state without a network call. Callers normally follow up with
// VerifySession or StartSessionWatch to confirm the session still holds.
func (c *Client) Resume(ctx context.Context) (*model.User, error) {
	if c.store == nil {
		return nil, localstore.ErrNotFound
	}
	u, err := c.store.LoadUser(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.profile = u
	c.mu.Unlock()
	return u.Clone(), nil
}

// SessionToken returns the session cookie value currently held for the
// server, or "" when there is none.
func (c *Client) SessionToken() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == session.CookieName {
			return ck.Value
		}
	}
	return ""
}

// setProfile overwrites the cached profile and the durable mirror.
func (c *Client) setProfile(u *model.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profile = u
	c.persistLocked()
}

// persistLocked writes the cached profile to the durable mirror.
// Best-effort: a failed write leaves the in-memory state authoritative.
// Caller must hold c.mu.
func (c *Client) persistLocked() {
	if c.store == nil || c.profile == nil {
		return
	}
	if err := c.store.SaveUser(context.Background(), c.profile); err != nil {
		slog.Warn("persisting profile failed", "error", err)
	}
}

// clearSession drops the cached profile, the durable mirror and any
// running session watcher. The session cookie itself is cleared by the
// server's logout response or simply stops verifying.
func (c *Client) clearSession(ctx context.Context) {
	c.mu.Lock()
	c.profile = nil
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if w != nil {
		w.Stop()
	}
	if c.store != nil {
		if err := c.store.Clear(ctx); err != nil {
			slog.Warn("clearing stored profile failed", "error", err)
		}
	}
}
