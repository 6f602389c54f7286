package client

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"net/url"

	"github.com/muhammadumair512/movieweb/internal/model"
)

// Login authenticates with the server and establishes the session: the
// server mints and binds the token, the cookie jar captures it, and the
// authoritative profile is fetched and cached. Unknown email and wrong
// password come back as distinct errors for field-level display.
func (c *Client) Login(ctx context.Context, email, password string, stayLoggedIn bool) (*model.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	var u model.User
	err := c.post(ctx, "/users/login", model.LoginRequest{
		Email:        email,
		Password:     password,
		StayLoggedIn: stayLoggedIn,
	}, &u)
	if err != nil {
		return nil, mapLoginError(err)
	}

	// The login response already carries the authoritative profile; no
	// follow-up read that could fail a login that succeeded server-side.
	c.setProfile(&u)
	return u.Clone(), nil
}

// Signup registers a new account. Field validation and the username
// uniqueness check run client-side before any mutation is sent; email
// uniqueness is enforced by the server.
func (c *Client) Signup(ctx context.Context, user model.User, stayLoggedIn bool) (*model.User, error) {
	if user.Email == "" {
		return nil, ErrEmailRequired
	}
	if user.Username == "" {
		return nil, ErrUsernameRequired
	}
	if user.Password == "" {
		return nil, ErrPasswordRequired
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return nil, ErrInvalidEmail
	}

	// The username check scans the full user list, as the web client did.
	users, err := c.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == user.Username {
			return nil, ErrUsernameTaken
		}
		if u.Email == user.Email {
			return nil, ErrEmailTaken
		}
	}

	user.StayLoggedIn = stayLoggedIn

	var created model.User
	if err := c.post(ctx, "/users", user, &created); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	c.setProfile(&created)
	return created.Clone(), nil
}

// RefreshProfile re-fetches the authoritative profile by email and
// overwrites the cached copy and the durable mirror. It never merges.
func (c *Client) RefreshProfile(ctx context.Context) (*model.User, error) {
	c.mu.Lock()
	if c.profile == nil {
		c.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	email := c.profile.Email
	c.mu.Unlock()

	var u model.User
	if err := c.get(ctx, "/users/email/"+url.PathEscape(email), &u); err != nil {
		return nil, err
	}

	c.setProfile(&u)
	return u.Clone(), nil
}

// VerifySession asks the server whether token is still bound to a user.
// Only the server's answer counts: comparing the cookie against a local
// copy proves nothing about validity.
func (c *Client) VerifySession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	var u model.User
	err := c.post(ctx, "/users/verify-session", model.VerifySessionRequest{Session: token}, &u)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	return &u, nil
}

// Logout clears the server-side session binding, the cached profile, the
// durable mirror and any running session watcher.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	if c.profile == nil {
		c.mu.Unlock()
		return ErrNotAuthenticated
	}
	email := c.profile.Email
	c.mu.Unlock()

	if err := c.post(ctx, "/users/logout", model.LogoutRequest{Email: email}, nil); err != nil {
		return err
	}

	c.clearSession(ctx)
	return nil
}

// Users fetches all users. The signup flow uses this for its client-side
// username uniqueness check.
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func mapLoginError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		switch apiErr.Message {
		case msgEmailNotFound:
			return ErrEmailNotFound
		case msgWrongPassword:
			return ErrWrongPassword
		}
	}
	return err
}
