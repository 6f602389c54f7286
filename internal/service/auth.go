package service

import (
	"context"
	"errors"
	"net/mail"

	"github.com/muhammadumair512/movieweb/internal/model"
	"github.com/muhammadumair512/movieweb/internal/repository"
	"github.com/muhammadumair512/movieweb/internal/session"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmailTaken       = errors.New("email already exists")
	ErrEmailNotFound    = errors.New("email not found")
	ErrWrongPassword    = errors.New("wrong password")
	ErrSessionInvalid   = errors.New("session invalid")
)

// AuthService handles signup, login and session lifecycle. Session
// issuance is atomic: the token is minted and persisted onto the user
// record in one step, so a live token always has an owner.
type AuthService struct {
	store UserStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

// Signup creates a new user account with a freshly bound session token.
// Email uniqueness is enforced by the store; username uniqueness is the
// caller's concern (the web client checks it against the full user list).
func (s *AuthService) Signup(ctx context.Context, user model.User) (*model.User, error) {
	if err := validateSignup(&user); err != nil {
		return nil, err
	}

	user.CookieSession = session.Issue()
	if user.LikedMovies == nil {
		user.LikedMovies = []int{}
	}
	if user.WatchLater == nil {
		user.WatchLater = []int{}
	}

	if err := s.store.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login authenticates a user and rebinds their session token. Unknown
// email and wrong password are distinct outcomes so the form can surface
// the error on the right field.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	if req.Email == "" {
		return nil, ErrEmailRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}

	// Plaintext comparison, inherited from the original API contract.
	// TODO: hash with bcrypt once the frontend stops round-tripping the
	// password field; needs a one-time migration of stored rows.
	if user.Password != req.Password {
		return nil, ErrWrongPassword
	}

	token := session.Issue()
	if err := s.store.UpdateSession(ctx, req.Email, token); err != nil {
		return nil, err
	}
	user.CookieSession = token

	return user, nil
}

// VerifySession returns the user a token is currently bound to. The
// stored record is the sole source of truth: a token that matches no
// user is invalid no matter what cookie the client still holds.
func (s *AuthService) VerifySession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}
	user, err := s.store.GetBySession(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	return user, nil
}

// Logout clears the user's session binding. Any cookie still holding the
// old token stops verifying immediately.
func (s *AuthService) Logout(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	err := s.store.UpdateSession(ctx, email, "")
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrEmailNotFound
	}
	return err
}

func validateSignup(user *model.User) error {
	if user.Email == "" {
		return ErrEmailRequired
	}
	if user.Username == "" {
		return ErrUsernameRequired
	}
	if user.Password == "" {
		return ErrPasswordRequired
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
