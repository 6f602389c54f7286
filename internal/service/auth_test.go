package service

import (
	"context"
	"testing"

	"github.com/muhammadumair512/movieweb/internal/model"
)

func newTestAuthService() *AuthService {
	return NewAuthService(nil)
}

func TestSignup_EmptyEmail(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Signup(context.Background(), model.User{
		Username: "someone",
		Password: "password123",
	})

	if err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestSignup_EmptyUsername(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Signup(context.Background(), model.User{
		Email:    "a@x.com",
		Password: "password123",
	})

	if err != ErrUsernameRequired {
		t.Errorf("expected ErrUsernameRequired, got %v", err)
	}
}

func TestSignup_EmptyPassword(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Signup(context.Background(), model.User{
		Email:    "a@x.com",
		Username: "someone",
	})

	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestSignup_MalformedEmail(t *testing.T) {
	svc := newTestAuthService()

	// Must fail before any store call: validation errors never reach the
	// network in the original flow either.
	_, err := svc.Signup(context.Background(), model.User{
		Email:    "not-an-email",
		Username: "someone",
		Password: "password123",
	})

	if err != ErrInvalidEmail {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestLogin_EmptyEmail(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Password: "password123",
	})

	if err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestLogin_EmptyPassword(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email: "a@x.com",
	})

	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestVerifySession_EmptyToken(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.VerifySession(context.Background(), "")
	if err != ErrSessionInvalid {
		t.Errorf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestLogout_EmptyEmail(t *testing.T) {
	svc := newTestAuthService()

	if err := svc.Logout(context.Background(), ""); err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}
