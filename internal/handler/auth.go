package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muhammadumair512/movieweb/internal/model"
	"github.com/muhammadumair512/movieweb/internal/service"
	"github.com/muhammadumair512/movieweb/internal/session"
)

// AuthHandler handles HTTP requests for signup, login and the session
// lifecycle. It is the only handler that touches the session cookie: the
// server both mints the token and sets the cookie, so token and user
// identity never travel on separate paths.
type AuthHandler struct {
	service       *service.AuthService
	cookieTTLDays int
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, cookieTTLDays int) *AuthHandler {
	return &AuthHandler{service: svc, cookieTTLDays: cookieTTLDays}
}

// HandleSignup handles POST /users requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if !decodeBody(w, r, &user) {
		return
	}

	created, err := h.service.Signup(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	http.SetCookie(w, session.Cookie(created.CookieSession, created.StayLoggedIn, h.cookieTTLDays))
	writeJSON(w, http.StatusCreated, created)
}

// HandleLogin handles POST /users/login requests. Unknown email and wrong
// password produce distinct error bodies so the form can mark the right
// field; the session cookie is only set on success.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound), errors.Is(err, service.ErrWrongPassword):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	http.SetCookie(w, session.Cookie(user.CookieSession, req.StayLoggedIn, h.cookieTTLDays))
	writeJSON(w, http.StatusOK, user)
}

// HandleVerifySession handles POST /users/verify-session requests.
func (h *AuthHandler) HandleVerifySession(w http.ResponseWriter, r *http.Request) {
	var req model.VerifySessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.VerifySession(r.Context(), req.Session)
	if err != nil {
		if errors.Is(err, service.ErrSessionInvalid) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleLogout handles POST /users/logout requests.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req model.LogoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.Logout(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	http.SetCookie(w, session.Expired())
	w.WriteHeader(http.StatusNoContent)
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrEmailRequired) ||
		errors.Is(err, service.ErrPasswordRequired) ||
		errors.Is(err, service.ErrUsernameRequired) ||
		errors.Is(err, service.ErrInvalidEmail)
}

// decodeBody decodes a JSON request body into v, writing the error
// response itself when decoding fails.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
