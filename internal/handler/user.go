package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/muhammadumair512/movieweb/internal/model"
	"github.com/muhammadumair512/movieweb/internal/service"
)

// UserHandler handles profile reads and the toggle endpoints.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleList handles GET /users requests.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// HandleGetByEmail handles GET /users/email/{email} requests. This is the
// profile refresh read: the response is the authoritative record the
// client overwrites its cache with.
func (h *UserHandler) HandleGetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		h.writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleToggleLike handles POST /users/toggle-like requests.
func (h *UserHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	h.handleToggle(w, r, h.service.ToggleLiked)
}

// HandleToggleLater handles POST /users/toggle-later requests.
func (h *UserHandler) HandleToggleLater(w http.ResponseWriter, r *http.Request) {
	h.handleToggle(w, r, h.service.ToggleWatchLater)
}

func (h *UserHandler) handleToggle(w http.ResponseWriter, r *http.Request,
	toggle func(context.Context, model.ToggleRequest) (*model.User, error)) {

	var req model.ToggleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := toggle(r.Context(), req)
	if err != nil {
		h.writeUserError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrEmailRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
