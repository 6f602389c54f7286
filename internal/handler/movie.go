package handler

import (
	"net/http"

	"github.com/muhammadumair512/movieweb/internal/model"
	"github.com/muhammadumair512/movieweb/internal/service"
)

// MovieHandler handles catalog read requests.
type MovieHandler struct {
	service *service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{service: svc}
}

// HandleList handles GET /movies requests.
func (h *MovieHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// HandleSearch handles GET /movies/search?title= requests. The match is a
// case-insensitive substring; an empty title returns the whole catalog.
func (h *MovieHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")

	movies, err := h.service.Search(r.Context(), title)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// HandleUserLists handles POST /movies/user-lists requests: the movies
// behind a user's liked or watch-later id-set.
func (h *MovieHandler) HandleUserLists(w http.ResponseWriter, r *http.Request) {
	var req model.UserListsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	movies, err := h.service.ByIDs(r.Context(), req.MovieIDs)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, movies)
}
