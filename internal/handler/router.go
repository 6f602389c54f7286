package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router assembles the API route table. Extracted from main so tests can
// stand up the exact routes the binary serves. rateLimit guards the
// credential endpoints and may be nil (tests).
func Router(auth *AuthHandler, users *UserHandler, movies *MovieHandler,
	rateLimit func(http.Handler) http.Handler) chi.Router {

	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/movies", movies.HandleList)
	r.Get("/movies/search", movies.HandleSearch)
	r.Post("/movies/user-lists", movies.HandleUserLists)

	r.Get("/users", users.HandleList)
	r.Get("/users/email/{email}", users.HandleGetByEmail)
	r.Post("/users/toggle-like", users.HandleToggleLike)
	r.Post("/users/toggle-later", users.HandleToggleLater)

	r.Post("/users/verify-session", auth.HandleVerifySession)
	r.Post("/users/logout", auth.HandleLogout)

	r.Group(func(r chi.Router) {
		if rateLimit != nil {
			r.Use(rateLimit)
		}
		r.Post("/users", auth.HandleSignup)
		r.Post("/users/login", auth.HandleLogin)
	})

	return r
}
