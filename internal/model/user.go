package model

import "slices"

// List identifies one of the two per-user movie id-sets.
type List string

const (
	ListLiked      List = "liked"
	ListWatchLater List = "watchLater"
)

// User represents a user account. JSON field names match the wire format
// the frontend already speaks, so the full record round-trips unchanged.
//
// Password is stored and compared in plaintext. That is the inherited API
// contract (the client sends and receives the raw password field), not a
// reviewed security design.
type User struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	CookieSession string `json:"cookieSession"`
	LikedMovies   []int  `json:"likedMovies"`
	WatchLater    []int  `json:"watchLater"`
	StayLoggedIn  bool   `json:"stayLoggedIn"`
}

// ListFor returns a pointer to the id-set selected by list.
func (u *User) ListFor(list List) *[]int {
	if list == ListWatchLater {
		return &u.WatchLater
	}
	return &u.LikedMovies
}

// Flip toggles movieID's membership in the selected id-set: present ids
// are removed (every occurrence, so historic duplicates collapse), absent
// ids are appended. It reports whether the id was a member before the
// flip. Both the store and the client coordinator flip through here, so
// optimistic local state and the persisted row cannot drift on semantics.
func (u *User) Flip(list List, movieID int) bool {
	ids := u.ListFor(list)
	out := make([]int, 0, len(*ids)+1)
	found := false
	for _, v := range *ids {
		if v == movieID {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, movieID)
	}
	*ids = out
	return found
}

// Clone returns a deep copy of the user, so cached profiles can be handed
// out without sharing the underlying slices.
func (u *User) Clone() *User {
	c := *u
	c.LikedMovies = slices.Clone(u.LikedMovies)
	c.WatchLater = slices.Clone(u.WatchLater)
	return &c
}

// LoginRequest represents a user login request. StayLoggedIn selects the
// session cookie lifetime: persistent (30 days) or browser-session scoped.
type LoginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	StayLoggedIn bool   `json:"stayLoggedIn"`
}

// ToggleRequest represents a liked/watch-later membership flip request.
type ToggleRequest struct {
	Email   string `json:"email"`
	MovieID int    `json:"movieId"`
}

// VerifySessionRequest asks the server whether a session token is still
// bound to a user. The server record is the sole source of truth.
type VerifySessionRequest struct {
	Session string `json:"session"`
}

// LogoutRequest clears the server-side session binding for a user.
type LogoutRequest struct {
	Email string `json:"email"`
}
