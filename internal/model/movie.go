package model

// Movie represents a catalog entry. The catalog is read-only: no endpoint
// mutates movies, and the id-sets on User may reference ids that do not
// exist here.
type Movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageURL"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UserListsRequest fetches the movies behind a user's liked or watch-later
// id-set in one call.
type UserListsRequest struct {
	MovieIDs []int `json:"movieIds"`
}
