package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/muhammadumair512/movieweb/internal/model"
)

// MovieRepository handles read-only catalog queries.
type MovieRepository struct {
	db *sql.DB
}

// NewMovieRepository creates a new MovieRepository.
func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

const movieColumns = `id, title, image_url, description, category`

// GetAll retrieves the whole catalog.
func (r *MovieRepository) GetAll(ctx context.Context) ([]model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY id`
	return r.queryMovies(ctx, query)
}

// SearchByTitle retrieves movies whose title contains the given substring,
// case-insensitively. An empty substring matches everything, as the
// original regex search did.
func (r *MovieRepository) SearchByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE LOWER(title) LIKE ? ORDER BY id`
	pattern := "%" + strings.ToLower(title) + "%"
	return r.queryMovies(ctx, query, pattern)
}

// GetByIDs retrieves the movies matching the given ids. Unknown ids are
// silently absent from the result.
func (r *MovieRepository) GetByIDs(ctx context.Context, ids []int) ([]model.Movie, error) {
	if len(ids) == 0 {
		return []model.Movie{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id IN (` + placeholders + `) ORDER BY id`

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return r.queryMovies(ctx, query, args...)
}

func (r *MovieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []model.Movie{}
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.ImageURL, &m.Description, &m.Category); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}
