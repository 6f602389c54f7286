package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/muhammadumair512/movieweb/internal/model"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrSessionNotFound = errors.New("session not found")
)

// UserRepository handles user persistence operations. The two movie
// id-sets are stored as JSON array columns, mirroring the document shape
// the original store kept.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `username, email, password, cookie_session, stay_logged_in, liked_movies, watch_later`

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	liked, later, err := marshalLists(user)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		user.Username, user.Email, user.Password,
		user.CookieSession, user.StayLoggedIn, liked, later,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByEmail retrieves a user by their email address. The comparison is
// case-sensitive, as it was in the original store.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, email), ErrUserNotFound)
}

// GetBySession retrieves the user a session token is bound to.
func (r *UserRepository) GetBySession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		// An empty cookie_session means "logged out"; never match it.
		return nil, ErrSessionNotFound
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE cookie_session = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, token), ErrSessionNotFound)
}

// GetAll retrieves all users.
func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY email`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// UpdateSession binds a session token to the user (or clears the binding
// when token is empty). Token mint and persist happen in one call so the
// token is never live without an owner.
func (r *UserRepository) UpdateSession(ctx context.Context, email, token string) error {
	query := `UPDATE users SET cookie_session = ? WHERE email = ?`

	result, err := r.db.ExecContext(ctx, query, token, email)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// RowsAffected is also 0 when the stored token already equals the
		// new one; confirm the user really is missing.
		if _, err := r.GetByEmail(ctx, email); err != nil {
			return err
		}
	}
	return nil
}

// ToggleList flips movieID's membership in the selected id-set and
// returns the updated user. The read-flip-write runs inside a transaction
// with the row locked, so concurrent flips cannot lose updates.
func (r *UserRepository) ToggleList(ctx context.Context, email string, movieID int, list model.List) (*model.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var likedRaw, laterRaw []byte
	query := `SELECT liked_movies, watch_later FROM users WHERE email = ? FOR UPDATE`
	if err := tx.QueryRowContext(ctx, query, email).Scan(&likedRaw, &laterRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	u := &model.User{}
	if err := unmarshalLists(u, likedRaw, laterRaw); err != nil {
		return nil, err
	}

	u.Flip(list, movieID)

	liked, later, err := marshalLists(u)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET liked_movies = ?, watch_later = ? WHERE email = ?`,
		liked, later, email,
	)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.GetByEmail(ctx, email)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, notFound error) (*model.User, error) {
	u, err := scanUserRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound
		}
		return nil, err
	}
	return u, nil
}

func scanUserRow(row rowScanner) (*model.User, error) {
	u := &model.User{}
	var likedRaw, laterRaw []byte
	err := row.Scan(
		&u.Username, &u.Email, &u.Password,
		&u.CookieSession, &u.StayLoggedIn, &likedRaw, &laterRaw,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalLists(u, likedRaw, laterRaw); err != nil {
		return nil, err
	}
	return u, nil
}

func marshalLists(u *model.User) ([]byte, []byte, error) {
	liked, err := json.Marshal(nonNil(u.LikedMovies))
	if err != nil {
		return nil, nil, err
	}
	later, err := json.Marshal(nonNil(u.WatchLater))
	if err != nil {
		return nil, nil, err
	}
	return liked, later, nil
}

func unmarshalLists(u *model.User, likedRaw, laterRaw []byte) error {
	if len(likedRaw) > 0 {
		if err := json.Unmarshal(likedRaw, &u.LikedMovies); err != nil {
			return err
		}
	}
	if len(laterRaw) > 0 {
		if err := json.Unmarshal(laterRaw, &u.WatchLater); err != nil {
			return err
		}
	}
	if u.LikedMovies == nil {
		u.LikedMovies = []int{}
	}
	if u.WatchLater == nil {
		u.WatchLater = []int{}
	}
	return nil
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
