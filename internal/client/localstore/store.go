// Package localstore is the client's durable profile cache: the Go
// counterpart of the browser storage the web client kept under the
// "userData" key. A single-row SQLite table survives restarts so a
// returning client can render its lists before talking to the server.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	_ "modernc.org/sqlite"

	"github.com/muhammadumair512/movieweb/internal/model"
)

// ErrNotFound is returned when no user data has been saved yet.
var ErrNotFound = errors.New("no stored user data")

const userDataKey = "userData"

// Store persists the last-fetched user profile.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the store at path. Use a
// "file:...?mode=memory" DSN for throwaway stores.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS userdata (
  k TEXT PRIMARY KEY,
  v BLOB NOT NULL
);
`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// SaveUser overwrites the stored profile with u.
func (s *Store) SaveUser(ctx context.Context, u *model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO userdata (k, v) VALUES (?, ?)
		 ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		userDataKey, raw,
	)
	return err
}

// LoadUser returns the stored profile, or ErrNotFound.
func (s *Store) LoadUser(ctx context.Context) (*model.User, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT v FROM userdata WHERE k = ?`, userDataKey,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u := &model.User{}
	if err := json.Unmarshal(raw, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Clear removes the stored profile. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM userdata WHERE k = ?`, userDataKey)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
