package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muhammadumair512/movieweb/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadUser_Empty(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadUser(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := &model.User{
		Username:      "ana",
		Email:         "a@x.com",
		Password:      "secret",
		CookieSession: "tok-1",
		LikedMovies:   []int{42, 7},
		WatchLater:    []int{},
		StayLoggedIn:  true,
	}
	require.NoError(t, s.SaveUser(ctx, u))

	got, err := s.LoadUser(ctx)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestSaveUser_Overwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveUser(ctx, &model.User{Email: "a@x.com", LikedMovies: []int{1}}))
	require.NoError(t, s.SaveUser(ctx, &model.User{Email: "a@x.com", LikedMovies: []int{1, 2}}))

	got, err := s.LoadUser(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, got.LikedMovies)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Clear(ctx)) // clearing empty store is fine

	require.NoError(t, s.SaveUser(ctx, &model.User{Email: "a@x.com"}))
	require.NoError(t, s.Clear(ctx))

	_, err := s.LoadUser(ctx)
	require.ErrorIs(t, err, ErrNotFound)
}
