package model

import "testing"

func TestFlip_AddsWhenAbsent(t *testing.T) {
	u := &User{LikedMovies: []int{1, 2}}

	was := u.Flip(ListLiked, 42)
	if was {
		t.Fatal("42 should not have been a member before the flip")
	}
	want := []int{1, 2, 42}
	if len(u.LikedMovies) != len(want) {
		t.Fatalf("expected %v, got %v", want, u.LikedMovies)
	}
	for i := range want {
		if u.LikedMovies[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, u.LikedMovies)
		}
	}
}

func TestFlip_RemovesWhenPresent(t *testing.T) {
	u := &User{LikedMovies: []int{1, 42, 2}}

	was := u.Flip(ListLiked, 42)
	if !was {
		t.Fatal("42 should have been a member before the flip")
	}
	if len(u.LikedMovies) != 2 || u.LikedMovies[0] != 1 || u.LikedMovies[1] != 2 {
		t.Fatalf("expected [1 2], got %v", u.LikedMovies)
	}
}

func TestFlip_CollapsesDuplicates(t *testing.T) {
	// Historic data may contain duplicate ids; one flip removes them all.
	u := &User{LikedMovies: []int{42, 1, 42}}

	u.Flip(ListLiked, 42)
	if len(u.LikedMovies) != 1 || u.LikedMovies[0] != 1 {
		t.Fatalf("expected [1], got %v", u.LikedMovies)
	}
}

func TestFlip_SelectsList(t *testing.T) {
	u := &User{LikedMovies: []int{}, WatchLater: []int{}}

	u.Flip(ListWatchLater, 7)
	if len(u.LikedMovies) != 0 {
		t.Fatalf("liked list should be untouched, got %v", u.LikedMovies)
	}
	if len(u.WatchLater) != 1 || u.WatchLater[0] != 7 {
		t.Fatalf("expected [7], got %v", u.WatchLater)
	}
}

func TestFlip_RoundTrips(t *testing.T) {
	u := &User{LikedMovies: []int{1}}

	u.Flip(ListLiked, 42)
	u.Flip(ListLiked, 42)
	if len(u.LikedMovies) != 1 || u.LikedMovies[0] != 1 {
		t.Fatalf("two flips should restore the original set, got %v", u.LikedMovies)
	}
}

func TestClone_IndependentSlices(t *testing.T) {
	u := &User{LikedMovies: []int{1}, WatchLater: []int{2}}

	c := u.Clone()
	c.Flip(ListLiked, 42)
	if len(u.LikedMovies) != 1 {
		t.Fatalf("flipping a clone must not touch the original, got %v", u.LikedMovies)
	}
}
