package session

import (
	"net/http"
	"testing"
	"time"
)

func TestIssue_Unique(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		token := Issue()
		if token == "" {
			t.Fatal("expected non-empty token")
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token after %d issues: %s", i, token)
		}
		seen[token] = struct{}{}
	}
}

func TestCookie_Persistent(t *testing.T) {
	before := time.Now()
	c := Cookie("tok", true, 30)

	if c.Name != CookieName {
		t.Errorf("expected cookie name %q, got %q", CookieName, c.Name)
	}
	if c.Value != "tok" {
		t.Errorf("expected value tok, got %q", c.Value)
	}
	if c.Path != "/" {
		t.Errorf("expected path /, got %q", c.Path)
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Errorf("expected SameSite=Strict, got %v", c.SameSite)
	}
	if c.MaxAge != 30*24*60*60 {
		t.Errorf("expected 30 day MaxAge, got %d", c.MaxAge)
	}

	// Expiry should land ~30 days out.
	low := before.Add(30*24*time.Hour - time.Minute)
	high := time.Now().Add(30*24*time.Hour + time.Minute)
	if c.Expires.Before(low) || c.Expires.After(high) {
		t.Errorf("expected expiry ~30 days out, got %v", c.Expires)
	}
}

func TestCookie_SessionScoped(t *testing.T) {
	c := Cookie("tok", false, 30)

	if c.MaxAge != 0 {
		t.Errorf("expected no MaxAge on session-scoped cookie, got %d", c.MaxAge)
	}
	if !c.Expires.IsZero() {
		t.Errorf("expected no explicit expiry, got %v", c.Expires)
	}
}

func TestExpired(t *testing.T) {
	c := Expired()

	if c.MaxAge != -1 {
		t.Errorf("expected MaxAge -1, got %d", c.MaxAge)
	}
	if c.Value != "" {
		t.Errorf("expected empty value, got %q", c.Value)
	}
}
