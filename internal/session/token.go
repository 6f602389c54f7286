// Package session mints opaque session tokens and builds the cookies that
// carry them. Tokens prove nothing by themselves: the server binds each
// one to a user record (cookie_session column) at issue time and that
// record is the sole source of truth for validity.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// Issue returns a new opaque session token: a random v4 UUID, i.e. 128
// random bits, unguessable and unique with overwhelming probability.
// Generation cannot fail.
func Issue() string {
	return uuid.NewString()
}

// Cookie builds the session cookie for a freshly issued token. With
// persist=true the cookie lives ttlDays days; otherwise it carries no
// expiry and is dropped when the browser session ends.
func Cookie(token string, persist bool, ttlDays int) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	}
	if persist {
		c.MaxAge = ttlDays * 24 * 60 * 60
		c.Expires = time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour)
	}
	return c
}

// Expired builds a cookie that instructs the browser to drop the session
// cookie immediately. Used on logout.
func Expired() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	}
}
