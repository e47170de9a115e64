// Package session resolves the browser session that keys the state repository.
package session

import (
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the cookie that carries the session id
const CookieName = "dessert_session"

// Resolve returns the session id from the request cookie, minting a new id
// and setting the cookie when the request carries none
func Resolve(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
