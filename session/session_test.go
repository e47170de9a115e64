package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveKeepsExistingSession(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/menu", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "existing-id"})

	rec := httptest.NewRecorder()
	if got := Resolve(rec, r); got != "existing-id" {
		t.Fatalf("Resolve: got %q, want existing-id", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("existing session must not set a new cookie")
	}
}

func TestResolveMintsNewSession(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec := httptest.NewRecorder()

	id := Resolve(rec, r)
	if id == "" {
		t.Fatalf("expected a minted session id")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one session cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || c.Value != id {
		t.Fatalf("cookie mismatch: %s=%s, minted id %s", c.Name, c.Value, id)
	}
	if !c.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}

	// A second anonymous request mints a different id
	other := Resolve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/menu", nil))
	if other == id {
		t.Fatalf("session ids must be unique")
	}
}
