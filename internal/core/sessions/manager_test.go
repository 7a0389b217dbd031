package sessions

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const testCookieSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	m, err := NewManager(NewGate("secret123"), testCookieSecret, ttl)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

// requestWithCookies carries the Set-Cookie output of a previous response
// into a fresh request, simulating the browser.
func requestWithCookies(resp *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest("GET", "/api/session", nil)
	for _, c := range resp.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManagerRejectsShortCookieSecret(t *testing.T) {
	if _, err := NewManager(NewGate("s"), "short", 0); err == nil {
		t.Error("expected error for short cookie secret")
	}
}

func TestLoginGrantsSession(t *testing.T) {
	m := newTestManager(t, 0)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/session", nil)

	ok, err := m.Login(w, r, "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !ok {
		t.Fatal("expected login with correct secret to succeed")
	}

	if !m.IsAuthenticated(requestWithCookies(w)) {
		t.Error("expected session to read as authenticated after login")
	}
}

func TestLoginRejectsWrongSecret(t *testing.T) {
	m := newTestManager(t, 0)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/session", nil)

	ok, err := m.Login(w, r, "wrong")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if ok {
		t.Fatal("expected login with wrong secret to fail")
	}

	// No session cookie should have been issued.
	if got := w.Header().Get("Set-Cookie"); strings.Contains(got, sessionName) {
		t.Errorf("expected no session cookie on failed login, got %q", got)
	}
	if m.IsAuthenticated(requestWithCookies(w)) {
		t.Error("expected session to stay unauthenticated")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	m := newTestManager(t, 0)

	loginResp := httptest.NewRecorder()
	if ok, _ := m.Login(loginResp, httptest.NewRequest("POST", "/api/session", nil), "secret123"); !ok {
		t.Fatal("login failed")
	}

	logoutResp := httptest.NewRecorder()
	if err := m.Logout(logoutResp, requestWithCookies(loginResp)); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if m.IsAuthenticated(requestWithCookies(logoutResp)) {
		t.Error("expected session to be cleared after logout")
	}
}

func TestExpiredSessionReadsUnauthenticated(t *testing.T) {
	m := newTestManager(t, time.Hour)

	// Write a session whose expiry is already in the past.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/session", nil)
	session, _ := m.store.Get(r, sessionName)
	session.Values[authenticatedKey] = true
	session.Values[expiresAtKey] = time.Now().UTC().Add(-time.Minute).Unix()
	if err := session.Save(r, w); err != nil {
		t.Fatalf("save session: %v", err)
	}

	if m.IsAuthenticated(requestWithCookies(w)) {
		t.Error("expected expired session to read as unauthenticated")
	}
}

func TestNoTTLSessionDoesNotExpire(t *testing.T) {
	m := newTestManager(t, 0)

	w := httptest.NewRecorder()
	if ok, _ := m.Login(w, httptest.NewRequest("POST", "/api/session", nil), "secret123"); !ok {
		t.Fatal("login failed")
	}

	// With TTL 0 no expiry marker is stored; the flag holds until logout.
	req := requestWithCookies(w)
	session, _ := m.store.Get(req, sessionName)
	if _, ok := session.Values[expiresAtKey]; ok {
		t.Error("expected no expiry marker for TTL 0")
	}
	if !m.IsAuthenticated(req) {
		t.Error("expected session to stay authenticated")
	}
}
