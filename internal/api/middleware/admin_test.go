package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Atelier/internal/core/sessions"
)

func TestRequireAdminValidToken(t *testing.T) {
	mw := NewAdminAuthMiddleware(sessions.NewGate("secret123"))

	handlerCalled := false
	handler := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true

		if token := GetAdminToken(r); token != "secret123" {
			t.Errorf("expected token in context, got %q", token)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/posts", nil)
	req.Header.Set(AdminHeader, "secret123")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !handlerCalled {
		t.Error("handler was not called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestRequireAdminWrongToken(t *testing.T) {
	mw := NewAdminAuthMiddleware(sessions.NewGate("secret123"))

	handler := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for a wrong token")
	}))

	req := httptest.NewRequest("POST", "/api/posts", nil)
	req.Header.Set(AdminHeader, "wrong")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestRequireAdminMissingToken(t *testing.T) {
	mw := NewAdminAuthMiddleware(sessions.NewGate("secret123"))

	handler := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	}))

	req := httptest.NewRequest("DELETE", "/api/posts", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestGetAdminTokenWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/posts", nil)
	if token := GetAdminToken(req); token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}
