package sessions

import (
	"fmt"
	"net/http"
	"time"

	gorilla "github.com/gorilla/sessions"
)

const (
	sessionName = "atelier_admin"

	authenticatedKey = "authenticated"
	expiresAtKey     = "expires_at"
)

// MinCookieSecretLength is the minimum cookie signing secret size.
const MinCookieSecretLength = 32

// Manager owns the interactive admin session: a cookie-backed flag set on
// login and cleared on logout. Sessions carry an explicit expiry; TTL 0
// means they never expire on their own.
type Manager struct {
	gate  *Gate
	store *gorilla.CookieStore
	ttl   time.Duration
}

// NewManager creates a session manager. cookieSecret signs the session
// cookie and is unrelated to the admin secret inside the gate.
func NewManager(gate *Gate, cookieSecret string, ttl time.Duration) (*Manager, error) {
	if len(cookieSecret) < MinCookieSecretLength {
		return nil, fmt.Errorf("session cookie secret must be at least %d bytes", MinCookieSecretLength)
	}

	store := gorilla.NewCookieStore([]byte(cookieSecret))
	store.Options = &gorilla.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl > 0 {
		store.Options.MaxAge = int(ttl.Seconds())
	}

	return &Manager{gate: gate, store: store, ttl: ttl}, nil
}

// Login validates the candidate secret and, on success, marks the session
// authenticated. Returns false on a bad secret with no side effects.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, candidate string) (bool, error) {
	if !m.gate.Authenticate(candidate) {
		return false, nil
	}

	session, _ := m.store.Get(r, sessionName)
	session.Values[authenticatedKey] = true
	if m.ttl > 0 {
		session.Values[expiresAtKey] = time.Now().UTC().Add(m.ttl).Unix()
	} else {
		delete(session.Values, expiresAtKey)
	}

	if err := session.Save(r, w); err != nil {
		return false, fmt.Errorf("failed to save session: %w", err)
	}
	return true, nil
}

// Logout unconditionally clears the session flag.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether the request carries a live admin session.
// An expired session reads as unauthenticated even if the cookie survives.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return false
	}

	authed, _ := session.Values[authenticatedKey].(bool)
	if !authed {
		return false
	}

	if exp, ok := session.Values[expiresAtKey].(int64); ok {
		if time.Now().UTC().Unix() >= exp {
			return false
		}
	}
	return true
}
