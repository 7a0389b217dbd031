package sessions

import "testing"

func TestGateAuthenticate(t *testing.T) {
	gate := NewGate("secret123")

	if !gate.Authenticate("secret123") {
		t.Error("expected exact match to be granted")
	}
	if gate.Authenticate("secret12") {
		t.Error("expected prefix to be denied")
	}
	if gate.Authenticate("secret1234") {
		t.Error("expected superstring to be denied")
	}
	if gate.Authenticate("Secret123") {
		t.Error("expected case-mismatched secret to be denied")
	}
	if gate.Authenticate("") {
		t.Error("expected empty candidate to be denied")
	}
}

func TestGateEmptySecretDeniesEverything(t *testing.T) {
	// An unconfigured secret must not turn into an always-open gate.
	gate := NewGate("")

	if gate.Authenticate("") {
		t.Error("expected empty secret to deny even an empty candidate")
	}
	if gate.Authenticate("anything") {
		t.Error("expected empty secret to deny all candidates")
	}
}

func TestGateAuthorizeMutation(t *testing.T) {
	gate := NewGate("secret123")

	// AuthorizeMutation is a stateless re-check: same comparison, no session
	// involvement.
	if !gate.AuthorizeMutation("secret123") {
		t.Error("expected valid token to authorize")
	}
	if gate.AuthorizeMutation("wrong") {
		t.Error("expected wrong token to be refused")
	}
}
