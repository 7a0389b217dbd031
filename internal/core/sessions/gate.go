package sessions

// Gate decides whether a caller holds admin privilege. There is one secret
// for the whole process, compared by exact string equality; this is a gate,
// not a credential system.
type Gate struct {
	secret string
}

// NewGate creates a gate around the configured admin secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authenticate compares a caller-supplied secret against the configured one.
// No partial matching, no lockout, no audit trail.
func (g *Gate) Authenticate(candidate string) bool {
	return g.secret != "" && candidate == g.secret
}

// AuthorizeMutation re-validates a caller-presented token for a mutating
// call. It is a stateless re-check, independent of any interactive session:
// mutations arrive over a separate channel where the session flag is not
// visible, so each one must carry proof on its own.
func (g *Gate) AuthorizeMutation(token string) bool {
	return g.Authenticate(token)
}
