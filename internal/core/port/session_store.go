package port

import "context"

// SessionStore keeps the wallet address declared by each client session.
// Session ids are opaque; the stored wallet is never verified.
type SessionStore interface {
	// Save binds wallet to sessionID, replacing any previous value and
	// refreshing the session lifetime.
	Save(ctx context.Context, sessionID, wallet string) error
	// Load returns the wallet bound to sessionID, or "" when the session is
	// unknown or expired.
	Load(ctx context.Context, sessionID string) (string, error)
}
