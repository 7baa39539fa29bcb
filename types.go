package meet

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Identity holds the attributes of a verified caller identity
type Identity interface {
	ID() string
	Username() string
	Email() string
	Role() string
}

// IssuedToken is the ephemeral result of minting a communication token.
// It is never persisted; the directory remains the source of truth for
// token validity.
type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Directory is the external identity/token service this core depends on.
// Mint issues a short-lived communication token bound to the identity.
// RegisterOrUpdate mirrors profile data into the directory; callers treat it
// as best-effort.
type Directory interface {
	Mint(ctx context.Context, identity Identity) (*IssuedToken, error)
	RegisterOrUpdate(ctx context.Context, uid, displayName, photoURL string) error
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] MEET "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] MEET "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] MEET "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
