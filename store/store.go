package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrUnavailable is returned when the persistence backend cannot be reached.
var ErrUnavailable = errors.New("session store unavailable")

// Entry is the persisted session record. A zero Entry means "no session".
//
// Token is the opaque bearer credential. User is the profile blob returned
// by the identity service at login time; it is stored and returned verbatim.
type Entry struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// IsZero reports whether the entry carries no session.
func (e Entry) IsZero() bool {
	return e.Token == "" && len(e.User) == 0
}

// Store is the persisted session store contract. Implementations must be
// safe for concurrent use.
//
// Load returns the zero Entry (and a nil error) when nothing is persisted.
// Save overwrites any previous entry. Clear removes the entry and is a
// no-op when nothing is persisted; it must be safe to call repeatedly.
type Store interface {
	Load(ctx context.Context) (Entry, error)
	Save(ctx context.Context, entry Entry) error
	Clear(ctx context.Context) error
}
