package riskgate

import "encoding/json"

// Credentials is the login request body expected by the identity backend.
type Credentials struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// RegisterRequest carries the registration fields. Extra holds any
// backend-specific profile fields (display name, organization, ...) and is
// flattened into the request body alongside identifier and secret.
type RegisterRequest struct {
	Identifier string
	Secret     string
	Extra      map[string]any
}

// MarshalJSON flattens Extra into the top-level object. Identifier and
// secret always win over colliding Extra keys.
func (r RegisterRequest) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(r.Extra)+2)
	for k, v := range r.Extra {
		body[k] = v
	}
	body["identifier"] = r.Identifier
	body["secret"] = r.Secret
	return json.Marshal(body)
}

// SessionFragment is the session material extracted from a successful
// register/login response: the bearer token plus the user profile, which
// stays opaque to this layer.
type SessionFragment struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// SessionSnapshot is a point-in-time read of the session state container.
//
// Invariant: IsAuthenticated is true iff Token is non-empty.
type SessionSnapshot struct {
	Token           string
	User            json.RawMessage
	IsAuthenticated bool
}

// Op identifies which auth workflow operation produced an event.
type Op string

const (
	// OpLogin is the login workflow.
	OpLogin Op = "login"
	// OpRegister is the registration workflow.
	OpRegister Op = "register"
)

// WorkflowStatus is the phase of one auth workflow invocation.
type WorkflowStatus uint8

const (
	// StatusPending is emitted immediately on invocation, before any
	// network result.
	StatusPending WorkflowStatus = iota
	// StatusFulfilled is the terminal success phase.
	StatusFulfilled
	// StatusRejected is the terminal failure phase.
	StatusRejected
)

// String returns the phase name.
func (s WorkflowStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusFulfilled:
		return "fulfilled"
	case StatusRejected:
		return "rejected"
	}
	return "unknown"
}

// Terminal reports whether the phase ends the workflow.
func (s WorkflowStatus) Terminal() bool {
	return s == StatusFulfilled || s == StatusRejected
}

// WorkflowEvent is one observable phase of an auth workflow invocation.
// Fragment is set only on fulfilled events; Message and Err only on
// rejected ones. Message is always human-readable: the backend's structured
// detail when available, otherwise a generic phase-specific fallback.
type WorkflowEvent struct {
	WorkflowID string
	Op         Op
	Status     WorkflowStatus
	Fragment   SessionFragment
	Message    string
	Err        error
}

// Navigator is the capability the invalidation path uses to send the user
// back to the login entry point. In a real UI this swaps the route; tests
// inject a recording stub.
type Navigator interface {
	ToLogin()
}

// NavigatorFunc adapts a function to the [Navigator] interface.
type NavigatorFunc func()

// ToLogin implements [Navigator].
func (f NavigatorFunc) ToLogin() { f() }

// NoOpNavigator discards navigation requests. It is the default when no
// navigator is injected.
type NoOpNavigator struct{}

// ToLogin implements [Navigator].
func (NoOpNavigator) ToLogin() {}
