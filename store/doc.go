// Package store provides durable persistence for the client session record
// (bearer token plus cached user profile) behind a small injectable interface.
//
// # Backends
//
// Three implementations ship with the package: [Memory] (process-local, used
// in tests and as the zero-config default), [File] (JSON state file, survives
// process restarts the way browser local storage survives reloads), and
// [Redis] (shared storage for multi-process or kiosk deployments).
//
// # Architecture boundaries
//
// This package owns raw persistence only. It does NOT decide whether a token
// is valid, attach headers, or mirror state into the in-memory session
// container — those responsibilities belong to the Gateway.
//
// # What this package must NOT do
//
//   - Import riskgate or transport (no upward imports).
//   - Interpret the token or the user payload.
//   - Cache reads on behalf of callers; every Load hits the backend.
package store
