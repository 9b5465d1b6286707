// Package transport provides the per-domain HTTP client used by the gateway
// to reach the identity and analytical backends.
//
// One parameterized constructor ([NewClient]) replaces two hand-rolled
// clients: the gateway instantiates it once per backend domain, so the two
// instances share interceptor behavior (bearer-token attachment, 401
// invalidation signaling, request IDs) while keeping distinct base
// addresses and independent failure domains.
//
// # Interceptors
//
// Every outbound request is cloned and, when a token is available from the
// injected [TokenSource], stamped with "Authorization: Bearer <token>" —
// read at dispatch time, never cached across requests. Every response with
// status 401 triggers the injected [UnauthorizedFunc] exactly once per
// response before the error is returned unchanged to the caller.
//
// # What this package must NOT do
//
//   - Import riskgate or store (no upward imports).
//   - Persist or clear session state itself; it only signals.
//   - Retry, buffer, or reorder requests.
package transport
