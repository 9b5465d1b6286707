// Package riskgate provides the client-side session and API-gateway layer
// for fraud-risk dashboards: bearer-token authentication against an identity
// backend, token attachment on every call to two independent backend domains,
// reactive session invalidation on 401, and register/login exposed as
// observable three-phase workflows.
//
// The package is designed for concurrent callers: Gateway methods are safe to
// call from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// riskgate is the public surface. It exposes [Gateway], [Builder], [Config],
// and value types (SessionSnapshot, WorkflowEvent, etc.). Persistence lives
// in the store subpackage behind the injectable [store.Store] interface;
// per-domain HTTP dispatch and interceptors live in the transport subpackage.
//
// # What this package must NOT do
//
//   - Compute risk scores or interpret analytical payloads beyond decoding.
//     The analytical backend owns that logic; this layer is a pass-through.
//   - Refresh tokens proactively. Expiry is handled reactively: any 401 from
//     either domain tears the session down.
//   - Retry or deduplicate auth workflows. One invocation is one network call.
//
// # Session consistency contract
//
// The in-memory session snapshot and the persisted store are mirrored within
// the same call: a read issued after Login fulfillment, Logout, or an
// invalidation observes the updated state on both sides.
package riskgate
