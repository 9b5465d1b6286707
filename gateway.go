package riskgate

import (
	"context"

	"github.com/fraudsight/riskgate/store"
	"github.com/fraudsight/riskgate/transport"
)

// Gateway is the assembled session and API-gateway layer: two domain-bound
// HTTP clients sharing one interceptor chain, the session state container,
// the persisted store mirror, and the auth workflow dispatcher.
//
// Construct a Gateway through [Builder.Build]. The zero value is not usable.
type Gateway struct {
	config     Config
	identity   *transport.Client
	analytical *transport.Client
	session    *sessionState
	store      store.Store
	navigator  Navigator
	metrics    *Metrics
}

// Identity returns the client bound to the identity domain.
func (g *Gateway) Identity() *transport.Client { return g.identity }

// Analytical returns the client bound to the analytical domain. Callers
// with endpoints this package has no typed operation for can dispatch
// through it directly; token attachment and invalidation handling apply
// identically.
func (g *Gateway) Analytical() *transport.Client { return g.analytical }

// Session returns a point-in-time snapshot of the session state container.
// The read is synchronous and side-effect-free.
func (g *Gateway) Session() SessionSnapshot {
	if g == nil || g.session == nil {
		return SessionSnapshot{}
	}
	return g.session.snapshot()
}

// IsAuthenticated reports whether a bearer token is currently held.
func (g *Gateway) IsAuthenticated() bool {
	return g.Session().IsAuthenticated
}

// Logout clears the session from both the state container and the persisted
// store. It never issues a network call and is safe to invoke with no
// active session.
func (g *Gateway) Logout(ctx context.Context) error {
	if g == nil || g.session == nil {
		return ErrGatewayNotReady
	}

	g.session.clear()
	g.metricInc(MetricLogout)
	if err := g.store.Clear(ctx); err != nil {
		g.metricInc(MetricStoreFailure)
		return err
	}
	return nil
}

// MetricsSnapshot returns a copy of the gateway's counters. With metrics
// disabled the snapshot is empty.
func (g *Gateway) MetricsSnapshot() MetricsSnapshot {
	if g == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return g.metrics.Snapshot()
}

func (g *Gateway) metricInc(id MetricID) {
	if g == nil || g.metrics == nil {
		return
	}
	g.metrics.Inc(id)
}

// applySession mirrors a fulfilled session fragment into the state
// container and the persisted store within the same call.
func (g *Gateway) applySession(ctx context.Context, fragment SessionFragment) {
	g.session.set(fragment)
	if err := g.store.Save(ctx, store.Entry{Token: fragment.Token, User: fragment.User}); err != nil {
		// The in-memory session is authoritative for this process; a store
		// write failure only costs persistence across restarts.
		g.metricInc(MetricStoreFailure)
	}
}

// onUnauthorized is the response interceptor's invalidation hook. It runs
// for every 401 from either domain: teardown is idempotent, and the login
// redirect fires once per session epoch no matter how many concurrent
// requests observe the rejection.
func (g *Gateway) onUnauthorized(domain transport.Domain) {
	switch domain {
	case transport.DomainIdentity:
		g.metricInc(MetricUnauthorizedIdentity)
	case transport.DomainAnalytical:
		g.metricInc(MetricUnauthorizedAnalytical)
	}
	g.invalidate()
}

func (g *Gateway) invalidate() {
	g.session.clear()
	if err := g.store.Clear(context.Background()); err != nil {
		g.metricInc(MetricStoreFailure)
	}
	if g.session.shouldNavigate() {
		g.metricInc(MetricInvalidation)
		g.navigator.ToLogin()
	}
}
