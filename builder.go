package riskgate

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fraudsight/riskgate/store"
	"github.com/fraudsight/riskgate/transport"
	"github.com/redis/go-redis/v9"
)

// Builder assembles a [Gateway]. Construction is allocation-only until
// [Builder.Build], which validates configuration, hydrates any persisted
// session, and wires the two domain clients.
type Builder struct {
	config    Config
	store     store.Store
	navigator Navigator
	base      http.RoundTripper

	redisClient redis.UniversalClient
	redisPrefix string
	redisTTL    time.Duration

	built bool
}

// New returns a Builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithConfig replaces the configuration tree.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStore injects the persisted session store. Defaults to an in-process
// [store.Memory] when neither WithStore nor WithRedis is used.
func (b *Builder) WithStore(s store.Store) *Builder {
	b.store = s
	return b
}

// WithRedis is a convenience for WithStore(store.NewRedis(...)): the
// persisted session lives in Redis under prefix-scoped keys with an
// optional TTL.
func (b *Builder) WithRedis(client redis.UniversalClient, prefix string, ttl time.Duration) *Builder {
	b.redisClient = client
	b.redisPrefix = prefix
	b.redisTTL = ttl
	return b
}

// WithNavigator injects the capability used to route the user to the login
// entry point on session invalidation. Defaults to [NoOpNavigator].
func (b *Builder) WithNavigator(n Navigator) *Builder {
	b.navigator = n
	return b
}

// WithTransport overrides the underlying RoundTripper of both domain
// clients. Intended for test doubles; defaults to http.DefaultTransport.
func (b *Builder) WithTransport(rt http.RoundTripper) *Builder {
	b.base = rt
	return b
}

// WithMetricsEnabled toggles the gateway's counter metrics.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, restores any previously persisted
// session into the state container, and constructs the two domain clients.
// A Builder can be used once.
func (b *Builder) Build(ctx context.Context) (*Gateway, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	b.built = true

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.store != nil && b.redisClient != nil {
		return nil, errors.New("WithStore and WithRedis are mutually exclusive")
	}

	sessions := b.store
	if b.redisClient != nil {
		rs, err := store.NewRedis(b.redisClient, b.redisPrefix, b.redisTTL)
		if err != nil {
			return nil, err
		}
		sessions = rs
	}
	if sessions == nil {
		sessions = store.NewMemory()
	}

	navigator := b.navigator
	if navigator == nil {
		navigator = NoOpNavigator{}
	}

	g := &Gateway{
		config:    cfg,
		session:   &sessionState{},
		store:     sessions,
		navigator: navigator,
		metrics:   newMetrics(cfg.Metrics),
	}

	// Restore a persisted session before the first request can dispatch.
	entry, err := sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !entry.IsZero() {
		g.session.set(SessionFragment{Token: entry.Token, User: entry.User})
		g.metricInc(MetricSessionHydrated)
	}

	g.identity, err = transport.NewClient(transport.Config{
		Domain:  transport.DomainIdentity,
		BaseURL: cfg.Identity.BaseURL,
		Headers: cfg.Identity.Headers,
		Timeout: cfg.Identity.Timeout,
	}, g.session, g.onUnauthorized, b.base)
	if err != nil {
		return nil, err
	}

	g.analytical, err = transport.NewClient(transport.Config{
		Domain:  transport.DomainAnalytical,
		BaseURL: cfg.Analytical.BaseURL,
		Headers: cfg.Analytical.Headers,
		Timeout: cfg.Analytical.Timeout,
	}, g.session, g.onUnauthorized, b.base)
	if err != nil {
		return nil, err
	}

	return g, nil
}
