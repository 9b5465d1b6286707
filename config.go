package riskgate

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/fraudsight/riskgate/transport"
)

// Environment variables recognized by [ConfigFromEnv].
const (
	// EnvIdentityBaseURL overrides the identity backend base address.
	EnvIdentityBaseURL = "RISKGATE_IDENTITY_URL"
	// EnvAnalyticalBaseURL overrides the analytical backend base address.
	EnvAnalyticalBaseURL = "RISKGATE_ANALYTICAL_URL"
)

// Hardcoded fallbacks used when neither config nor environment provides a
// base address.
const (
	defaultIdentityBaseURL   = "http://localhost:5000/api"
	defaultAnalyticalBaseURL = "http://localhost:8000"
)

// Config defines the gateway configuration tree.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable.
type Config struct {
	Identity   DomainConfig
	Analytical DomainConfig
	Metrics    MetricsConfig
}

// DomainConfig binds one backend domain.
type DomainConfig struct {
	BaseURL string
	// Headers are defaults sent on every request to this domain.
	// Content-Type: application/json is always present unless overridden.
	Headers map[string]string
	// Timeout bounds a full request/response cycle. Zero means no timeout;
	// per-call deadlines still apply via context.
	Timeout time.Duration
}

// MetricsConfig controls the gateway's counter metrics.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration used when nothing is overridden:
// local backend addresses, JSON content type, 30s request timeout, metrics
// enabled.
func DefaultConfig() Config {
	return Config{
		Identity: DomainConfig{
			BaseURL: defaultIdentityBaseURL,
			Timeout: 30 * time.Second,
		},
		Analytical: DomainConfig{
			BaseURL: defaultAnalyticalBaseURL,
			Timeout: 30 * time.Second,
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// ConfigFromEnv returns [DefaultConfig] with base addresses overridden from
// the environment when set.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvIdentityBaseURL); v != "" {
		cfg.Identity.BaseURL = v
	}
	if v := os.Getenv(EnvAnalyticalBaseURL); v != "" {
		cfg.Analytical.BaseURL = v
	}
	return cfg
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if err := validateDomain(transport.DomainIdentity, c.Identity); err != nil {
		return err
	}
	return validateDomain(transport.DomainAnalytical, c.Analytical)
}

func validateDomain(domain transport.Domain, dc DomainConfig) error {
	if dc.BaseURL == "" {
		return fmt.Errorf("config: %s base URL required", domain)
	}
	parsed, err := url.Parse(dc.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: %s base URL %q invalid", domain, dc.BaseURL)
	}
	if dc.Timeout < 0 {
		return fmt.Errorf("config: %s timeout must be >= 0", domain)
	}
	return nil
}

func cloneConfig(c Config) Config {
	out := c
	out.Identity.Headers = cloneHeaders(c.Identity.Headers)
	out.Analytical.Headers = cloneHeaders(c.Analytical.Headers)
	return out
}

func cloneHeaders(h map[string]string) map[string]string {
	if h == nil {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
