package riskgate

import "context"

// IdentityHealth is the identity backend's health response.
type IdentityHealth struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CheckIdentityHealth probes the identity domain's health endpoint.
func (g *Gateway) CheckIdentityHealth(ctx context.Context) (IdentityHealth, error) {
	if g == nil || g.identity == nil {
		return IdentityHealth{}, ErrGatewayNotReady
	}
	var out IdentityHealth
	if err := g.identity.GetJSON(ctx, "/health", &out); err != nil {
		return IdentityHealth{}, err
	}
	return out, nil
}
