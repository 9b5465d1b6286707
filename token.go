package riskgate

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the decoded-but-unverified registered claim set of a
// bearer token. It exists purely so UIs can surface "signed in as" and
// expiry information; authentication decisions never rest on it — the
// backends verify the token, and expiry is handled reactively on 401.
type TokenClaims struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim has passed. Tokens with no
// exp claim never report expired.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// TokenInfo decodes the current session token's claims without verifying
// its signature. Returns [ErrNoToken] when unauthenticated and
// [ErrTokenOpaque] when the token is not JWT-shaped (the session itself
// stays fully usable either way).
func (g *Gateway) TokenInfo() (TokenClaims, error) {
	snap := g.Session()
	if snap.Token == "" {
		return TokenClaims{}, ErrNoToken
	}

	var registered jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(snap.Token, &registered); err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrTokenOpaque, err)
	}

	claims := TokenClaims{
		Subject: registered.Subject,
		Issuer:  registered.Issuer,
	}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	return claims, nil
}
