package riskgate

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    "identity-backend",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenInfoDecodesClaims(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	fx := newTestGateway(t, fixedLoginHandler(signedToken(t, "user-1", expiry), `{"id":1}`), nil)
	loginThen(t, fx)

	claims, err := fx.gateway.TokenInfo()
	if err != nil {
		t.Fatalf("TokenInfo failed: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("subject = %q, want user-1", claims.Subject)
	}
	if !claims.ExpiresAt.Equal(expiry) {
		t.Fatalf("expiry = %v, want %v", claims.ExpiresAt, expiry)
	}
	if claims.Expired(time.Now()) {
		t.Fatal("token should not report expired yet")
	}
	if !claims.Expired(expiry.Add(time.Second)) {
		t.Fatal("token should report expired after exp")
	}
}

func TestTokenInfoNoSession(t *testing.T) {
	fx := newTestGateway(t, nil, nil)

	if _, err := fx.gateway.TokenInfo(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
}

func TestTokenInfoOpaqueToken(t *testing.T) {
	// The layer treats tokens as opaque; a non-JWT credential works for
	// requests and only claim inspection degrades.
	fx := newTestGateway(t, fixedLoginHandler("opaque-credential", `{"id":1}`), nil)
	loginThen(t, fx)

	if _, err := fx.gateway.TokenInfo(); !errors.Is(err, ErrTokenOpaque) {
		t.Fatalf("err = %v, want ErrTokenOpaque", err)
	}
	if !fx.gateway.IsAuthenticated() {
		t.Fatal("opaque token must still authenticate the session")
	}
}
