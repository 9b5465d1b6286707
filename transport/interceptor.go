package transport

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// TokenSource yields the bearer token current at dispatch time. An empty
// string means "unauthenticated" and leaves the request untouched.
//
// Token is on the hot path of every outbound request: implementations must
// return synchronously from local state without I/O.
type TokenSource interface {
	Token() string
}

// UnauthorizedFunc is invoked whenever a response carries status 401,
// before the response is handed back to the caller. Implementations must
// tolerate being invoked concurrently and repeatedly.
type UnauthorizedFunc func(domain Domain)

// interceptor is the shared RoundTripper chain for both domain clients:
// token attachment on the way out, 401 detection on the way back.
type interceptor struct {
	domain         Domain
	tokens         TokenSource
	onUnauthorized UnauthorizedFunc
	next           http.RoundTripper
}

func (i *interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())

	if i.tokens != nil {
		if token := i.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	requestID := req.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		req.Header.Set(requestIDHeader, requestID)
	}

	resp, err := i.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Echo the correlation ID so error normalization can pick it up without
	// reaching back into the (cloned) request.
	if resp.Header.Get(requestIDHeader) == "" {
		resp.Header.Set(requestIDHeader, requestID)
	}

	if resp.StatusCode == http.StatusUnauthorized && i.onUnauthorized != nil {
		i.onUnauthorized(i.domain)
	}
	return resp, nil
}
