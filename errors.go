package riskgate

import (
	"errors"

	"github.com/fraudsight/riskgate/transport"
)

var (
	// ErrUnauthorized matches any backend response carrying status 401. It
	// is re-exported from transport so callers can test workflow and
	// pass-through errors without importing the subpackage.
	ErrUnauthorized = transport.ErrUnauthorized
	// ErrGatewayNotReady is returned when a Gateway method is invoked on a
	// nil or unbuilt gateway.
	ErrGatewayNotReady = errors.New("gateway not initialized")
	// ErrWorkflowConsumed is returned by Workflow.Wait after the workflow's
	// terminal outcome has already been delivered.
	ErrWorkflowConsumed = errors.New("workflow already consumed")
	// ErrNoToken is returned by TokenInfo when no session token is present.
	ErrNoToken = errors.New("no session token")
	// ErrTokenOpaque is returned by TokenInfo when the stored token is not a
	// decodable JWT. The token remains fully usable; only claim inspection
	// is unavailable.
	ErrTokenOpaque = errors.New("token is not a decodable JWT")
)
