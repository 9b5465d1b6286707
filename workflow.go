package riskgate

import (
	"context"
	"errors"

	"github.com/fraudsight/riskgate/transport"
	"github.com/google/uuid"
)

// Fallback messages used when a rejected workflow has no structured detail
// from the backend.
const (
	loginFallbackMessage    = "Login failed"
	registerFallbackMessage = "Registration failed"
)

// authEnvelope is the success shape of both identity auth endpoints:
// {"data": {"token": ..., "user": {...}}}.
type authEnvelope struct {
	Data SessionFragment `json:"data"`
}

// Workflow is one asynchronous auth operation invocation. It emits a
// pending event immediately, then exactly one terminal (fulfilled or
// rejected) event, and is then done. Workflows are independent: concurrent
// invocations do not share, cancel, or deduplicate each other.
type Workflow struct {
	id     string
	op     Op
	events chan WorkflowEvent
}

// ID returns the workflow's correlation ID.
func (w *Workflow) ID() string { return w.id }

// Op returns which operation the workflow runs.
func (w *Workflow) Op() Op { return w.op }

// Events returns the phase stream. The channel is buffered so the workflow
// never blocks on a slow consumer, and is closed after the terminal event.
func (w *Workflow) Events() <-chan WorkflowEvent {
	return w.events
}

// Wait drains the phase stream until the terminal event and returns its
// payload: the session fragment on fulfilled, or an error wrapping the
// normalized message on rejected. ctx bounds the wait, not the underlying
// request.
func (w *Workflow) Wait(ctx context.Context) (SessionFragment, error) {
	for {
		select {
		case event, ok := <-w.events:
			if !ok {
				return SessionFragment{}, ErrWorkflowConsumed
			}
			switch event.Status {
			case StatusFulfilled:
				return event.Fragment, nil
			case StatusRejected:
				if event.Err != nil {
					return SessionFragment{}, &WorkflowError{Message: event.Message, cause: event.Err}
				}
				return SessionFragment{}, &WorkflowError{Message: event.Message}
			}
		case <-ctx.Done():
			return SessionFragment{}, ctx.Err()
		}
	}
}

// WorkflowError is the rejected outcome of an auth workflow: a normalized,
// human-readable message wrapping the underlying transport error.
type WorkflowError struct {
	Message string
	cause   error
}

// Error implements the error interface.
func (e *WorkflowError) Error() string { return e.Message }

// Unwrap exposes the underlying transport or network error.
func (e *WorkflowError) Unwrap() error { return e.cause }

// Login dispatches the login workflow against the identity domain. The
// returned workflow has already emitted its pending event; on fulfillment
// the session fragment is mirrored into the state container and the
// persisted store before the fulfilled event is delivered.
func (g *Gateway) Login(ctx context.Context, creds Credentials) *Workflow {
	return g.dispatch(ctx, OpLogin, "/auth/login", creds,
		loginFallbackMessage, MetricLoginSuccess, MetricLoginFailure)
}

// Register dispatches the registration workflow against the identity
// domain. Same three-phase contract as [Gateway.Login].
func (g *Gateway) Register(ctx context.Context, req RegisterRequest) *Workflow {
	return g.dispatch(ctx, OpRegister, "/auth/register", req,
		registerFallbackMessage, MetricRegisterSuccess, MetricRegisterFailure)
}

func (g *Gateway) dispatch(ctx context.Context, op Op, path string, body any, fallback string, okMetric, failMetric MetricID) *Workflow {
	w := &Workflow{
		id:     uuid.NewString(),
		op:     op,
		events: make(chan WorkflowEvent, 2),
	}

	// Pending is observable before dispatch returns; the buffer guarantees
	// the send cannot block.
	w.events <- WorkflowEvent{WorkflowID: w.id, Op: op, Status: StatusPending}

	if g == nil || g.identity == nil {
		w.events <- WorkflowEvent{
			WorkflowID: w.id,
			Op:         op,
			Status:     StatusRejected,
			Message:    fallback,
			Err:        ErrGatewayNotReady,
		}
		close(w.events)
		return w
	}

	go func() {
		defer close(w.events)

		var envelope authEnvelope
		if err := g.identity.PostJSON(ctx, path, body, &envelope); err != nil {
			g.metricInc(failMetric)
			w.events <- WorkflowEvent{
				WorkflowID: w.id,
				Op:         op,
				Status:     StatusRejected,
				Message:    rejectionMessage(err, fallback),
				Err:        err,
			}
			return
		}

		g.applySession(ctx, envelope.Data)
		g.metricInc(okMetric)
		w.events <- WorkflowEvent{
			WorkflowID: w.id,
			Op:         op,
			Status:     StatusFulfilled,
			Fragment:   envelope.Data,
		}
	}()

	return w
}

// rejectionMessage normalizes any dispatch failure to a human-readable
// string: the backend's structured {"message": ...} detail when present,
// otherwise the phase-specific fallback. Network failures never carry
// backend detail and always fall back.
func rejectionMessage(err error, fallback string) string {
	var apiErr *transport.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
