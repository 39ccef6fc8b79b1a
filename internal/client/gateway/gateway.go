// Package gateway defines the client-side view of the FreeFusion gateway:
// credential authentication plus read-only access to the remote document
// collections. The concrete implementation speaks HTTP/JSON; services depend
// only on the Gateway interface so tests can substitute fakes.
package gateway

import (
	"context"
)

// Document is a single record from a gateway collection: an opaque
// gateway-assigned identifier plus a loosely typed field payload. Mapping
// into strongly typed records happens at the models boundary.
type Document struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Session identifies an authenticated subject. The access token itself stays
// inside the gateway client and is attached to subsequent requests.
type Session struct {
	SubjectID string
}

// Gateway is the remote API consumed by the client workflows.
//
// Contract:
//   - SignIn: validate credentials and establish a session.
//   - SignOut: revoke the current session.
//   - QueryByEquality: fetch documents where a single field equals a value.
//   - GetAllDocuments: fetch a full collection, gateway-determined order.
//   - Ping: liveness probe.
//
// All methods must honor context cancellation/timeouts.
type Gateway interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
	QueryByEquality(ctx context.Context, collection, field, value string) ([]Document, error)
	GetAllDocuments(ctx context.Context, collection string) ([]Document, error)
	Ping(ctx context.Context) error
	Close() error
}
