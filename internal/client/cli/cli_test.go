package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/Guru-25/FreeFusion/internal/client/gateway"
	"github.com/Guru-25/FreeFusion/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// stubGateway implements gateway.Gateway with canned collection contents.
type stubGateway struct {
	signInErr    error
	signOutCalls int
	collections  map[string][]gateway.Document
	getAllErr    error
}

func (s *stubGateway) SignIn(ctx context.Context, email, password string) (*gateway.Session, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return &gateway.Session{SubjectID: "sub-1"}, nil
}

func (s *stubGateway) SignOut(ctx context.Context) error {
	s.signOutCalls++
	return nil
}

func (s *stubGateway) QueryByEquality(ctx context.Context, collection, field, value string) ([]gateway.Document, error) {
	var out []gateway.Document
	for _, doc := range s.collections[collection] {
		if v, _ := doc.Fields[field].(string); v == value {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *stubGateway) GetAllDocuments(ctx context.Context, collection string) ([]gateway.Document, error) {
	if s.getAllErr != nil {
		return nil, s.getAllErr
	}
	return s.collections[collection], nil
}

func (s *stubGateway) Ping(ctx context.Context) error { return nil }

func (s *stubGateway) Close() error { return nil }
