package services

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

// fakeGateway implements gateway.Gateway for unit tests and records calls so
// tests can assert on call counts and arguments.
type fakeGateway struct {
	SignInSession *gateway.Session
	SignInErr     error
	SignInCalls   int
	LastEmail     string
	LastPassword  string

	QueryResults map[string][]gateway.Document
	QueryErrs    map[string]error
	QueryCalls   int
	LastField    string
	LastValue    string

	SignOutErr   error
	SignOutCalls int

	GetAllDocs  []gateway.Document
	GetAllErr   error
	GetAllCalls int
	// OnGetAll runs at the start of GetAllDocuments; tests use it to observe
	// state while the fetch is in flight.
	OnGetAll func()
}

func (f *fakeGateway) SignIn(ctx context.Context, email, password string) (*gateway.Session, error) {
	f.SignInCalls++
	f.LastEmail = email
	f.LastPassword = password
	if f.SignInErr != nil {
		return nil, f.SignInErr
	}
	if f.SignInSession != nil {
		return f.SignInSession, nil
	}
	return &gateway.Session{SubjectID: "subject-1"}, nil
}

func (f *fakeGateway) SignOut(ctx context.Context) error {
	f.SignOutCalls++
	return f.SignOutErr
}

func (f *fakeGateway) QueryByEquality(ctx context.Context, collection, field, value string) ([]gateway.Document, error) {
	f.QueryCalls++
	f.LastField = field
	f.LastValue = value
	if err := f.QueryErrs[collection]; err != nil {
		return nil, err
	}
	return f.QueryResults[collection], nil
}

func (f *fakeGateway) GetAllDocuments(ctx context.Context, collection string) ([]gateway.Document, error) {
	f.GetAllCalls++
	if f.OnGetAll != nil {
		f.OnGetAll()
	}
	if f.GetAllErr != nil {
		return nil, f.GetAllErr
	}
	return f.GetAllDocs, nil
}

func (f *fakeGateway) Ping(ctx context.Context) error { return nil }

func (f *fakeGateway) Close() error { return nil }
