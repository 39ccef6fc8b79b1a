package models

import (
	"testing"

	"github.com/Guru-25/FreeFusion/internal/client/gateway"
	"github.com/stretchr/testify/require"
)

func TestAccountFromDocument(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		doc := gateway.Document{ID: "d1", Fields: map[string]any{
			"username": "alice",
			"email":    "alice@example.com",
		}}
		rec, err := AccountFromDocument(doc, KindCustomer)
		require.NoError(t, err)
		require.Equal(t, "alice", rec.Username)
		require.Equal(t, "alice@example.com", rec.Email)
		require.Equal(t, KindCustomer, rec.Kind)
	})

	t.Run("missing username", func(t *testing.T) {
		doc := gateway.Document{ID: "d1", Fields: map[string]any{"email": "a@b.c"}}
		_, err := AccountFromDocument(doc, KindFreelancer)
		require.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("non-string email", func(t *testing.T) {
		doc := gateway.Document{ID: "d1", Fields: map[string]any{
			"username": "alice",
			"email":    42,
		}}
		_, err := AccountFromDocument(doc, KindCustomer)
		require.ErrorIs(t, err, ErrInvalidDocument)
	})
}

func TestProjectRequestFromDocument(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		doc := gateway.Document{ID: "r1", Fields: map[string]any{
			"projectTitle": "Website Redesign",
			"description":  "Revamp landing page",
			"companyName":  "Acme",
			"salary":       "1000",
			"duration":     "2 weeks",
			"contactInfo":  "client@example.com",
		}}
		req, err := ProjectRequestFromDocument(doc)
		require.NoError(t, err)
		require.Equal(t, "r1", req.ID)
		require.Equal(t, "Website Redesign", req.ProjectTitle)
		require.Equal(t, "client@example.com", req.ContactInfo)
		require.Equal(t, "Acme", req.CompanyName)
	})

	t.Run("optional fields default to empty", func(t *testing.T) {
		doc := gateway.Document{ID: "r2", Fields: map[string]any{
			"projectTitle": "Logo",
			"contactInfo":  "c@d.e",
		}}
		req, err := ProjectRequestFromDocument(doc)
		require.NoError(t, err)
		require.Empty(t, req.Description)
		require.Empty(t, req.Salary)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		doc := gateway.Document{ID: "r3", Fields: map[string]any{"contactInfo": "c@d.e"}}
		_, err := ProjectRequestFromDocument(doc)
		require.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("missing contact is rejected", func(t *testing.T) {
		doc := gateway.Document{ID: "r4", Fields: map[string]any{"projectTitle": "X"}}
		_, err := ProjectRequestFromDocument(doc)
		require.ErrorIs(t, err, ErrInvalidDocument)
	})
}
