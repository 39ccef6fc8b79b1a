package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Guru-25/FreeFusion/internal/common"
	"github.com/Guru-25/FreeFusion/internal/server/accounts"
	"github.com/Guru-25/FreeFusion/internal/server/auth"
	"github.com/Guru-25/FreeFusion/internal/server/documents"
	"github.com/go-chi/chi/v5"
)

// AccountService is the part of the accounts service the handlers use.
type AccountService interface {
	SignIn(ctx context.Context, email, password string) (string, string, error)
	SignUp(ctx context.Context, email, password, username string, kind accounts.Kind) (*accounts.Account, error)
	SignOut(ctx context.Context, claims *auth.Claims) error
	Verify(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// DocumentService is the part of the documents service the handlers use.
type DocumentService interface {
	GetAll(ctx context.Context, collection string) ([]documents.Document, error)
	QueryByEquality(ctx context.Context, collection string, field string, value string) ([]documents.Document, error)
}

type contextKey string

const claimsContextKey contextKey = "claims"

func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims, ok
}

// bearerAuth verifies the Authorization header and stores the claims in the
// request context. Requests without a valid, unrevoked token get 401.
func (s *HTTPServer) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := s.accounts.Verify(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	SubjectID   string `json:"subject_id"`
	AccessToken string `json:"access_token"`
}

func (s *HTTPServer) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subjectID, token, err := s.accounts.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "sign-in failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{SubjectID: subjectID, AccessToken: token})
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Kind     string `json:"kind"`
}

type signUpResponse struct {
	SubjectID string `json:"subject_id"`
}

func (s *HTTPServer) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.accounts.SignUp(r.Context(), req.Email, req.Password, req.Username, accounts.Kind(req.Kind))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrorAlreadyExists):
			writeError(w, http.StatusConflict, "account already exists")
		default:
			s.logger.Error(r.Context(), "sign-up failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, signUpResponse{SubjectID: account.ID})
}

func (s *HTTPServer) handleSignOut(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	if err := s.accounts.SignOut(r.Context(), claims); err != nil {
		s.logger.Error(r.Context(), "sign-out failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type documentPayload struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type documentsResponse struct {
	Documents []documentPayload `json:"documents"`
}

func (s *HTTPServer) handleDocuments(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "name")
	field := r.URL.Query().Get("field")
	value := r.URL.Query().Get("value")

	var docs []documents.Document
	var err error
	if field != "" {
		docs, err = s.documents.QueryByEquality(r.Context(), collection, field, value)
	} else {
		docs, err = s.documents.GetAll(r.Context(), collection)
	}

	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownCollection):
			writeError(w, http.StatusNotFound, "unknown collection")
		case errors.Is(err, common.ErrorValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.logger.Error(r.Context(), "document fetch failed", "collection", collection, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	payload := documentsResponse{Documents: make([]documentPayload, 0, len(docs))}
	for _, doc := range docs {
		payload.Documents = append(payload.Documents, documentPayload{ID: doc.ID, Fields: doc.Fields})
	}

	writeJSON(w, http.StatusOK, payload)
}
