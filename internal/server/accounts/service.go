package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Guru-25/FreeFusion/internal/common"
	"github.com/Guru-25/FreeFusion/internal/dbx"
	"github.com/Guru-25/FreeFusion/internal/server/auth"
	"github.com/Guru-25/FreeFusion/internal/server/config"
	"github.com/Guru-25/FreeFusion/internal/server/documents"
	"github.com/google/uuid"
)

// Service implements account lifecycle and session management for the
// gateway: sign-up, sign-in with JWT issuance, sign-out via revocation, and
// token verification.
type Service struct {
	db                          *sql.DB
	repo                        Repository
	sessions                    auth.SessionStore
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(db *sql.DB, repo Repository, sessions auth.SessionStore, cfg *config.Config) *Service {
	return &Service{
		db:                          db,
		repo:                        repo,
		sessions:                    sessions,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func profileCollection(kind Kind) string {
	if kind == KindCustomer {
		return common.CollectionCustomers
	}
	return common.CollectionFreelancers
}

// SignUp creates a credential record and the matching profile document in the
// role collection atomically. The profile document carries the fields the
// client role lookup reads (username, email).
func (s *Service) SignUp(ctx context.Context, email, password, username string, kind Kind) (*Account, error) {

	if email == "" || password == "" || username == "" {
		return nil, fmt.Errorf("%w: email, password and username are required", common.ErrorValidation)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown account kind %q", common.ErrorValidation, string(kind))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account := &Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := NewPostgresRepository(tx).Create(ctx, account); err != nil {
			return err
		}

		profile := &documents.Document{
			ID:         uuid.NewString(),
			Collection: profileCollection(kind),
			Fields:     map[string]any{"username": username, "email": email},
		}
		_, err := documents.NewPostgresRepository(tx).Insert(ctx, profile)
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// SignIn verifies the credentials and issues an access token. It returns the
// account id alongside the token so clients can scope follow-up requests.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, string, error) {

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", "", common.ErrorUnauthorized
		}
		return "", "", common.ErrorInternal
	}

	if !auth.CheckPassword(account.PasswordHash, password) {
		return "", "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", "", common.ErrorInternal
	}

	return account.ID, token, nil
}

// SignOut revokes the session identified by the claims. The revocation entry
// lives exactly as long as the token would have.
func (s *Service) SignOut(ctx context.Context, claims *auth.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// Verify parses the token and rejects it if the session has been revoked.
func (s *Service) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if revoked {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
