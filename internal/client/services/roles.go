// Package services contains the application workflows behind the FreeFusion
// client screens: role resolution at login and feed synchronization on the
// freelancer home screen. Both talk to the remote gateway only through the
// gateway.Gateway interface.
package services

import (
	"context"
	"fmt"

	"github.com/Guru-25/FreeFusion/internal/client/gateway"
	"github.com/Guru-25/FreeFusion/internal/client/models"
	"github.com/Guru-25/FreeFusion/internal/common"
	"github.com/Guru-25/FreeFusion/internal/logging"
)

// Credentials is one login attempt. Transient: created per attempt and
// discarded after resolution.
type Credentials struct {
	Email    string
	Password string
}

// Profile is the resolved identity handed to the navigation boundary after a
// successful login.
type Profile struct {
	Kind     models.AccountKind
	Username string
	Email    string
}

// RoleResolver takes raw credentials and determines which account kind the
// subject belongs to.
//
// Resolution order:
//  1. Reject empty email or password without touching the gateway.
//  2. Authenticate via SignIn.
//  3. Look the email up in the customers and freelancers collections.
//  4. First match wins, customers before freelancers. No match signs the
//     session out again and fails.
type RoleResolver struct {
	gw     gateway.Gateway
	logger logging.Logger
}

func NewRoleResolver(gw gateway.Gateway, logger logging.Logger) *RoleResolver {
	return &RoleResolver{gw: gw, logger: logger.With("component", "roles")}
}

func (r *RoleResolver) Resolve(ctx context.Context, creds Credentials) (*Profile, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrInvalidInput
	}

	session, err := r.gw.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, &BadCredentialsError{Err: err}
	}
	r.logger.Debug(ctx, "authenticated", "subject_id", session.SubjectID)

	customers, err := r.gw.QueryByEquality(ctx, common.CollectionCustomers, "email", creds.Email)
	if err != nil {
		return nil, fmt.Errorf("customer lookup: %w", err)
	}
	freelancers, err := r.gw.QueryByEquality(ctx, common.CollectionFreelancers, "email", creds.Email)
	if err != nil {
		return nil, fmt.Errorf("freelancer lookup: %w", err)
	}

	if rec := r.firstValidAccount(ctx, customers, models.KindCustomer); rec != nil {
		return &Profile{Kind: models.KindCustomer, Username: rec.Username, Email: creds.Email}, nil
	}

	if rec := r.firstValidAccount(ctx, freelancers, models.KindFreelancer); rec != nil {
		// TODO: confirm with product whether the email stored on the
		// freelancer record should really override the email typed at login.
		// The observed flow does exactly that, so it is kept.
		return &Profile{Kind: models.KindFreelancer, Username: rec.Username, Email: rec.Email}, nil
	}

	// Authenticated but registered nowhere: revoke the session so no
	// authenticated-but-unresolved session remains.
	if err := r.gw.SignOut(ctx); err != nil {
		r.logger.Warn(ctx, "sign-out after unresolved login failed", "error", err)
	}
	return nil, ErrNoMatchingAccount
}

// firstValidAccount maps documents in gateway order and returns the first one
// that carries the required fields. Malformed documents are logged and
// skipped rather than propagated.
func (r *RoleResolver) firstValidAccount(ctx context.Context, docs []gateway.Document, kind models.AccountKind) *models.AccountRecord {
	for _, doc := range docs {
		rec, err := models.AccountFromDocument(doc, kind)
		if err != nil {
			r.logger.Warn(ctx, "skipping malformed account document", "id", doc.ID, "kind", string(kind), "error", err)
			continue
		}
		return rec
	}
	return nil
}
