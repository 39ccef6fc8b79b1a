// Package auth implements the credential side of the gateway: password
// hashing, HS256 access tokens, and the revocation store that backs
// sign-out.
package auth

import (
	"time"

	"github.com/Guru-25/FreeFusion/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the registered claims plus the authenticated subject's
// account id. The registered ID (jti) identifies the session for revocation.
type Claims struct {
	jwt.RegisteredClaims
	SubjectID string
}

// GenerateToken issues a signed HS256 token for subjectID with a fresh
// session id (jti) and the given validity window.
func GenerateToken(subjectID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		SubjectID: subjectID,
	})

	return token.SignedString(secretKey)
}

// ParseToken validates tokenString and returns its claims. Expired,
// malformed, or wrongly signed tokens yield common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
