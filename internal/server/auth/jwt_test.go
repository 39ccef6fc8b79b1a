package auth

import (
	"testing"
	"time"

	"github.com/Guru-25/FreeFusion/internal/common"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("acc-1", testSecret, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "acc-1", claims.SubjectID)
	require.NotEmpty(t, claims.ID, "token must carry a session id (jti)")
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("acc-1", testSecret, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other-secret"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("acc-1", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGenerateToken_UniqueSessionIDs(t *testing.T) {
	a, err := GenerateToken("acc-1", testSecret, time.Minute)
	require.NoError(t, err)
	b, err := GenerateToken("acc-1", testSecret, time.Minute)
	require.NoError(t, err)

	ca, err := ParseToken(a, testSecret)
	require.NoError(t, err)
	cb, err := ParseToken(b, testSecret)
	require.NoError(t, err)
	require.NotEqual(t, ca.ID, cb.ID)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	require.True(t, CheckPassword(hash, "hunter22"))
	require.False(t, CheckPassword(hash, "wrong"))
}
