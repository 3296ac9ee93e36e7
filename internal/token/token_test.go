package token

import (
	"testing"
	"time"

	"chirp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test_secret", time.Hour)

	tok, err := svc.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UID)
	assert.Equal(t, "alice", claims.Username)
}

func TestVerifyMalformedToken(t *testing.T) {
	svc := NewService("test_secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tok)
		require.Error(t, err)
		assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret_one", time.Hour)
	verifier := NewService("secret_two", time.Hour)

	tok, err := issuer.Issue(1, "bob")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.Error(t, err)
	assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewService("test_secret", time.Hour)

	issued := time.Now()
	svc.timeFunc = func() time.Time { return issued }

	tok, err := svc.IssueWithTTL(7, "carol", time.Second)
	require.NoError(t, err)

	// Still valid at T.
	svc.timeFunc = func() time.Time { return issued.Add(time.Second - time.Millisecond) }
	_, err = svc.Verify(tok)
	require.NoError(t, err)

	// Expired at T+1s.
	svc.timeFunc = func() time.Time { return issued.Add(2 * time.Second) }
	_, err = svc.Verify(tok)
	require.Error(t, err)
	assert.Equal(t, models.CodeUnauthorized, models.CodeOf(err))
}

func TestIssueWithoutSecretFails(t *testing.T) {
	svc := NewService("", time.Hour)
	_, err := svc.Issue(1, "dave")
	require.Error(t, err)
}
