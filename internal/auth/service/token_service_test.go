package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/adarsh0128/Mailgic-AI/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("secret-key", 24*time.Hour)

	assert.NotNil(t, ts)
	assert.Equal(t, 24*time.Hour, ts.SessionTTL())
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		email  string
	}{
		{
			name:   "full claims",
			userID: "user-123",
			email:  "test@example.com",
		},
		{
			name:   "without email",
			userID: "user-456",
			email:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService("test-secret-key-123", 24*time.Hour)

			before := time.Now()
			token, err := ts.Issue(tt.userID, tt.email)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := ts.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.email, claims.Email)

			// Expiry must sit one session TTL after issuance.
			assert.True(t, claims.ExpiresAt.After(before.Add(24*time.Hour-time.Second)))
			assert.True(t, claims.IssuedAt.After(before.Add(-time.Second)))
		})
	}
}

func TestTokenService_Verify_Failures(t *testing.T) {
	ts := NewTokenService("test-secret", 24*time.Hour)

	validToken, err := ts.Issue("user-123", "test@example.com")
	require.NoError(t, err)

	expired, err := NewTokenService("test-secret", -time.Hour).Issue("user-123", "test@example.com")
	require.NoError(t, err)

	otherSecret, err := NewTokenService("other-secret", 24*time.Hour).Issue("user-123", "test@example.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "tampered signature", token: validToken + "x"},
		{name: "wrong secret", token: otherSecret},
		{name: "expired", token: expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ts.Verify(tt.token)
			assert.Nil(t, claims)
			// Every failure mode collapses into the same error.
			assert.ErrorIs(t, err, autherror.ErrInvalidToken)
		})
	}
}

func TestTokenService_Verify_RejectsNonHMAC(t *testing.T) {
	ts := NewTokenService("test-secret", 24*time.Hour)

	// alg=none tokens must never verify, even with a structurally valid body.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(unsigned)
	assert.ErrorIs(t, err, autherror.ErrInvalidToken)
}
