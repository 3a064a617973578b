package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	digest, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotContains(t, digest, "secret123")

	assert.True(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("wrong", digest))
	assert.False(t, h.Verify("", digest))
}

func TestPasswordHasher_SaltPerCall(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	// Each digest embeds a fresh salt.
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret123", first))
	assert.True(t, h.Verify("secret123", second))
}

func TestPasswordHasher_OverlongPassword(t *testing.T) {
	h := NewPasswordHasher()

	// bcrypt rejects inputs longer than 72 bytes.
	_, err := h.Hash(strings.Repeat("a", 100))
	assert.Error(t, err)
}

func TestPasswordHasher_VerifyGarbageDigest(t *testing.T) {
	h := NewPasswordHasher()

	assert.False(t, h.Verify("secret123", "not-a-bcrypt-digest"))
}
