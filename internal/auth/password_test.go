package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("a-long-enough-password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "a-long-enough-password", hash)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	hash1, err := HashPassword("a-long-enough-password")
	require.NoError(t, err)
	hash2, err := HashPassword("a-long-enough-password")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ
	assert.NotEqual(t, hash1, hash2)
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("a-long-enough-password")
	require.NoError(t, err)

	assert.True(t, ComparePassword(hash, "a-long-enough-password"))
	assert.False(t, ComparePassword(hash, "a-different-password"))
	assert.False(t, ComparePassword("not-a-hash", "a-long-enough-password"))
}
