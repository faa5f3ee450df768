package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(4) // min cost keeps the test fast

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, hasher.Check(hash, "secret"))
	assert.False(t, hasher.Check(hash, "secretx"))
	assert.False(t, hasher.Check(hash, ""))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	hasher := NewPasswordHasher(4)

	h1, err := hasher.Hash("same password")
	require.NoError(t, err)
	h2, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, hasher.Check(h1, "same password"))
	assert.True(t, hasher.Check(h2, "same password"))
}

func TestCheckMalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(4)
	assert.False(t, hasher.Check("not-a-bcrypt-hash", "whatever"))
	assert.False(t, hasher.Check("", "whatever"))
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)
	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Check(hash, "pw"))
}
