package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	ok, err := VerifyHash(hash, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyHash(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("same", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_LowCostFallsBack(t *testing.T) {
	hash, err := HashPassword("pw", 0)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	cost, err := bcrypt.Cost(raw)
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}

func TestVerifyHash_BadEncoding(t *testing.T) {
	ok, err := VerifyHash("%%%not-base64", "pw")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestVerifyHash_NotBcrypt(t *testing.T) {
	ok, err := VerifyHash(base64.StdEncoding.EncodeToString([]byte("plain")), "plain")
	assert.Error(t, err)
	assert.False(t, ok)
}
