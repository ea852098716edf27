package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/entertainmenthub/user-api/pkg/helpers"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := helpers.NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "pw123", digest)

	assert.True(t, h.Verify("pw123", digest))
	assert.False(t, h.Verify("pw124", digest))
	assert.False(t, h.Verify("", digest))
}

func TestBcryptHasher_SaltsEveryDigest(t *testing.T) {
	h := helpers.NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same input must differ")
	assert.True(t, h.Verify("same-password", first))
	assert.True(t, h.Verify("same-password", second))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	h := helpers.NewBcryptHasher(999)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost)

	h = helpers.NewBcryptHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost)
}
