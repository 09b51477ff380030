package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash and compare round trip", func(t *testing.T) {
		hashed, err := hasher.Hash("s3cret-pass")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", hashed)
		assert.NoError(t, hasher.Compare(hashed, "s3cret-pass"))
	})

	t.Run("wrong password mismatches", func(t *testing.T) {
		hashed, err := hasher.Hash("s3cret-pass")
		require.NoError(t, err)
		assert.ErrorIs(t, hasher.Compare(hashed, "wrong-pass"), ErrPasswordMismatch)
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := hasher.Hash("s3cret-pass")
		require.NoError(t, err)
		second, err := hasher.Hash("s3cret-pass")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("zero cost falls back to the bcrypt default", func(t *testing.T) {
		h := NewBcryptHasher(0)
		hashed, err := h.Hash("s3cret-pass")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hashed))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
