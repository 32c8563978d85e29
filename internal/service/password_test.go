package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "s3cret!"
	hash, err := HashPassword(pwd, bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "wrong"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd, bcrypt.MinCost)
	require.Error(t, err)
}

func TestHashPasswordSelfContained(t *testing.T) {
	// the hash embeds algorithm, cost and salt
	hash, err := HashPassword("pw", 6)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, 6, cost)

	// two hashes of the same password differ (fresh salt) yet both verify
	hash2, err := HashPassword("pw", 6)
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
	require.NoError(t, ComparePassword(hash2, "pw"))
}
