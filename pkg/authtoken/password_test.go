package authtoken

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.True(t, VerifyPassword("s3cret", hash))
	require.False(t, VerifyPassword("wrong", hash))
	require.False(t, VerifyPassword("s3cret", "not-a-hash"))
}
