package accounts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	require.True(t, CheckPassword("correct horse battery", hash))
	require.False(t, CheckPassword("wrong horse battery", hash))
}

func TestHashPasswordSaltIsRandomised(t *testing.T) {
	first, err := HashPassword("pw123456")
	require.NoError(t, err)
	second, err := HashPassword("pw123456")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, CheckPassword("pw123456", first))
	require.True(t, CheckPassword("pw123456", second))
}

// A stored hash must never equal the plaintext it was derived from. Anything
// comparing the two with string equality would accept no password at all, or
// worse, would require plaintext storage to ever match.
func TestHashIsNotThePlaintext(t *testing.T) {
	hash, err := HashPassword("pw123456")
	require.NoError(t, err)
	require.NotEqual(t, "pw123456", hash)
	require.False(t, hash == "pw123456")
}
