package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)

	require.NoError(t, ComparePassword(hash, "Secret123!"))
	require.Error(t, ComparePassword(hash, "wrong"))
	require.Error(t, ComparePassword("not-a-hash", "Secret123!"))
}
