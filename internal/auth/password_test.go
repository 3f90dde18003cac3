package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("MyPassword123")
	require.NoError(t, err)
	assert.True(t, strings.Contains(hashed, "$"), "hash should be salt$hash")

	_, err = HashPassword("")
	assert.Error(t, err, "empty password must be rejected")

	hashed2, err := HashPassword("MyPassword123")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, hashed2, "salts must be random")
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("TestPass456")
	require.NoError(t, err)

	assert.True(t, CheckPassword("TestPass456", hashed))
	assert.False(t, CheckPassword("WrongPass", hashed))
	assert.False(t, CheckPassword("", hashed))
	assert.False(t, CheckPassword("TestPass456", ""))
	assert.False(t, CheckPassword("TestPass456", "invalid-format"))
	assert.False(t, CheckPassword("TestPass456", "not base64$also not base64"))
}
