//go:build unit

package sharetoken_test

import (
	"testing"

	"room-reserve/internal/pkg/sharetoken"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	token, err := sharetoken.New()
	require.NoError(t, err)

	assert.Len(t, token, 16)
	assert.True(t, sharetoken.IsValid(token))

	other, err := sharetoken.New()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestIsValid(t *testing.T) {
	valid := []string{"0000000000000000", "a1b2c3d4e5f60718", "ffffffffffffffff"}
	for _, tok := range valid {
		assert.True(t, sharetoken.IsValid(tok), "token %q", tok)
	}

	invalid := []string{
		"",
		"a1b2c3d4e5f6071",   // too short
		"a1b2c3d4e5f607181", // too long
		"A1B2C3D4E5F60718",  // uppercase hex is not produced
		"g1b2c3d4e5f60718",  // not hex
		"a1b2c3d4e5f6071 ",
	}
	for _, tok := range invalid {
		assert.False(t, sharetoken.IsValid(tok), "token %q", tok)
	}
}
