package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionName(t *testing.T) {
	name, err := SessionName("  bob ")
	require.NoError(t, err)
	assert.Equal(t, "bob", name)

	generated, err := SessionName("")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(generated, "session-"))
	assert.Len(t, generated, len("session-")+8)

	other, err := SessionName("   ")
	require.NoError(t, err)
	assert.NotEqual(t, generated, other)

	_, err = SessionName(strings.Repeat("n", 33))
	assert.Error(t, err)
}
