package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	// When: two ids are generated
	first := GenerateGameID()
	second := GenerateGameID()

	// Then: both are 16 hex characters and differ
	require.Len(t, first, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", first)
	assert.NotEqual(t, first, second)
}
