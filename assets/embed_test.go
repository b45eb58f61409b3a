package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWords(t *testing.T) {
	ws, err := DefaultWords()
	require.NoError(t, err)
	assert.NotEmpty(t, ws)
	for _, w := range ws {
		assert.NotContains(t, w, "#")
		assert.NotEmpty(t, w)
	}
}
