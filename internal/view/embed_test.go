package view

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFSShipsAssets(t *testing.T) {
	for _, name := range []string{"static/site.css", "static/loader.js"} {
		b, err := fs.ReadFile(StaticFS, name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, b, name)
	}
}
