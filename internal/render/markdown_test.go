package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf)
	require.NoError(t, err)

	err = r.Render("# Report\n\nAll payloads valid.")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Report")
	assert.Contains(t, buf.String(), "valid")
}

func TestNewRendererNilWriter(t *testing.T) {
	// Should not panic; defaults to os.Stdout.
	r, err := NewRenderer(nil)
	require.NoError(t, err)
	assert.NotNil(t, r)
}
