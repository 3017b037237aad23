package toolfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnglemongrass/chatwire"
)

const toolsYAML = `
tools:
  - name: get_title
    description: Get the title of a website.
    parameters:
      type: object
      properties:
        url:
          type: string
          description: The URL of the website.
      required: [url]
  - name: get_weather
    description: Get the current weather.
    strict: true
`

func TestParse(t *testing.T) {
	tools, err := Parse([]byte(toolsYAML))
	require.NoError(t, err)
	require.Len(t, tools, 2)

	assert.Equal(t, chatwire.ToolFunction, tools[0].Type)
	assert.Equal(t, "get_title", tools[0].Function.Name)
	assert.NotEmpty(t, tools[0].Function.Parameters)

	assert.Equal(t, "get_weather", tools[1].Function.Name)
	require.NotNil(t, tools[1].Function.Strict)
	assert.True(t, *tools[1].Function.Strict)
}

func TestParseJSON(t *testing.T) {
	// YAML is a superset of JSON, so JSON documents load too.
	doc := `{"tools":[{"name":"f","description":"d","parameters":{"type":"object"}}]}`
	tools, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "f", tools[0].Function.Name)
}

func TestParseRejectsInvalidTool(t *testing.T) {
	_, err := Parse([]byte("tools:\n  - name: incomplete\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestParseRejectsEmptyDocument(t *testing.T) {
	_, err := Parse([]byte("tools: []\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.yml")
	require.NoError(t, os.WriteFile(path, []byte(toolsYAML), 0644))

	tools, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, tools, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/tools.yml")
	assert.Error(t, err)
}
