package chatwire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentPartVariants(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "text",
			payload: `{"type":"text","text":"Hello, world!"}`,
		},
		{
			name:    "image url",
			payload: `{"type":"image_url","image_url":{"url":"https://example.com/image.png"}}`,
		},
		{
			name:    "image url with detail",
			payload: `{"type":"image_url","image_url":{"url":"https://example.com/image.png","detail":"low"}}`,
		},
		{
			name:    "input audio",
			payload: `{"type":"input_audio","input_audio":{"data":"UklGRg==","format":"wav"}}`,
		},
		{
			name:    "unknown type",
			payload: `{"type":"video_url","video_url":{"url":"https://example.com/v.mp4"}}`,
			wantErr: true,
		},
		{
			name:    "missing type",
			payload: `{"text":"hi"}`,
			wantErr: true,
		},
		{
			name:    "text without text key",
			payload: `{"type":"text"}`,
			wantErr: true,
		},
		{
			name:    "image url without payload",
			payload: `{"type":"image_url"}`,
			wantErr: true,
		},
		{
			name:    "image url with unknown detail",
			payload: `{"type":"image_url","image_url":{"url":"https://example.com/i.png","detail":"ultra"}}`,
			wantErr: true,
		},
		{
			name:    "input audio without data",
			payload: `{"type":"input_audio","input_audio":{"format":"wav"}}`,
			wantErr: true,
		},
		{
			name:    "input audio with unknown format",
			payload: `{"type":"input_audio","input_audio":{"data":"UklGRg==","format":"flac"}}`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p ContentPart
			err := json.Unmarshal([]byte(tc.payload), &p)
			if tc.wantErr {
				var se *SchemaError
				require.Error(t, err)
				assert.ErrorAs(t, err, &se)
				return
			}
			require.NoError(t, err)

			out, err := json.Marshal(p)
			require.NoError(t, err)
			assert.JSONEq(t, tc.payload, string(out))
		})
	}
}

func TestContentPartSchemaErrorNamesField(t *testing.T) {
	var p ContentPart
	err := json.Unmarshal([]byte(`{"type":"input_audio","input_audio":{"format":"wav"}}`), &p)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "input_audio.data", se.Field)
}

func TestMessageContentStringForm(t *testing.T) {
	var c MessageContent
	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &c))
	assert.True(t, c.IsText())
	assert.False(t, c.IsParts())
	assert.Equal(t, "hello", c.Text())
	assert.Nil(t, c.Parts())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, string(out))
}

func TestMessageContentPartsForm(t *testing.T) {
	payload := `[{"type":"text","text":"hello"}]`
	var c MessageContent
	require.NoError(t, json.Unmarshal([]byte(payload), &c))
	assert.True(t, c.IsParts())
	assert.False(t, c.IsText())
	require.Len(t, c.Parts(), 1)
	assert.Equal(t, "hello", c.Parts()[0].Text)
	// The parts form is not coerced into a string.
	assert.Empty(t, c.Text())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestMessageContentPartOrderPreserved(t *testing.T) {
	payload := `[
		{"type":"text","text":"first"},
		{"type":"image_url","image_url":{"url":"https://example.com/a.png"}},
		{"type":"text","text":"last"}
	]`
	var c MessageContent
	require.NoError(t, json.Unmarshal([]byte(payload), &c))
	parts := c.Parts()
	require.Len(t, parts, 3)
	assert.Equal(t, "first", parts[0].Text)
	assert.Equal(t, PartImageURL, parts[1].Type)
	assert.Equal(t, "last", parts[2].Text)
}

func TestMessageContentRejectsOtherShapes(t *testing.T) {
	for _, payload := range []string{`42`, `true`, `{"text":"hi"}`} {
		var c MessageContent
		err := json.Unmarshal([]byte(payload), &c)
		assert.Error(t, err, "payload %s", payload)
	}
}

func TestMessageContentNull(t *testing.T) {
	var c MessageContent
	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.True(t, c.IsZero())
}
