package chatwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Kind
		wantErr bool
	}{
		{
			name:    "completion",
			payload: `{"object":"chat.completion","id":"x"}`,
			want:    KindCompletion,
		},
		{
			name:    "chunk",
			payload: `{"object":"chat.completion.chunk","id":"x"}`,
			want:    KindCompletionChunk,
		},
		{
			name:    "embedding",
			payload: `{"object":"embedding","index":0}`,
			want:    KindEmbedding,
		},
		{
			name:    "message",
			payload: `{"role":"user","content":"hi"}`,
			want:    KindMessage,
		},
		{
			name:    "unrecognized",
			payload: `{"data":[1,2,3]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			payload: `not json`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := DetectKind([]byte(tc.payload))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, kind)
		})
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := ParseCompletion([]byte(`{`))
	assert.Error(t, err)

	_, err = ParseMessage([]byte(`[]`))
	assert.Error(t, err)
}

func TestUnrecognizedKeysIgnored(t *testing.T) {
	// Keys this model does not declare are ignored on read, not
	// rejected.
	payload := `{"role":"user","content":"hi","x_provider_extra":{"a":1}}`
	m, err := ParseMessage([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, RoleUser, m.Role)
	assert.False(t, m.Contains("x_provider_extra"))
}
