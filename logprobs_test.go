package chatwire

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLogprobParse(t *testing.T) {
	payload := `{
		"token": "Hello",
		"logprob": -0.31725305,
		"bytes": [72, 101, 108, 108, 111],
		"top_logprobs": [
			{"token": "Hello", "logprob": -0.31725305, "bytes": [72, 101, 108, 108, 111]},
			{"token": "Hi", "logprob": -1.3190403, "bytes": [72, 105]}
		]
	}`
	var l TokenLogprob
	require.NoError(t, json.Unmarshal([]byte(payload), &l))
	assert.Equal(t, "Hello", l.Token)
	assert.Equal(t, []int{72, 101, 108, 108, 111}, l.Bytes)
	require.Len(t, l.TopLogprobs, 2)
	assert.InDelta(t, -1.3190403, l.TopLogprobs[1].Logprob, 1e-9)

	out, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestTokenLogprobRequiredFields(t *testing.T) {
	var l TokenLogprob
	err := json.Unmarshal([]byte(`{"token":"x","logprob":-0.5}`), &l)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "top_logprobs", se.Field)
}

func TestLogprobMustBeFinite(t *testing.T) {
	// Very negative is fine.
	assert.NoError(t, TopLogprob{Token: "x", Logprob: -9999.9}.Validate())

	assert.Error(t, TopLogprob{Token: "x", Logprob: math.NaN()}.Validate())
	assert.Error(t, TopLogprob{Token: "x", Logprob: math.Inf(1)}.Validate())
	assert.Error(t, TokenLogprob{Token: "x", Logprob: math.Inf(-1)}.Validate())
}

func TestTopLogprobBytesPresence(t *testing.T) {
	var withBytes TopLogprob
	require.NoError(t, json.Unmarshal([]byte(`{"token":"x","logprob":-0.5,"bytes":[120]}`), &withBytes))
	assert.True(t, withBytes.Contains("bytes"))

	var withoutBytes TopLogprob
	require.NoError(t, json.Unmarshal([]byte(`{"token":"x","logprob":-0.5}`), &withoutBytes))
	assert.False(t, withoutBytes.Contains("bytes"))
	assert.True(t, withoutBytes.Contains("token"))
	assert.Nil(t, withoutBytes.Get("bytes", nil))
}

func TestChoiceLogprobsKeyedAccess(t *testing.T) {
	var lp ChoiceLogprobs
	require.NoError(t, json.Unmarshal([]byte(`{"refusal":[{"token":"No","logprob":-0.1,"top_logprobs":[]}]}`), &lp))

	assert.True(t, lp.Contains("refusal"))
	assert.False(t, lp.Contains("content"))

	refusal, err := lp.Field("refusal")
	require.NoError(t, err)
	assert.Len(t, refusal, 1)

	_, err = lp.Field("tokens")
	assert.ErrorIs(t, err, ErrUnknownField)
}
