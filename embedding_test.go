package chatwire

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingParse(t *testing.T) {
	payload := `{"object":"embedding","embedding":[0.0023064255,-0.009327292,0.015797349],"index":0}`
	e, err := ParseEmbedding([]byte(payload))
	require.NoError(t, err)
	assert.Len(t, e.Embedding, 3)
	assert.Equal(t, int64(0), e.Index)

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(out))
}

func TestEmbeddingObjectLiteral(t *testing.T) {
	_, err := ParseEmbedding([]byte(`{"object":"vector","embedding":[0.1],"index":0}`))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "object", se.Field)
}

func TestEmbeddingNegativeIndex(t *testing.T) {
	_, err := ParseEmbedding([]byte(`{"object":"embedding","embedding":[0.1],"index":-1}`))
	assert.Error(t, err)
}

func TestEmbeddingRequiresVector(t *testing.T) {
	_, err := ParseEmbedding([]byte(`{"object":"embedding","index":0}`))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "embedding", se.Field)
}

func TestEmbeddingFiniteComponents(t *testing.T) {
	e := Embedding{Object: ObjectEmbedding, Embedding: []float64{0.1, math.NaN()}}
	assert.Error(t, e.Validate())

	e.Embedding = []float64{0.1, -0.2}
	assert.NoError(t, e.Validate())
}

func TestEmbeddingKeyedAccess(t *testing.T) {
	e, err := ParseEmbedding([]byte(`{"object":"embedding","embedding":[0.5],"index":2}`))
	require.NoError(t, err)

	idx, err := e.Field("index")
	require.NoError(t, err)
	assert.Equal(t, int64(2), idx)

	assert.True(t, e.Contains("object"))
	assert.Equal(t, "none", e.Get("model", "none"))
	assert.ErrorIs(t, e.SetField("model", "x"), ErrUnknownField)
}
