package chatwire

import (
	"encoding/json"
	"fmt"
)

// Object literals distinguishing the response envelopes.
const (
	ObjectCompletion      = "chat.completion"
	ObjectCompletionChunk = "chat.completion.chunk"
)

// Kind classifies a raw payload by the model type it conforms to.
type Kind string

const (
	KindMessage         Kind = "message"
	KindCompletion      Kind = "completion"
	KindCompletionChunk Kind = "completion_chunk"
	KindEmbedding       Kind = "embedding"
)

// DetectKind inspects a raw payload's object and role keys and reports
// which model it should be decoded as. It does not validate the payload.
func DetectKind(data []byte) (Kind, error) {
	var probe struct {
		Object string `json:"object"`
		Role   string `json:"role"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", fmt.Errorf("detect payload kind: %w", err)
	}
	switch probe.Object {
	case ObjectCompletion:
		return KindCompletion, nil
	case ObjectCompletionChunk:
		return KindCompletionChunk, nil
	case ObjectEmbedding:
		return KindEmbedding, nil
	}
	if probe.Role != "" {
		return KindMessage, nil
	}
	return "", schemaErr("object", "payload matches no known model")
}

// ParseMessage decodes and validates a request-side message payload.
func ParseMessage(data []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseCompletion decodes and validates a non-streamed completion
// payload.
func ParseCompletion(data []byte) (*Completion, error) {
	var c Completion
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseCompletionChunk decodes and validates a streamed completion
// fragment.
func ParseCompletionChunk(data []byte) (*CompletionChunk, error) {
	var c CompletionChunk
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseEmbedding decodes and validates an embedding result.
func ParseEmbedding(data []byte) (*Embedding, error) {
	var e Embedding
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
