package chatwire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToolType is the kind of tool offered to the model. Only function tools
// exist today.
type ToolType string

const ToolFunction ToolType = "function"

// FunctionSchema declares a callable tool's interface. Parameters holds an
// arbitrary JSON Schema document; only its object shape is checked here,
// never its JSON Schema correctness.
type FunctionSchema struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	Strict      *bool           `json:"strict,omitempty"`
}

// Validate checks the required fields and that Parameters, when given,
// deserializes to a JSON object rather than a scalar or array.
func (f FunctionSchema) Validate() error {
	if f.Name == "" {
		return schemaErr("function.name", "required field missing")
	}
	if f.Description == "" {
		return schemaErr("function.description", "required field missing")
	}
	if len(f.Parameters) > 0 && !isJSONObject(f.Parameters) {
		return schemaErr("function.parameters", "must be a JSON object")
	}
	return nil
}

// Tool is a function tool offered to the model.
type Tool struct {
	Type     ToolType       `json:"type"`
	Function FunctionSchema `json:"function"`
}

// Validate checks the type literal and the embedded schema.
func (t Tool) Validate() error {
	if t.Type != ToolFunction {
		return schemaErrf("type", "must be %q, got %q", ToolFunction, t.Type)
	}
	return t.Function.Validate()
}

// FunctionCall is the deprecated single-function call shape. Arguments is
// JSON text as generated by the model; it is validated lazily by the
// consumer via DecodeArguments, not at construction.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// DecodeArguments unmarshals the JSON-encoded arguments into dst.
func (f FunctionCall) DecodeArguments(dst any) error {
	if err := json.Unmarshal([]byte(f.Arguments), dst); err != nil {
		return fmt.Errorf("decode arguments of %q: %w", f.Name, err)
	}
	return nil
}

// ToolCall is a requested tool invocation carried on a request-side
// message.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     ToolType     `json:"type"`
	Function FunctionCall `json:"function"`
}

// Validate checks the id and type literal. The function payload is left
// loose: providers emit partial shapes and arguments are validated lazily.
func (t ToolCall) Validate() error {
	if t.ID == "" {
		return schemaErr("id", "required field missing")
	}
	if t.Type != ToolFunction {
		return schemaErrf("type", "must be %q, got %q", ToolFunction, t.Type)
	}
	return nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
