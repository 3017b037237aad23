package chatwire

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TextPart creates a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: PartText, Text: text}
}

// ImagePart creates an image_url content part.
func ImagePart(url string) ContentPart {
	return ContentPart{Type: PartImageURL, ImageURL: &ImageURL{URL: url}}
}

// ImagePartWithDetail creates an image_url content part with an explicit
// detail level.
func ImagePartWithDetail(url string, detail ImageDetail) ContentPart {
	return ContentPart{Type: PartImageURL, ImageURL: &ImageURL{URL: url, Detail: detail}}
}

// AudioPart creates an input_audio content part from base64-encoded data.
func AudioPart(data string, format AudioFormat) ContentPart {
	return ContentPart{Type: PartInputAudio, InputAudio: &InputAudio{Data: data, Format: format}}
}

// SystemMessage creates a system message with string content.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: TextContent(content)}
}

// DeveloperMessage creates a developer message with string content.
func DeveloperMessage(content string) Message {
	return Message{Role: RoleDeveloper, Content: TextContent(content)}
}

// UserMessage creates a user message with string content.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: TextContent(content)}
}

// AssistantMessage creates an assistant message with string content.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: TextContent(content)}
}

// ToolResultMessage creates a tool message carrying a tool's output back
// to the model.
func ToolResultMessage(toolCallID, content string) Message {
	return Message{Role: RoleTool, Content: TextContent(content), ToolCallID: toolCallID}
}

// NewFunctionTool creates a function tool declaration. parameters may be
// any value that marshals to a JSON object, or nil.
func NewFunctionTool(name, description string, parameters any) (Tool, error) {
	fs := FunctionSchema{Name: name, Description: description}
	if parameters != nil {
		b, err := json.Marshal(parameters)
		if err != nil {
			return Tool{}, fmt.Errorf("marshal parameters: %w", err)
		}
		fs.Parameters = json.RawMessage(b)
	}
	t := Tool{Type: ToolFunction, Function: fs}
	if err := t.Validate(); err != nil {
		return Tool{}, err
	}
	return t, nil
}

// NewToolCall creates a tool call with a generated id.
func NewToolCall(name, arguments string) ToolCall {
	return ToolCall{
		ID:       "call_" + uuid.NewString(),
		Type:     ToolFunction,
		Function: FunctionCall{Name: name, Arguments: arguments},
	}
}

// MockCompletion builds a minimal valid Completion around a single
// assistant message, useful as a test double for code consuming
// completions.
func MockCompletion(model, content string) *Completion {
	return &Completion{
		ID:      "chatcmpl-" + uuid.NewString(),
		Created: time.Now().Unix(),
		Model:   model,
		Object:  ObjectCompletion,
		Choices: []CompletionChoice{{
			Message:      CompletionMessage{Role: RoleAssistant, Content: TextContent(content)},
			FinishReason: FinishStop,
		}},
	}
}

// MockChunk builds a minimal valid CompletionChunk carrying one content
// delta.
func MockChunk(model, delta string) *CompletionChunk {
	return &CompletionChunk{
		ID:      "chatcmpl-" + uuid.NewString(),
		Created: time.Now().Unix(),
		Model:   model,
		Object:  ObjectCompletionChunk,
		Choices: []ChunkChoice{{
			Delta: DeltaMessage{Role: RoleAssistant, Content: TextContent(delta)},
		}},
	}
}
