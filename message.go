package chatwire

import "encoding/json"

// Role identifies the author of a message. The developer role is accepted
// only by reasoning models, but the model does not restrict where it
// appears.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
	RoleDeveloper Role = "developer"
)

func (r Role) valid() bool {
	switch r {
	case RoleAssistant, RoleUser, RoleSystem, RoleTool, RoleDeveloper:
		return true
	}
	return false
}

// Message is one request-side turn in a conversation. A single structure
// covers every role: the role-conditional fields (ToolCallID for tool
// messages, FunctionCall and ToolCalls for assistant messages) are
// optional rather than mutually exclusive, and no role/field coupling is
// enforced. Providers tolerate the same looseness; callers needing strict
// coupling must add their own pass.
type Message struct {
	fieldSet

	Role         Role           `json:"role"`
	Content      MessageContent `json:"content"`
	Name         string         `json:"name,omitempty"`
	FunctionCall *FunctionCall  `json:"function_call,omitempty"`
	ToolCalls    []ToolCall     `json:"tool_calls,omitempty"`
	ToolCallID   string         `json:"tool_call_id,omitempty"`
}

var messageFields = map[string]field[Message]{
	"role": {
		get:      func(m *Message) any { return m.Role },
		set:      setAs(func(m *Message, v Role) { m.Role = v }),
		presumed: true,
	},
	"content": {
		get: func(m *Message) any { return m.Content },
		set: setAs(func(m *Message, v MessageContent) { m.Content = v }),
	},
	"name": {
		get: func(m *Message) any { return m.Name },
		set: setAs(func(m *Message, v string) { m.Name = v }),
	},
	"function_call": {
		get: func(m *Message) any { return m.FunctionCall },
		set: setAs(func(m *Message, v *FunctionCall) { m.FunctionCall = v }),
	},
	"tool_calls": {
		get: func(m *Message) any { return m.ToolCalls },
		set: setAs(func(m *Message, v []ToolCall) { m.ToolCalls = v }),
	},
	"tool_call_id": {
		get: func(m *Message) any { return m.ToolCallID },
		set: setAs(func(m *Message, v string) { m.ToolCallID = v }),
	},
}

func (m *Message) Field(key string) (any, error) { return tableField(m, messageFields, key) }
func (m *Message) SetField(key string, value any) error {
	return tableSetField(m, &m.fieldSet, messageFields, key, value)
}
func (m *Message) Contains(key string) bool {
	return tableContains(&m.fieldSet, messageFields, key)
}
func (m *Message) Get(key string, fallback any) any {
	return tableGet(m, &m.fieldSet, messageFields, key, fallback)
}

// Validate checks the role, the content form, and the tool call entries.
// Tool call ids must be non-empty and unique within the message.
func (m Message) Validate() error {
	if m.Role == "" {
		return schemaErr("role", "required field missing")
	}
	if !m.Role.valid() {
		return schemaErrf("role", "unknown role %q", m.Role)
	}
	if err := m.Content.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(m.ToolCalls))
	for _, tc := range m.ToolCalls {
		if err := tc.Validate(); err != nil {
			return err
		}
		if _, dup := seen[tc.ID]; dup {
			return schemaErrf("tool_calls", "duplicate tool call id %q", tc.ID)
		}
		seen[tc.ID] = struct{}{}
	}
	return nil
}

// Text returns the textual content of the message: the string form as-is,
// or the concatenated text parts of the parts form.
func (m Message) Text() string {
	if m.Content.IsText() {
		return m.Content.Text()
	}
	var b []byte
	for _, p := range m.Content.Parts() {
		if p.Type == PartText {
			b = append(b, p.Text...)
		}
	}
	return string(b)
}

func (m Message) MarshalJSON() ([]byte, error) {
	type wire struct {
		Role         Role            `json:"role"`
		Content      *MessageContent `json:"content,omitempty"`
		Name         string          `json:"name,omitempty"`
		FunctionCall *FunctionCall   `json:"function_call,omitempty"`
		ToolCalls    []ToolCall      `json:"tool_calls,omitempty"`
		ToolCallID   string          `json:"tool_call_id,omitempty"`
	}
	w := wire{
		Role:         m.Role,
		Name:         m.Name,
		FunctionCall: m.FunctionCall,
		ToolCalls:    m.ToolCalls,
		ToolCallID:   m.ToolCallID,
	}
	if !m.Content.IsZero() {
		w.Content = &m.Content
	}
	return json.Marshal(w)
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type plain Message
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Message(v)
	if err := markSupplied(&m.fieldSet, messageFields, data); err != nil {
		return err
	}
	return m.Validate()
}
