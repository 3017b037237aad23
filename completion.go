package chatwire

import "encoding/json"

// FinishReason explains why the model stopped generating a choice. The
// enumeration is closed: payloads carrying any other value fail
// construction.
type FinishReason string

const (
	FinishStop      FinishReason = "stop"
	FinishLength    FinishReason = "length"
	FinishToolCalls FinishReason = "tool_calls"
)

func (r FinishReason) valid() bool {
	switch r {
	case FinishStop, FinishLength, FinishToolCalls:
		return true
	}
	return false
}

// ServiceTier is the processing tier a completion was served under.
type ServiceTier string

const (
	TierScale   ServiceTier = "scale"
	TierDefault ServiceTier = "default"
)

// CompletionFunction is the realized function call info on a response.
// Unlike the streaming delta shape, both fields are always fully present.
type CompletionFunction struct {
	fieldSet

	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

var completionFunctionFields = map[string]field[CompletionFunction]{
	"name": {
		get:      func(f *CompletionFunction) any { return f.Name },
		set:      setAs(func(f *CompletionFunction, v string) { f.Name = v }),
		presumed: true,
	},
	"arguments": {
		get:      func(f *CompletionFunction) any { return f.Arguments },
		set:      setAs(func(f *CompletionFunction, v string) { f.Arguments = v }),
		presumed: true,
	},
}

func (f *CompletionFunction) Field(key string) (any, error) {
	return tableField(f, completionFunctionFields, key)
}
func (f *CompletionFunction) SetField(key string, value any) error {
	return tableSetField(f, &f.fieldSet, completionFunctionFields, key, value)
}
func (f *CompletionFunction) Contains(key string) bool {
	return tableContains(&f.fieldSet, completionFunctionFields, key)
}
func (f *CompletionFunction) Get(key string, fallback any) any {
	return tableGet(f, &f.fieldSet, completionFunctionFields, key, fallback)
}

// DecodeArguments unmarshals the JSON-encoded arguments into dst. The
// arguments text is validated here, lazily, not at construction.
func (f CompletionFunction) DecodeArguments(dst any) error {
	return FunctionCall{Name: f.Name, Arguments: f.Arguments}.DecodeArguments(dst)
}

func (f *CompletionFunction) UnmarshalJSON(data []byte) error {
	type plain CompletionFunction
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = CompletionFunction(v)
	if err := markSupplied(&f.fieldSet, completionFunctionFields, data); err != nil {
		return err
	}
	return checkRequired(&f.fieldSet, completionFunctionFields)
}

// CompletionToolCall is a realized tool call on a response.
type CompletionToolCall struct {
	fieldSet

	ID       string             `json:"id"`
	Type     ToolType           `json:"type"`
	Function CompletionFunction `json:"function"`
}

var completionToolCallFields = map[string]field[CompletionToolCall]{
	"id": {
		get:      func(t *CompletionToolCall) any { return t.ID },
		set:      setAs(func(t *CompletionToolCall, v string) { t.ID = v }),
		presumed: true,
	},
	"type": {
		get:      func(t *CompletionToolCall) any { return t.Type },
		set:      setAs(func(t *CompletionToolCall, v ToolType) { t.Type = v }),
		presumed: true,
	},
	"function": {
		get:      func(t *CompletionToolCall) any { return t.Function },
		set:      setAs(func(t *CompletionToolCall, v CompletionFunction) { t.Function = v }),
		presumed: true,
	},
}

func (t *CompletionToolCall) Field(key string) (any, error) {
	return tableField(t, completionToolCallFields, key)
}
func (t *CompletionToolCall) SetField(key string, value any) error {
	return tableSetField(t, &t.fieldSet, completionToolCallFields, key, value)
}
func (t *CompletionToolCall) Contains(key string) bool {
	return tableContains(&t.fieldSet, completionToolCallFields, key)
}
func (t *CompletionToolCall) Get(key string, fallback any) any {
	return tableGet(t, &t.fieldSet, completionToolCallFields, key, fallback)
}

// Validate checks the id and the type literal.
func (t CompletionToolCall) Validate() error {
	if t.ID == "" {
		return schemaErr("id", "required field missing")
	}
	if t.Type != ToolFunction {
		return schemaErrf("type", "must be %q, got %q", ToolFunction, t.Type)
	}
	return nil
}

func (t *CompletionToolCall) UnmarshalJSON(data []byte) error {
	type plain CompletionToolCall
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = CompletionToolCall(v)
	if err := markSupplied(&t.fieldSet, completionToolCallFields, data); err != nil {
		return err
	}
	if err := checkRequired(&t.fieldSet, completionToolCallFields); err != nil {
		return err
	}
	return t.Validate()
}

// CompletionMessage is the full message the model produced for one
// choice. The role is fixed to assistant. Streaming fragments use the
// separate DeltaMessage type, whose fields are all absent-by-default.
type CompletionMessage struct {
	fieldSet

	Role         Role                 `json:"role"`
	Content      MessageContent       `json:"content"`
	Name         string               `json:"name,omitempty"`
	FunctionCall *CompletionFunction  `json:"function_call,omitempty"`
	ToolCalls    []CompletionToolCall `json:"tool_calls,omitempty"`
	ToolCallID   string               `json:"tool_call_id,omitempty"`
}

var completionMessageFields = map[string]field[CompletionMessage]{
	"role": {
		get:      func(m *CompletionMessage) any { return m.Role },
		set:      setAs(func(m *CompletionMessage, v Role) { m.Role = v }),
		presumed: true,
	},
	"content": {
		get:      func(m *CompletionMessage) any { return m.Content },
		set:      setAs(func(m *CompletionMessage, v MessageContent) { m.Content = v }),
		presumed: true,
	},
	"name": {
		get: func(m *CompletionMessage) any { return m.Name },
		set: setAs(func(m *CompletionMessage, v string) { m.Name = v }),
	},
	"function_call": {
		get: func(m *CompletionMessage) any { return m.FunctionCall },
		set: setAs(func(m *CompletionMessage, v *CompletionFunction) { m.FunctionCall = v }),
	},
	"tool_calls": {
		get: func(m *CompletionMessage) any { return m.ToolCalls },
		set: setAs(func(m *CompletionMessage, v []CompletionToolCall) { m.ToolCalls = v }),
	},
	"tool_call_id": {
		get: func(m *CompletionMessage) any { return m.ToolCallID },
		set: setAs(func(m *CompletionMessage, v string) { m.ToolCallID = v }),
	},
}

func (m *CompletionMessage) Field(key string) (any, error) {
	return tableField(m, completionMessageFields, key)
}
func (m *CompletionMessage) SetField(key string, value any) error {
	return tableSetField(m, &m.fieldSet, completionMessageFields, key, value)
}
func (m *CompletionMessage) Contains(key string) bool {
	return tableContains(&m.fieldSet, completionMessageFields, key)
}
func (m *CompletionMessage) Get(key string, fallback any) any {
	return tableGet(m, &m.fieldSet, completionMessageFields, key, fallback)
}

// Validate checks the fixed role, the content form, and every tool call.
func (m CompletionMessage) Validate() error {
	if m.Role != RoleAssistant {
		return schemaErrf("role", "must be %q, got %q", RoleAssistant, m.Role)
	}
	if err := m.Content.Validate(); err != nil {
		return err
	}
	for _, tc := range m.ToolCalls {
		if err := tc.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Text returns the textual content of the message, either form.
func (m CompletionMessage) Text() string {
	return Message{Role: m.Role, Content: m.Content}.Text()
}

func (m CompletionMessage) MarshalJSON() ([]byte, error) {
	type wire struct {
		Role         Role                 `json:"role"`
		Content      MessageContent       `json:"content"`
		Name         string               `json:"name,omitempty"`
		FunctionCall *CompletionFunction  `json:"function_call,omitempty"`
		ToolCalls    []CompletionToolCall `json:"tool_calls,omitempty"`
		ToolCallID   string               `json:"tool_call_id,omitempty"`
	}
	return json.Marshal(wire{
		Role:         m.Role,
		Content:      m.Content,
		Name:         m.Name,
		FunctionCall: m.FunctionCall,
		ToolCalls:    m.ToolCalls,
		ToolCallID:   m.ToolCallID,
	})
}

func (m *CompletionMessage) UnmarshalJSON(data []byte) error {
	type plain CompletionMessage
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = CompletionMessage(v)
	if err := markSupplied(&m.fieldSet, completionMessageFields, data); err != nil {
		return err
	}
	if err := checkRequired(&m.fieldSet, completionMessageFields); err != nil {
		return err
	}
	return m.Validate()
}

// CompletionChoice is one candidate completion. Index is informational
// and passed through verbatim; it is never re-derived from the position
// in the choices sequence, even when a malformed payload disagrees.
type CompletionChoice struct {
	fieldSet

	Message      CompletionMessage `json:"message"`
	FinishReason FinishReason      `json:"finish_reason"`
	Index        int64             `json:"index"`
	Logprobs     *ChoiceLogprobs   `json:"logprobs,omitempty"`
}

var completionChoiceFields = map[string]field[CompletionChoice]{
	"message": {
		get:      func(c *CompletionChoice) any { return c.Message },
		set:      setAs(func(c *CompletionChoice, v CompletionMessage) { c.Message = v }),
		presumed: true,
	},
	"finish_reason": {
		get:      func(c *CompletionChoice) any { return c.FinishReason },
		set:      setAs(func(c *CompletionChoice, v FinishReason) { c.FinishReason = v }),
		presumed: true,
	},
	"index": {
		get:      func(c *CompletionChoice) any { return c.Index },
		set:      setInt(func(c *CompletionChoice, v int64) { c.Index = v }),
		presumed: true,
	},
	"logprobs": {
		get: func(c *CompletionChoice) any { return c.Logprobs },
		set: setAs(func(c *CompletionChoice, v *ChoiceLogprobs) { c.Logprobs = v }),
	},
}

func (c *CompletionChoice) Field(key string) (any, error) {
	return tableField(c, completionChoiceFields, key)
}
func (c *CompletionChoice) SetField(key string, value any) error {
	return tableSetField(c, &c.fieldSet, completionChoiceFields, key, value)
}
func (c *CompletionChoice) Contains(key string) bool {
	return tableContains(&c.fieldSet, completionChoiceFields, key)
}
func (c *CompletionChoice) Get(key string, fallback any) any {
	return tableGet(c, &c.fieldSet, completionChoiceFields, key, fallback)
}

// Validate checks the finish reason enumeration, the index sign, the
// message, and the logprobs when present.
func (c CompletionChoice) Validate() error {
	if !c.FinishReason.valid() {
		return schemaErrf("finish_reason", "unknown finish reason %q", c.FinishReason)
	}
	if c.Index < 0 {
		return schemaErrf("index", "must be non-negative, got %d", c.Index)
	}
	if err := c.Message.Validate(); err != nil {
		return err
	}
	if c.Logprobs != nil {
		return c.Logprobs.Validate()
	}
	return nil
}

func (c *CompletionChoice) UnmarshalJSON(data []byte) error {
	type plain CompletionChoice
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = CompletionChoice(v)
	if err := markSupplied(&c.fieldSet, completionChoiceFields, data); err != nil {
		return err
	}
	if err := checkRequired(&c.fieldSet, completionChoiceFields); err != nil {
		return err
	}
	return c.Validate()
}

// Completion is the full non-streamed response envelope. Usage is kept as
// an opaque JSON object: its shape is provider-specific and deliberately
// not modeled here.
type Completion struct {
	fieldSet

	ID                string             `json:"id"`
	Choices           []CompletionChoice `json:"choices"`
	Created           int64              `json:"created"`
	Model             string             `json:"model"`
	Object            string             `json:"object"`
	ServiceTier       ServiceTier        `json:"service_tier,omitempty"`
	SystemFingerprint string             `json:"system_fingerprint,omitempty"`
	Usage             json.RawMessage    `json:"usage,omitempty"`
}

var completionFields = map[string]field[Completion]{
	"id": {
		get:      func(c *Completion) any { return c.ID },
		set:      setAs(func(c *Completion, v string) { c.ID = v }),
		presumed: true,
	},
	"choices": {
		get:      func(c *Completion) any { return c.Choices },
		set:      setAs(func(c *Completion, v []CompletionChoice) { c.Choices = v }),
		presumed: true,
	},
	"created": {
		get:      func(c *Completion) any { return c.Created },
		set:      setInt(func(c *Completion, v int64) { c.Created = v }),
		presumed: true,
	},
	"model": {
		get:      func(c *Completion) any { return c.Model },
		set:      setAs(func(c *Completion, v string) { c.Model = v }),
		presumed: true,
	},
	"object": {
		get:      func(c *Completion) any { return c.Object },
		set:      setAs(func(c *Completion, v string) { c.Object = v }),
		presumed: true,
	},
	"service_tier": {
		get: func(c *Completion) any { return c.ServiceTier },
		set: setAs(func(c *Completion, v ServiceTier) { c.ServiceTier = v }),
	},
	"system_fingerprint": {
		get: func(c *Completion) any { return c.SystemFingerprint },
		set: setAs(func(c *Completion, v string) { c.SystemFingerprint = v }),
	},
	"usage": {
		get: func(c *Completion) any { return c.Usage },
		set: setAs(func(c *Completion, v json.RawMessage) { c.Usage = v }),
	},
}

func (c *Completion) Field(key string) (any, error) { return tableField(c, completionFields, key) }
func (c *Completion) SetField(key string, value any) error {
	return tableSetField(c, &c.fieldSet, completionFields, key, value)
}
func (c *Completion) Contains(key string) bool {
	return tableContains(&c.fieldSet, completionFields, key)
}
func (c *Completion) Get(key string, fallback any) any {
	return tableGet(c, &c.fieldSet, completionFields, key, fallback)
}

// Validate checks the envelope fields and every choice. Choices are kept
// in payload order; their index values are not cross-checked against
// position.
func (c Completion) Validate() error {
	if err := validateEnvelope(c.ID, c.Created, c.Model, c.Object, c.ServiceTier); err != nil {
		return err
	}
	for _, choice := range c.Choices {
		if err := choice.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// First returns the message of the first choice, the common case for
// single-choice responses. The second result is false when there are no
// choices.
func (c Completion) First() (CompletionMessage, bool) {
	if len(c.Choices) == 0 {
		return CompletionMessage{}, false
	}
	return c.Choices[0].Message, true
}

func (c *Completion) UnmarshalJSON(data []byte) error {
	type plain Completion
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Completion(v)
	if err := markSupplied(&c.fieldSet, completionFields, data); err != nil {
		return err
	}
	if err := checkRequired(&c.fieldSet, completionFields); err != nil {
		return err
	}
	return c.Validate()
}

func validateEnvelope(id string, created int64, model, object string, tier ServiceTier) error {
	if id == "" {
		return schemaErr("id", "required field missing")
	}
	if created < 0 {
		return schemaErrf("created", "must be non-negative, got %d", created)
	}
	if model == "" {
		return schemaErr("model", "required field missing")
	}
	if object == "" {
		return schemaErr("object", "required field missing")
	}
	switch tier {
	case "", TierScale, TierDefault:
		return nil
	default:
		return schemaErrf("service_tier", "unknown service tier %q", tier)
	}
}
