package chatwire

import "encoding/json"

// DeltaFunction is the partial function call info carried by streaming
// fragments. Either field may be absent in any given fragment.
type DeltaFunction struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// DeltaToolCall is a partial tool call in a streaming fragment. Index
// identifies which tool call of the message the fragment extends; the id
// and type typically appear only in the first fragment.
type DeltaToolCall struct {
	Index    int64          `json:"index"`
	ID       string         `json:"id,omitempty"`
	Type     ToolType       `json:"type,omitempty"`
	Function *DeltaFunction `json:"function,omitempty"`
}

// DeltaMessage is a partial field-subset update to the message of one
// streamed choice. Every field is absent-by-default: a field missing from
// a fragment means "no update", which is distinct from a full message
// where every field is meaningful. Contains reports only fields the
// fragment actually carried.
type DeltaMessage struct {
	fieldSet

	Role         Role            `json:"role,omitempty"`
	Content      MessageContent  `json:"content,omitempty"`
	FunctionCall *DeltaFunction  `json:"function_call,omitempty"`
	ToolCalls    []DeltaToolCall `json:"tool_calls,omitempty"`
	Refusal      string          `json:"refusal,omitempty"`
}

var deltaMessageFields = map[string]field[DeltaMessage]{
	"role": {
		get: func(m *DeltaMessage) any { return m.Role },
		set: setAs(func(m *DeltaMessage, v Role) { m.Role = v }),
	},
	"content": {
		get: func(m *DeltaMessage) any { return m.Content },
		set: setAs(func(m *DeltaMessage, v MessageContent) { m.Content = v }),
	},
	"function_call": {
		get: func(m *DeltaMessage) any { return m.FunctionCall },
		set: setAs(func(m *DeltaMessage, v *DeltaFunction) { m.FunctionCall = v }),
	},
	"tool_calls": {
		get: func(m *DeltaMessage) any { return m.ToolCalls },
		set: setAs(func(m *DeltaMessage, v []DeltaToolCall) { m.ToolCalls = v }),
	},
	"refusal": {
		get: func(m *DeltaMessage) any { return m.Refusal },
		set: setAs(func(m *DeltaMessage, v string) { m.Refusal = v }),
	},
}

func (m *DeltaMessage) Field(key string) (any, error) {
	return tableField(m, deltaMessageFields, key)
}
func (m *DeltaMessage) SetField(key string, value any) error {
	return tableSetField(m, &m.fieldSet, deltaMessageFields, key, value)
}
func (m *DeltaMessage) Contains(key string) bool {
	return tableContains(&m.fieldSet, deltaMessageFields, key)
}
func (m *DeltaMessage) Get(key string, fallback any) any {
	return tableGet(m, &m.fieldSet, deltaMessageFields, key, fallback)
}

// Validate checks the role when the fragment carries one, and the content
// form. Partial tool calls are passed through as-is; assembling them is a
// consumer concern.
func (m DeltaMessage) Validate() error {
	if m.Role != "" && m.Role != RoleAssistant {
		return schemaErrf("role", "must be %q, got %q", RoleAssistant, m.Role)
	}
	return m.Content.Validate()
}

func (m DeltaMessage) MarshalJSON() ([]byte, error) {
	type wire struct {
		Role         Role            `json:"role,omitempty"`
		Content      *MessageContent `json:"content,omitempty"`
		FunctionCall *DeltaFunction  `json:"function_call,omitempty"`
		ToolCalls    []DeltaToolCall `json:"tool_calls,omitempty"`
		Refusal      string          `json:"refusal,omitempty"`
	}
	w := wire{
		Role:         m.Role,
		FunctionCall: m.FunctionCall,
		ToolCalls:    m.ToolCalls,
		Refusal:      m.Refusal,
	}
	if !m.Content.IsZero() {
		w.Content = &m.Content
	}
	return json.Marshal(w)
}

func (m *DeltaMessage) UnmarshalJSON(data []byte) error {
	type plain DeltaMessage
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = DeltaMessage(v)
	if err := markSupplied(&m.fieldSet, deltaMessageFields, data); err != nil {
		return err
	}
	return m.Validate()
}

// ChunkChoice is one streamed candidate fragment. It mirrors
// CompletionChoice except that Delta replaces Message, and the finish
// reason stays empty until the stream ends for this choice.
type ChunkChoice struct {
	fieldSet

	Delta        DeltaMessage    `json:"delta"`
	FinishReason FinishReason    `json:"finish_reason,omitempty"`
	Index        int64           `json:"index"`
	Logprobs     *ChoiceLogprobs `json:"logprobs,omitempty"`
}

var chunkChoiceFields = map[string]field[ChunkChoice]{
	"delta": {
		get:      func(c *ChunkChoice) any { return c.Delta },
		set:      setAs(func(c *ChunkChoice, v DeltaMessage) { c.Delta = v }),
		presumed: true,
	},
	"finish_reason": {
		get: func(c *ChunkChoice) any { return c.FinishReason },
		set: setAs(func(c *ChunkChoice, v FinishReason) { c.FinishReason = v }),
	},
	"index": {
		get:      func(c *ChunkChoice) any { return c.Index },
		set:      setInt(func(c *ChunkChoice, v int64) { c.Index = v }),
		presumed: true,
	},
	"logprobs": {
		get: func(c *ChunkChoice) any { return c.Logprobs },
		set: setAs(func(c *ChunkChoice, v *ChoiceLogprobs) { c.Logprobs = v }),
	},
}

func (c *ChunkChoice) Field(key string) (any, error) { return tableField(c, chunkChoiceFields, key) }
func (c *ChunkChoice) SetField(key string, value any) error {
	return tableSetField(c, &c.fieldSet, chunkChoiceFields, key, value)
}
func (c *ChunkChoice) Contains(key string) bool {
	return tableContains(&c.fieldSet, chunkChoiceFields, key)
}
func (c *ChunkChoice) Get(key string, fallback any) any {
	return tableGet(c, &c.fieldSet, chunkChoiceFields, key, fallback)
}

// Validate checks the delta, the index sign, and the finish reason when
// one has arrived.
func (c ChunkChoice) Validate() error {
	if c.FinishReason != "" && !c.FinishReason.valid() {
		return schemaErrf("finish_reason", "unknown finish reason %q", c.FinishReason)
	}
	if c.Index < 0 {
		return schemaErrf("index", "must be non-negative, got %d", c.Index)
	}
	if err := c.Delta.Validate(); err != nil {
		return err
	}
	if c.Logprobs != nil {
		return c.Logprobs.Validate()
	}
	return nil
}

func (c *ChunkChoice) UnmarshalJSON(data []byte) error {
	type plain ChunkChoice
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = ChunkChoice(v)
	if err := markSupplied(&c.fieldSet, chunkChoiceFields, data); err != nil {
		return err
	}
	if err := checkRequired(&c.fieldSet, chunkChoiceFields); err != nil {
		return err
	}
	return c.Validate()
}

// CompletionChunk is one streamed response fragment. The top-level shape
// is identical to Completion; only the choices differ, carrying deltas
// instead of full messages. Aggregating fragments into a Completion is
// not this package's concern.
type CompletionChunk struct {
	fieldSet

	ID                string          `json:"id"`
	Choices           []ChunkChoice   `json:"choices"`
	Created           int64           `json:"created"`
	Model             string          `json:"model"`
	Object            string          `json:"object"`
	ServiceTier       ServiceTier     `json:"service_tier,omitempty"`
	SystemFingerprint string          `json:"system_fingerprint,omitempty"`
	Usage             json.RawMessage `json:"usage,omitempty"`
}

var completionChunkFields = map[string]field[CompletionChunk]{
	"id": {
		get:      func(c *CompletionChunk) any { return c.ID },
		set:      setAs(func(c *CompletionChunk, v string) { c.ID = v }),
		presumed: true,
	},
	"choices": {
		get:      func(c *CompletionChunk) any { return c.Choices },
		set:      setAs(func(c *CompletionChunk, v []ChunkChoice) { c.Choices = v }),
		presumed: true,
	},
	"created": {
		get:      func(c *CompletionChunk) any { return c.Created },
		set:      setInt(func(c *CompletionChunk, v int64) { c.Created = v }),
		presumed: true,
	},
	"model": {
		get:      func(c *CompletionChunk) any { return c.Model },
		set:      setAs(func(c *CompletionChunk, v string) { c.Model = v }),
		presumed: true,
	},
	"object": {
		get:      func(c *CompletionChunk) any { return c.Object },
		set:      setAs(func(c *CompletionChunk, v string) { c.Object = v }),
		presumed: true,
	},
	"service_tier": {
		get: func(c *CompletionChunk) any { return c.ServiceTier },
		set: setAs(func(c *CompletionChunk, v ServiceTier) { c.ServiceTier = v }),
	},
	"system_fingerprint": {
		get: func(c *CompletionChunk) any { return c.SystemFingerprint },
		set: setAs(func(c *CompletionChunk, v string) { c.SystemFingerprint = v }),
	},
	"usage": {
		get: func(c *CompletionChunk) any { return c.Usage },
		set: setAs(func(c *CompletionChunk, v json.RawMessage) { c.Usage = v }),
	},
}

func (c *CompletionChunk) Field(key string) (any, error) {
	return tableField(c, completionChunkFields, key)
}
func (c *CompletionChunk) SetField(key string, value any) error {
	return tableSetField(c, &c.fieldSet, completionChunkFields, key, value)
}
func (c *CompletionChunk) Contains(key string) bool {
	return tableContains(&c.fieldSet, completionChunkFields, key)
}
func (c *CompletionChunk) Get(key string, fallback any) any {
	return tableGet(c, &c.fieldSet, completionChunkFields, key, fallback)
}

// Validate checks the envelope fields and every choice fragment.
func (c CompletionChunk) Validate() error {
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

func (c *CompletionChunk) UnmarshalJSON(data []byte) error {
	type plain CompletionChunk
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = CompletionChunk(v)
	if err := markSupplied(&c.fieldSet, completionChunkFields, data); err != nil {
		return err
	}
	if err := checkRequired(&c.fieldSet, completionChunkFields); err != nil {
		return err
	}
	return c.Validate()
}
