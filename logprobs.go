package chatwire

import (
	"encoding/json"
	"math"
)

// TopLogprob is one of the most likely tokens at a position, with its log
// probability. Bytes, when present, holds the UTF-8 byte values of the
// token.
type TopLogprob struct {
	fieldSet

	Token   string  `json:"token"`
	Bytes   []int   `json:"bytes,omitempty"`
	Logprob float64 `json:"logprob"`
}

var topLogprobFields = map[string]field[TopLogprob]{
	"token": {
		get:      func(l *TopLogprob) any { return l.Token },
		set:      setAs(func(l *TopLogprob, v string) { l.Token = v }),
		presumed: true,
	},
	"bytes": {
		get: func(l *TopLogprob) any { return l.Bytes },
		set: setAs(func(l *TopLogprob, v []int) { l.Bytes = v }),
	},
	"logprob": {
		get:      func(l *TopLogprob) any { return l.Logprob },
		set:      setAs(func(l *TopLogprob, v float64) { l.Logprob = v }),
		presumed: true,
	},
}

func (l *TopLogprob) Field(key string) (any, error) { return tableField(l, topLogprobFields, key) }
func (l *TopLogprob) SetField(key string, value any) error {
	return tableSetField(l, &l.fieldSet, topLogprobFields, key, value)
}
func (l *TopLogprob) Contains(key string) bool {
	return tableContains(&l.fieldSet, topLogprobFields, key)
}
func (l *TopLogprob) Get(key string, fallback any) any {
	return tableGet(l, &l.fieldSet, topLogprobFields, key, fallback)
}

// Validate checks that the log probability is a finite real number. Very
// negative is fine; NaN and infinities are not.
func (l TopLogprob) Validate() error {
	return checkFinite("logprob", l.Logprob)
}

func (l *TopLogprob) UnmarshalJSON(data []byte) error {
	type plain TopLogprob
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = TopLogprob(v)
	if err := markSupplied(&l.fieldSet, topLogprobFields, data); err != nil {
		return err
	}
	if err := checkRequired(&l.fieldSet, topLogprobFields); err != nil {
		return err
	}
	return l.Validate()
}

// TokenLogprob is the log probability information for one generated
// token, including the alternatives the model considered.
type TokenLogprob struct {
	fieldSet

	Token       string       `json:"token"`
	Bytes       []int        `json:"bytes,omitempty"`
	Logprob     float64      `json:"logprob"`
	TopLogprobs []TopLogprob `json:"top_logprobs"`
}

var tokenLogprobFields = map[string]field[TokenLogprob]{
	"token": {
		get:      func(l *TokenLogprob) any { return l.Token },
		set:      setAs(func(l *TokenLogprob, v string) { l.Token = v }),
		presumed: true,
	},
	"bytes": {
		get: func(l *TokenLogprob) any { return l.Bytes },
		set: setAs(func(l *TokenLogprob, v []int) { l.Bytes = v }),
	},
	"logprob": {
		get:      func(l *TokenLogprob) any { return l.Logprob },
		set:      setAs(func(l *TokenLogprob, v float64) { l.Logprob = v }),
		presumed: true,
	},
	"top_logprobs": {
		get:      func(l *TokenLogprob) any { return l.TopLogprobs },
		set:      setAs(func(l *TokenLogprob, v []TopLogprob) { l.TopLogprobs = v }),
		presumed: true,
	},
}

func (l *TokenLogprob) Field(key string) (any, error) { return tableField(l, tokenLogprobFields, key) }
func (l *TokenLogprob) SetField(key string, value any) error {
	return tableSetField(l, &l.fieldSet, tokenLogprobFields, key, value)
}
func (l *TokenLogprob) Contains(key string) bool {
	return tableContains(&l.fieldSet, tokenLogprobFields, key)
}
func (l *TokenLogprob) Get(key string, fallback any) any {
	return tableGet(l, &l.fieldSet, tokenLogprobFields, key, fallback)
}

// Validate checks the token's own log probability and every alternative.
func (l TokenLogprob) Validate() error {
	if err := checkFinite("logprob", l.Logprob); err != nil {
		return err
	}
	for _, top := range l.TopLogprobs {
		if err := top.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (l *TokenLogprob) UnmarshalJSON(data []byte) error {
	type plain TokenLogprob
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = TokenLogprob(v)
	if err := markSupplied(&l.fieldSet, tokenLogprobFields, data); err != nil {
		return err
	}
	if err := checkRequired(&l.fieldSet, tokenLogprobFields); err != nil {
		return err
	}
	return l.Validate()
}

// ChoiceLogprobs is the log probability information for one choice. In
// practice only one of Content and Refusal is populated; this is not
// structurally enforced.
type ChoiceLogprobs struct {
	fieldSet

	Content []TokenLogprob `json:"content,omitempty"`
	Refusal []TokenLogprob `json:"refusal,omitempty"`
}

var choiceLogprobsFields = map[string]field[ChoiceLogprobs]{
	"content": {
		get: func(l *ChoiceLogprobs) any { return l.Content },
		set: setAs(func(l *ChoiceLogprobs, v []TokenLogprob) { l.Content = v }),
	},
	"refusal": {
		get: func(l *ChoiceLogprobs) any { return l.Refusal },
		set: setAs(func(l *ChoiceLogprobs, v []TokenLogprob) { l.Refusal = v }),
	},
}

func (l *ChoiceLogprobs) Field(key string) (any, error) {
	return tableField(l, choiceLogprobsFields, key)
}
func (l *ChoiceLogprobs) SetField(key string, value any) error {
	return tableSetField(l, &l.fieldSet, choiceLogprobsFields, key, value)
}
func (l *ChoiceLogprobs) Contains(key string) bool {
	return tableContains(&l.fieldSet, choiceLogprobsFields, key)
}
func (l *ChoiceLogprobs) Get(key string, fallback any) any {
	return tableGet(l, &l.fieldSet, choiceLogprobsFields, key, fallback)
}

// Validate checks every token entry in both sequences.
func (l ChoiceLogprobs) Validate() error {
	for _, t := range l.Content {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for _, t := range l.Refusal {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (l *ChoiceLogprobs) UnmarshalJSON(data []byte) error {
	type plain ChoiceLogprobs
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = ChoiceLogprobs(v)
	if err := markSupplied(&l.fieldSet, choiceLogprobsFields, data); err != nil {
		return err
	}
	return l.Validate()
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return schemaErrf(name, "must be finite, got %v", v)
	}
	return nil
}
