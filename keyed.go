package chatwire

import (
	"encoding/json"
	"fmt"
)

// KeyedAccess is implemented by every response-side type. It provides
// mapping-style access over the type's declared fields, keyed by the
// field's wire name, so code written against plain maps keeps working.
//
// A key counts as present when it was explicitly supplied (by the decoder
// or through SetField), or when it names a required field. Optional fields
// that were never supplied are absent: Contains reports false and Get
// returns the fallback.
type KeyedAccess interface {
	// Field returns the value of the named field. It fails with
	// ErrUnknownField for keys the type does not declare.
	Field(key string) (any, error)

	// SetField assigns the named field. Undeclared keys are rejected with
	// ErrUnknownField; values of the wrong type with ErrFieldValue.
	SetField(key string, value any) error

	// Contains reports whether the key denotes a present field.
	Contains(key string) bool

	// Get returns the field's value if present, else fallback. It never
	// fails, even for undeclared keys.
	Get(key string, fallback any) any
}

// field describes one declared field of a keyed type: how to read it, how
// to write it, and whether it counts as present when never explicitly
// supplied (true for required fields, false for optional ones).
type field[T any] struct {
	get      func(*T) any
	set      func(*T, any) error
	presumed bool
}

// fieldSet records which wire keys were explicitly supplied, either by the
// JSON decoder or through SetField. The zero value is ready to use.
// Embedded in every keyed type; contributes nothing to its JSON form.
type fieldSet struct {
	supplied map[string]struct{}
}

func (s *fieldSet) mark(key string) {
	if s.supplied == nil {
		s.supplied = make(map[string]struct{})
	}
	s.supplied[key] = struct{}{}
}

func (s *fieldSet) marked(key string) bool {
	_, ok := s.supplied[key]
	return ok
}

func tableField[T any](m *T, table map[string]field[T], key string) (any, error) {
	f, ok := table[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return f.get(m), nil
}

func tableSetField[T any](m *T, set *fieldSet, table map[string]field[T], key string, value any) error {
	f, ok := table[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if err := f.set(m, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	set.mark(key)
	return nil
}

func tableContains[T any](set *fieldSet, table map[string]field[T], key string) bool {
	if set.marked(key) {
		return true
	}
	f, ok := table[key]
	return ok && f.presumed
}

func tableGet[T any](m *T, set *fieldSet, table map[string]field[T], key string, fallback any) any {
	if !tableContains(set, table, key) {
		return fallback
	}
	return table[key].get(m)
}

// setAs adapts a typed assignment into a field setter, rejecting values of
// the wrong dynamic type.
func setAs[T, V any](assign func(*T, V)) func(*T, any) error {
	return func(m *T, value any) error {
		v, ok := value.(V)
		if !ok {
			return fmt.Errorf("%w: %T", ErrFieldValue, value)
		}
		assign(m, v)
		return nil
	}
}

// setInt is setAs for integer fields, additionally accepting the numeric
// types JSON decoding and untyped constants commonly produce.
func setInt[T any](assign func(*T, int64)) func(*T, any) error {
	return func(m *T, value any) error {
		switch v := value.(type) {
		case int:
			assign(m, int64(v))
		case int64:
			assign(m, v)
		case float64:
			assign(m, int64(v))
		default:
			return fmt.Errorf("%w: %T", ErrFieldValue, value)
		}
		return nil
	}
}

// markSupplied marks every key of the raw JSON object that the table
// declares. Unknown keys are ignored on read, not rejected.
func markSupplied[T any](set *fieldSet, table map[string]field[T], data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if _, ok := table[key]; ok {
			set.mark(key)
		}
	}
	return nil
}

// checkRequired fails when a required key was not supplied at all.
func checkRequired[T any](set *fieldSet, table map[string]field[T]) error {
	for key, f := range table {
		if f.presumed && !set.marked(key) {
			return schemaErr(key, "required field missing")
		}
	}
	return nil
}

// Every response-side type implements KeyedAccess, and so does the
// request-side Message, which legacy code treats as a plain mapping.
var (
	_ KeyedAccess = (*Message)(nil)
	_ KeyedAccess = (*TopLogprob)(nil)
	_ KeyedAccess = (*TokenLogprob)(nil)
	_ KeyedAccess = (*ChoiceLogprobs)(nil)
	_ KeyedAccess = (*CompletionFunction)(nil)
	_ KeyedAccess = (*CompletionToolCall)(nil)
	_ KeyedAccess = (*CompletionMessage)(nil)
	_ KeyedAccess = (*CompletionChoice)(nil)
	_ KeyedAccess = (*Completion)(nil)
	_ KeyedAccess = (*DeltaMessage)(nil)
	_ KeyedAccess = (*ChunkChoice)(nil)
	_ KeyedAccess = (*CompletionChunk)(nil)
	_ KeyedAccess = (*Embedding)(nil)
)
