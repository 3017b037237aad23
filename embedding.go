package chatwire

import "encoding/json"

// ObjectEmbedding is the object literal carried by embedding results.
const ObjectEmbedding = "embedding"

// Embedding is one vector-embedding result. The vector length is fixed by
// the producing model and not validated here.
type Embedding struct {
	fieldSet

	Embedding []float64 `json:"embedding"`
	Index     int64     `json:"index"`
	Object    string    `json:"object"`
}

var embeddingFields = map[string]field[Embedding]{
	"embedding": {
		get:      func(e *Embedding) any { return e.Embedding },
		set:      setAs(func(e *Embedding, v []float64) { e.Embedding = v }),
		presumed: true,
	},
	"index": {
		get:      func(e *Embedding) any { return e.Index },
		set:      setInt(func(e *Embedding, v int64) { e.Index = v }),
		presumed: true,
	},
	"object": {
		get:      func(e *Embedding) any { return e.Object },
		set:      setAs(func(e *Embedding, v string) { e.Object = v }),
		presumed: true,
	},
}

func (e *Embedding) Field(key string) (any, error) { return tableField(e, embeddingFields, key) }
func (e *Embedding) SetField(key string, value any) error {
	return tableSetField(e, &e.fieldSet, embeddingFields, key, value)
}
func (e *Embedding) Contains(key string) bool {
	return tableContains(&e.fieldSet, embeddingFields, key)
}
func (e *Embedding) Get(key string, fallback any) any {
	return tableGet(e, &e.fieldSet, embeddingFields, key, fallback)
}

// Validate checks the object literal, the index sign, and that every
// vector component is finite.
func (e Embedding) Validate() error {
	if e.Object != ObjectEmbedding {
		return schemaErrf("object", "must be %q, got %q", ObjectEmbedding, e.Object)
	}
	if e.Index < 0 {
		return schemaErrf("index", "must be non-negative, got %d", e.Index)
	}
	for _, v := range e.Embedding {
		if err := checkFinite("embedding", v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Embedding) UnmarshalJSON(data []byte) error {
	type plain Embedding
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = Embedding(v)
	if err := markSupplied(&e.fieldSet, embeddingFields, data); err != nil {
		return err
	}
	if err := checkRequired(&e.fieldSet, embeddingFields); err != nil {
		return err
	}
	return e.Validate()
}
