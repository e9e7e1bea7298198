// Package item models records held by the remote item store: references,
// free-form field maps, and list queries. Values of these types are plain
// data and safe to copy; use Clone to detach a field map from its source.
package item

import (
	"encoding/json"
	"maps"
	"slices"
)

// Ref identifies one item inside a datastore. The ID is opaque and assigned
// by the store on creation.
type Ref struct {
	Datastore string `json:"datastore_id"`
	ID        string `json:"item_id"`
}

// IsZero reports whether r has no datastore and no id.
func (r Ref) IsZero() bool {
	return r.Datastore == "" && r.ID == ""
}

// String renders the ref as "datastore/id".
func (r Ref) String() string {
	return r.Datastore + "/" + r.ID
}

// Fields holds an item's field values keyed by field id.
type Fields map[string]any

// Clone returns a deep copy of f. Nested maps and slices are copied
// recursively so the result shares no mutable state with f. A nil map
// clones to nil.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

// String returns the field value as a string, or "" when absent or not a string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// StringPtr returns a pointer to a copy of the string field, or nil when the
// field is absent, null, or not a string.
func (f Fields) StringPtr(key string) *string {
	s, ok := f[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// Int64 returns the field value as an int64. Decoded JSON yields json.Number
// or float64 for numbers, so all numeric kinds are accepted.
func (f Fields) Int64(key string) int64 {
	switch v := f[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		fl, _ := v.Float64()
		return int64(fl)
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Fields:
		return t.Clone()
	case map[string]any:
		return map[string]any(Fields(t).Clone())
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return slices.Clone(t)
	case map[string]string:
		return maps.Clone(t)
	case *string:
		if t == nil {
			return t
		}
		s := *t
		return &s
	case json.Number:
		return t
	default:
		return v
	}
}

// Item is a snapshot of one record: its reference and field values.
type Item struct {
	Ref    Ref
	Fields Fields
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	return Item{Ref: i.Ref, Fields: i.Fields.Clone()}
}
