package item_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/item"
)

func TestFields_CloneIsDeep(t *testing.T) {
	t.Parallel()

	notes := "fragile"
	orig := item.Fields{
		"task_title": "A",
		"user_id":    int64(7),
		"tags":       []any{"x", map[string]any{"k": "v"}},
		"meta":       map[string]any{"nested": []string{"a", "b"}},
		"notes":      &notes,
	}

	clone := orig.Clone()

	orig["task_title"] = "B"
	orig["tags"].([]any)[0] = "mutated"
	orig["tags"].([]any)[1].(map[string]any)["k"] = "mutated"
	orig["meta"].(map[string]any)["nested"].([]string)[0] = "mutated"
	notes = "changed"

	if got := clone.String("task_title"); got != "A" {
		t.Errorf("task_title = %q, want %q", got, "A")
	}
	tags := clone["tags"].([]any)
	if tags[0] != "x" {
		t.Errorf("tags[0] = %v, want x", tags[0])
	}
	if tags[1].(map[string]any)["k"] != "v" {
		t.Errorf("tags[1].k = %v, want v", tags[1].(map[string]any)["k"])
	}
	if got := clone["meta"].(map[string]any)["nested"].([]string)[0]; got != "a" {
		t.Errorf("meta.nested[0] = %q, want a", got)
	}
	if got := *clone["notes"].(*string); got != "fragile" {
		t.Errorf("notes = %q, want fragile", got)
	}
}

func TestFields_CloneNil(t *testing.T) {
	t.Parallel()

	var f item.Fields
	if f.Clone() != nil {
		t.Error("Clone() of nil Fields should be nil")
	}
}

func TestFields_Int64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		val  any
		want int64
	}{
		{name: "int", val: 3, want: 3},
		{name: "int64", val: int64(4), want: 4},
		{name: "float64 from JSON", val: float64(5), want: 5},
		{name: "json.Number above 2^53", val: json.Number("1792345678901234567"), want: 1792345678901234567},
		{name: "json.Number with fraction", val: json.Number("2.5"), want: 2},
		{name: "string", val: "6", want: 0},
		{name: "missing", val: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := item.Fields{}
			if tt.val != nil {
				f["n"] = tt.val
			}
			if got := f.Int64("n"); got != tt.want {
				t.Errorf("Int64() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFields_StringPtr(t *testing.T) {
	t.Parallel()

	f := item.Fields{"notes": "n", "empty": nil}
	if p := f.StringPtr("notes"); p == nil || *p != "n" {
		t.Errorf("StringPtr(notes) = %v, want pointer to n", p)
	}
	if p := f.StringPtr("empty"); p != nil {
		t.Errorf("StringPtr(empty) = %v, want nil", p)
	}
}

func TestRef_String(t *testing.T) {
	t.Parallel()

	r := item.Ref{Datastore: "tasks", ID: "42"}
	if r.String() != "tasks/42" {
		t.Errorf("String() = %q, want tasks/42", r.String())
	}
	if r.IsZero() {
		t.Error("IsZero() = true, want false")
	}
	if !(item.Ref{}).IsZero() {
		t.Error("zero Ref IsZero() = false, want true")
	}
}
