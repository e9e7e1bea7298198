// Package memstore provides an in-memory implementation of ports.ItemStore.
// It backs the local profile and repository tests. Items and links live only
// for the life of the process.
package memstore

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/task-saga-service/internal/domain"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/item"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// Compile-time check that Store implements ports.ItemStore.
var _ ports.ItemStore = (*Store)(nil)

type record struct {
	fields item.Fields
	seq    uint64
}

// Store is a thread-safe in-memory item store. Field maps are copied on the
// way in and on the way out, so callers never share state with the store.
type Store struct {
	mu    sync.RWMutex
	seq   uint64
	items map[item.Ref]*record
	links map[item.Ref]map[item.Ref]struct{}
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		items: make(map[item.Ref]*record),
		links: make(map[item.Ref]map[item.Ref]struct{}),
	}
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "item-store" }

// HealthCheck always succeeds.
func (s *Store) HealthCheck(_ context.Context) error { return nil }

func (s *Store) CreateItem(ctx context.Context, datastore string, fields item.Fields) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		return item.Item{}, err
	}
	if datastore == "" {
		return item.Item{}, domain.NewValidationError("datastore", domain.MsgRequired)
	}

	ref := item.Ref{Datastore: datastore, ID: uuid.NewString()}
	stored := fields.Clone()
	if stored == nil {
		stored = item.Fields{}
	}

	s.mu.Lock()
	s.seq++
	s.items[ref] = &record{fields: stored, seq: s.seq}
	s.mu.Unlock()

	return item.Item{Ref: ref, Fields: stored.Clone()}, nil
}

func (s *Store) GetItem(ctx context.Context, ref item.Ref) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		return item.Item{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.items[ref]
	if !ok {
		return item.Item{}, notFound(ref)
	}
	return item.Item{Ref: ref, Fields: rec.fields.Clone()}, nil
}

func (s *Store) UpdateItem(ctx context.Context, ref item.Ref, fields item.Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.items[ref]
	if !ok {
		return notFound(ref)
	}
	for k, v := range fields.Clone() {
		rec.fields[k] = v
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, ref item.Ref) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[ref]; !ok {
		return notFound(ref)
	}
	delete(s.items, ref)
	for other := range s.links[ref] {
		delete(s.links[other], ref)
	}
	delete(s.links, ref)
	return nil
}

func (s *Store) LinkItems(ctx context.Context, a, b item.Ref) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a == b {
		return domain.NewValidationError("link", "cannot link an item to itself")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ref := range []item.Ref{a, b} {
		if _, ok := s.items[ref]; !ok {
			return notFound(ref)
		}
	}
	s.addLink(a, b)
	s.addLink(b, a)
	return nil
}

// UnlinkItems removes the link in both directions. Removing a link that does
// not exist is not an error; both items must exist.
func (s *Store) UnlinkItems(ctx context.Context, a, b item.Ref) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ref := range []item.Ref{a, b} {
		if _, ok := s.items[ref]; !ok {
			return notFound(ref)
		}
	}
	delete(s.links[a], b)
	delete(s.links[b], a)
	return nil
}

// LinkedItems returns linked items in the given datastore in creation order.
func (s *Store) LinkedItems(ctx context.Context, ref item.Ref, datastore string) ([]item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.items[ref]; !ok {
		return nil, notFound(ref)
	}

	out := make([]item.Item, 0, len(s.links[ref]))
	for other := range s.links[ref] {
		if other.Datastore != datastore {
			continue
		}
		out = append(out, item.Item{Ref: other, Fields: s.items[other].fields.Clone()})
	}
	slices.SortFunc(out, func(x, y item.Item) int {
		return cmp.Compare(s.items[x.Ref].seq, s.items[y.Ref].seq)
	})
	return out, nil
}

// ListItems returns one page of a datastore. Items are ordered by
// q.SortField when set, then by creation order. PerPage <= 0 returns every
// item.
func (s *Store) ListItems(ctx context.Context, datastore string, q item.Query) (item.Page, error) {
	if err := ctx.Err(); err != nil {
		return item.Page{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	type entry struct {
		ref item.Ref
		rec *record
	}
	var all []entry
	for ref, rec := range s.items {
		if ref.Datastore == datastore {
			all = append(all, entry{ref: ref, rec: rec})
		}
	}

	slices.SortFunc(all, func(x, y entry) int {
		if q.SortField != "" {
			c := compareValues(x.rec.fields[q.SortField], y.rec.fields[q.SortField])
			if q.SortOrder == item.SortDesc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(x.rec.seq, y.rec.seq)
	})

	page := item.Page{TotalCount: len(all)}

	start, end := 0, len(all)
	if q.PerPage > 0 {
		p := max(q.Page, 1)
		start = min((p-1)*q.PerPage, len(all))
		end = min(start+q.PerPage, len(all))
	}

	page.Items = make([]item.Item, 0, end-start)
	for _, e := range all[start:end] {
		page.Items = append(page.Items, item.Item{Ref: e.ref, Fields: e.rec.fields.Clone()})
	}
	return page, nil
}

// Len returns the number of items in a datastore.
func (s *Store) Len(datastore string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for ref := range s.items {
		if ref.Datastore == datastore {
			n++
		}
	}
	return n
}

func (s *Store) addLink(from, to item.Ref) {
	set, ok := s.links[from]
	if !ok {
		set = make(map[item.Ref]struct{})
		s.links[from] = set
	}
	set[to] = struct{}{}
}

func notFound(ref item.Ref) error {
	return fmt.Errorf("item %s: %w", ref, domain.ErrNotFound)
}

// compareValues orders numbers numerically and everything else by its
// string form. Missing values sort first.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return cmp.Compare(af, bf)
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
