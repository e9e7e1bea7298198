package ports

import (
	"context"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/item"
)

// ItemStore defines the client port for the remote item store: a backend that
// holds items in datastores and supports only single-item operations plus
// bidirectional links between two items. There is no multi-item atomicity.
//
// Implementations return field maps by value: callers may mutate what they
// receive without affecting the store, and the store must not retain maps
// passed in.
type ItemStore interface {
	// CreateItem creates an item in the given datastore and returns it with
	// its store-assigned reference.
	CreateItem(ctx context.Context, datastore string, fields item.Fields) (item.Item, error)

	// GetItem returns the current fields of an item.
	// Returns domain.ErrNotFound if the item does not exist.
	GetItem(ctx context.Context, ref item.Ref) (item.Item, error)

	// UpdateItem sets the given fields on an item and persists them. Fields
	// not present in the map are left untouched.
	// Returns domain.ErrNotFound if the item does not exist.
	UpdateItem(ctx context.Context, ref item.Ref, fields item.Fields) error

	// DeleteItem deletes an item and drops all of its links.
	// Returns domain.ErrNotFound if the item does not exist.
	DeleteItem(ctx context.Context, ref item.Ref) error

	// LinkItems creates a bidirectional link between a and b.
	LinkItems(ctx context.Context, a, b item.Ref) error

	// UnlinkItems removes the link between a and b.
	UnlinkItems(ctx context.Context, a, b item.Ref) error

	// LinkedItems returns the items in the given datastore linked to ref.
	LinkedItems(ctx context.Context, ref item.Ref, datastore string) ([]item.Item, error)

	// ListItems returns one page of items from a datastore.
	ListItems(ctx context.Context, datastore string, q item.Query) (item.Page, error)
}
