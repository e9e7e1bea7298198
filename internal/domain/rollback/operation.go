// Package rollback defines the compensating operations recorded while a unit
// of work mutates the remote item store. Operations are plain data: each one
// carries exactly the references and field snapshot needed to invert one
// committed remote effect. Executing them is the saga coordinator's job.
package rollback

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/item"
)

// ErrInvalidOperation is returned by Validate for malformed operations.
var ErrInvalidOperation = errors.New("invalid rollback operation")

// Kind discriminates the closed set of rollback operations.
type Kind string

const (
	// KindDeleteItem undoes a create by deleting the created item.
	KindDeleteItem Kind = "delete_item"
	// KindRecreateItem undoes a delete by creating a new item from a snapshot.
	KindRecreateItem Kind = "recreate_item"
	// KindRestoreFields undoes an update by writing back the prior fields.
	KindRestoreFields Kind = "restore_fields"
	// KindLink undoes an unlink by linking the two items again.
	KindLink Kind = "link"
	// KindUnlink undoes a link by removing it.
	KindUnlink Kind = "unlink"
)

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindDeleteItem, KindRecreateItem, KindRestoreFields, KindLink, KindUnlink:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// Operation is one compensating action. Which fields are meaningful depends
// on Kind:
//
//	delete_item     Item
//	recreate_item   Item (stale ref; Item.Datastore is where to recreate), Fields
//	restore_fields  Item, Fields
//	link, unlink    Item, Other
type Operation struct {
	Kind   Kind        `json:"kind"`
	Item   item.Ref    `json:"item"`
	Other  item.Ref    `json:"other,omitzero"`
	Fields item.Fields `json:"fields,omitempty"`
}

// DeleteItem returns the operation that undoes creating ref.
func DeleteItem(ref item.Ref) Operation {
	return Operation{Kind: KindDeleteItem, Item: ref}
}

// RecreateItem returns the operation that undoes deleting ref. The snapshot
// must be taken before the delete call; it is deep-copied here so later
// changes to the caller's map do not leak into the log.
func RecreateItem(ref item.Ref, snapshot item.Fields) Operation {
	return Operation{Kind: KindRecreateItem, Item: ref, Fields: snapshot.Clone()}
}

// RestoreFields returns the operation that undoes updating ref. original is
// deep-copied.
func RestoreFields(ref item.Ref, original item.Fields) Operation {
	return Operation{Kind: KindRestoreFields, Item: ref, Fields: original.Clone()}
}

// Link returns the operation that undoes unlinking a and b.
func Link(a, b item.Ref) Operation {
	return Operation{Kind: KindLink, Item: a, Other: b}
}

// Unlink returns the operation that undoes linking a and b.
func Unlink(a, b item.Ref) Operation {
	return Operation{Kind: KindUnlink, Item: a, Other: b}
}

// Validate checks that the operation carries what its kind needs.
func (o Operation) Validate() error {
	if !o.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidOperation, o.Kind)
	}

	switch o.Kind {
	case KindRecreateItem:
		if o.Item.Datastore == "" {
			return fmt.Errorf("%w: %s requires a datastore", ErrInvalidOperation, o.Kind)
		}
		if o.Fields == nil {
			return fmt.Errorf("%w: %s requires a field snapshot", ErrInvalidOperation, o.Kind)
		}
	case KindRestoreFields:
		if o.Item.ID == "" {
			return fmt.Errorf("%w: %s requires an item reference", ErrInvalidOperation, o.Kind)
		}
		if o.Fields == nil {
			return fmt.Errorf("%w: %s requires a field snapshot", ErrInvalidOperation, o.Kind)
		}
	case KindLink, KindUnlink:
		if o.Item.ID == "" || o.Other.ID == "" {
			return fmt.Errorf("%w: %s requires two item references", ErrInvalidOperation, o.Kind)
		}
	default:
		if o.Item.ID == "" {
			return fmt.Errorf("%w: %s requires an item reference", ErrInvalidOperation, o.Kind)
		}
	}
	return nil
}

// Description renders the operation for logs, e.g.
// "unlink tasks/1 <-> details/7".
func (o Operation) Description() string {
	switch o.Kind {
	case KindLink, KindUnlink:
		return fmt.Sprintf("%s %s <-> %s", o.Kind, o.Item, o.Other)
	case KindRecreateItem:
		return fmt.Sprintf("%s %s (%d fields)", o.Kind, o.Item, len(o.Fields))
	default:
		return fmt.Sprintf("%s %s", o.Kind, o.Item)
	}
}
