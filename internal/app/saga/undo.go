package saga

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/task-saga-service/internal/domain/item"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/rollback"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// undoer executes rollback operations against the item store for one
// compensation pass. Recreating a deleted item yields a new identity, so the
// undoer remembers old->new refs and resolves every later operation in the
// same pass through that map.
type undoer struct {
	store ports.ItemStore
	remap map[item.Ref]item.Ref
}

func newUndoer(store ports.ItemStore) *undoer {
	return &undoer{store: store, remap: make(map[item.Ref]item.Ref)}
}

func (u *undoer) resolve(ref item.Ref) item.Ref {
	if to, ok := u.remap[ref]; ok {
		return to
	}
	return ref
}

// resolved returns op with its refs rewritten through the remap, so a failed
// operation can be journaled against identities that still exist. The ref of
// a recreate is left stale: it is the key later entries of the unit are
// remapped by.
func (u *undoer) resolved(op rollback.Operation) rollback.Operation {
	if op.Kind != rollback.KindRecreateItem {
		op.Item = u.resolve(op.Item)
	}
	if !op.Other.IsZero() {
		op.Other = u.resolve(op.Other)
	}
	return op
}

// apply runs the inverse action for op. Field snapshots are cloned again so
// the store never sees the log's own maps.
func (u *undoer) apply(ctx context.Context, op rollback.Operation) error {
	switch op.Kind {
	case rollback.KindDeleteItem:
		return u.store.DeleteItem(ctx, u.resolve(op.Item))

	case rollback.KindRecreateItem:
		created, err := u.store.CreateItem(ctx, op.Item.Datastore, op.Fields.Clone())
		if err != nil {
			return err
		}
		if op.Item.ID != "" {
			u.remap[op.Item] = created.Ref
		}
		return nil

	case rollback.KindRestoreFields:
		return u.store.UpdateItem(ctx, u.resolve(op.Item), op.Fields.Clone())

	case rollback.KindLink:
		return u.store.LinkItems(ctx, u.resolve(op.Item), u.resolve(op.Other))

	case rollback.KindUnlink:
		return u.store.UnlinkItems(ctx, u.resolve(op.Item), u.resolve(op.Other))

	default:
		return fmt.Errorf("%w: unknown kind %q", rollback.ErrInvalidOperation, op.Kind)
	}
}
