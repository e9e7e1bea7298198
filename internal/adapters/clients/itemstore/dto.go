package itemstore

import "github.com/jsamuelsen11/task-saga-service/internal/domain/item"

// itemDTO is one item as the store serializes it.
type itemDTO struct {
	ItemID      string         `json:"i_id"`
	DatastoreID string         `json:"d_id"`
	Fields      map[string]any `json:"fields"`
}

// itemRequest wraps field values for create and update calls.
type itemRequest struct {
	Item map[string]any `json:"item"`
}

type linkRequest struct {
	DatastoreID string `json:"d_id"`
	ItemID      string `json:"i_id"`
}

type searchRequest struct {
	Page         int    `json:"page"`
	PerPage      int    `json:"per_page"`
	SortFieldID  string `json:"sort_field_id,omitempty"`
	SortOrder    string `json:"sort_order,omitempty"`
	IncludeLinks bool   `json:"include_links"`
}

type itemListResponse struct {
	Items      []itemDTO `json:"items"`
	TotalItems int       `json:"totalItems"`
}

// toItem falls back to the requested datastore when the store omits d_id.
func toItem(d itemDTO, datastore string) item.Item {
	ds := d.DatastoreID
	if ds == "" {
		ds = datastore
	}
	fields := item.Fields(d.Fields)
	if fields == nil {
		fields = item.Fields{}
	}
	return item.Item{Ref: item.Ref{Datastore: ds, ID: d.ItemID}, Fields: fields}
}

func toItems(ds []itemDTO, datastore string) []item.Item {
	out := make([]item.Item, 0, len(ds))
	for _, d := range ds {
		out = append(out, toItem(d, datastore))
	}
	return out
}
