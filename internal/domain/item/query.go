package item

// SortOrder is the direction of a list query.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Query selects one page of items from a datastore. Page is 1-indexed.
type Query struct {
	Page      int
	PerPage   int
	SortField string
	SortOrder SortOrder
}

// Page is one page of a list query.
type Page struct {
	Items      []Item
	TotalCount int
}
