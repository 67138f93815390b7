package repositories

import "strings"

// SortOrder is the direction of a product listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sortable product columns. Anything else falls back to created_at.
var productSortFields = map[string]string{
	"price":       "price",
	"title":       "title",
	"sold":        "sold",
	"totalRating": "total_rating",
	"createdAt":   "created_at",
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProductQuery is an explicit, typed product listing query: enumerated field
// comparisons, a whitelisted sort key, and bounded pagination. It replaces
// free-form query-object construction.
type ProductQuery struct {
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Order    SortOrder
	Page     int
	Limit    int
}

// SortColumn returns the database column for SortBy, defaulting to created_at.
func (q ProductQuery) SortColumn() string {
	if col, ok := productSortFields[q.SortBy]; ok {
		return col
	}
	return "created_at"
}

// SortDirection returns "ASC" or "DESC", defaulting to descending.
func (q ProductQuery) SortDirection() string {
	if strings.EqualFold(string(q.Order), string(SortAsc)) {
		return "ASC"
	}
	return "DESC"
}

// PageBounds returns the sanitized limit and offset for the query.
func (q ProductQuery) PageBounds() (limit, offset int) {
	limit = q.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
