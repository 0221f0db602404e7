package item

import (
	"slices"
	"strconv"
	"strings"
)

// SortKey selects the column a listing is ordered by. Ordering is always
// ascending.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByExpiry SortKey = "expiry"
)

// Filter returns the items where at least one displayed field contains
// query, case-insensitively. Each field is matched on its own, so a query
// never spans column boundaries. An empty query returns the input unchanged.
func Filter(items []Item, query string) []Item {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if matchesField(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func matchesField(it Item, q string) bool {
	fields := [...]string{
		strconv.Itoa(it.ID),
		it.Name,
		it.CreatedAt.Format(TimeLayout),
		it.UpdatedAt.Format(TimeLayout),
		it.ExpiryDate.Format(DateLayout),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Sort returns a copy of items ordered ascending by the given key. The sort
// is stable, so records equal under the key keep their stored order.
func Sort(items []Item, key SortKey) []Item {
	out := slices.Clone(items)
	switch key {
	case SortByExpiry:
		slices.SortStableFunc(out, func(a, b Item) int {
			return a.ExpiryDate.Compare(b.ExpiryDate)
		})
	default:
		slices.SortStableFunc(out, func(a, b Item) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}
	return out
}
