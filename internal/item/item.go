// Package item defines the inventory record, its on-disk text representation
// and the list helpers (filtering, sorting) the shell uses for display.
package item

import (
	"fmt"
	"strings"
	"time"

	"github.com/meheralimeer/shelfwatch/internal/common"
)

// Item is one inventory record.
//
// ID is assigned once by the store and never changes. CreatedAt is set at
// creation; UpdatedAt is refreshed on every mutation and is never earlier
// than CreatedAt. ExpiryDate carries only a calendar date.
type Item struct {
	ID         int
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ExpiryDate time.Time
}

// New constructs a fully-populated Item, failing fast when any field is
// missing or inconsistent. No partially-built Item is ever produced.
func New(id int, name string, createdAt, updatedAt, expiryDate time.Time) (Item, error) {
	var zero Item

	if id <= 0 {
		return zero, fmt.Errorf("%w: id must be positive, got %d", common.ErrInvalidItem, id)
	}
	if strings.TrimSpace(name) == "" {
		return zero, fmt.Errorf("%w: name is required", common.ErrInvalidItem)
	}
	if createdAt.IsZero() {
		return zero, fmt.Errorf("%w: creation timestamp is required", common.ErrInvalidItem)
	}
	if updatedAt.IsZero() {
		return zero, fmt.Errorf("%w: update timestamp is required", common.ErrInvalidItem)
	}
	if updatedAt.Before(createdAt) {
		return zero, fmt.Errorf("%w: updated at %s precedes created at %s",
			common.ErrInvalidItem, updatedAt.Format(TimeLayout), createdAt.Format(TimeLayout))
	}
	if expiryDate.IsZero() {
		return zero, fmt.Errorf("%w: expiry date is required", common.ErrInvalidItem)
	}

	return Item{
		ID:         id,
		Name:       name,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		ExpiryDate: expiryDate,
	}, nil
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
