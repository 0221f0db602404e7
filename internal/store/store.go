// Package store provides durable CRUD over the full item collection. The
// backing resource is the single source of truth: no in-memory cache
// survives between calls, every operation re-reads or rewrites the whole
// record set.
//
// Two backends implement Store: a plain-text file (the default) and an
// embedded sqlite database. Both expose identical observable semantics.
package store

import (
	"context"

	"github.com/meheralimeer/shelfwatch/internal/item"
)

// Store is the storage capability surface consumed by the shell and the
// expiry monitor. Backends are swappable behind it.
type Store interface {
	// NextID returns 1 for an empty store, else max(existing ids) + 1.
	// Not protected against concurrent processes; single-writer assumption.
	NextID(ctx context.Context) (int, error)

	// Save appends one new record.
	Save(ctx context.Context, it item.Item) error

	// LoadAll returns all records in stored order. An absent resource is an
	// empty store, not an error.
	LoadAll(ctx context.Context) ([]item.Item, error)

	// Update replaces the record whose id matches it.ID, keeping all other
	// records unchanged and in original order. When no record matches, the
	// update silently does nothing: it never turns into an insert.
	Update(ctx context.Context, it item.Item) error

	// Delete removes every record with the given id, keeping the remainder
	// in original relative order.
	Delete(ctx context.Context, id int) error
}
