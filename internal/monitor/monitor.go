// Package monitor implements the expiry sweep: a periodic task that re-reads
// the full item set and flags every item whose expiry date is today or
// earlier. Alerts are handed to a Notifier; presentation is the sink's
// responsibility.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meheralimeer/shelfwatch/internal/item"
	"github.com/meheralimeer/shelfwatch/internal/logging"
	"github.com/meheralimeer/shelfwatch/internal/store"
)

// Kind classifies an alert.
type Kind string

const (
	// KindToday: the item expires on the current calendar date.
	KindToday Kind = "today"
	// KindPast: the expiry date has already gone by.
	KindPast Kind = "past"
)

// Alert is one per-item notification produced by a sweep. Items are
// re-alerted on every sweep until edited or deleted; no acknowledgment
// state is kept.
type Alert struct {
	Item item.Item
	Kind Kind
}

// Message renders the user-facing alert text.
func (a Alert) Message() string {
	if a.Kind == KindToday {
		return fmt.Sprintf("Item %s expires today!", a.Item.Name)
	}
	return fmt.Sprintf("Item %s has expired!", a.Item.Name)
}

// Notifier consumes alerts. Implementations must be safe to call from the
// monitor goroutine.
type Notifier interface {
	Notify(alert Alert)
}

// Monitor owns the sweep schedule. It has two states: idle (waiting for the
// next tick) and scanning (one sweep in progress); a sweep always returns
// the monitor to idle, including on internal error.
type Monitor struct {
	store     store.Store
	notifier  Notifier
	log       logging.Logger
	alertHour int
	every     time.Duration

	mu  sync.Mutex // serializes sweeps (timer tick vs explicit trigger)
	now func() time.Time
}

// New builds a Monitor that anchors its schedule at alertHour local time
// (0-23) and repeats every 'every' from that anchor (24h in normal use).
func New(s store.Store, n Notifier, log logging.Logger, alertHour int, every time.Duration) *Monitor {
	return &Monitor{
		store:     s,
		notifier:  n,
		log:       log,
		alertHour: alertHour,
		every:     every,
		now:       time.Now,
	}
}

// Start runs one sweep immediately, then sweeps at the next alertHour
// boundary and on every period from it, until ctx is cancelled. Sweep
// failures are logged and never stop the schedule. Start blocks; run it on
// its own goroutine.
func (m *Monitor) Start(ctx context.Context) {
	m.sweep(ctx)

	next := m.nextRunAt(m.now())
	m.log.Info(ctx, "expiry check scheduled", "next_run", next)

	first := time.NewTimer(next.Sub(m.now()))
	defer first.Stop()

	select {
	case <-ctx.Done():
		return
	case <-first.C:
		m.sweep(ctx)
	}

	ticker := time.NewTicker(m.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

// TriggerSweep runs one sweep on demand, outside the schedule.
func (m *Monitor) TriggerSweep(ctx context.Context) {
	m.sweep(ctx)
}

// sweep loads the full item set and notifies for every item expiring today
// or earlier. Errors are swallowed here: a failed sweep must not halt
// future sweeps.
func (m *Monitor) sweep(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := m.log.With("sweep_id", uuid.NewString())
	log.Debug(ctx, "sweep started")

	items, err := m.store.LoadAll(ctx)
	if err != nil {
		log.Error(ctx, "sweep failed", "error", err)
		return
	}

	today := item.DateOf(m.now())
	flagged := 0
	for _, it := range items {
		expiry := item.DateOf(it.ExpiryDate)
		if expiry.After(today) {
			continue
		}
		kind := KindPast
		if expiry.Equal(today) {
			kind = KindToday
		}
		m.notifier.Notify(Alert{Item: it, Kind: kind})
		flagged++
	}

	log.Debug(ctx, "sweep finished", "items", len(items), "flagged", flagged)
}

// nextRunAt returns the next alertHour boundary: today's if not yet passed,
// otherwise tomorrow's.
func (m *Monitor) nextRunAt(now time.Time) time.Time {
	y, mo, d := now.Date()
	next := time.Date(y, mo, d, m.alertHour, 0, 0, 0, now.Location())
	if now.After(next) {
		// Normalized by time.Date, so the boundary stays at alertHour
		// across DST transitions where a civil day is not 24h long.
		next = time.Date(y, mo, d+1, m.alertHour, 0, 0, 0, now.Location())
	}
	return next
}
