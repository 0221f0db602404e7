package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meheralimeer/shelfwatch/internal/common"
	"github.com/meheralimeer/shelfwatch/internal/item"
)

// Add collects a name and expiry date, assigns the next id and appends the
// new record. Both timestamps are set to now.
func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter item name", a.out)
	if err != nil {
		a.printError(err)
		return err
	}

	expiry, err := a.promptDate("Enter expiry date ("+item.DateLayout+")", false)
	if err != nil {
		a.printError(err)
		return err
	}

	id, err := a.store.NextID(ctx)
	if err != nil {
		a.printError(err)
		return err
	}

	now := time.Now()
	it, err := item.New(id, name, now, now, expiry)
	if err != nil {
		a.printError(err)
		return err
	}

	if err := a.store.Save(ctx, it); err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintf(a.out, "Added item %d\n", it.ID)
	return nil
}

// List shows all items in stored order.
func (a *App) List(ctx context.Context) error {
	items, err := a.store.LoadAll(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	renderTable(a.out, items)
	return nil
}

// Search shows the items whose displayed fields contain query,
// case-insensitively.
func (a *App) Search(ctx context.Context, query string) error {
	items, err := a.store.LoadAll(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	renderTable(a.out, item.Filter(items, query))
	return nil
}

// SortList shows all items ordered ascending by name or expiry date.
func (a *App) SortList(ctx context.Context, key string) error {
	var sortKey item.SortKey
	switch key {
	case "name":
		sortKey = item.SortByName
	case "expiry":
		sortKey = item.SortByExpiry
	default:
		err := fmt.Errorf("unknown sort column %q (use name or expiry)", key)
		a.printError(err)
		return err
	}

	items, err := a.store.LoadAll(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	renderTable(a.out, item.Sort(items, sortKey))
	return nil
}

// Edit replaces an item's name and/or expiry date. The id and creation
// timestamp are preserved; the update timestamp is refreshed.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptID("Enter item id to edit")
	if err != nil {
		a.printError(err)
		return err
	}

	items, err := a.store.LoadAll(ctx)
	if err != nil {
		a.printError(err)
		return err
	}

	existing, ok := findByID(items, id)
	if !ok {
		err := fmt.Errorf("item %d: %w", id, common.ErrorNotFound)
		a.printError(err)
		return err
	}

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Enter new name (empty keeps %q)", existing.Name), a.out)
	if err != nil {
		a.printError(err)
		return err
	}
	if name == "" {
		name = existing.Name
	}

	expiry := existing.ExpiryDate
	newExpiry, err := a.promptDate(
		fmt.Sprintf("Enter new expiry date (empty keeps %s)", existing.ExpiryDate.Format(item.DateLayout)), true)
	if err != nil {
		a.printError(err)
		return err
	}
	if !newExpiry.IsZero() {
		expiry = newExpiry
	}

	updated, err := item.New(id, name, existing.CreatedAt, time.Now(), expiry)
	if err != nil {
		a.printError(err)
		return err
	}

	if err := a.store.Update(ctx, updated); err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintf(a.out, "Updated item %d\n", id)
	return nil
}

// Delete removes an item by id.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptID("Enter item id to delete")
	if err != nil {
		a.printError(err)
		return err
	}

	if err := a.store.Delete(ctx, id); err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintf(a.out, "Deleted item %d\n", id)
	return nil
}

// Check runs one expiry sweep on demand.
func (a *App) Check(ctx context.Context) error {
	a.mon.TriggerSweep(ctx)
	return nil
}

func (a *App) promptID(prompt string) (int, error) {
	text, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", text)
	}
	return id, nil
}

// promptDate reads a calendar date. With allowEmpty, an empty input returns
// the zero time so the caller can keep a previous value.
func (a *App) promptDate(prompt string, allowEmpty bool) (time.Time, error) {
	text, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return time.Time{}, err
	}
	if text == "" && allowEmpty {
		return time.Time{}, nil
	}
	d, err := time.ParseInLocation(item.DateLayout, text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected %s)", text, item.DateLayout)
	}
	return d, nil
}

func findByID(items []item.Item, id int) (item.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return item.Item{}, false
}
