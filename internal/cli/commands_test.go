package cli

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meheralimeer/shelfwatch/internal/config"
	"github.com/meheralimeer/shelfwatch/internal/item"
	"github.com/meheralimeer/shelfwatch/internal/logging"
	"github.com/meheralimeer/shelfwatch/internal/monitor"
	"github.com/meheralimeer/shelfwatch/internal/store"
)

// newTestApp builds an App over a file store in a temp dir, with scripted
// stdin and captured output.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataFile = filepath.Join(t.TempDir(), "items.txt")

	st := store.NewFileStore(cfg.DataFile)
	out := &bytes.Buffer{}
	log := logging.NewSlogLogger(slog.Default())

	return &App{
		config: cfg,
		store:  st,
		mon:    monitor.New(st, newTerminalNotifier(out, false), log, cfg.AlertHour, cfg.SweepEvery),
		log:    log,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}, out
}

func seedApp(t *testing.T, a *App, id int, name, expiry string) item.Item {
	t.Helper()
	exp, err := time.ParseInLocation(item.DateLayout, expiry, time.Local)
	require.NoError(t, err)
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	it, err := item.New(id, name, created, created, exp)
	require.NoError(t, err)
	require.NoError(t, a.store.Save(context.Background(), it))
	return it
}

func TestApp_Add(t *testing.T) {
	a, out := newTestApp(t, "Milk\n2030-06-10\n")
	ctx := context.Background()

	require.NoError(t, a.Add(ctx))

	items, err := a.store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, items[0].CreatedAt, items[0].UpdatedAt)
	assert.Contains(t, out.String(), "Added item 1")
}

func TestApp_Add_InvalidDate(t *testing.T) {
	a, out := newTestApp(t, "Milk\nsoon\n")

	require.Error(t, a.Add(context.Background()))
	assert.Contains(t, out.String(), "Error:")

	items, err := a.store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestApp_Edit_PreservesIDAndCreatedAt(t *testing.T) {
	a, _ := newTestApp(t, "1\nRenamed\n\n")
	seeded := seedApp(t, a, 1, "Milk", "2030-06-10")
	ctx := context.Background()

	require.NoError(t, a.Edit(ctx))

	items, err := a.store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	got := items[0]

	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, seeded.CreatedAt, got.CreatedAt)
	assert.Equal(t, seeded.ExpiryDate, got.ExpiryDate, "empty expiry input keeps the old date")
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestApp_Edit_UnknownID(t *testing.T) {
	a, out := newTestApp(t, "99\n")
	seedApp(t, a, 1, "Milk", "2030-06-10")

	require.Error(t, a.Edit(context.Background()))
	assert.Contains(t, out.String(), "not found")
}

func TestApp_Delete(t *testing.T) {
	a, _ := newTestApp(t, "5\n")
	seedApp(t, a, 1, "Milk", "2030-06-10")
	seedApp(t, a, 5, "Bread", "2030-06-10")
	ctx := context.Background()

	require.NoError(t, a.Delete(ctx))

	items, err := a.store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
}

func TestApp_Search(t *testing.T) {
	a, out := newTestApp(t, "")
	seedApp(t, a, 1, "Milk", "2030-06-10")
	seedApp(t, a, 2, "Bread", "2030-06-11")

	require.NoError(t, a.Search(context.Background(), "milk"))

	assert.Contains(t, out.String(), "Milk")
	assert.NotContains(t, out.String(), "Bread")
}

func TestApp_SortList_UnknownColumn(t *testing.T) {
	a, out := newTestApp(t, "")

	require.Error(t, a.SortList(context.Background(), "id"))
	assert.Contains(t, out.String(), "unknown sort column")
}

func TestApp_Check_DeliversAlerts(t *testing.T) {
	a, out := newTestApp(t, "")
	seedApp(t, a, 1, "Milk", "2000-01-01")

	require.NoError(t, a.Check(context.Background()))

	assert.Contains(t, out.String(), "EXPIRY ALERT: Item Milk has expired!")
}

func TestApp_List_Empty(t *testing.T) {
	a, out := newTestApp(t, "")

	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "(no items)")
}
