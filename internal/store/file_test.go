package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meheralimeer/shelfwatch/internal/common"
	"github.com/meheralimeer/shelfwatch/internal/item"
)

func newFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.txt")
	return NewFileStore(path), path
}

func makeItem(t *testing.T, id int, name string, expiry string) item.Item {
	t.Helper()
	exp, err := time.ParseInLocation(item.DateLayout, expiry, time.Local)
	require.NoError(t, err)
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	it, err := item.New(id, name, created, created, exp)
	require.NoError(t, err)
	return it
}

func seed(t *testing.T, s *FileStore, ids ...int) {
	t.Helper()
	ctx := context.Background()
	for _, id := range ids {
		require.NoError(t, s.Save(ctx, makeItem(t, id, "Item", "2024-06-10")))
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestFileStore_LoadAll_AbsentFileIsEmptyStore(t *testing.T) {
	s, _ := newFileStore(t)

	items, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFileStore_NextID(t *testing.T) {
	s, _ := newFileStore(t)
	ctx := context.Background()

	id, err := s.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id, "empty store starts at 1")

	seed(t, s, 1, 3, 7)

	id, err = s.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, id, "max existing id + 1")
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s, _ := newFileStore(t)
	ctx := context.Background()

	want := []item.Item{
		makeItem(t, 1, "Milk", "2024-06-10"),
		makeItem(t, 2, "Bread", "2024-06-05"),
		makeItem(t, 3, "Cheddar", "2024-07-01"),
	}
	for _, it := range want {
		require.NoError(t, s.Save(ctx, it))
	}

	got, err := s.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_Update_ReplacesOnlyMatchingRecord(t *testing.T) {
	s, path := newFileStore(t)
	ctx := context.Background()
	seed(t, s, 1, 5, 9)

	before := readLines(t, path)

	updated := makeItem(t, 5, "Renamed", "2024-08-01")
	require.NoError(t, s.Update(ctx, updated))

	after := readLines(t, path)
	require.Len(t, after, 3)

	// Rows 1 and 9 byte-for-byte unchanged, original order kept.
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, item.MarshalRecord(updated), after[1])
}

func TestFileStore_Update_MissingIDIsNoOp(t *testing.T) {
	s, path := newFileStore(t)
	ctx := context.Background()
	seed(t, s, 1, 5, 9)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, makeItem(t, 99, "Ghost", "2024-08-01")))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "update on an absent id must not insert")
}

func TestFileStore_Delete(t *testing.T) {
	s, _ := newFileStore(t)
	ctx := context.Background()
	seed(t, s, 1, 5, 9)

	require.NoError(t, s.Delete(ctx, 5))

	items, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 9, items[1].ID)
}

func TestFileStore_LoadAll_MalformedLineFailsNotSkips(t *testing.T) {
	s, path := newFileStore(t)
	ctx := context.Background()
	seed(t, s, 1)

	// Append a line with only four fields.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o660)
	require.NoError(t, err)
	_, err = f.WriteString("2,Broken,2024-06-01T12:00:00,2024-06-10\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = s.LoadAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedRecord)
}
