package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/meheralimeer/shelfwatch/internal/item"
)

// FileStore keeps the record set in one plain-text file, one record per
// line in the codec of the item package. Reads scan the whole file;
// mutations rewrite it in place, with no temp-file-then-rename step, so a
// crash mid-rewrite can leave the file truncated.
//
// The mutex serializes the shell goroutine and the monitor goroutine within
// this process. There is no cross-process file locking.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) NextID(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadAll()
	if err != nil {
		return 0, err
	}

	next := 1
	for _, it := range items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	return next, nil
}

func (s *FileStore) Save(ctx context.Context, it item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o660)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", s.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, item.MarshalRecord(it)); err != nil {
		return fmt.Errorf("append to %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) LoadAll(ctx context.Context) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll()
}

func (s *FileStore) Update(ctx context.Context, it item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadAll()
	if err != nil {
		return err
	}

	// Replace-pass: the updated item is written only where a matching id is
	// found. No match means the rewrite carries the same content.
	for i := range items {
		if items[i].ID == it.ID {
			items[i] = it
		}
	}

	return s.writeAll(items)
}

func (s *FileStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadAll()
	if err != nil {
		return err
	}

	remaining := items[:0]
	for _, it := range items {
		if it.ID != id {
			remaining = append(remaining, it)
		}
	}

	return s.writeAll(remaining)
}

// loadAll reads and parses the whole file. Callers must hold the mutex.
func (s *FileStore) loadAll() ([]item.Item, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	var items []item.Item
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		it, err := item.ParseRecord(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.path, lineNo, err)
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return items, nil
}

// writeAll rewrites the whole file from items. Callers must hold the mutex.
func (s *FileStore) writeAll(items []item.Item) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o660)
	if err != nil {
		return fmt.Errorf("open %s for rewrite: %w", s.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, it := range items {
		if _, err := fmt.Fprintln(w, item.MarshalRecord(it)); err != nil {
			return fmt.Errorf("write %s: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	return nil
}
