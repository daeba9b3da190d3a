// Package file persists the four preference documents as JSON files in a data
// directory, keeping the flat-file layout earlier releases produced so
// existing data directories load unchanged. The in-memory store remains the
// transactional engine; files are snapshots written after every successful
// transaction.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pantrycore/internal/infra/persistence/memory"
	"pantrycore/pkg/domain"
)

var _ domain.PersistentStore = (*Store)(nil)

const (
	preferencesFile  = "item_preferences.json"
	customBrandsFile = "custom_brands.json"
	hiddenItemsFile  = "hidden_items.json"
	customItemsFile  = "custom_items.json"
)

// Store snapshots state to JSON documents in a directory.
type Store struct {
	*memory.Store
	mu  sync.Mutex
	dir string
}

// NewStore opens a file-backed store rooted at dir (default "."). Documents
// that are missing or fail to decode start empty, so one corrupt file never
// blocks startup.
func NewStore(dir string, engine *domain.RulesEngine) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	mem := memory.NewStore(engine)
	s := &Store{Store: mem, dir: dir}

	state := domain.NewPersistedState()
	loadDocument(filepath.Join(dir, preferencesFile), &state.Preferences)
	loadDocument(filepath.Join(dir, customBrandsFile), &state.CustomBrands)
	loadDocument(filepath.Join(dir, hiddenItemsFile), &state.HiddenItems)
	loadDocument(filepath.Join(dir, customItemsFile), &state.CustomItems)
	mem.ImportState(state)
	return s, nil
}

// loadDocument fills target from path. The target stays untouched when the
// file is missing or malformed; decoding goes through a scratch value so a
// partial decode never leaks.
func loadDocument[T any](path string, target *T) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return
	}
	*target = decoded
}

// Dir returns the configured data directory.
func (s *Store) Dir() string { return s.dir }

// RunInTransaction applies fn in memory, then snapshots the four documents.
// A failed snapshot reports *domain.PersistenceError; the in-memory commit
// stands.
func (s *Store) RunInTransaction(ctx context.Context, fn func(domain.Transaction) error) (domain.Result, error) {
	res, err := s.Store.RunInTransaction(ctx, fn)
	if err != nil {
		return res, err
	}
	if err := s.persist(); err != nil {
		return res, &domain.PersistenceError{Op: "file", Err: err}
	}
	return res, nil
}

func (s *Store) persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.ExportState()
	docs := []struct {
		name string
		data any
	}{
		{preferencesFile, state.Preferences},
		{customBrandsFile, state.CustomBrands},
		{hiddenItemsFile, state.HiddenItems},
		{customItemsFile, state.CustomItems},
	}
	for _, doc := range docs {
		if err := writeDocument(filepath.Join(s.dir, doc.name), doc.data); err != nil {
			return err
		}
	}
	return nil
}

// writeDocument replaces path atomically via a temp file in the same
// directory.
func writeDocument(path string, data any) error {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
