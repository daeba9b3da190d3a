// Package sqlite persists the preference documents to an embedded SQLite
// database. The in-memory store remains the transactional engine; the full
// state is snapshotted into a single table after every successful transaction.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pantrycore/internal/infra/persistence/memory"
	"pantrycore/pkg/domain"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

var _ domain.PersistentStore = (*Store)(nil)

// Store persists the in-memory state to a single SQLite table as JSON blobs.
type Store struct {
	*memory.Store
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewStore opens a SQLite-backed store at path (default "pantrycore.db"),
// creating the state table when absent and hydrating the in-memory store from
// any existing snapshot.
func NewStore(path string, engine *domain.RulesEngine) (*Store, error) {
	if path == "" {
		path = "pantrycore.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	state, err := loadState(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	mem := memory.NewStore(engine)
	mem.ImportState(state)
	return &Store{Store: mem, db: db, path: path}, nil
}

// Bucket names match the JSON document files of the file driver so operators
// can recognize them in either backend.
var sqliteBuckets = []string{"item_preferences", "custom_brands", "hidden_items", "custom_items"}

func loadState(db *sql.DB) (domain.PersistedState, error) {
	state := domain.NewPersistedState()
	rows, err := db.Query(`SELECT bucket, payload FROM state`)
	if err != nil {
		return state, fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return state, fmt.Errorf("scan state: %w", err)
		}
		if len(payload) == 0 {
			continue
		}
		var target any
		switch bucket {
		case "item_preferences":
			target = &state.Preferences
		case "custom_brands":
			target = &state.CustomBrands
		case "hidden_items":
			target = &state.HiddenItems
		case "custom_items":
			target = &state.CustomItems
		default:
			continue
		}
		if err := json.Unmarshal(payload, target); err != nil {
			return state, fmt.Errorf("decode %s: %w", bucket, err)
		}
	}
	if err := rows.Err(); err != nil {
		return state, fmt.Errorf("iterate state: %w", err)
	}
	return state, nil
}

func (s *Store) persist() (retErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.ExportState()
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for _, bucket := range sqliteBuckets {
		var data []byte
		switch bucket {
		case "item_preferences":
			data, err = json.Marshal(state.Preferences)
		case "custom_brands":
			data, err = json.Marshal(state.CustomBrands)
		case "hidden_items":
			data, err = json.Marshal(state.HiddenItems)
		case "custom_items":
			data, err = json.Marshal(state.CustomItems)
		}
		if err != nil {
			retErr = fmt.Errorf("encode %s: %w", bucket, err)
			return retErr
		}
		if _, err = tx.Exec(`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`, bucket, data); err != nil {
			retErr = fmt.Errorf("upsert %s: %w", bucket, err)
			return retErr
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// RunInTransaction applies fn in memory, then snapshots state to SQLite. A
// failed snapshot reports *domain.PersistenceError; the in-memory commit
// stands.
func (s *Store) RunInTransaction(ctx context.Context, fn func(domain.Transaction) error) (domain.Result, error) {
	res, err := s.Store.RunInTransaction(ctx, fn)
	if err != nil {
		return res, err
	}
	if err := s.persist(); err != nil {
		return res, &domain.PersistenceError{Op: "sqlite", Err: err}
	}
	return res, nil
}

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
