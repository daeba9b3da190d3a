package core

import (
	"fmt"
	"os"

	"pantrycore/internal/infra/persistence/file"
	"pantrycore/internal/infra/persistence/memory"
	"pantrycore/internal/infra/persistence/postgres"
	"pantrycore/internal/infra/persistence/sqlite"
)

// StorageDriver identifies a concrete persistent storage implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // session only, persistence disabled
	StorageFile     StorageDriver = "file"     // four JSON documents in a data dir
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// OpenPersistentStore selects a backend using environment variables. Unset
// defaults to memory: the sandboxed deployment keeps state for the session
// only and skips durable writes entirely.
//
//	PANTRYCORE_STORAGE_DRIVER: memory|file|sqlite|postgres (default memory)
//	PANTRYCORE_DATA_DIR: directory for the JSON documents (driver=file, default .)
//	PANTRYCORE_SQLITE_DSN: sqlite file path (driver=sqlite, default ./pantrycore.db)
//	PANTRYCORE_POSTGRES_DSN: postgres DSN (driver=postgres)
func OpenPersistentStore(engine *RulesEngine) (PersistentStore, error) {
	driver := os.Getenv("PANTRYCORE_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageMemory)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewStore(engine), nil
	case StorageFile:
		return file.NewStore(os.Getenv("PANTRYCORE_DATA_DIR"), engine)
	case StorageSQLite:
		return sqlite.NewStore(os.Getenv("PANTRYCORE_SQLITE_DSN"), engine)
	case StoragePostgres:
		return postgres.NewStore(os.Getenv("PANTRYCORE_POSTGRES_DSN"), engine)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
