package blob

import (
	memorystore "pantrycore/internal/infra/blob/memory"
)

// NewMemory returns a Store backed by process memory, for tests.
func NewMemory() Store { return memorystore.New() }
