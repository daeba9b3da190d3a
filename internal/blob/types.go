// Package blob re-exports the blob storage abstractions and wraps the
// backend constructors. Callers depend on blob.Store rather than the infra
// implementations; export artifacts (shopping lists, preference backups) are
// the only payloads stored here today.
package blob

import (
	"pantrycore/internal/blob/core"
)

type (
	// Driver selects a storage backend.
	Driver = core.Driver
	// PutOptions carries optional write attributes.
	PutOptions = core.PutOptions
	// SignedURLOptions controls pre-signed URL generation.
	SignedURLOptions = core.SignedURLOptions
	// Info describes a stored artifact.
	Info = core.Info
	// Store is the backend-neutral storage surface.
	Store = core.Store
)

const (
	// DriverFilesystem stores artifacts under a local directory.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 talks to an S3 / MinIO compatible endpoint.
	DriverS3 = core.DriverS3
	// DriverMemory keeps artifacts in process memory, for tests.
	DriverMemory = core.DriverMemory
)

// ErrUnsupported is reported by a driver for capabilities it does not offer.
var ErrUnsupported = core.ErrUnsupported
