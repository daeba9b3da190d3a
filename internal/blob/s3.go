package blob

import (
	"context"

	infraS3 "pantrycore/internal/infra/blob/s3"
)

// S3Config re-exports the infra S3 configuration type.
type S3Config = infraS3.Config

// NewS3 opens an S3-backed Store with the given configuration.
func NewS3(ctx context.Context, cfg S3Config) (Store, error) {
	return infraS3.New(ctx, cfg)
}

// OpenFromEnv opens an S3-backed Store configured from the environment.
func OpenFromEnv(ctx context.Context) (Store, error) {
	return infraS3.OpenFromEnv(ctx)
}

// NewMockS3ForTests returns the in-memory S3 mock so other packages can
// exercise the S3 code path without network access.
func NewMockS3ForTests() Store { return infraS3.NewMockForTests() }
