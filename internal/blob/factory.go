package blob

import (
	"context"
	"fmt"
	"os"
)

// Open picks the Store backend named by the environment.
//
//	PANTRYCORE_BLOB_DRIVER: fs|s3|memory (default fs)
//	PANTRYCORE_BLOB_FS_ROOT: directory root when driver=fs (default ./artifacts)
//	(S3 specific variables documented in the s3 infra package)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("PANTRYCORE_BLOB_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return NewFilesystem(os.Getenv("PANTRYCORE_BLOB_FS_ROOT"))
	case DriverS3:
		return OpenFromEnv(ctx)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
