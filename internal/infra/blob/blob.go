// Package blob re-exports the blob storage contract and selects a backend
// from the environment.
package blob

import (
	"context"
	"fmt"
	"os"

	"salescore/internal/infra/blob/core"
	fsblob "salescore/internal/infra/blob/fs"
	memblob "salescore/internal/infra/blob/memory"
	s3blob "salescore/internal/infra/blob/s3"
)

type (
	// Driver identifies a blob backend driver.
	Driver = core.Driver
	// PutOptions configures a blob write.
	PutOptions = core.PutOptions
	// SignedURLOptions configures URL pre-signing.
	SignedURLOptions = core.SignedURLOptions
	// Info describes stored blob metadata.
	Info = core.Info
	// Store is the interface for blob storage backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
)

// ErrUnsupported indicates an operation isn't supported by a driver.
var ErrUnsupported = core.ErrUnsupported

// NewMemory returns an in-memory store for tests.
func NewMemory() Store { return memblob.New() }

// NewFilesystem returns a filesystem store rooted at path.
func NewFilesystem(root string) (Store, error) { return fsblob.New(root) }

// Open selects a blob Store implementation using environment variables.
//
//	SALESCORE_BLOB_DRIVER: fs|s3|memory (default fs)
//	SALESCORE_BLOB_FS_ROOT: directory root when driver=fs (default ./blobdata)
//	(S3 specific variables documented in the s3 package)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("SALESCORE_BLOB_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return fsblob.New(os.Getenv("SALESCORE_BLOB_FS_ROOT"))
	case DriverS3:
		return s3blob.OpenFromEnv(ctx)
	case DriverMemory:
		return memblob.New(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
