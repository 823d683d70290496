// Package storage writes rendered report bundles into a dated folder tree
// for offline inspection.
package storage

import "context"

// StorageClient defines the bundle store operations. Paths are slash
// separated and relative to the store root.
type StorageClient interface {
	// StoreFile stores a file at the specified path, replacing any previous content
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// ListReports lists report folders, newest first. limit <= 0 lists all.
	ListReports(ctx context.Context, limit int) ([]string, error)
}
