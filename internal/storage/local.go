package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// LocalStorageClient keeps bundles in a directory tree.
type LocalStorageClient struct {
	baseDir string
}

// NewLocalStorageClient creates a new local storage client. An empty baseDir
// means "reports".
func NewLocalStorageClient(baseDir string) (*LocalStorageClient, error) {
	if baseDir == "" {
		baseDir = "reports"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalStorageClient{baseDir: baseDir}, nil
}

// BaseDir is the root of the store on disk.
func (l *LocalStorageClient) BaseDir() string {
	return l.baseDir
}

func (l *LocalStorageClient) fullPath(filePath string) (string, error) {
	rel, err := CleanPath(filePath)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.baseDir, filepath.FromSlash(rel)), nil
}

// StoreFile writes a file, creating its parent directories.
func (l *LocalStorageClient) StoreFile(ctx context.Context, filePath string, fileData []byte) error {
	full, err := l.fullPath(filePath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(full, fileData, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", full, err)
	}
	return nil
}

// ListReports returns every folder holding an index.html.
func (l *LocalStorageClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	var folders []string

	err := filepath.WalkDir(l.baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != reportMarker {
			return nil
		}
		rel, err := filepath.Rel(l.baseDir, p)
		if err != nil {
			return err
		}
		if folder := path.Dir(filepath.ToSlash(rel)); folder != "." {
			folders = append(folders, folder)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk reports directory: %w", err)
	}

	return newestFirst(folders, limit), nil
}
