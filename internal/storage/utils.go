package storage

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"solarwatch/internal/reports"
)

// reportMarker is the file whose presence makes a folder a report.
const reportMarker = reports.IndexFile

// ReportFolderPath generates the folder of a report stored at timestamp.
// Format: YYYY/MM/DD/SolarWatch-YYYY-MM-DD-HH-MM-SS (UTC)
func ReportFolderPath(timestamp time.Time) string {
	t := timestamp.UTC()
	return t.Format("2006/01/02") + "/SolarWatch-" + t.Format("2006-01-02-15-04-05")
}

// StoreReport writes every file of a bundle into the folder of timestamp and
// returns that folder.
func StoreReport(ctx context.Context, client StorageClient, timestamp time.Time, files []reports.BundleFile) (string, error) {
	folder := ReportFolderPath(timestamp)
	for _, f := range files {
		if err := client.StoreFile(ctx, folder+"/"+f.Name, f.Data); err != nil {
			return "", fmt.Errorf("failed to store %s: %w", f.Name, err)
		}
	}
	return folder, nil
}

// CleanPath normalizes a relative path and rejects anything that would
// escape the store root.
func CleanPath(p string) (string, error) {
	if strings.Contains(p, "\\") {
		return "", fmt.Errorf("invalid path %q", p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("invalid path %q", p)
		}
	}
	clean := strings.TrimPrefix(path.Clean("/"+p), "/")
	if clean == "" {
		return "", fmt.Errorf("invalid path %q", p)
	}
	return clean, nil
}

// newestFirst sorts report folders and applies limit. Folder names sort
// chronologically.
func newestFirst(folders []string, limit int) []string {
	sort.Sort(sort.Reverse(sort.StringSlice(folders)))
	if limit > 0 && limit < len(folders) {
		folders = folders[:limit]
	}
	return folders
}
