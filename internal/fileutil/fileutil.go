// Package fileutil provides path and media-file helpers for the
// reconciliation engine.
package fileutil

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// MediaExtensions are the file extensions that mark a directory as still
// holding media. Pruning stops at any ancestor containing one of these.
var MediaExtensions = []string{
	".mp4", ".mkv", ".ts", ".iso", ".rmvb", ".avi", ".mov", ".mpeg",
	".mpg", ".wmv", ".3gp", ".asf", ".m4v", ".flv", ".m2ts", ".strm",
	".tp", ".f4v",
}

// HasMediaExt reports whether the path carries a recognized media extension.
func HasMediaExt(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	for _, e := range MediaExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FS is the filesystem surface ancestor pruning needs. Both the local and
// the remote (SFTP) source removers satisfy it.
type FS interface {
	// Exists reports whether a file or directory exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// RemoveTree deletes a directory and everything below it.
	RemoveTree(ctx context.Context, path string) error

	// ContainsMediaFile reports whether any file under dir (recursively)
	// carries a recognized media extension.
	ContainsMediaFile(ctx context.Context, dir string) (bool, error)
}

// PruneEmptyAncestors removes ancestor directories of a deleted file that no
// longer hold any media, climbing at most maxLevels levels and stopping at
// the filesystem root or at the first ancestor that still contains a media
// file. Returns the directories removed, deepest first.
func PruneEmptyAncestors(ctx context.Context, fs FS, filePath string, maxLevels int) ([]string, error) {
	var pruned []string

	dir := path.Dir(filePath)
	for level := 0; level < maxLevels; level++ {
		if dir == "/" || dir == "." || dir == "" {
			break
		}

		exists, err := fs.Exists(ctx, dir)
		if err != nil {
			return pruned, fmt.Errorf("failed to check %s: %w", dir, err)
		}
		if exists {
			hasMedia, err := fs.ContainsMediaFile(ctx, dir)
			if err != nil {
				return pruned, fmt.Errorf("failed to scan %s: %w", dir, err)
			}
			if hasMedia {
				break
			}
			if err := fs.RemoveTree(ctx, dir); err != nil {
				return pruned, fmt.Errorf("failed to remove %s: %w", dir, err)
			}
			pruned = append(pruned, dir)
		}

		dir = path.Dir(dir)
	}

	return pruned, nil
}
