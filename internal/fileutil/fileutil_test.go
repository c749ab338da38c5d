package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/fileutil"
	"github.com/mediareap/mediareap/internal/source"
)

func TestHasMediaExt(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/media/emby/Movies/Foo (2020)/Foo.mkv", true},
		{"/media/tv/Show/S01E01.mp4", true},
		{"/media/tv/Show/S01E01.MKV", true},
		{"/media/tv/Show/S01E01.srt", false},
		{"/media/tv/Show/poster.jpg", false},
		{"/media/tv/Show/movie.nfo", false},
		{"episode.m2ts", true},
		{"stream.strm", true},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, fileutil.HasMediaExt(tt.path))
		})
	}
}

// writeFile creates a file with parent directories.
func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
}

func TestPruneEmptyAncestors(t *testing.T) {
	t.Run("prunes empty ancestors up to limit", func(t *testing.T) {
		tmpDir := t.TempDir()
		fs := source.NewLocal()

		// Leaf file already deleted; leftovers only.
		file := filepath.Join(tmpDir, "a", "b", "c", "episode.mkv")
		writeFile(t, filepath.Join(tmpDir, "a", "b", "c", "episode.nfo"))
		require.NoError(t, os.Remove(filepath.Join(tmpDir, "a", "b", "c", "episode.nfo")))

		pruned, err := fileutil.PruneEmptyAncestors(t.Context(), fs, file, 3)
		require.NoError(t, err)

		// c, b, a all pruned (empty, within 3 levels)
		require.Len(t, pruned, 3)
		assert.Equal(t, filepath.Join(tmpDir, "a", "b", "c"), pruned[0])
		assert.Equal(t, filepath.Join(tmpDir, "a"), pruned[2])

		_, statErr := os.Stat(filepath.Join(tmpDir, "a"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("removes non-media leftovers with the directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		fs := source.NewLocal()

		file := filepath.Join(tmpDir, "show", "episode.mkv")
		writeFile(t, filepath.Join(tmpDir, "show", "poster.jpg"))
		writeFile(t, filepath.Join(tmpDir, "show", "episode.nfo"))

		pruned, err := fileutil.PruneEmptyAncestors(t.Context(), fs, file, 1)
		require.NoError(t, err)
		require.Len(t, pruned, 1)

		_, statErr := os.Stat(filepath.Join(tmpDir, "show"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("stops at ancestor holding a media file", func(t *testing.T) {
		tmpDir := t.TempDir()
		fs := source.NewLocal()

		file := filepath.Join(tmpDir, "show", "Season 01", "e1.mkv")
		writeFile(t, filepath.Join(tmpDir, "show", "Season 02", "e1.mkv"))

		pruned, err := fileutil.PruneEmptyAncestors(t.Context(), fs, file, 3)
		require.NoError(t, err)

		// Season 01 doesn't exist, show still holds Season 02's media
		assert.Empty(t, pruned)

		_, statErr := os.Stat(filepath.Join(tmpDir, "show", "Season 02", "e1.mkv"))
		assert.NoError(t, statErr)
	})

	t.Run("climbs past a missing directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		fs := source.NewLocal()

		// Deepest dir already gone; parent is empty and prunable.
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a"), 0750))
		file := filepath.Join(tmpDir, "a", "gone", "episode.mkv")

		pruned, err := fileutil.PruneEmptyAncestors(t.Context(), fs, file, 2)
		require.NoError(t, err)
		require.Len(t, pruned, 1)
		assert.Equal(t, filepath.Join(tmpDir, "a"), pruned[0])
	})

	t.Run("level limit bounds the climb", func(t *testing.T) {
		tmpDir := t.TempDir()
		fs := source.NewLocal()

		file := filepath.Join(tmpDir, "a", "b", "c", "d", "episode.mkv")
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a", "b", "c", "d"), 0750))

		pruned, err := fileutil.PruneEmptyAncestors(t.Context(), fs, file, 2)
		require.NoError(t, err)
		require.Len(t, pruned, 2)

		// b survives: only d and c were within the limit
		_, statErr := os.Stat(filepath.Join(tmpDir, "a", "b"))
		assert.NoError(t, statErr)
	})
}
