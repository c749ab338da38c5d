//go:build integration

package source_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/fileutil"
	"github.com/mediareap/mediareap/internal/source"
	testutil "github.com/mediareap/mediareap/internal/testing"
)

// testSSHContainer is a shared SSH container for all tests in this file.
var (
	testSSHContainer     *testutil.SSHContainer
	testSSHContainerOnce sync.Once
	testSSHContainerErr  error
)

// getTestSSHContainer returns the shared SSH container, starting it if necessary.
// The container is shared across all tests to reduce startup time.
func getTestSSHContainer(t *testing.T) *testutil.SSHContainer {
	t.Helper()

	testSSHContainerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		cfg := testutil.DefaultSSHContainerConfig()
		testSSHContainer, testSSHContainerErr = testutil.StartSSHContainer(ctx, cfg)

		if testSSHContainerErr == nil {
			// Wait for SSH to be ready
			testSSHContainerErr = testSSHContainer.WaitForSSH(ctx, 30*time.Second)
		}
	})

	if testSSHContainerErr != nil {
		t.Skipf("SSH container not available: %v", testSSHContainerErr)
	}

	return testSSHContainer
}

// TestMain handles cleanup of the shared container.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared container
	if testSSHContainer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_ = testSSHContainer.Cleanup(ctx)
		cancel()
	}

	os.Exit(code)
}

// newTestRemover builds an SFTP remover against the shared container.
func newTestRemover(t *testing.T, sshContainer *testutil.SSHContainer) source.Remover {
	t.Helper()

	remover := source.NewRclone(source.SSHConfig{
		Host:          sshContainer.Host,
		Port:          sshContainer.Port,
		User:          sshContainer.User,
		KeyFile:       sshContainer.PrivateKey,
		IgnoreHostKey: true,
	})
	t.Cleanup(func() { _ = remover.Close() })

	return remover
}

func TestRcloneIntegration_Exists(t *testing.T) {
	sshContainer := getTestSSHContainer(t)
	ctx := context.Background()

	remover := newTestRemover(t, sshContainer)

	t.Run("ExistingFile", func(t *testing.T) {
		err := sshContainer.CreateTestFile(ctx, "exists/present.mkv", []byte("data"))
		require.NoError(t, err, "failed to create test file")

		exists, err := remover.Exists(ctx, filepath.Join(sshContainer.RemoteDir, "exists/present.mkv"))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("ExistingDirectory", func(t *testing.T) {
		err := sshContainer.CreateTestFile(ctx, "exists/dir/inner.txt", []byte("data"))
		require.NoError(t, err, "failed to create test file")

		exists, err := remover.Exists(ctx, filepath.Join(sshContainer.RemoteDir, "exists/dir"))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("MissingPath", func(t *testing.T) {
		exists, err := remover.Exists(ctx, filepath.Join(sshContainer.RemoteDir, "exists/nope.mkv"))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRcloneIntegration_RemoveFile(t *testing.T) {
	sshContainer := getTestSSHContainer(t)
	ctx := context.Background()

	remover := newTestRemover(t, sshContainer)

	t.Run("RemovesAFile", func(t *testing.T) {
		path := filepath.Join(sshContainer.RemoteDir, "removefile/movie.mkv")
		err := sshContainer.CreateTestFile(ctx, "removefile/movie.mkv", []byte("data"))
		require.NoError(t, err, "failed to create test file")

		require.NoError(t, remover.RemoveFile(ctx, path))

		exists, err := remover.Exists(ctx, path)
		require.NoError(t, err)
		assert.False(t, exists, "file should be gone after removal")
	})

	t.Run("MissingFileFails", func(t *testing.T) {
		err := remover.RemoveFile(ctx, filepath.Join(sshContainer.RemoteDir, "removefile/nope.mkv"))
		require.Error(t, err)
	})
}

func TestRcloneIntegration_RemoveTree(t *testing.T) {
	sshContainer := getTestSSHContainer(t)
	ctx := context.Background()

	remover := newTestRemover(t, sshContainer)

	t.Run("RemovesADirectoryRecursively", func(t *testing.T) {
		require.NoError(t, sshContainer.CreateTestFile(ctx, "removetree/show/Season 01/e1.mkv", []byte("a")))
		require.NoError(t, sshContainer.CreateTestFile(ctx, "removetree/show/Season 01/e2.mkv", []byte("b")))
		require.NoError(t, sshContainer.CreateTestFile(ctx, "removetree/show/poster.jpg", []byte("c")))

		dir := filepath.Join(sshContainer.RemoteDir, "removetree/show")
		require.NoError(t, remover.RemoveTree(ctx, dir))

		exists, err := remover.Exists(ctx, dir)
		require.NoError(t, err)
		assert.False(t, exists, "directory should be gone after removal")
	})
}

func TestRcloneIntegration_ContainsMediaFile(t *testing.T) {
	sshContainer := getTestSSHContainer(t)
	ctx := context.Background()

	remover := newTestRemover(t, sshContainer)

	t.Run("FindsNestedMedia", func(t *testing.T) {
		require.NoError(t, sshContainer.CreateTestFile(ctx, "media/show/Season 01/e1.mkv", []byte("a")))

		found, err := remover.ContainsMediaFile(ctx, filepath.Join(sshContainer.RemoteDir, "media"))
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("IgnoresNonMediaFiles", func(t *testing.T) {
		require.NoError(t, sshContainer.CreateTestFile(ctx, "nomedia/readme.txt", []byte("a")))
		require.NoError(t, sshContainer.CreateTestFile(ctx, "nomedia/poster.jpg", []byte("b")))

		found, err := remover.ContainsMediaFile(ctx, filepath.Join(sshContainer.RemoteDir, "nomedia"))
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestRcloneIntegration_PruneEmptyAncestors(t *testing.T) {
	sshContainer := getTestSSHContainer(t)
	ctx := context.Background()

	remover := newTestRemover(t, sshContainer)

	t.Run("PrunesEmptiedDirectories", func(t *testing.T) {
		file := filepath.Join(sshContainer.RemoteDir, "prune/show/Season 01/e1.mkv")
		require.NoError(t, sshContainer.CreateTestFile(ctx, "prune/show/Season 01/e1.mkv", []byte("a")))
		require.NoError(t, remover.RemoveFile(ctx, file))

		pruned, err := fileutil.PruneEmptyAncestors(ctx, remover, file, 2)
		require.NoError(t, err)
		assert.Len(t, pruned, 2, "season and show directories should be pruned")

		exists, err := remover.Exists(ctx, filepath.Join(sshContainer.RemoteDir, "prune/show"))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("StopsAtDirectoriesWithMedia", func(t *testing.T) {
		keep := filepath.Join(sshContainer.RemoteDir, "prunekeep/show/Season 02/e1.mkv")
		gone := filepath.Join(sshContainer.RemoteDir, "prunekeep/show/Season 01/e1.mkv")
		require.NoError(t, sshContainer.CreateTestFile(ctx, "prunekeep/show/Season 02/e1.mkv", []byte("a")))
		require.NoError(t, sshContainer.CreateTestFile(ctx, "prunekeep/show/Season 01/e1.mkv", []byte("b")))
		require.NoError(t, remover.RemoveFile(ctx, gone))

		pruned, err := fileutil.PruneEmptyAncestors(ctx, remover, gone, 3)
		require.NoError(t, err)
		assert.Len(t, pruned, 1, "only the emptied season directory should be pruned")

		exists, err := remover.Exists(ctx, keep)
		require.NoError(t, err)
		assert.True(t, exists, "sibling season must survive pruning")
	})
}

func TestRcloneIntegration_InvalidSSHKey(t *testing.T) {
	sshContainer := getTestSSHContainer(t)
	ctx := context.Background()

	// Create a fake key file
	tmpDir := t.TempDir()
	fakeKeyPath := filepath.Join(tmpDir, "fake_key")
	require.NoError(t, os.WriteFile(fakeKeyPath, []byte("invalid key"), 0600))

	remover := source.NewRclone(source.SSHConfig{
		Host:          sshContainer.Host,
		Port:          sshContainer.Port,
		User:          sshContainer.User,
		KeyFile:       fakeKeyPath,
		IgnoreHostKey: true,
	})
	defer func() { _ = remover.Close() }()

	_, err := remover.Exists(ctx, filepath.Join(sshContainer.RemoteDir, "whatever"))
	require.Error(t, err, "operations with an invalid key should fail")
}
