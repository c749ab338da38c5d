// Package testing provides mock implementations and fixtures for use in
// tests. This package should only be imported by test files (*_test.go).
package testing

import (
	"context"
	"path"
	"strings"
	"sync"
	"testing"

	_ "github.com/mattn/go-sqlite3" // Required for SQLite database driver in tests.

	"github.com/mediareap/mediareap/internal/ent/generated"
	"github.com/mediareap/mediareap/internal/ent/generated/enttest"
	_ "github.com/mediareap/mediareap/internal/ent/generated/runtime" // Required to register schema defaults.
	"github.com/mediareap/mediareap/internal/fileutil"
	"github.com/mediareap/mediareap/internal/notify"
)

// NewTestDB creates an in-memory Ent database for testing.
// The database is automatically closed when the test completes.
func NewTestDB(t *testing.T) *generated.Client {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&_fk=1")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// RemoveCall records one RemoveTorrent invocation on a MockDownloader.
type RemoveCall struct {
	Hash        string
	DeleteFiles bool
}

// MockDownloader is a mock implementation of download.Downloader that records
// remove and pause calls.
type MockDownloader struct {
	name string

	mu          sync.RWMutex
	RemoveCalls []RemoveCall
	PauseCalls  []string

	// Hooks for custom behavior
	OnRemove func(ctx context.Context, hash string, deleteFiles bool) error
	OnPause  func(ctx context.Context, hash string) error
}

// NewMockDownloader creates a new mock downloader.
func NewMockDownloader(name string) *MockDownloader {
	return &MockDownloader{name: name}
}

// Name returns the configured name.
func (m *MockDownloader) Name() string {
	return m.name
}

// Type returns the downloader type.
func (m *MockDownloader) Type() string {
	return "mock"
}

// Connect establishes a connection (no-op for mock).
func (m *MockDownloader) Connect(_ context.Context) error {
	return nil
}

// Close closes the connection (no-op for mock).
func (m *MockDownloader) Close() error {
	return nil
}

// RemoveTorrent records the removal.
func (m *MockDownloader) RemoveTorrent(ctx context.Context, hash string, deleteFiles bool) error {
	if m.OnRemove != nil {
		if err := m.OnRemove(ctx, hash, deleteFiles); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls = append(m.RemoveCalls, RemoveCall{Hash: hash, DeleteFiles: deleteFiles})
	return nil
}

// PauseTorrent records the pause.
func (m *MockDownloader) PauseTorrent(ctx context.Context, hash string) error {
	if m.OnPause != nil {
		if err := m.OnPause(ctx, hash); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.PauseCalls = append(m.PauseCalls, hash)
	return nil
}

// Removed returns the hashes removed, in call order.
func (m *MockDownloader) Removed() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hashes := make([]string, 0, len(m.RemoveCalls))
	for _, c := range m.RemoveCalls {
		hashes = append(hashes, c.Hash)
	}
	return hashes
}

// Paused returns the hashes paused, in call order.
func (m *MockDownloader) Paused() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hashes := make([]string, len(m.PauseCalls))
	copy(hashes, m.PauseCalls)
	return hashes
}

// MockRemover is an in-memory implementation of source.Remover backed by a
// set of paths. A path ending in "/" marks a directory.
type MockRemover struct {
	mu    sync.RWMutex
	paths map[string]bool

	RemovedFiles []string
	RemovedTrees []string

	// Hooks for custom behavior
	OnRemoveFile func(ctx context.Context, path string) error
	OnRemoveTree func(ctx context.Context, path string) error
}

// NewMockRemover creates a mock remover holding the given paths.
func NewMockRemover(paths ...string) *MockRemover {
	m := &MockRemover{paths: make(map[string]bool)}
	for _, p := range paths {
		m.paths[p] = true
	}
	return m
}

// Name returns the backend name.
func (m *MockRemover) Name() string {
	return "mock"
}

// AddPath adds a path to the fake filesystem.
func (m *MockRemover) AddPath(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths[p] = true
}

// Exists reports whether the exact path, or any path below it, is present.
func (m *MockRemover) Exists(_ context.Context, p string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.paths[p] {
		return true, nil
	}
	for existing := range m.paths {
		if strings.HasPrefix(existing, p+"/") {
			return true, nil
		}
	}
	return false, nil
}

// RemoveFile deletes a single path.
func (m *MockRemover) RemoveFile(ctx context.Context, p string) error {
	if m.OnRemoveFile != nil {
		if err := m.OnRemoveFile(ctx, p); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.paths, p)
	m.RemovedFiles = append(m.RemovedFiles, p)
	return nil
}

// RemoveTree deletes a path and everything below it.
func (m *MockRemover) RemoveTree(ctx context.Context, p string) error {
	if m.OnRemoveTree != nil {
		if err := m.OnRemoveTree(ctx, p); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for existing := range m.paths {
		if existing == p || strings.HasPrefix(existing, p+"/") {
			delete(m.paths, existing)
		}
	}
	m.RemovedTrees = append(m.RemovedTrees, p)
	return nil
}

// ContainsMediaFile reports whether any path under dir has a media extension.
func (m *MockRemover) ContainsMediaFile(_ context.Context, dir string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for existing := range m.paths {
		if strings.HasPrefix(existing, dir+"/") && fileutil.HasMediaExt(path.Base(existing)) {
			return true, nil
		}
	}
	return false, nil
}

// PrepareShutdown is a no-op for the mock.
func (m *MockRemover) PrepareShutdown() {}

// Close is a no-op for the mock.
func (m *MockRemover) Close() error {
	return nil
}

// MockNotifier is a mock implementation of notify.Service that records the
// summaries it receives.
type MockNotifier struct {
	mu        sync.RWMutex
	Summaries []notify.DeletionSummary
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// NotifyDeletion records the summary.
func (m *MockNotifier) NotifyDeletion(_ context.Context, summary notify.DeletionSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Summaries = append(m.Summaries, summary)
	return nil
}

// TestNotification is a no-op for the mock.
func (m *MockNotifier) TestNotification(_ context.Context) error {
	return nil
}

// GetSummaries returns the recorded summaries.
func (m *MockNotifier) GetSummaries() []notify.DeletionSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]notify.DeletionSummary, len(m.Summaries))
	copy(result, m.Summaries)
	return result
}
