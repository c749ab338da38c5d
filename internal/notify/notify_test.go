package notify_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/config"
	"github.com/mediareap/mediareap/internal/notify"
)

// capture records the last ntfy request a test server received.
type capture struct {
	mu      sync.Mutex
	headers http.Header
	body    string
}

func newNtfyServer(t *testing.T, status int) (*httptest.Server, *capture) {
	t.Helper()
	c := &capture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.headers = r.Header.Clone()
		c.body = string(body)
		c.mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server, c
}

func TestNotifyDeletion(t *testing.T) {
	server, captured := newNtfyServer(t, http.StatusOK)

	svc := notify.NewService(config.NotifyConfig{NtfyTopic: server.URL + "/mediareap"})

	err := svc.NotifyDeletion(t.Context(), notify.DeletionSummary{
		Title:           "Foo",
		MediaKind:       "movie",
		Path:            "/media/emby/Movies/Foo (2020)/Foo.mkv",
		RecordsDeleted:  1,
		TorrentsRemoved: 2,
		TorrentsPaused:  1,
		ImageURL:        "https://img.example.com/foo.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "MediaReap - Media Deleted", captured.headers.Get("Title"))
	assert.Equal(t, "https://img.example.com/foo.jpg", captured.headers.Get("Attach"))
	assert.Empty(t, captured.headers.Get("Priority"))
	assert.Contains(t, captured.body, "Foo")
	assert.Contains(t, captured.body, "Torrents removed: 2, paused: 1")
}

func TestNotifyDeletionWithErrorsRaisesPriority(t *testing.T) {
	server, captured := newNtfyServer(t, http.StatusOK)

	svc := notify.NewService(config.NotifyConfig{NtfyTopic: server.URL + "/mediareap"})

	err := svc.NotifyDeletion(t.Context(), notify.DeletionSummary{
		Title:     "Foo",
		MediaKind: "movie",
		Errors:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, "high", captured.headers.Get("Priority"))
	assert.Contains(t, captured.body, "Errors: 2")
}

func TestNotifyServerError(t *testing.T) {
	server, _ := newNtfyServer(t, http.StatusForbidden)

	svc := notify.NewService(config.NotifyConfig{NtfyTopic: server.URL + "/mediareap"})

	err := svc.TestNotification(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestNoopServiceWhenUnconfigured(t *testing.T) {
	svc := notify.NewService(config.NotifyConfig{})

	require.NoError(t, svc.NotifyDeletion(t.Context(), notify.DeletionSummary{Title: "Foo"}))
	require.NoError(t, svc.TestNotification(t.Context()))
}
