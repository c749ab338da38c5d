package mediaserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/config"
	"github.com/mediareap/mediareap/internal/mediaserver"
)

func TestRegistry(t *testing.T) {
	t.Run("NewRegistry", func(t *testing.T) {
		r := mediaserver.NewRegistry()
		require.NotNil(t, r)
		assert.Empty(t, r.All())
	})

	t.Run("RegisterAndGet", func(t *testing.T) {
		r := mediaserver.NewRegistry()

		cfg := config.MediaServerConfig{URL: "http://emby:8096", APIKey: "key"}
		srv := mediaserver.NewEmby("emby", cfg)
		r.Register("emby", srv)

		got, ok := r.Get("emby")
		require.True(t, ok)
		assert.Equal(t, srv, got)

		_, ok = r.Get("missing")
		assert.False(t, ok)
	})
}

func TestEmbyClient(t *testing.T) {
	t.Run("NewEmby", func(t *testing.T) {
		cfg := config.MediaServerConfig{URL: "http://emby:8096/", APIKey: "key"}
		srv := mediaserver.NewEmby("living-room", cfg, mediaserver.WithLogger(zerolog.Nop()))

		assert.Equal(t, "living-room", srv.Name())
		assert.Equal(t, "emby", srv.Type())
	})

	t.Run("NewJellyfin", func(t *testing.T) {
		cfg := config.MediaServerConfig{URL: "http://jellyfin:8096", APIKey: "key"}
		srv := mediaserver.NewJellyfin("jf", cfg)

		assert.Equal(t, "jellyfin", srv.Type())
	})
}

func TestTestConnection(t *testing.T) {
	t.Run("success sends token header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/System/Info" {
				assert.Equal(t, "secret", r.Header.Get("X-Emby-Token"))
				_ = json.NewEncoder(w).Encode(map[string]string{
					"ServerName": "test",
					"Version":    "4.8.0",
				})
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		cfg := config.MediaServerConfig{URL: server.URL, APIKey: "secret"}
		srv := mediaserver.NewEmby("emby", cfg)

		require.NoError(t, srv.TestConnection(t.Context()))
	})

	t.Run("unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		cfg := config.MediaServerConfig{URL: server.URL, APIKey: "wrong"}
		srv := mediaserver.NewEmby("emby", cfg)

		err := srv.TestConnection(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})
}

func TestListRecentLogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/System/Logs" {
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"Name": "embyserver.txt", "Size": 1024, "DateModified": "2024-01-15T10:00:00Z"},
				{"Name": "embyserver-63830.txt", "Size": 2048, "DateModified": "2024-01-16T08:00:00Z"},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := config.MediaServerConfig{URL: server.URL, APIKey: "key"}
	srv := mediaserver.NewEmby("emby", cfg)

	logs, err := srv.ListRecentLogs(t.Context())
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Most recently modified first
	assert.Equal(t, "embyserver-63830.txt", logs[0].Name)
	assert.Equal(t, int64(2048), logs[0].Size)
}

func TestFetchLog(t *testing.T) {
	const logText = "2024-01-15 10:30:00.000 Info Server: Removing item from database, Type: Movie Name: Foo Path: /media/Foo.mkv\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/System/Logs/Log" {
			assert.Equal(t, "embyserver.txt", r.URL.Query().Get("name"))
			_, _ = w.Write([]byte(logText))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := config.MediaServerConfig{URL: server.URL, APIKey: "key"}
	srv := mediaserver.NewEmby("emby", cfg)

	text, err := srv.FetchLog(t.Context(), "embyserver.txt")
	require.NoError(t, err)
	assert.Equal(t, logText, text)
}
