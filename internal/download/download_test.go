package download_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/config"
	"github.com/mediareap/mediareap/internal/download"
)

// --- Registry Tests ---

func TestRegistry(t *testing.T) {
	t.Run("NewRegistry", func(t *testing.T) {
		r := download.NewRegistry()
		require.NotNil(t, r)
		assert.Empty(t, r.All())
	})

	t.Run("Register", func(t *testing.T) {
		r := download.NewRegistry()

		cfg := config.DownloaderConfig{
			URL:      "http://localhost:8080",
			Username: "admin",
			Password: "admin",
		}
		dl := download.NewQBittorrent("seedbox", cfg)

		r.Register("seedbox", dl)

		got, ok := r.Get("seedbox")
		require.True(t, ok)
		assert.Equal(t, dl, got)
	})

	t.Run("RegisterMultipleDownloaders", func(t *testing.T) {
		r := download.NewRegistry()

		cfg := config.DownloaderConfig{URL: "http://localhost:8080"}

		r.Register("seedbox1", download.NewQBittorrent("seedbox1", cfg))
		r.Register("seedbox2", download.NewQBittorrent("seedbox2", cfg))

		assert.Len(t, r.All(), 2)

		_, ok1 := r.Get("seedbox1")
		_, ok2 := r.Get("seedbox2")
		assert.True(t, ok1)
		assert.True(t, ok2)
	})

	t.Run("GetNonExistent", func(t *testing.T) {
		r := download.NewRegistry()

		got, ok := r.Get("nonexistent")
		assert.False(t, ok)
		assert.Nil(t, got)
	})
}

// --- QBittorrent Client Tests ---

func TestQBittorrentClient(t *testing.T) {
	t.Run("NewQBittorrent", func(t *testing.T) {
		cfg := config.DownloaderConfig{
			URL:      "http://localhost:8080",
			Username: "admin",
			Password: "password",
		}

		dl := download.NewQBittorrent("seedbox", cfg)

		assert.Equal(t, "seedbox", dl.Name())
		assert.Equal(t, "qbittorrent", dl.Type())
	})

	t.Run("WithLogger", func(t *testing.T) {
		cfg := config.DownloaderConfig{
			URL: "http://localhost:8080",
		}

		// Should not panic
		dl := download.NewQBittorrent("seedbox", cfg, download.WithLogger(zerolog.Nop()))
		assert.NotNil(t, dl)
	})

	t.Run("URLNormalization", func(t *testing.T) {
		// Trailing slashes are removed from the URL
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotContains(t, r.URL.Path, "//")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("4.5.0"))
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{
			URL: server.URL + "/",
		}

		dl := download.NewQBittorrent("seedbox", cfg)
		_ = dl.Connect(t.Context())
	})
}

// --- Login Tests ---

func TestQBittorrentLogin(t *testing.T) {
	t.Run("LoginWithCredentials_Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/v2/auth/login":
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

				err := r.ParseForm()
				assert.NoError(t, err)
				assert.Equal(t, "admin", r.FormValue("username"))
				assert.Equal(t, "password", r.FormValue("password"))

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("Ok."))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{
			URL:      server.URL,
			Username: "admin",
			Password: "password",
		}

		dl := download.NewQBittorrent("seedbox", cfg)

		err := dl.Connect(t.Context())
		require.NoError(t, err)
	})

	t.Run("LoginWithCredentials_Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v2/auth/login" {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("Fails."))
			}
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{
			URL:      server.URL,
			Username: "admin",
			Password: "wrongpassword",
		}

		dl := download.NewQBittorrent("seedbox", cfg)
		err := dl.Connect(t.Context())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "login failed")
	})

	t.Run("LoginWithoutCredentials_Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v2/app/version" {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("4.5.0"))
			}
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{
			URL:      server.URL,
			Username: "", // No credentials
			Password: "",
		}

		dl := download.NewQBittorrent("seedbox", cfg)
		err := dl.Connect(t.Context())

		require.NoError(t, err)
	})

	t.Run("LoginWithoutCredentials_Forbidden", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v2/app/version" {
				w.WriteHeader(http.StatusForbidden)
			}
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{
			URL:      server.URL,
			Username: "",
			Password: "",
		}

		dl := download.NewQBittorrent("seedbox", cfg)
		err := dl.Connect(t.Context())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "authentication required")
	})
}

// --- RemoveTorrent Tests ---

func TestQBittorrentRemoveTorrent(t *testing.T) {
	t.Run("RemoveWithFiles", func(t *testing.T) {
		var gotHashes, gotDeleteFiles string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v2/torrents/delete" {
				assert.Equal(t, http.MethodPost, r.Method)
				require.NoError(t, r.ParseForm())
				gotHashes = r.FormValue("hashes")
				gotDeleteFiles = r.FormValue("deleteFiles")
				w.WriteHeader(http.StatusOK)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{URL: server.URL}
		dl := download.NewQBittorrent("seedbox", cfg)

		err := dl.RemoveTorrent(t.Context(), "abc123", true)
		require.NoError(t, err)
		assert.Equal(t, "abc123", gotHashes)
		assert.Equal(t, "true", gotDeleteFiles)
	})

	t.Run("RemoveKeepingFiles", func(t *testing.T) {
		var gotDeleteFiles string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v2/torrents/delete" {
				require.NoError(t, r.ParseForm())
				gotDeleteFiles = r.FormValue("deleteFiles")
				w.WriteHeader(http.StatusOK)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{URL: server.URL}
		dl := download.NewQBittorrent("seedbox", cfg)

		err := dl.RemoveTorrent(t.Context(), "abc123", false)
		require.NoError(t, err)
		assert.Equal(t, "false", gotDeleteFiles)
	})

	t.Run("RemoveServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{URL: server.URL}
		dl := download.NewQBittorrent("seedbox", cfg)

		err := dl.RemoveTorrent(t.Context(), "abc123", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to remove torrent")
	})
}

// --- PauseTorrent Tests ---

func TestQBittorrentPauseTorrent(t *testing.T) {
	t.Run("PauseViaLegacyEndpoint", func(t *testing.T) {
		var gotHashes string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v2/torrents/pause" {
				require.NoError(t, r.ParseForm())
				gotHashes = r.FormValue("hashes")
				w.WriteHeader(http.StatusOK)
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{URL: server.URL}
		dl := download.NewQBittorrent("seedbox", cfg)

		err := dl.PauseTorrent(t.Context(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, "abc123", gotHashes)
	})

	t.Run("PauseFallsBackToStop", func(t *testing.T) {
		// qBittorrent v5 removed torrents/pause in favor of torrents/stop
		var stopCalled bool

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/v2/torrents/pause":
				w.WriteHeader(http.StatusNotFound)
			case "/api/v2/torrents/stop":
				stopCalled = true
				w.WriteHeader(http.StatusOK)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{URL: server.URL}
		dl := download.NewQBittorrent("seedbox", cfg)

		err := dl.PauseTorrent(t.Context(), "abc123")
		require.NoError(t, err)
		assert.True(t, stopCalled)
	})

	t.Run("PauseServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		cfg := config.DownloaderConfig{URL: server.URL}
		dl := download.NewQBittorrent("seedbox", cfg)

		err := dl.PauseTorrent(t.Context(), "abc123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to pause torrent")
	})
}

// --- Close Tests ---

func TestQBittorrentClose(t *testing.T) {
	t.Run("CloseWithoutConnection", func(t *testing.T) {
		cfg := config.DownloaderConfig{URL: "http://localhost:8080"}
		dl := download.NewQBittorrent("seedbox", cfg)

		// Should not panic or error when closing without connecting
		err := dl.Close()
		assert.NoError(t, err)
	})
}
