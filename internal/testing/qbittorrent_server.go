package testing

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// FakeTorrent represents a torrent in the mock qBittorrent server.
type FakeTorrent struct {
	Hash  string
	Name  string
	State string // "uploading", "pausedUP", etc.
}

// TorrentCall records one disposal call the mock server received.
type TorrentCall struct {
	Endpoint    string // "delete", "pause", or "stop"
	Hashes      []string
	DeleteFiles bool
	Timestamp   time.Time
}

// Call channel buffer size for QBittorrentServer.
const qbCallBufferSize = 100

// QBittorrentServer is a mock qBittorrent API server for testing. It serves
// the auth, version, and torrent-disposal endpoints the downloader client
// uses, and records every disposal call.
type QBittorrentServer struct {
	*httptest.Server

	mu       sync.RWMutex
	torrents map[string]*FakeTorrent
	calls    []TorrentCall

	// v5Endpoints switches the pause endpoint from torrents/pause to
	// torrents/stop, mimicking the qBittorrent v5 API rename.
	v5Endpoints bool

	// callCh is used to notify waiters when a new call is received
	callCh chan TorrentCall
}

// NewQBittorrentServer creates a new mock qBittorrent server.
func NewQBittorrentServer() *QBittorrentServer {
	s := &QBittorrentServer{
		torrents: make(map[string]*FakeTorrent),
		callCh:   make(chan TorrentCall, qbCallBufferSize),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v2/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/v2/app/version", s.handleVersion)
	mux.HandleFunc("POST /api/v2/torrents/delete", s.handleDelete)
	mux.HandleFunc("POST /api/v2/torrents/pause", s.handlePause)
	mux.HandleFunc("POST /api/v2/torrents/stop", s.handleStop)

	s.Server = httptest.NewServer(mux)
	return s
}

// UseV5Endpoints makes the server reject torrents/pause with 404 so clients
// fall back to torrents/stop.
func (s *QBittorrentServer) UseV5Endpoints() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v5Endpoints = true
}

// AddTorrent adds a torrent to the mock server.
func (s *QBittorrentServer) AddTorrent(t *FakeTorrent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.torrents[t.Hash] = t
}

// GetTorrent returns a torrent by hash, or nil when it has been deleted.
func (s *QBittorrentServer) GetTorrent(hash string) *FakeTorrent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.torrents[hash]
}

// GetCalls returns all disposal calls received by the server.
func (s *QBittorrentServer) GetCalls() []TorrentCall {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]TorrentCall, len(s.calls))
	copy(result, s.calls)
	return result
}

// WaitForCall waits for a call to the named endpoint that includes hash.
// Returns the call or an error if the timeout is reached.
func (s *QBittorrentServer) WaitForCall(endpoint, hash string, timeout time.Duration) (*TorrentCall, error) {
	// First check if we already have the call
	s.mu.RLock()
	for _, call := range s.calls {
		if call.Endpoint == endpoint && containsHash(call.Hashes, hash) {
			s.mu.RUnlock()
			return &call, nil
		}
	}
	s.mu.RUnlock()

	// Wait for new calls
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case call := <-s.callCh:
			if call.Endpoint == endpoint && containsHash(call.Hashes, hash) {
				return &call, nil
			}
		case <-timer.C:
			return nil, &WaitTimeoutError{
				What:    endpoint + " of " + hash,
				Timeout: timeout,
			}
		}
	}
}

// Reset clears all torrents and recorded calls.
func (s *QBittorrentServer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.torrents = make(map[string]*FakeTorrent)
	s.calls = nil

	// Drain the call channel
	for {
		select {
		case <-s.callCh:
		default:
			return
		}
	}
}

func containsHash(hashes []string, hash string) bool {
	for _, h := range hashes {
		if h == hash {
			return true
		}
	}
	return false
}

// handleLogin handles POST /api/v2/auth/login.
func (s *QBittorrentServer) handleLogin(w http.ResponseWriter, _ *http.Request) {
	// Always succeed - we don't care about auth in tests
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Ok."))
}

// handleVersion handles GET /api/v2/app/version.
func (s *QBittorrentServer) handleVersion(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("v4.6.0"))
}

// handleDelete handles POST /api/v2/torrents/delete.
func (s *QBittorrentServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	hashes, deleteFiles := parseDisposalForm(r)

	s.mu.Lock()
	for _, h := range hashes {
		delete(s.torrents, h)
	}
	s.mu.Unlock()

	s.record(TorrentCall{
		Endpoint:    "delete",
		Hashes:      hashes,
		DeleteFiles: deleteFiles,
		Timestamp:   time.Now(),
	})

	w.WriteHeader(http.StatusOK)
}

// handlePause handles POST /api/v2/torrents/pause.
func (s *QBittorrentServer) handlePause(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	v5 := s.v5Endpoints
	s.mu.RUnlock()

	if v5 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	s.pauseTorrents(r, "pause")
	w.WriteHeader(http.StatusOK)
}

// handleStop handles POST /api/v2/torrents/stop (the v5 rename of pause).
func (s *QBittorrentServer) handleStop(w http.ResponseWriter, r *http.Request) {
	s.pauseTorrents(r, "stop")
	w.WriteHeader(http.StatusOK)
}

func (s *QBittorrentServer) pauseTorrents(r *http.Request, endpoint string) {
	hashes, _ := parseDisposalForm(r)

	s.mu.Lock()
	for _, h := range hashes {
		if t, ok := s.torrents[h]; ok {
			t.State = "pausedUP"
		}
	}
	s.mu.Unlock()

	s.record(TorrentCall{
		Endpoint:  endpoint,
		Hashes:    hashes,
		Timestamp: time.Now(),
	})
}

func (s *QBittorrentServer) record(call TorrentCall) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()

	// Notify waiters (non-blocking)
	select {
	case s.callCh <- call:
	default:
		// Channel full, call is still recorded
	}
}

func parseDisposalForm(r *http.Request) (hashes []string, deleteFiles bool) {
	_ = r.ParseForm()

	raw := r.PostFormValue("hashes")
	if raw != "" {
		hashes = strings.Split(raw, "|")
	}
	deleteFiles = r.PostFormValue("deleteFiles") == "true"
	return hashes, deleteFiles
}
