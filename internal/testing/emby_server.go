package testing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// FakeLogFile is one log file served by the mock Emby server.
type FakeLogFile struct {
	Name         string
	Content      string
	DateModified time.Time
}

// EmbyServer is a mock Emby/Jellyfin API server for testing. It serves the
// System/Info and System/Logs endpoints the log scanner uses, and enforces
// the X-Emby-Token header when a token is configured.
type EmbyServer struct {
	*httptest.Server

	mu      sync.RWMutex
	name    string
	token   string
	logs    []FakeLogFile
	fetched []string
}

// NewEmbyServer creates a new mock Emby server. An empty token disables
// authentication checks.
func NewEmbyServer(name, token string) *EmbyServer {
	s := &EmbyServer{
		name:  name,
		token: token,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /System/Info", s.handleSystemInfo)
	mux.HandleFunc("GET /System/Logs", s.handleLogs)
	mux.HandleFunc("GET /System/Logs/Log", s.handleLog)

	s.Server = httptest.NewServer(mux)
	return s
}

// AddLog registers a log file with the server.
func (s *EmbyServer) AddLog(file FakeLogFile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, file)
}

// SetLogContent replaces the content of a registered log file.
func (s *EmbyServer) SetLogContent(name, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.logs {
		if s.logs[i].Name == name {
			s.logs[i].Content = content
			s.logs[i].DateModified = time.Now()
		}
	}
}

// FetchedLogs returns the names of every log file fetched so far, in order.
func (s *EmbyServer) FetchedLogs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.fetched))
	copy(result, s.fetched)
	return result
}

// Reset clears registered logs and the fetch record.
func (s *EmbyServer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = nil
	s.fetched = nil
}

// checkToken enforces the configured API token.
func (s *EmbyServer) checkToken(w http.ResponseWriter, r *http.Request) bool {
	if s.token == "" {
		return true
	}
	if r.Header.Get("X-Emby-Token") != s.token {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return false
	}
	return true
}

// embyInfoResponse matches the Emby System/Info response format.
type embyInfoResponse struct {
	ServerName string `json:"ServerName"`
	Version    string `json:"Version"`
}

// handleSystemInfo handles GET /System/Info.
func (s *EmbyServer) handleSystemInfo(w http.ResponseWriter, r *http.Request) {
	if !s.checkToken(w, r) {
		return
	}

	resp := embyInfoResponse{
		ServerName: s.name,
		Version:    "4.8.0.0",
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// embyLogResponse matches one entry of the Emby System/Logs response.
type embyLogResponse struct {
	Name         string    `json:"Name"`
	Size         int64     `json:"Size"`
	DateModified time.Time `json:"DateModified"`
}

// handleLogs handles GET /System/Logs.
func (s *EmbyServer) handleLogs(w http.ResponseWriter, r *http.Request) {
	if !s.checkToken(w, r) {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]embyLogResponse, 0, len(s.logs))
	for _, f := range s.logs {
		result = append(result, embyLogResponse{
			Name:         f.Name,
			Size:         int64(len(f.Content)),
			DateModified: f.DateModified,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// handleLog handles GET /System/Logs/Log?name=...
func (s *EmbyServer) handleLog(w http.ResponseWriter, r *http.Request) {
	if !s.checkToken(w, r) {
		return
	}

	name := r.URL.Query().Get("name")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.logs {
		if f.Name == name {
			s.fetched = append(s.fetched, name)
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte(f.Content))
			return
		}
	}

	http.Error(w, "log not found", http.StatusNotFound)
}

// WaitTimeoutError is returned when a wait operation times out.
type WaitTimeoutError struct {
	What    string
	Timeout time.Duration
}

func (e *WaitTimeoutError) Error() string {
	return "timeout waiting for " + e.What + " after " + e.Timeout.String()
}
