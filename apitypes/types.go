// Package apitypes provides wire types for the MediaReap HTTP API and the
// deletion notifications it ingests.
package apitypes

import "time"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Response is a generic success/failure envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WebhookPayload is the notification body posted by Emby/Jellyfin webhooks.
// Only deletion events (Event == "library.deleted") are acted on; every
// other event type is dropped silently.
type WebhookPayload struct {
	Event     string `json:"Event"`
	ItemType  string `json:"ItemType"`
	ItemName  string `json:"ItemName"`
	ItemPath  string `json:"ItemPath"`
	TmdbID    int64  `json:"TmdbId,omitempty"`
	SeasonID  *int   `json:"SeasonId,omitempty"`
	EpisodeID *int   `json:"EpisodeId,omitempty"`
	UtcDate   string `json:"UtcTimestamp,omitempty"`
}

// ActionPayload is the generic plugin-to-plugin deletion action. It carries
// the same facts as the webhook payload under different field names and is
// only acted on when Action == "media.deleted".
type ActionPayload struct {
	Action    string `json:"action"`
	MediaType string `json:"media_type"`
	MediaName string `json:"media_name"`
	MediaPath string `json:"media_path"`
	TmdbID    int64  `json:"tmdb_id,omitempty"`
	Season    *int   `json:"season_num,omitempty"`
	Episode   *int   `json:"episode_num,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// DeletionNotice is the normalized deletion notification published on the
// event bus by the webhook handler, the action handler, and the log scanner.
type DeletionNotice struct {
	MediaType string    `json:"media_type"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	TmdbID    int64     `json:"tmdb_id,omitempty"`
	Season    *int      `json:"season,omitempty"`
	Episode   *int      `json:"episode,omitempty"`
	Time      time.Time `json:"time,omitempty"`
	Origin    string    `json:"origin"`
}

// HistoryEntry is one row of the deletion history returned by the API.
type HistoryEntry struct {
	UniqueKey string    `json:"unique_key"`
	Title     string    `json:"title"`
	MediaType string    `json:"media_type"`
	Path      string    `json:"path"`
	Season    string    `json:"season,omitempty"`
	Episode   string    `json:"episode,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	DeletedAt time.Time `json:"deleted_at"`
}

// Stats summarizes reconciliation activity.
type Stats struct {
	LedgerRecords   int `json:"ledger_records"`
	HistoryEntries  int `json:"history_entries"`
	EventsProcessed int `json:"events_processed"`
	RecordsDeleted  int `json:"records_deleted"`
	TorrentsRemoved int `json:"torrents_removed"`
	TorrentsPaused  int `json:"torrents_paused"`
	EventsSkipped   int `json:"events_skipped"`
	Errors          int `json:"errors"`
}

// TorrentLink identifies a torrent on a specific download client. Seed-link
// records store a JSON array of these per cross-seeded root hash.
type TorrentLink struct {
	Downloader string `json:"downloader"`
	Hash       string `json:"hash"`
}

// MediaServer represents a configured media server.
type MediaServer struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// DownloadClient represents a configured download client.
type DownloadClient struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
