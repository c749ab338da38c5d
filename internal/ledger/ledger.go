// Package ledger provides the persistent stores the reconciliation engine
// reads and mutates: the transfer-history ledger, the download-client file
// history, collaborator seed links, the deletion log, and log-scan marks.
package ledger

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// MediaKind classifies a transferred item.
type MediaKind string

// Media kinds.
const (
	KindMovie  MediaKind = "movie"
	KindSeries MediaKind = "series"
)

// StateKept marks a download file the user opted to retain. A torrent with
// any kept file is paused instead of removed.
const StateKept = 1

// TransferRecord is one row of the transfer ledger: a media file moved into
// the library. DestPath is the join key against canonicalized deletion events.
type TransferRecord struct {
	ID            ulid.ULID
	MediaKind     MediaKind
	Title         string
	DestPath      string
	SourcePath    string
	TmdbID        int
	Season        string // zero-padded token, e.g. "S01"
	Episode       string // token, e.g. "E3"
	DownloadHash  string
	Downloader    string
	TransferredAt time.Time
	ImageURL      string
}

// TransferQuery selects transfer records by exact field values. Zero-valued
// fields are unconstrained.
type TransferQuery struct {
	MediaKind MediaKind
	TmdbID    int
	DestPath  string
	Season    string
	Episode   string
}

// DownloadFile is one file a download client associates with a torrent.
// The ULID id doubles as registration order: files of a torrent registered
// later sort strictly after files of an earlier one.
type DownloadFile struct {
	ID           ulid.ULID
	DownloadHash string
	Downloader   string
	FilePath     string
	FullPath     string
	State        int
}

// Kept reports whether the user flagged the file as retained.
func (f DownloadFile) Kept() bool {
	return f.State == StateKept
}

// DeletionEntry is one row of the deletion log. UniqueKey is
// "title:tmdbid:timestamp" and lets users remove the entry via the API.
type DeletionEntry struct {
	UniqueKey string
	Title     string
	MediaKind MediaKind
	Path      string
	Season    string
	Episode   string
	TmdbID    int
	ImageURL  string
	DeletedAt time.Time
}
