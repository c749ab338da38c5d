package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mediareap/mediareap/apitypes"
	"github.com/mediareap/mediareap/internal/ent/generated"
	"github.com/mediareap/mediareap/internal/ent/generated/deletionentry"
	"github.com/mediareap/mediareap/internal/ent/generated/downloadfile"
	"github.com/mediareap/mediareap/internal/ent/generated/scanmark"
	"github.com/mediareap/mediareap/internal/ent/generated/seedlink"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"
)

// TransferStore reads and deletes transfer ledger rows.
type TransferStore struct {
	db *generated.Client
}

// NewTransferStore creates a TransferStore backed by the given client.
func NewTransferStore(db *generated.Client) *TransferStore {
	return &TransferStore{db: db}
}

// Find returns all records matching the query's non-zero fields.
func (s *TransferStore) Find(ctx context.Context, q TransferQuery) ([]TransferRecord, error) {
	query := s.db.TransferRecord.Query()
	if q.MediaKind != "" {
		query = query.Where(transferrecord.MediaKindEQ(transferrecord.MediaKind(q.MediaKind)))
	}
	if q.TmdbID != 0 {
		query = query.Where(transferrecord.TmdbIDEQ(q.TmdbID))
	}
	if q.DestPath != "" {
		query = query.Where(transferrecord.DestPathEQ(q.DestPath))
	}
	if q.Season != "" {
		query = query.Where(transferrecord.SeasonEQ(q.Season))
	}
	if q.Episode != "" {
		query = query.Where(transferrecord.EpisodeEQ(q.Episode))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer records: %w", err)
	}

	records := make([]TransferRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, transferFromRow(row))
	}
	return records, nil
}

// Delete removes one ledger row. Deleting a row that is already gone is not
// an error; a concurrent reconciliation may have won the race.
func (s *TransferStore) Delete(ctx context.Context, id ulid.ULID) error {
	err := s.db.TransferRecord.DeleteOneID(id).Exec(ctx)
	if err != nil && !generated.IsNotFound(err) {
		return fmt.Errorf("failed to delete transfer record %s: %w", id, err)
	}
	return nil
}

// Count returns the number of ledger rows.
func (s *TransferStore) Count(ctx context.Context) (int, error) {
	return s.db.TransferRecord.Query().Count(ctx)
}

func transferFromRow(row *generated.TransferRecord) TransferRecord {
	return TransferRecord{
		ID:            row.ID,
		MediaKind:     MediaKind(row.MediaKind),
		Title:         row.Title,
		DestPath:      row.DestPath,
		SourcePath:    row.SourcePath,
		TmdbID:        row.TmdbID,
		Season:        row.Season,
		Episode:       row.Episode,
		DownloadHash:  row.DownloadHash,
		Downloader:    row.Downloader,
		TransferredAt: row.TransferredAt,
		ImageURL:      row.ImageURL,
	}
}

// DownloadHistoryStore reads and prunes the download-client file history.
type DownloadHistoryStore struct {
	db *generated.Client
}

// NewDownloadHistoryStore creates a DownloadHistoryStore backed by the given client.
func NewDownloadHistoryStore(db *generated.Client) *DownloadHistoryStore {
	return &DownloadHistoryStore{db: db}
}

// FilesByHash returns all file rows associated with a torrent hash.
func (s *DownloadHistoryStore) FilesByHash(ctx context.Context, hash string) ([]DownloadFile, error) {
	rows, err := s.db.DownloadFile.Query().
		Where(downloadfile.DownloadHashEQ(hash)).
		Order(generated.Asc(downloadfile.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query files by hash: %w", err)
	}
	return filesFromRows(rows), nil
}

// FilesByFullPath returns all file rows sharing a source path, across torrents.
func (s *DownloadHistoryStore) FilesByFullPath(ctx context.Context, fullPath string) ([]DownloadFile, error) {
	rows, err := s.db.DownloadFile.Query().
		Where(downloadfile.FullPathEQ(fullPath)).
		Order(generated.Asc(downloadfile.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query files by path: %w", err)
	}
	return filesFromRows(rows), nil
}

// DeleteByFullPath removes all file rows for a source path.
func (s *DownloadHistoryStore) DeleteByFullPath(ctx context.Context, fullPath string) error {
	_, err := s.db.DownloadFile.Delete().
		Where(downloadfile.FullPathEQ(fullPath)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete download files: %w", err)
	}
	return nil
}

func filesFromRows(rows []*generated.DownloadFile) []DownloadFile {
	files := make([]DownloadFile, 0, len(rows))
	for _, row := range rows {
		files = append(files, DownloadFile{
			ID:           row.ID,
			DownloadHash: row.DownloadHash,
			Downloader:   row.Downloader,
			FilePath:     row.FilePath,
			FullPath:     row.FullPath,
			State:        row.State,
		})
	}
	return files
}

// SeedLinkStore reads and clears collaborator cross-seed link records.
type SeedLinkStore struct {
	db *generated.Client
}

// NewSeedLinkStore creates a SeedLinkStore backed by the given client.
func NewSeedLinkStore(db *generated.Client) *SeedLinkStore {
	return &SeedLinkStore{db: db}
}

// Get returns every torrent linked from the root hash, merged across
// collaborators. A malformed links blob fails the whole lookup; the caller
// treats store errors as cascade-stoppers for that hash only.
func (s *SeedLinkStore) Get(ctx context.Context, rootHash string) ([]apitypes.TorrentLink, error) {
	rows, err := s.db.SeedLink.Query().
		Where(seedlink.RootHashEQ(rootHash)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query seed links: %w", err)
	}

	var links []apitypes.TorrentLink
	for _, row := range rows {
		var decoded []apitypes.TorrentLink
		if err := json.Unmarshal([]byte(row.Links), &decoded); err != nil {
			return nil, fmt.Errorf("failed to decode seed links for %s: %w", rootHash, err)
		}
		links = append(links, decoded...)
	}
	return links, nil
}

// Delete clears all link records for the root hash. Called only after the
// linked torrents were fully removed.
func (s *SeedLinkStore) Delete(ctx context.Context, rootHash string) error {
	_, err := s.db.SeedLink.Delete().
		Where(seedlink.RootHashEQ(rootHash)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete seed links: %w", err)
	}
	return nil
}

// Put stores a collaborator's link record, replacing any existing record for
// the same (collaborator, root hash) pair.
func (s *SeedLinkStore) Put(ctx context.Context, collaborator, rootHash string, links []apitypes.TorrentLink) error {
	encoded, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("failed to encode seed links: %w", err)
	}

	_, err = s.db.SeedLink.Delete().
		Where(
			seedlink.CollaboratorEQ(collaborator),
			seedlink.RootHashEQ(rootHash),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to replace seed links: %w", err)
	}

	_, err = s.db.SeedLink.Create().
		SetCollaborator(collaborator).
		SetRootHash(rootHash).
		SetLinks(string(encoded)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to store seed links: %w", err)
	}
	return nil
}

// DeletionLogStore appends to and prunes the deletion log.
type DeletionLogStore struct {
	db *generated.Client
}

// NewDeletionLogStore creates a DeletionLogStore backed by the given client.
func NewDeletionLogStore(db *generated.Client) *DeletionLogStore {
	return &DeletionLogStore{db: db}
}

// Append adds one entry. An entry with the same unique key already present
// is left untouched; duplicate notifications for the same deletion happen.
func (s *DeletionLogStore) Append(ctx context.Context, entry DeletionEntry) error {
	exists, err := s.db.DeletionEntry.Query().
		Where(deletionentry.UniqueKeyEQ(entry.UniqueKey)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check deletion entry: %w", err)
	}
	if exists {
		return nil
	}

	_, err = s.db.DeletionEntry.Create().
		SetUniqueKey(entry.UniqueKey).
		SetTitle(entry.Title).
		SetMediaKind(deletionentry.MediaKind(entry.MediaKind)).
		SetPath(entry.Path).
		SetTmdbID(entry.TmdbID).
		SetSeason(entry.Season).
		SetEpisode(entry.Episode).
		SetImageURL(entry.ImageURL).
		SetDeletedAt(entry.DeletedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append deletion entry: %w", err)
	}
	return nil
}

// List returns all entries, newest first.
func (s *DeletionLogStore) List(ctx context.Context) ([]DeletionEntry, error) {
	rows, err := s.db.DeletionEntry.Query().
		Order(generated.Desc(deletionentry.FieldDeletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deletion entries: %w", err)
	}

	entries := make([]DeletionEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, DeletionEntry{
			UniqueKey: row.UniqueKey,
			Title:     row.Title,
			MediaKind: MediaKind(row.MediaKind),
			Path:      row.Path,
			Season:    row.Season,
			Episode:   row.Episode,
			TmdbID:    row.TmdbID,
			ImageURL:  row.ImageURL,
			DeletedAt: row.DeletedAt,
		})
	}
	return entries, nil
}

// DeleteByKey removes the entry with the given unique key. Removing a key
// that does not exist is not an error.
func (s *DeletionLogStore) DeleteByKey(ctx context.Context, key string) error {
	_, err := s.db.DeletionEntry.Delete().
		Where(deletionentry.UniqueKeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete deletion entry: %w", err)
	}
	return nil
}

// Purge removes every entry.
func (s *DeletionLogStore) Purge(ctx context.Context) error {
	_, err := s.db.DeletionEntry.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge deletion log: %w", err)
	}
	return nil
}

// Count returns the number of entries.
func (s *DeletionLogStore) Count(ctx context.Context) (int, error) {
	return s.db.DeletionEntry.Query().Count(ctx)
}

// ScanMarkStore persists the last-processed log timestamp per media server.
type ScanMarkStore struct {
	db *generated.Client
}

// NewScanMarkStore creates a ScanMarkStore backed by the given client.
func NewScanMarkStore(db *generated.Client) *ScanMarkStore {
	return &ScanMarkStore{db: db}
}

// Get returns the mark for a server, or the zero time when none is recorded.
func (s *ScanMarkStore) Get(ctx context.Context, server string) (time.Time, error) {
	row, err := s.db.ScanMark.Query().
		Where(scanmark.ServerEQ(server)).
		Only(ctx)
	if generated.IsNotFound(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query scan mark: %w", err)
	}
	return row.LastSeen, nil
}

// Set records the mark for a server, creating or advancing it.
func (s *ScanMarkStore) Set(ctx context.Context, server string, lastSeen time.Time) error {
	row, err := s.db.ScanMark.Query().
		Where(scanmark.ServerEQ(server)).
		Only(ctx)
	switch {
	case generated.IsNotFound(err):
		_, err = s.db.ScanMark.Create().
			SetServer(server).
			SetLastSeen(lastSeen).
			Save(ctx)
	case err == nil:
		_, err = row.Update().
			SetLastSeen(lastSeen).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to set scan mark: %w", err)
	}
	return nil
}
