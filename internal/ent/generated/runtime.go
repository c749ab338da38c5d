// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/mediareap/mediareap/internal/ent/generated/deletionentry"
	"github.com/mediareap/mediareap/internal/ent/generated/downloadfile"
	"github.com/mediareap/mediareap/internal/ent/generated/scanmark"
	"github.com/mediareap/mediareap/internal/ent/generated/seedlink"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"
	"github.com/mediareap/mediareap/internal/ent/schema"
	ulid "github.com/oklog/ulid/v2"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	deletionentryMixin := schema.DeletionEntry{}.Mixin()
	deletionentryMixinFields0 := deletionentryMixin[0].Fields()
	_ = deletionentryMixinFields0
	deletionentryMixinFields1 := deletionentryMixin[1].Fields()
	_ = deletionentryMixinFields1
	deletionentryFields := schema.DeletionEntry{}.Fields()
	_ = deletionentryFields
	// deletionentryDescCreatedAt is the schema descriptor for created_at field.
	deletionentryDescCreatedAt := deletionentryMixinFields1[0].Descriptor()
	// deletionentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	deletionentry.DefaultCreatedAt = deletionentryDescCreatedAt.Default.(func() time.Time)
	// deletionentryDescUpdatedAt is the schema descriptor for updated_at field.
	deletionentryDescUpdatedAt := deletionentryMixinFields1[1].Descriptor()
	// deletionentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deletionentry.DefaultUpdatedAt = deletionentryDescUpdatedAt.Default.(func() time.Time)
	// deletionentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deletionentry.UpdateDefaultUpdatedAt = deletionentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// deletionentryDescPath is the schema descriptor for path field.
	deletionentryDescPath := deletionentryFields[3].Descriptor()
	// deletionentry.DefaultPath holds the default value on creation for the path field.
	deletionentry.DefaultPath = deletionentryDescPath.Default.(string)
	// deletionentryDescTmdbID is the schema descriptor for tmdb_id field.
	deletionentryDescTmdbID := deletionentryFields[4].Descriptor()
	// deletionentry.DefaultTmdbID holds the default value on creation for the tmdb_id field.
	deletionentry.DefaultTmdbID = deletionentryDescTmdbID.Default.(int)
	// deletionentryDescSeason is the schema descriptor for season field.
	deletionentryDescSeason := deletionentryFields[5].Descriptor()
	// deletionentry.DefaultSeason holds the default value on creation for the season field.
	deletionentry.DefaultSeason = deletionentryDescSeason.Default.(string)
	// deletionentryDescEpisode is the schema descriptor for episode field.
	deletionentryDescEpisode := deletionentryFields[6].Descriptor()
	// deletionentry.DefaultEpisode holds the default value on creation for the episode field.
	deletionentry.DefaultEpisode = deletionentryDescEpisode.Default.(string)
	// deletionentryDescImageURL is the schema descriptor for image_url field.
	deletionentryDescImageURL := deletionentryFields[7].Descriptor()
	// deletionentry.DefaultImageURL holds the default value on creation for the image_url field.
	deletionentry.DefaultImageURL = deletionentryDescImageURL.Default.(string)
	// deletionentryDescID is the schema descriptor for id field.
	deletionentryDescID := deletionentryMixinFields0[0].Descriptor()
	// deletionentry.DefaultID holds the default value on creation for the id field.
	deletionentry.DefaultID = deletionentryDescID.Default.(func() ulid.ULID)
	downloadfileMixin := schema.DownloadFile{}.Mixin()
	downloadfileMixinFields0 := downloadfileMixin[0].Fields()
	_ = downloadfileMixinFields0
	downloadfileMixinFields1 := downloadfileMixin[1].Fields()
	_ = downloadfileMixinFields1
	downloadfileFields := schema.DownloadFile{}.Fields()
	_ = downloadfileFields
	// downloadfileDescCreatedAt is the schema descriptor for created_at field.
	downloadfileDescCreatedAt := downloadfileMixinFields1[0].Descriptor()
	// downloadfile.DefaultCreatedAt holds the default value on creation for the created_at field.
	downloadfile.DefaultCreatedAt = downloadfileDescCreatedAt.Default.(func() time.Time)
	// downloadfileDescUpdatedAt is the schema descriptor for updated_at field.
	downloadfileDescUpdatedAt := downloadfileMixinFields1[1].Descriptor()
	// downloadfile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	downloadfile.DefaultUpdatedAt = downloadfileDescUpdatedAt.Default.(func() time.Time)
	// downloadfile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	downloadfile.UpdateDefaultUpdatedAt = downloadfileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// downloadfileDescDownloader is the schema descriptor for downloader field.
	downloadfileDescDownloader := downloadfileFields[1].Descriptor()
	// downloadfile.DefaultDownloader holds the default value on creation for the downloader field.
	downloadfile.DefaultDownloader = downloadfileDescDownloader.Default.(string)
	// downloadfileDescState is the schema descriptor for state field.
	downloadfileDescState := downloadfileFields[4].Descriptor()
	// downloadfile.DefaultState holds the default value on creation for the state field.
	downloadfile.DefaultState = downloadfileDescState.Default.(int)
	// downloadfileDescID is the schema descriptor for id field.
	downloadfileDescID := downloadfileMixinFields0[0].Descriptor()
	// downloadfile.DefaultID holds the default value on creation for the id field.
	downloadfile.DefaultID = downloadfileDescID.Default.(func() ulid.ULID)
	scanmarkMixin := schema.ScanMark{}.Mixin()
	scanmarkMixinFields0 := scanmarkMixin[0].Fields()
	_ = scanmarkMixinFields0
	scanmarkMixinFields1 := scanmarkMixin[1].Fields()
	_ = scanmarkMixinFields1
	scanmarkFields := schema.ScanMark{}.Fields()
	_ = scanmarkFields
	// scanmarkDescCreatedAt is the schema descriptor for created_at field.
	scanmarkDescCreatedAt := scanmarkMixinFields1[0].Descriptor()
	// scanmark.DefaultCreatedAt holds the default value on creation for the created_at field.
	scanmark.DefaultCreatedAt = scanmarkDescCreatedAt.Default.(func() time.Time)
	// scanmarkDescUpdatedAt is the schema descriptor for updated_at field.
	scanmarkDescUpdatedAt := scanmarkMixinFields1[1].Descriptor()
	// scanmark.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scanmark.DefaultUpdatedAt = scanmarkDescUpdatedAt.Default.(func() time.Time)
	// scanmark.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scanmark.UpdateDefaultUpdatedAt = scanmarkDescUpdatedAt.UpdateDefault.(func() time.Time)
	// scanmarkDescID is the schema descriptor for id field.
	scanmarkDescID := scanmarkMixinFields0[0].Descriptor()
	// scanmark.DefaultID holds the default value on creation for the id field.
	scanmark.DefaultID = scanmarkDescID.Default.(func() ulid.ULID)
	seedlinkMixin := schema.SeedLink{}.Mixin()
	seedlinkMixinFields0 := seedlinkMixin[0].Fields()
	_ = seedlinkMixinFields0
	seedlinkMixinFields1 := seedlinkMixin[1].Fields()
	_ = seedlinkMixinFields1
	seedlinkFields := schema.SeedLink{}.Fields()
	_ = seedlinkFields
	// seedlinkDescCreatedAt is the schema descriptor for created_at field.
	seedlinkDescCreatedAt := seedlinkMixinFields1[0].Descriptor()
	// seedlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	seedlink.DefaultCreatedAt = seedlinkDescCreatedAt.Default.(func() time.Time)
	// seedlinkDescUpdatedAt is the schema descriptor for updated_at field.
	seedlinkDescUpdatedAt := seedlinkMixinFields1[1].Descriptor()
	// seedlink.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	seedlink.DefaultUpdatedAt = seedlinkDescUpdatedAt.Default.(func() time.Time)
	// seedlink.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	seedlink.UpdateDefaultUpdatedAt = seedlinkDescUpdatedAt.UpdateDefault.(func() time.Time)
	// seedlinkDescCollaborator is the schema descriptor for collaborator field.
	seedlinkDescCollaborator := seedlinkFields[0].Descriptor()
	// seedlink.DefaultCollaborator holds the default value on creation for the collaborator field.
	seedlink.DefaultCollaborator = seedlinkDescCollaborator.Default.(string)
	// seedlinkDescLinks is the schema descriptor for links field.
	seedlinkDescLinks := seedlinkFields[2].Descriptor()
	// seedlink.DefaultLinks holds the default value on creation for the links field.
	seedlink.DefaultLinks = seedlinkDescLinks.Default.(string)
	// seedlinkDescID is the schema descriptor for id field.
	seedlinkDescID := seedlinkMixinFields0[0].Descriptor()
	// seedlink.DefaultID holds the default value on creation for the id field.
	seedlink.DefaultID = seedlinkDescID.Default.(func() ulid.ULID)
	transferrecordMixin := schema.TransferRecord{}.Mixin()
	transferrecordMixinFields0 := transferrecordMixin[0].Fields()
	_ = transferrecordMixinFields0
	transferrecordMixinFields1 := transferrecordMixin[1].Fields()
	_ = transferrecordMixinFields1
	transferrecordFields := schema.TransferRecord{}.Fields()
	_ = transferrecordFields
	// transferrecordDescCreatedAt is the schema descriptor for created_at field.
	transferrecordDescCreatedAt := transferrecordMixinFields1[0].Descriptor()
	// transferrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	transferrecord.DefaultCreatedAt = transferrecordDescCreatedAt.Default.(func() time.Time)
	// transferrecordDescUpdatedAt is the schema descriptor for updated_at field.
	transferrecordDescUpdatedAt := transferrecordMixinFields1[1].Descriptor()
	// transferrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transferrecord.DefaultUpdatedAt = transferrecordDescUpdatedAt.Default.(func() time.Time)
	// transferrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transferrecord.UpdateDefaultUpdatedAt = transferrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// transferrecordDescSourcePath is the schema descriptor for source_path field.
	transferrecordDescSourcePath := transferrecordFields[3].Descriptor()
	// transferrecord.DefaultSourcePath holds the default value on creation for the source_path field.
	transferrecord.DefaultSourcePath = transferrecordDescSourcePath.Default.(string)
	// transferrecordDescTmdbID is the schema descriptor for tmdb_id field.
	transferrecordDescTmdbID := transferrecordFields[4].Descriptor()
	// transferrecord.DefaultTmdbID holds the default value on creation for the tmdb_id field.
	transferrecord.DefaultTmdbID = transferrecordDescTmdbID.Default.(int)
	// transferrecordDescSeason is the schema descriptor for season field.
	transferrecordDescSeason := transferrecordFields[5].Descriptor()
	// transferrecord.DefaultSeason holds the default value on creation for the season field.
	transferrecord.DefaultSeason = transferrecordDescSeason.Default.(string)
	// transferrecordDescEpisode is the schema descriptor for episode field.
	transferrecordDescEpisode := transferrecordFields[6].Descriptor()
	// transferrecord.DefaultEpisode holds the default value on creation for the episode field.
	transferrecord.DefaultEpisode = transferrecordDescEpisode.Default.(string)
	// transferrecordDescDownloadHash is the schema descriptor for download_hash field.
	transferrecordDescDownloadHash := transferrecordFields[7].Descriptor()
	// transferrecord.DefaultDownloadHash holds the default value on creation for the download_hash field.
	transferrecord.DefaultDownloadHash = transferrecordDescDownloadHash.Default.(string)
	// transferrecordDescDownloader is the schema descriptor for downloader field.
	transferrecordDescDownloader := transferrecordFields[8].Descriptor()
	// transferrecord.DefaultDownloader holds the default value on creation for the downloader field.
	transferrecord.DefaultDownloader = transferrecordDescDownloader.Default.(string)
	// transferrecordDescImageURL is the schema descriptor for image_url field.
	transferrecordDescImageURL := transferrecordFields[10].Descriptor()
	// transferrecord.DefaultImageURL holds the default value on creation for the image_url field.
	transferrecord.DefaultImageURL = transferrecordDescImageURL.Default.(string)
	// transferrecordDescID is the schema descriptor for id field.
	transferrecordDescID := transferrecordMixinFields0[0].Descriptor()
	// transferrecord.DefaultID holds the default value on creation for the id field.
	transferrecord.DefaultID = transferrecordDescID.Default.(func() ulid.ULID)
}
