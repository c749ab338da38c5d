// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeletionEntriesColumns holds the columns for the "deletion_entries" table.
	DeletionEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "unique_key", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "media_kind", Type: field.TypeEnum, Enums: []string{"movie", "series"}, Default: "movie"},
		{Name: "path", Type: field.TypeString, Default: ""},
		{Name: "tmdb_id", Type: field.TypeInt, Default: 0},
		{Name: "season", Type: field.TypeString, Default: ""},
		{Name: "episode", Type: field.TypeString, Default: ""},
		{Name: "image_url", Type: field.TypeString, Default: ""},
		{Name: "deleted_at", Type: field.TypeTime},
	}
	// DeletionEntriesTable holds the schema information for the "deletion_entries" table.
	DeletionEntriesTable = &schema.Table{
		Name:       "deletion_entries",
		Columns:    DeletionEntriesColumns,
		PrimaryKey: []*schema.Column{DeletionEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deletionentry_unique_key",
				Unique:  true,
				Columns: []*schema.Column{DeletionEntriesColumns[3]},
			},
			{
				Name:    "deletionentry_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{DeletionEntriesColumns[11]},
			},
		},
	}
	// DownloadFilesColumns holds the columns for the "download_files" table.
	DownloadFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "download_hash", Type: field.TypeString},
		{Name: "downloader", Type: field.TypeString, Default: ""},
		{Name: "file_path", Type: field.TypeString},
		{Name: "full_path", Type: field.TypeString},
		{Name: "state", Type: field.TypeInt, Default: 0},
	}
	// DownloadFilesTable holds the schema information for the "download_files" table.
	DownloadFilesTable = &schema.Table{
		Name:       "download_files",
		Columns:    DownloadFilesColumns,
		PrimaryKey: []*schema.Column{DownloadFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "downloadfile_download_hash",
				Unique:  false,
				Columns: []*schema.Column{DownloadFilesColumns[3]},
			},
			{
				Name:    "downloadfile_full_path",
				Unique:  false,
				Columns: []*schema.Column{DownloadFilesColumns[6]},
			},
		},
	}
	// ScanMarksColumns holds the columns for the "scan_marks" table.
	ScanMarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "server", Type: field.TypeString},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// ScanMarksTable holds the schema information for the "scan_marks" table.
	ScanMarksTable = &schema.Table{
		Name:       "scan_marks",
		Columns:    ScanMarksColumns,
		PrimaryKey: []*schema.Column{ScanMarksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scanmark_server",
				Unique:  true,
				Columns: []*schema.Column{ScanMarksColumns[3]},
			},
		},
	}
	// SeedLinksColumns holds the columns for the "seed_links" table.
	SeedLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "collaborator", Type: field.TypeString, Default: ""},
		{Name: "root_hash", Type: field.TypeString},
		{Name: "links", Type: field.TypeString, Default: "[]"},
	}
	// SeedLinksTable holds the schema information for the "seed_links" table.
	SeedLinksTable = &schema.Table{
		Name:       "seed_links",
		Columns:    SeedLinksColumns,
		PrimaryKey: []*schema.Column{SeedLinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "seedlink_collaborator_root_hash",
				Unique:  true,
				Columns: []*schema.Column{SeedLinksColumns[3], SeedLinksColumns[4]},
			},
		},
	}
	// TransferRecordsColumns holds the columns for the "transfer_records" table.
	TransferRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "media_kind", Type: field.TypeEnum, Enums: []string{"movie", "series"}, Default: "movie"},
		{Name: "title", Type: field.TypeString},
		{Name: "dest_path", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString, Default: ""},
		{Name: "tmdb_id", Type: field.TypeInt, Default: 0},
		{Name: "season", Type: field.TypeString, Default: ""},
		{Name: "episode", Type: field.TypeString, Default: ""},
		{Name: "download_hash", Type: field.TypeString, Default: ""},
		{Name: "downloader", Type: field.TypeString, Default: ""},
		{Name: "transferred_at", Type: field.TypeTime},
		{Name: "image_url", Type: field.TypeString, Default: ""},
	}
	// TransferRecordsTable holds the schema information for the "transfer_records" table.
	TransferRecordsTable = &schema.Table{
		Name:       "transfer_records",
		Columns:    TransferRecordsColumns,
		PrimaryKey: []*schema.Column{TransferRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transferrecord_dest_path",
				Unique:  false,
				Columns: []*schema.Column{TransferRecordsColumns[5]},
			},
			{
				Name:    "transferrecord_tmdb_id_media_kind",
				Unique:  false,
				Columns: []*schema.Column{TransferRecordsColumns[7], TransferRecordsColumns[3]},
			},
			{
				Name:    "transferrecord_download_hash",
				Unique:  false,
				Columns: []*schema.Column{TransferRecordsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeletionEntriesTable,
		DownloadFilesTable,
		ScanMarksTable,
		SeedLinksTable,
		TransferRecordsTable,
	}
)

func init() {
	DeletionEntriesTable.Annotation = &entsql.Annotation{
		Table: "deletion_entries",
	}
	DownloadFilesTable.Annotation = &entsql.Annotation{
		Table: "download_files",
	}
	ScanMarksTable.Annotation = &entsql.Annotation{
		Table: "scan_marks",
	}
	SeedLinksTable.Annotation = &entsql.Annotation{
		Table: "seed_links",
	}
	TransferRecordsTable.Annotation = &entsql.Annotation{
		Table: "transfer_records",
	}
}
