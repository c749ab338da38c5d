// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeletionEntry is the predicate function for deletionentry builders.
type DeletionEntry func(*sql.Selector)

// DownloadFile is the predicate function for downloadfile builders.
type DownloadFile func(*sql.Selector)

// ScanMark is the predicate function for scanmark builders.
type ScanMark func(*sql.Selector)

// SeedLink is the predicate function for seedlink builders.
type SeedLink func(*sql.Selector)

// TransferRecord is the predicate function for transferrecord builders.
type TransferRecord func(*sql.Selector)
