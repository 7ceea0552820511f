package store

import (
	"context"
	"errors"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
)

// ErrRowNotFound is returned when a row handle no longer addresses a row.
var ErrRowNotFound = errors.New("row not found")

// RecordStore defines the interface for the archive tables.
//
// List operations return rows in stored order with Seq set to the row
// handle. Delete operations accept row handles obtained from the latest
// List call and remove rows from the highest position to the lowest.
type RecordStore interface {
	// Lifecycle
	Connect(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) error
	Health(ctx context.Context) error

	// FILECASE operations
	ListFiles(ctx context.Context) ([]models.FileCase, error)
	AppendFile(ctx context.Context, file *models.FileCase) error
	UpdateFile(ctx context.Context, file *models.FileCase) error
	DeleteFiles(ctx context.Context, seqs []uint) error

	// RACK_LOOKUP operations
	ListRackEntries(ctx context.Context) ([]models.RackEntry, error)
	AppendRackEntry(ctx context.Context, entry *models.RackEntry) error
	DeleteRackEntries(ctx context.Context, seqs []uint) error

	// CATEGORY and TYPE operations
	ListCategories(ctx context.Context) ([]models.Category, error)
	AppendCategory(ctx context.Context, category *models.Category) error
	ListTypes(ctx context.Context) ([]models.FileType, error)
	AppendType(ctx context.Context, fileType *models.FileType) error

	// LOG operations
	CountLogs(ctx context.Context) (int, error)
	AppendLog(ctx context.Context, entry *models.LogEntry) error
}
