package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/migrations"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteStore implements RecordStore using SQLite
type SQLiteStore struct {
	db   *gorm.DB
	path string
}

// DB returns the underlying GORM database instance
func (s *SQLiteStore) DB() *gorm.DB {
	return s.db
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path     string
	LogLevel logger.LogLevel
}

// NewSQLiteStore creates a new SQLite-backed record store
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	// Default to silent logging
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Silent
	}

	if err := ensureDir(cfg.Path); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		path: cfg.Path,
	}, nil
}

// ensureDir creates the parent directory of a file database. In-memory
// databases and file: URIs are left to the driver.
func ensureDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create sqlite directory: %w", err)
	}
	return nil
}

// Connect initializes the database connection
func (s *SQLiteStore) Connect(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// SQLite only supports 1 writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

// Migrate runs all pending schema migrations
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	return migrations.NewMigrator(s.db).Migrate(ctx)
}

// Health checks database connectivity
func (s *SQLiteStore) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// FILECASE operations

func (s *SQLiteStore) ListFiles(ctx context.Context) ([]models.FileCase, error) {
	var files []models.FileCase
	err := s.db.WithContext(ctx).Order("seq ASC").Find(&files).Error
	return files, err
}

func (s *SQLiteStore) AppendFile(ctx context.Context, file *models.FileCase) error {
	file.Seq = 0
	return s.db.WithContext(ctx).Create(file).Error
}

func (s *SQLiteStore) UpdateFile(ctx context.Context, file *models.FileCase) error {
	result := s.db.WithContext(ctx).
		Model(&models.FileCase{}).
		Where("seq = ?", file.Seq).
		Updates(map[string]any{
			"file_id":       file.ID,
			"year":          file.Year,
			"category":      file.Category,
			"type":          file.Type,
			"kotak":         file.Kotak,
			"ref_file":      file.RefFile,
			"client_name":   file.ClientName,
			"phone_client":  file.PhoneClient,
			"barcode_no":    file.BarcodeNo,
			"safekeeping":   file.Safekeeping,
			"agent_details": file.AgentDetail,
			"pic":           file.PIC,
			"bank":          file.Bank,
			"location":      file.Location,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("filecase row %d: %w", file.Seq, ErrRowNotFound)
	}
	return nil
}

func (s *SQLiteStore) DeleteFiles(ctx context.Context, seqs []uint) error {
	return s.deleteBySeq(ctx, &models.FileCase{}, seqs)
}

// RACK_LOOKUP operations

func (s *SQLiteStore) ListRackEntries(ctx context.Context) ([]models.RackEntry, error) {
	var entries []models.RackEntry
	err := s.db.WithContext(ctx).Order("seq ASC").Find(&entries).Error
	return entries, err
}

func (s *SQLiteStore) AppendRackEntry(ctx context.Context, entry *models.RackEntry) error {
	entry.Seq = 0
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *SQLiteStore) DeleteRackEntries(ctx context.Context, seqs []uint) error {
	return s.deleteBySeq(ctx, &models.RackEntry{}, seqs)
}

// CATEGORY and TYPE operations

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("seq ASC").Find(&categories).Error
	return categories, err
}

func (s *SQLiteStore) AppendCategory(ctx context.Context, category *models.Category) error {
	category.Seq = 0
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *SQLiteStore) ListTypes(ctx context.Context) ([]models.FileType, error) {
	var types []models.FileType
	err := s.db.WithContext(ctx).Order("seq ASC").Find(&types).Error
	return types, err
}

func (s *SQLiteStore) AppendType(ctx context.Context, fileType *models.FileType) error {
	fileType.Seq = 0
	return s.db.WithContext(ctx).Create(fileType).Error
}

// LOG operations

func (s *SQLiteStore) CountLogs(ctx context.Context) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.LogEntry{}).Count(&count).Error
	return int(count), err
}

func (s *SQLiteStore) AppendLog(ctx context.Context, entry *models.LogEntry) error {
	entry.Seq = 0
	return s.db.WithContext(ctx).Create(entry).Error
}

// deleteBySeq removes every addressed row in one statement. Row handles are
// primary keys here, so no ordering is needed between the removals.
func (s *SQLiteStore) deleteBySeq(ctx context.Context, model any, seqs []uint) error {
	seqs = descending(seqs)
	if len(seqs) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("seq IN ?", seqs).Delete(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(seqs)) {
			return fmt.Errorf("deleted %d of %d rows: %w", result.RowsAffected, len(seqs), ErrRowNotFound)
		}
		return nil
	})
}
