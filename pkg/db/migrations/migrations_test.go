package migrations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migrations.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestMigrator_MigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	m := NewMigrator(db)
	ctx := context.Background()

	require.NoError(t, m.Migrate(ctx))
	require.NoError(t, m.Migrate(ctx))

	for _, model := range []any{&models.FileCase{}, &models.RackEntry{}, &models.Category{}, &models.FileType{}, &models.LogEntry{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}

	statuses, err := m.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.True(t, s.Applied, "migration %d should be applied", s.Version)
	}
}

func TestMigrator_Rollback(t *testing.T) {
	db := openTestDB(t)
	m := NewMigrator(db)
	ctx := context.Background()

	require.NoError(t, m.Migrate(ctx))

	reverted, err := m.Rollback(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reverted.Version)

	reverted, err = m.Rollback(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reverted.Version)
	assert.False(t, db.Migrator().HasTable(&models.FileCase{}))

	_, err = m.Rollback(ctx)
	assert.Error(t, err)

	statuses, err := m.Status(ctx)
	require.NoError(t, err)
	for _, s := range statuses {
		assert.False(t, s.Applied)
	}
}
