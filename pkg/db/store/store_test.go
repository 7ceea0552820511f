package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteTestStore(t *testing.T) RecordStore {
	t.Helper()

	s, err := NewSQLiteStore(SQLiteConfig{Path: filepath.Join(t.TempDir(), "filecase.db")})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Connect(ctx))
	require.NoError(t, s.Migrate(ctx))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func backends(t *testing.T) map[string]func(t *testing.T) RecordStore {
	return map[string]func(t *testing.T) RecordStore{
		"memory": func(t *testing.T) RecordStore { return NewMemoryStore() },
		"sqlite": newSQLiteTestStore,
	}
}

func TestRecordStore_FilesKeepStoredOrder(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			for _, ref := range []string{"REF-3", "REF-1", "REF-2"} {
				require.NoError(t, s.AppendFile(ctx, &models.FileCase{ID: "ID-" + ref, RefFile: ref}))
			}

			files, err := s.ListFiles(ctx)
			require.NoError(t, err)
			require.Len(t, files, 3)
			assert.Equal(t, "REF-3", files[0].RefFile)
			assert.Equal(t, "REF-1", files[1].RefFile)
			assert.Equal(t, "REF-2", files[2].RefFile)
			assert.Less(t, files[0].Seq, files[1].Seq)
			assert.Less(t, files[1].Seq, files[2].Seq)
		})
	}
}

func TestRecordStore_UpdateFileInPlace(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			require.NoError(t, s.AppendFile(ctx, &models.FileCase{ID: "ID1", RefFile: "A", Location: "Warehouse"}))
			require.NoError(t, s.AppendFile(ctx, &models.FileCase{ID: "ID2", RefFile: "B", Location: "Warehouse"}))

			files, err := s.ListFiles(ctx)
			require.NoError(t, err)

			target := files[0]
			target.Location = "COURT"
			target.ClientName = ""
			require.NoError(t, s.UpdateFile(ctx, &target))

			files, err = s.ListFiles(ctx)
			require.NoError(t, err)
			require.Len(t, files, 2)
			assert.Equal(t, "ID1", files[0].ID)
			assert.Equal(t, "COURT", files[0].Location)
			assert.Equal(t, "Warehouse", files[1].Location)
		})
	}
}

func TestRecordStore_UpdateMissingRow(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			err := s.UpdateFile(context.Background(), &models.FileCase{Seq: 42, ID: "ID42"})
			assert.ErrorIs(t, err, ErrRowNotFound)
		})
	}
}

func TestRecordStore_DeleteRackEntries(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			rows := []models.RackEntry{
				{ID: "IDK001", Kotak: "", Rack: "7"},
				{ID: "IDK002", Kotak: "A1", Rack: "7"},
				{ID: "IDK003", Kotak: "B1", Rack: "8"},
				{ID: "IDK004", Kotak: "C1", Rack: "7"},
			}
			for i := range rows {
				require.NoError(t, s.AppendRackEntry(ctx, &rows[i]))
			}

			entries, err := s.ListRackEntries(ctx)
			require.NoError(t, err)

			var rack7 []uint
			for _, e := range entries {
				if e.Rack == "7" {
					rack7 = append(rack7, e.Seq)
				}
			}
			require.NoError(t, s.DeleteRackEntries(ctx, rack7))

			entries, err = s.ListRackEntries(ctx)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "IDK003", entries[0].ID)
			assert.Equal(t, "B1", entries[0].Kotak)
		})
	}
}

func TestRecordStore_DeleteUnknownRow(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()
			require.NoError(t, s.AppendRackEntry(ctx, &models.RackEntry{ID: "IDK001", Kotak: "A"}))

			assert.ErrorIs(t, s.DeleteRackEntries(ctx, []uint{999}), ErrRowNotFound)
			assert.NoError(t, s.DeleteRackEntries(ctx, nil))
		})
	}
}

func TestRecordStore_LookupsAndLogs(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			require.NoError(t, s.AppendCategory(ctx, &models.Category{ID: 1, Name: "Loan"}))
			require.NoError(t, s.AppendType(ctx, &models.FileType{ID: 1, Name: "Original"}))
			require.NoError(t, s.AppendType(ctx, &models.FileType{ID: 2, Name: "Copy"}))

			categories, err := s.ListCategories(ctx)
			require.NoError(t, err)
			require.Len(t, categories, 1)
			assert.Equal(t, "Loan", categories[0].Name)

			types, err := s.ListTypes(ctx)
			require.NoError(t, err)
			require.Len(t, types, 2)
			assert.Equal(t, 2, types[1].ID)

			count, err := s.CountLogs(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, count)

			require.NoError(t, s.AppendLog(ctx, &models.LogEntry{ID: 1, Activity: "File created"}))
			count, err = s.CountLogs(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestDescending(t *testing.T) {
	assert.Equal(t, []uint{9, 5, 3, 1}, descending([]uint{3, 9, 1, 5, 3}))
	assert.Empty(t, descending(nil))
}

func TestSQLiteStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "filecase.db")

	s, err := NewSQLiteStore(SQLiteConfig{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	require.NoError(t, s.Connect(ctx))
	require.NoError(t, s.Migrate(ctx))
	assert.FileExists(t, path)
}

func TestSQLiteStore_InMemoryPath(t *testing.T) {
	s, err := NewSQLiteStore(SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.NoError(t, s.Connect(context.Background()))
	assert.NoDirExists(t, ":memory:")
}

func TestRecordStore_DeleteIsAllOrNothing(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			ctx := context.Background()

			for _, kotak := range []string{"A", "B", "C"} {
				require.NoError(t, s.AppendRackEntry(ctx, &models.RackEntry{ID: "IDK-" + kotak, Kotak: kotak}))
			}
			entries, err := s.ListRackEntries(ctx)
			require.NoError(t, err)

			err = s.DeleteRackEntries(ctx, []uint{entries[0].Seq, entries[2].Seq, 999})
			assert.ErrorIs(t, err, ErrRowNotFound)

			entries, err = s.ListRackEntries(ctx)
			require.NoError(t, err)
			assert.Len(t, entries, 3)
		})
	}
}
