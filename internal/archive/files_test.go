package archive

import (
	"testing"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	f := newFixture(t)
	f.seedFiles(t,
		models.FileCase{ID: "ID7", RefFile: "A/1"},
		models.FileCase{ID: "ID10x", RefFile: "A/2"},
	)

	file, err := f.svc.CreateFile(f.ctx, FileInput{RefFile: "B/1", ClientName: "Siti", Category: "Loan", Kotak: "200A"})
	require.NoError(t, err)
	assert.Equal(t, "ID8", file.ID)
	assert.Equal(t, "TRUE", file.Safekeeping)
	assert.Equal(t, "Warehouse", file.Location)

	files := f.files(t)
	require.Len(t, files, 3)
	assert.Equal(t, "B/1", files[2].RefFile)

	entry := f.lastLog(t)
	assert.Equal(t, models.LogEntry{
		Seq:       entry.Seq,
		ID:        1,
		Timestamp: "31/07/2025 14:35",
		RefFile:   "B/1",
		Activity:  "File created",
		UpdateBy:  "System",
	}, entry)
}

func TestCreateFile_DuplicateIsCaseSensitive(t *testing.T) {
	f := newFixture(t)
	f.seedFiles(t, models.FileCase{ID: "ID1", RefFile: "AB-1"})

	_, err := f.svc.CreateFile(f.ctx, FileInput{RefFile: "AB-1"})
	require.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "File with this reference already exists")

	_, err = f.svc.CreateFile(f.ctx, FileInput{RefFile: "ab-1", CreatedBy: "admin@ahs.com"})
	require.NoError(t, err)
	assert.Equal(t, "admin@ahs.com", f.lastLog(t).UpdateBy)
	assert.Len(t, f.files(t), 2)
}

func TestUpdateFile(t *testing.T) {
	f := newFixture(t)
	f.seedFiles(t,
		models.FileCase{ID: "ID1", RefFile: "A/1", ClientName: "Siti", Safekeeping: "TRUE", Location: "Warehouse", Bank: "CIMB"},
		models.FileCase{ID: "ID2", RefFile: "A/2", Location: "Warehouse"},
	)

	err := f.svc.UpdateFile(f.ctx, FileUpdate{
		ID:         "ID1",
		ClientName: strPtr("Siti Aminah"),
		Bank:       strPtr(""),
		UpdateBy:   "admin@ahs.com",
	})
	require.NoError(t, err)

	files := f.files(t)
	assert.Equal(t, "Siti Aminah", files[0].ClientName)
	assert.Equal(t, "", files[0].Bank, "an explicit empty value clears the field")
	assert.Equal(t, "A/1", files[0].RefFile)
	assert.Equal(t, "TRUE", files[0].Safekeeping)
	assert.Equal(t, "A/2", files[1].RefFile)

	entry := f.lastLog(t)
	assert.Equal(t, "A/1", entry.RefFile)
	assert.Equal(t, "Updated", entry.Activity)
	assert.Equal(t, "Warehouse", entry.Location)
	assert.Equal(t, "admin@ahs.com", entry.UpdateBy)
}

func TestUpdateFile_LogUsesNewValues(t *testing.T) {
	f := newFixture(t)
	f.seedFiles(t, models.FileCase{ID: "ID1", RefFile: "A/1", Location: "Warehouse"})

	err := f.svc.UpdateFile(f.ctx, FileUpdate{
		ID:       "ID1",
		RefFile:  strPtr("A/1-R"),
		Location: strPtr("Court"),
		Activity: "Checked out",
	})
	require.NoError(t, err)

	entry := f.lastLog(t)
	assert.Equal(t, "A/1-R", entry.RefFile)
	assert.Equal(t, "Court", entry.Location)
	assert.Equal(t, "Checked out", entry.Activity)
	assert.Equal(t, "System", entry.UpdateBy)
}

func TestUpdateFile_NotFound(t *testing.T) {
	f := newFixture(t)
	f.seedFiles(t, models.FileCase{ID: "ID1", RefFile: "A/1"})

	err := f.svc.UpdateFile(f.ctx, FileUpdate{ID: "id1"})
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "File not found with ID: id1")
	assert.Empty(t, f.store.Logs())
}

func TestDeleteFile(t *testing.T) {
	f := newFixture(t)
	f.seedFiles(t,
		models.FileCase{ID: "ID1", RefFile: "A/1", Location: "Court"},
		models.FileCase{ID: "ID2", RefFile: "A/2"},
	)

	require.NoError(t, f.svc.DeleteFile(f.ctx, "A/1", "admin@ahs.com"))

	files := f.files(t)
	require.Len(t, files, 1)
	assert.Equal(t, "ID2", files[0].ID)

	entry := f.lastLog(t)
	assert.Equal(t, "File deleted", entry.Activity)
	assert.Equal(t, "Court", entry.Location)

	err := f.svc.DeleteFile(f.ctx, "a/2", "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "File not found")
}

func TestAllFiles_SkipsBlankRows(t *testing.T) {
	f := newFixture(t)
	f.seedFiles(t,
		models.FileCase{ID: "ID1", RefFile: "A/1", Year: "2010", Kotak: "K1"},
		models.FileCase{},
		models.FileCase{ID: "ID2", RefFile: "A/2", Year: "2024"},
	)
	f.seedRacks(t, models.RackEntry{ID: "IDK001", Kotak: "k1", Rack: "R4"})

	views, err := f.svc.AllFiles(f.ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "R4", views[0].Rack)
	assert.Equal(t, StatusArchive, views[0].Status)
	assert.Equal(t, StatusActive, views[1].Status)
}

func TestAddLog_NumbersSequentially(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.AddLog(f.ctx, LogInput{RefFile: "A/1", Activity: "Viewed"}))
	require.NoError(t, f.svc.AddLog(f.ctx, LogInput{RefFile: "A/2", Activity: "Viewed"}))

	logs := f.store.Logs()
	require.Len(t, logs, 2)
	assert.Equal(t, 1, logs[0].ID)
	assert.Equal(t, 2, logs[1].ID)
	assert.Equal(t, "31/07/2025 14:35", logs[1].Timestamp)
}

func TestCreateFile_RequiresRefFile(t *testing.T) {
	f := newFixture(t)
	f.seedFiles(t, models.FileCase{ID: "ID1", RefFile: ""})

	_, err := f.svc.CreateFile(f.ctx, FileInput{RefFile: " ", ClientName: "Siti"})
	require.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Reference file number is required")
	assert.Len(t, f.files(t), 1)
	assert.Empty(t, f.store.Logs())
}
