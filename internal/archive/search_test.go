package archive

import (
	"testing"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchFixture(t *testing.T) *fixture {
	f := newFixture(t)
	f.seedFiles(t,
		models.FileCase{ID: "ID1", Year: "2024", RefFile: "AHS/2024/001", BarcodeNo: "BC100", ClientName: "Ahmad Bin Ali", Kotak: "200A"},
		models.FileCase{ID: "ID2", Year: "2012", RefFile: "AHS/2024/002", BarcodeNo: "BC200", ClientName: " ahmad bin ali ", Kotak: "150B"},
		models.FileCase{ID: "ID3", Year: "2016", RefFile: "XYZ/2023/010", BarcodeNo: "AHS-9", ClientName: "Siti"},
	)
	f.seedRacks(t,
		models.RackEntry{ID: "IDK001", Kotak: "200a", Rack: "R1"},
		models.RackEntry{ID: "IDK002", Kotak: "150B", Rack: ""},
	)
	return f
}

func TestSearch_ExactReference(t *testing.T) {
	f := newSearchFixture(t)

	result, err := f.svc.Search(f.ctx, "  ahs/2024/002 ", SearchAuto)
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "ID2", result.Files[0].ID)
	assert.Equal(t, "", result.Files[0].Rack)
	assert.Equal(t, StatusArchive, result.Files[0].Status)
	assert.Empty(t, result.ClientName)
}

func TestSearch_ExactBarcodeJoinsRack(t *testing.T) {
	f := newSearchFixture(t)

	result, err := f.svc.Search(f.ctx, "bc100", SearchClientName)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "ID1", result.Files[0].ID)
	assert.Equal(t, "R1", result.Files[0].Rack)
	assert.Equal(t, StatusActive, result.Files[0].Status)
}

func TestSearch_ClientPhaseCollectsEveryFile(t *testing.T) {
	f := newSearchFixture(t)

	result, err := f.svc.Search(f.ctx, "AHMAD", SearchAuto)
	require.NoError(t, err)
	assert.Equal(t, "Ahmad Bin Ali", result.ClientName)
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Files, 2)
	assert.Equal(t, "ID1", result.Files[0].ID)
	assert.Equal(t, "ID2", result.Files[1].ID)
}

func TestSearch_PartialRespectsType(t *testing.T) {
	f := newSearchFixture(t)

	result, err := f.svc.Search(f.ctx, "ahs", SearchAuto)
	require.NoError(t, err)
	assert.Equal(t, "ID1", result.Files[0].ID, "auto tries the reference before the barcode")

	result, err = f.svc.Search(f.ctx, "ahs", SearchBarcode)
	require.NoError(t, err)
	assert.Equal(t, "ID3", result.Files[0].ID)

	result, err = f.svc.Search(f.ctx, "2023", SearchRefFile)
	require.NoError(t, err)
	assert.Equal(t, "ID3", result.Files[0].ID)
	assert.Equal(t, StatusInactive, result.Files[0].Status)
}

func TestSearch_NotFound(t *testing.T) {
	f := newSearchFixture(t)

	_, err := f.svc.Search(f.ctx, "ahmad", SearchRefFile)
	require.ErrorIs(t, err, ErrNotFound)

	archiveErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, SearchMiss{Message: "File not found", SearchTerm: "ahmad", TotalRecords: 3}, archiveErr.Payload())
}

func TestSearch_RejectsEmptyInput(t *testing.T) {
	f := newSearchFixture(t)

	_, err := f.svc.Search(f.ctx, "   ", SearchAuto)
	require.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Search term is required")

	empty := newFixture(t)
	_, err = empty.svc.Search(empty.ctx, "anything", SearchAuto)
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "No data found in FILECASE")
}

func TestParseSearchType(t *testing.T) {
	for in, want := range map[string]SearchType{
		"":           SearchAuto,
		"auto":       SearchAuto,
		"refFile":    SearchRefFile,
		"barcodeNo":  SearchBarcode,
		"clientName": SearchClientName,
	} {
		got, err := ParseSearchType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSearchType("phone")
	assert.ErrorIs(t, err, ErrValidation)
}
