package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"text", "IDK001", "IDK001"},
		{"whole number", float64(2019), "2019"},
		{"fraction", 1.5, "1.5"},
		{"true", true, "TRUE"},
		{"false", false, "FALSE"},
		{"other", int64(7), "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellString(tt.in))
		})
	}
}

func TestDecodeFiles_ShortRowsAndSeq(t *testing.T) {
	rows := [][]any{
		{"ID1", float64(2020), "Loan", "Original", "K1", "REF-1", "Ali", "012", "BC1", true, "Agent", "PIC1", "BANK1", "Warehouse"},
		{},
		{"ID3", "2018", "", "", "K2", "REF-3"},
	}

	files := decodeFiles(rows)
	require.Len(t, files, 3)

	assert.Equal(t, uint(2), files[0].Seq)
	assert.Equal(t, "2020", files[0].Year)
	assert.Equal(t, "TRUE", files[0].Safekeeping)
	assert.Equal(t, "Warehouse", files[0].Location)

	assert.Equal(t, uint(3), files[1].Seq)
	assert.True(t, files[1].Blank())

	assert.Equal(t, uint(4), files[2].Seq)
	assert.Equal(t, "REF-3", files[2].RefFile)
	assert.Empty(t, files[2].Location)
}

func TestDecodeLookups(t *testing.T) {
	categories := decodeCategories([][]any{{float64(3), "Loan"}, {"x", "Broken"}})
	require.Len(t, categories, 2)
	assert.Equal(t, 3, categories[0].ID)
	assert.Equal(t, "Loan", categories[0].Name)
	assert.Equal(t, 0, categories[1].ID)

	entries := decodeRackEntries([][]any{{"IDK001", "A1"}})
	require.Len(t, entries, 1)
	assert.Equal(t, "A1", entries[0].Kotak)
	assert.Empty(t, entries[0].Rack)
}

func TestRanges(t *testing.T) {
	assert.Equal(t, "A", columnLetter(1))
	assert.Equal(t, "N", columnLetter(14))
	assert.Equal(t, "Z", columnLetter(26))
	assert.Equal(t, "AA", columnLetter(27))

	assert.Equal(t, "FILECASE!A2:N", dataRange(SheetFileCase, 14))
	assert.Equal(t, "RACK_LOOKUP!A5:C5", rowRange(SheetRackLookup, 5, 3))
}
