package store

import (
	"fmt"
	"strconv"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
)

// Sheet names of the archive workbook.
const (
	SheetFileCase   = "FILECASE"
	SheetRackLookup = "RACK_LOOKUP"
	SheetCategory   = "CATEGORY"
	SheetType       = "TYPE"
	SheetLog        = "LOG"
)

// firstDataRow is the 1-based sheet row of the first record, below the header.
const firstDataRow = 2

// cellString renders a cell returned by the Sheets API as text. Numbers
// drop a trailing ".0" the way the spreadsheet UI displays them.
func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		if c {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(c)
	}
}

func rowStrings(row []any) []string {
	values := make([]string, len(row))
	for i, cell := range row {
		values[i] = cellString(cell)
	}
	return values
}

func stringCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// seqForIndex maps the i-th data row of a range read to its sheet row.
func seqForIndex(i int) uint {
	return uint(i + firstDataRow)
}

func decodeFiles(rows [][]any) []models.FileCase {
	files := make([]models.FileCase, 0, len(rows))
	for i, row := range rows {
		file := models.FileCaseFromValues(rowStrings(row))
		file.Seq = seqForIndex(i)
		files = append(files, file)
	}
	return files
}

func decodeRackEntries(rows [][]any) []models.RackEntry {
	entries := make([]models.RackEntry, 0, len(rows))
	for i, row := range rows {
		entry := models.RackEntryFromValues(rowStrings(row))
		entry.Seq = seqForIndex(i)
		entries = append(entries, entry)
	}
	return entries
}

func decodeCategories(rows [][]any) []models.Category {
	categories := make([]models.Category, 0, len(rows))
	for i, row := range rows {
		id, name := models.LookupFromValues(rowStrings(row))
		categories = append(categories, models.Category{Seq: seqForIndex(i), ID: id, Name: name})
	}
	return categories
}

func decodeTypes(rows [][]any) []models.FileType {
	types := make([]models.FileType, 0, len(rows))
	for i, row := range rows {
		id, name := models.LookupFromValues(rowStrings(row))
		types = append(types, models.FileType{Seq: seqForIndex(i), ID: id, Name: name})
	}
	return types
}

// lookupCells keeps numeric ids numeric in the sheet.
func lookupCells(id int, name string) []any {
	return []any{id, name}
}

func logCells(entry *models.LogEntry) []any {
	return []any{entry.ID, entry.Timestamp, entry.RefFile, entry.Activity, entry.Location, entry.UpdateBy}
}

// columnLetter converts a 1-based column number to its A1 letter.
func columnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}

// dataRange is the A1 range holding every record of a sheet.
func dataRange(sheet string, columns int) string {
	return fmt.Sprintf("%s!A%d:%s", sheet, firstDataRow, columnLetter(columns))
}

// rowRange is the A1 range of a single sheet row.
func rowRange(sheet string, row uint, columns int) string {
	return fmt.Sprintf("%s!A%d:%s%d", sheet, row, columnLetter(columns), row)
}
