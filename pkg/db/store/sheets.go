package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsStore implements RecordStore on a Google Sheets workbook, one sheet
// per table with a header row. Row handles are sheet row numbers observed at
// read time, so they shift when rows above them are removed.
type SheetsStore struct {
	mutex sync.RWMutex

	service       *sheets.Service
	spreadsheetID string
	sheetIDs      map[string]int64
}

// SheetsConfig holds Google Sheets specific configuration
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	// Endpoint overrides the API base URL, mainly for emulators
	Endpoint string
}

var sheetColumns = map[string][]string{
	SheetFileCase:   models.FileCaseColumns,
	SheetRackLookup: models.RackEntryColumns,
	SheetCategory:   models.CategoryColumns,
	SheetType:       models.FileTypeColumns,
	SheetLog:        models.LogEntryColumns,
}

// NewSheetsStore creates a new workbook-backed record store
func NewSheetsStore(ctx context.Context, cfg SheetsConfig) (*SheetsStore, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}

	opts := []option.ClientOption{
		option.WithScopes(sheets.SpreadsheetsScope),
	}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &SheetsStore{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetIDs:      make(map[string]int64),
	}, nil
}

// Connect resolves the sheet ids of the workbook
func (s *SheetsStore) Connect(ctx context.Context) error {
	return s.loadSheetIDs(ctx)
}

func (s *SheetsStore) Close() error {
	return nil
}

// Migrate adds missing sheets with their header row
func (s *SheetsStore) Migrate(ctx context.Context) error {
	if err := s.loadSheetIDs(ctx); err != nil {
		return err
	}

	var requests []*sheets.Request
	var missing []string
	for _, name := range []string{SheetFileCase, SheetRackLookup, SheetCategory, SheetType, SheetLog} {
		if _, ok := s.sheetID(name); ok {
			continue
		}
		missing = append(missing, name)
		requests = append(requests, &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: name},
			},
		})
	}
	if len(requests) == 0 {
		return nil
	}

	_, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to add sheets %v: %w", missing, err)
	}

	for _, name := range missing {
		header := sheetColumns[name]
		_, err := s.service.Spreadsheets.Values.Update(s.spreadsheetID, rowRange(name, 1, len(header)), &sheets.ValueRange{
			Values: [][]any{stringCells(header)},
		}).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to write %s header: %w", name, err)
		}
	}

	return s.loadSheetIDs(ctx)
}

func (s *SheetsStore) Health(ctx context.Context) error {
	_, err := s.service.Spreadsheets.Get(s.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	return err
}

// FILECASE operations

func (s *SheetsStore) ListFiles(ctx context.Context) ([]models.FileCase, error) {
	rows, err := s.read(ctx, SheetFileCase)
	if err != nil {
		return nil, err
	}
	return decodeFiles(rows), nil
}

func (s *SheetsStore) AppendFile(ctx context.Context, file *models.FileCase) error {
	return s.append(ctx, SheetFileCase, stringCells(file.Values()))
}

func (s *SheetsStore) UpdateFile(ctx context.Context, file *models.FileCase) error {
	if file.Seq < firstDataRow {
		return fmt.Errorf("filecase row %d: %w", file.Seq, ErrRowNotFound)
	}

	_, err := s.service.Spreadsheets.Values.Update(s.spreadsheetID, rowRange(SheetFileCase, file.Seq, len(models.FileCaseColumns)), &sheets.ValueRange{
		Values: [][]any{stringCells(file.Values())},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update %s row %d: %w", SheetFileCase, file.Seq, err)
	}
	return nil
}

func (s *SheetsStore) DeleteFiles(ctx context.Context, seqs []uint) error {
	return s.deleteRows(ctx, SheetFileCase, seqs)
}

// RACK_LOOKUP operations

func (s *SheetsStore) ListRackEntries(ctx context.Context) ([]models.RackEntry, error) {
	rows, err := s.read(ctx, SheetRackLookup)
	if err != nil {
		return nil, err
	}
	return decodeRackEntries(rows), nil
}

func (s *SheetsStore) AppendRackEntry(ctx context.Context, entry *models.RackEntry) error {
	return s.append(ctx, SheetRackLookup, stringCells(entry.Values()))
}

func (s *SheetsStore) DeleteRackEntries(ctx context.Context, seqs []uint) error {
	return s.deleteRows(ctx, SheetRackLookup, seqs)
}

// CATEGORY and TYPE operations

func (s *SheetsStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.read(ctx, SheetCategory)
	if err != nil {
		return nil, err
	}
	return decodeCategories(rows), nil
}

func (s *SheetsStore) AppendCategory(ctx context.Context, category *models.Category) error {
	return s.append(ctx, SheetCategory, lookupCells(category.ID, category.Name))
}

func (s *SheetsStore) ListTypes(ctx context.Context) ([]models.FileType, error) {
	rows, err := s.read(ctx, SheetType)
	if err != nil {
		return nil, err
	}
	return decodeTypes(rows), nil
}

func (s *SheetsStore) AppendType(ctx context.Context, fileType *models.FileType) error {
	return s.append(ctx, SheetType, lookupCells(fileType.ID, fileType.Name))
}

// LOG operations

func (s *SheetsStore) CountLogs(ctx context.Context) (int, error) {
	rows, err := s.read(ctx, SheetLog)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *SheetsStore) AppendLog(ctx context.Context, entry *models.LogEntry) error {
	return s.append(ctx, SheetLog, logCells(entry))
}

func (s *SheetsStore) read(ctx context.Context, sheet string) ([][]any, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, dataRange(sheet, len(sheetColumns[sheet]))).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", sheet, err)
	}
	return resp.Values, nil
}

func (s *SheetsStore) append(ctx context.Context, sheet string, cells []any) error {
	_, err := s.service.Spreadsheets.Values.Append(s.spreadsheetID, dataRange(sheet, len(sheetColumns[sheet])), &sheets.ValueRange{
		Values: [][]any{cells},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", sheet, err)
	}
	return nil
}

// deleteRows removes sheet rows in one batch. The batch applies requests in
// order, and they are ordered from the bottom row up so earlier removals do
// not shift the rows addressed by later ones.
func (s *SheetsStore) deleteRows(ctx context.Context, sheet string, seqs []uint) error {
	seqs = descending(seqs)
	if len(seqs) == 0 {
		return nil
	}

	sheetID, ok := s.sheetID(sheet)
	if !ok {
		return fmt.Errorf("sheet %s not found", sheet)
	}

	requests := make([]*sheets.Request, 0, len(seqs))
	for _, seq := range seqs {
		if seq < firstDataRow {
			return fmt.Errorf("%s row %d: %w", sheet, seq, ErrRowNotFound)
		}
		// DimensionRange indexes are 0-based and end-exclusive
		requests = append(requests, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(seq - 1),
					EndIndex:   int64(seq),
				},
			},
		})
	}

	_, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to delete %d rows from %s: %w", len(seqs), sheet, err)
	}
	return nil
}

func (s *SheetsStore) sheetID(name string) (int64, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	id, ok := s.sheetIDs[name]
	return id, ok
}

func (s *SheetsStore) loadSheetIDs(ctx context.Context) error {
	spreadsheet, err := s.service.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to load spreadsheet %s: %w", s.spreadsheetID, err)
	}

	ids := make(map[string]int64, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties == nil {
			continue
		}
		ids[sheet.Properties.Title] = sheet.Properties.SheetId
	}

	s.mutex.Lock()
	s.sheetIDs = ids
	s.mutex.Unlock()
	return nil
}
