package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
)

// SearchType restricts which columns the search phases consider.
type SearchType string

const (
	SearchAuto       SearchType = "auto"
	SearchRefFile    SearchType = "refFile"
	SearchBarcode    SearchType = "barcodeNo"
	SearchClientName SearchType = "clientName"
)

// ParseSearchType maps the wire value to a SearchType. Empty means auto.
func ParseSearchType(value string) (SearchType, error) {
	switch t := SearchType(strings.TrimSpace(value)); t {
	case "":
		return SearchAuto, nil
	case SearchAuto, SearchRefFile, SearchBarcode, SearchClientName:
		return t, nil
	default:
		return "", invalid(fmt.Sprintf("Invalid search type: %s", value))
	}
}

// SearchResult holds the files found by Search. ClientName is set when the
// client phase matched.
type SearchResult struct {
	Files      []FileView `json:"files"`
	Total      int        `json:"total"`
	ClientName string     `json:"clientName,omitempty"`
}

// SearchMiss is the failure payload when no phase matched.
type SearchMiss struct {
	Message      string `json:"message"`
	SearchTerm   string `json:"searchTerm"`
	TotalRecords int    `json:"totalRecords"`
}

// Search looks a term up in three phases and returns the first that
// matches: exact reference or barcode, every file of a client, then a
// partial reference or barcode match.
func (s *Service) Search(ctx context.Context, term string, searchType SearchType) (*SearchResult, error) {
	needle := fold(term)
	if needle == "" {
		return nil, invalid("Search term is required")
	}
	if searchType == "" {
		searchType = SearchAuto
	}

	files, err := s.store.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read files: %w", err)
	}
	if len(files) == 0 {
		return nil, notFound("No data found in FILECASE")
	}

	if file, ok := exactMatch(files, needle); ok {
		return s.single(ctx, file), nil
	}

	if searchType == SearchAuto || searchType == SearchClientName {
		if result := s.clientMatches(ctx, files, needle); result != nil {
			return result, nil
		}
	}

	if file, ok := partialMatch(files, needle, searchType); ok {
		return s.single(ctx, file), nil
	}

	return nil, &Error{
		Kind:    KindNotFound,
		Message: "File not found",
		Details: SearchMiss{
			Message:      "File not found",
			SearchTerm:   term,
			TotalRecords: len(files),
		},
	}
}

func (s *Service) single(ctx context.Context, file models.FileCase) *SearchResult {
	return &SearchResult{Files: []FileView{s.view(ctx, file)}, Total: 1}
}

func exactMatch(files []models.FileCase, needle string) (models.FileCase, bool) {
	for _, file := range files {
		if fold(file.RefFile) == needle || fold(file.BarcodeNo) == needle {
			return file, true
		}
	}
	return models.FileCase{}, false
}

// clientMatches resolves the client from the first name containing the
// needle, then collects every file of exactly that client.
func (s *Service) clientMatches(ctx context.Context, files []models.FileCase, needle string) *SearchResult {
	client := ""
	for _, file := range files {
		if name := fold(file.ClientName); name != "" && strings.Contains(name, needle) {
			client = strings.TrimSpace(file.ClientName)
			break
		}
	}
	if client == "" {
		return nil
	}

	target := strings.ToLower(client)
	result := &SearchResult{ClientName: client}
	for _, file := range files {
		if fold(file.ClientName) == target {
			result.Files = append(result.Files, s.view(ctx, file))
		}
	}
	result.Total = len(result.Files)
	return result
}

func partialMatch(files []models.FileCase, needle string, searchType SearchType) (models.FileCase, bool) {
	byRef := searchType == SearchAuto || searchType == SearchRefFile
	byBarcode := searchType == SearchAuto || searchType == SearchBarcode

	for _, file := range files {
		if byRef && containsFolded(file.RefFile, needle) {
			return file, true
		}
		if byBarcode && containsFolded(file.BarcodeNo, needle) {
			return file, true
		}
	}
	return models.FileCase{}, false
}

func fold(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func containsFolded(value, needle string) bool {
	v := fold(value)
	return v != "" && strings.Contains(v, needle)
}
