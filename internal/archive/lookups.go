package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
)

// Categories returns the CATEGORY rows that have both an id and a name.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	categories := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		if row.ID != 0 && row.Name != "" {
			categories = append(categories, row)
		}
	}
	return categories, nil
}

// Types returns the TYPE rows that have both an id and a name.
func (s *Service) Types(ctx context.Context) ([]models.FileType, error) {
	rows, err := s.store.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read types: %w", err)
	}

	types := make([]models.FileType, 0, len(rows))
	for _, row := range rows {
		if row.ID != 0 && row.Name != "" {
			types = append(types, row)
		}
	}
	return types, nil
}

// CreateCategory adds a category unless one with the same name exists,
// ignoring case and surrounding spaces.
func (s *Service) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("Category is required")
	}

	rows, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Name), name) {
			return nil, conflict("Category already exists")
		}
		ids = append(ids, row.ID)
	}

	category := &models.Category{ID: NextLookupID(ids), Name: name}
	if err := s.store.AppendCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to append category: %w", err)
	}

	err = s.AddLog(ctx, LogInput{
		RefFile:  "CATEGORY-" + name,
		Activity: "Category created",
		Location: systemLocation,
		UpdateBy: systemActor,
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// CreateType adds a file type unless one with the same name exists,
// ignoring case and surrounding spaces.
func (s *Service) CreateType(ctx context.Context, name string) (*models.FileType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("Type is required")
	}

	rows, err := s.store.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read types: %w", err)
	}

	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Name), name) {
			return nil, conflict("Type already exists")
		}
		ids = append(ids, row.ID)
	}

	fileType := &models.FileType{ID: NextLookupID(ids), Name: name}
	if err := s.store.AppendType(ctx, fileType); err != nil {
		return nil, fmt.Errorf("failed to append type: %w", err)
	}

	err = s.AddLog(ctx, LogInput{
		RefFile:  "TYPE-" + name,
		Activity: "Type created",
		Location: systemLocation,
		UpdateBy: systemActor,
	})
	if err != nil {
		return nil, err
	}
	return fileType, nil
}
