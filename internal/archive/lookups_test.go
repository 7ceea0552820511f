package archive

import (
	"testing"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	f := newFixture(t)

	category, err := f.svc.CreateCategory(f.ctx, " Loan ")
	require.NoError(t, err)
	assert.Equal(t, 1, category.ID)
	assert.Equal(t, "Loan", category.Name)

	log := f.lastLog(t)
	assert.Equal(t, "CATEGORY-Loan", log.RefFile)
	assert.Equal(t, "Category created", log.Activity)
	assert.Equal(t, "System", log.UpdateBy)

	_, err = f.svc.CreateCategory(f.ctx, "LOAN")
	require.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "Category already exists")

	next, err := f.svc.CreateCategory(f.ctx, "Litigation")
	require.NoError(t, err)
	assert.Equal(t, 2, next.ID)
}

func TestCreateType(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.AppendType(f.ctx, &models.FileType{ID: 4, Name: "Original"}))

	fileType, err := f.svc.CreateType(f.ctx, "Copy")
	require.NoError(t, err)
	assert.Equal(t, 5, fileType.ID)
	assert.Equal(t, "TYPE-Copy", f.lastLog(t).RefFile)

	_, err = f.svc.CreateType(f.ctx, " original")
	assert.EqualError(t, err, "Type already exists")
}

func TestCategoriesAndTypes_SkipIncompleteRows(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.AppendCategory(f.ctx, &models.Category{ID: 1, Name: "Loan"}))
	require.NoError(t, f.store.AppendCategory(f.ctx, &models.Category{ID: 0, Name: "Orphan"}))
	require.NoError(t, f.store.AppendCategory(f.ctx, &models.Category{ID: 3, Name: ""}))
	require.NoError(t, f.store.AppendType(f.ctx, &models.FileType{ID: 2, Name: "Copy"}))

	categories, err := f.svc.Categories(f.ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Loan", categories[0].Name)

	types, err := f.svc.Types(f.ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, 2, types[0].ID)
}
