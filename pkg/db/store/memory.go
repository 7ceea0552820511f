package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
)

// MemoryStore implements RecordStore in process memory.
// Row handles are assigned from a per-table counter, so they grow with
// stored order.
type MemoryStore struct {
	mutex sync.RWMutex

	files      table[models.FileCase]
	racks      table[models.RackEntry]
	categories table[models.Category]
	types      table[models.FileType]
	logs       table[models.LogEntry]
}

type table[T any] struct {
	rows []T
	next uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Connect(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Migrate(ctx context.Context) error { return nil }

func (s *MemoryStore) Health(ctx context.Context) error { return ctx.Err() }

// FILECASE operations

func (s *MemoryStore) ListFiles(ctx context.Context) ([]models.FileCase, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Clone(s.files.rows), nil
}

func (s *MemoryStore) AppendFile(ctx context.Context, file *models.FileCase) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.files.next++
	file.Seq = s.files.next
	s.files.rows = append(s.files.rows, *file)
	return nil
}

func (s *MemoryStore) UpdateFile(ctx context.Context, file *models.FileCase) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := slices.IndexFunc(s.files.rows, func(f models.FileCase) bool { return f.Seq == file.Seq })
	if i < 0 {
		return fmt.Errorf("filecase row %d: %w", file.Seq, ErrRowNotFound)
	}
	s.files.rows[i] = *file
	return nil
}

func (s *MemoryStore) DeleteFiles(ctx context.Context, seqs []uint) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return deleteRows(&s.files, seqs, func(f models.FileCase) uint { return f.Seq })
}

// RACK_LOOKUP operations

func (s *MemoryStore) ListRackEntries(ctx context.Context) ([]models.RackEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Clone(s.racks.rows), nil
}

func (s *MemoryStore) AppendRackEntry(ctx context.Context, entry *models.RackEntry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.racks.next++
	entry.Seq = s.racks.next
	s.racks.rows = append(s.racks.rows, *entry)
	return nil
}

func (s *MemoryStore) DeleteRackEntries(ctx context.Context, seqs []uint) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return deleteRows(&s.racks, seqs, func(e models.RackEntry) uint { return e.Seq })
}

// CATEGORY and TYPE operations

func (s *MemoryStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Clone(s.categories.rows), nil
}

func (s *MemoryStore) AppendCategory(ctx context.Context, category *models.Category) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.categories.next++
	category.Seq = s.categories.next
	s.categories.rows = append(s.categories.rows, *category)
	return nil
}

func (s *MemoryStore) ListTypes(ctx context.Context) ([]models.FileType, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Clone(s.types.rows), nil
}

func (s *MemoryStore) AppendType(ctx context.Context, fileType *models.FileType) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.types.next++
	fileType.Seq = s.types.next
	s.types.rows = append(s.types.rows, *fileType)
	return nil
}

// LOG operations

func (s *MemoryStore) CountLogs(ctx context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.logs.rows), nil
}

func (s *MemoryStore) AppendLog(ctx context.Context, entry *models.LogEntry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.logs.next++
	entry.Seq = s.logs.next
	s.logs.rows = append(s.logs.rows, *entry)
	return nil
}

// Logs returns a copy of the audit trail. The archive never reads it back,
// it exists for inspection and tests.
func (s *MemoryStore) Logs() []models.LogEntry {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return slices.Clone(s.logs.rows)
}

// deleteRows checks every handle before removing anything, so a missing
// row leaves the table untouched.
func deleteRows[T any](t *table[T], seqs []uint, seqOf func(T) uint) error {
	seqs = descending(seqs)
	indexes := make([]int, 0, len(seqs))
	for _, seq := range seqs {
		i := slices.IndexFunc(t.rows, func(row T) bool { return seqOf(row) == seq })
		if i < 0 {
			return fmt.Errorf("row %d: %w", seq, ErrRowNotFound)
		}
		indexes = append(indexes, i)
	}

	// Handles grow with stored order, so indexes are already descending.
	for _, i := range indexes {
		t.rows = slices.Delete(t.rows, i, i+1)
	}
	return nil
}
