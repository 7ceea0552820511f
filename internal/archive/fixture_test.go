package archive

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/store"
	"github.com/stretchr/testify/require"
)

// fixtureNow is 31/07/2025 14:35 in Kuala Lumpur.
var fixtureNow = time.Date(2025, time.July, 31, 6, 35, 0, 0, time.UTC)

type fixture struct {
	ctx   context.Context
	store *store.MemoryStore
	svc   *Service
	now   time.Time
}

func newFixture(t *testing.T, mutate ...func(*Options)) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	require.NoError(t, err)

	f := &fixture{
		ctx:   context.Background(),
		store: store.NewMemoryStore(),
		now:   fixtureNow,
	}

	opts := Options{
		Store:    f.store,
		Location: loc,
		Clock:    func() time.Time { return f.now },
	}
	for _, m := range mutate {
		m(&opts)
	}

	f.svc = NewService(opts)
	return f
}

func (f *fixture) seedFiles(t *testing.T, files ...models.FileCase) {
	t.Helper()
	for i := range files {
		require.NoError(t, f.store.AppendFile(f.ctx, &files[i]))
	}
}

func (f *fixture) seedRacks(t *testing.T, entries ...models.RackEntry) {
	t.Helper()
	for i := range entries {
		require.NoError(t, f.store.AppendRackEntry(f.ctx, &entries[i]))
	}
}

func (f *fixture) files(t *testing.T) []models.FileCase {
	t.Helper()
	files, err := f.store.ListFiles(f.ctx)
	require.NoError(t, err)
	return files
}

func (f *fixture) racks(t *testing.T) []models.RackEntry {
	t.Helper()
	entries, err := f.store.ListRackEntries(f.ctx)
	require.NoError(t, err)
	return entries
}

func (f *fixture) lastLog(t *testing.T) models.LogEntry {
	t.Helper()
	logs := f.store.Logs()
	require.NotEmpty(t, logs)
	return logs[len(logs)-1]
}

func strPtr(s string) *string {
	return &s
}
