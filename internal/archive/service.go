package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/store"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/log"
)

// Options configures a Service.
type Options struct {
	Store  store.RecordStore
	Logger log.LoggerService

	// RackTTL bounds how stale rack lookups may be. Zero uses DefaultRackTTL.
	RackTTL time.Duration
	// InvalidateOnWrite drops the rack snapshot after every RACK_LOOKUP write.
	InvalidateOnWrite bool
	// Location is the zone of LOG timestamps. Nil means UTC.
	Location *time.Location
	// Clock replaces time.Now, for tests.
	Clock func() time.Time
}

// Service implements the archive operations on top of a RecordStore.
type Service struct {
	store    store.RecordStore
	cache    *RackCache
	logger   log.LoggerService
	location *time.Location
	now      func() time.Time

	invalidateOnWrite bool
}

// FileView is a file case as returned to callers, with its rack and
// derived status joined in.
type FileView struct {
	models.FileCase
	Rack   string `json:"rack"`
	Status Status `json:"status"`
}

func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	return &Service{
		store:             opts.Store,
		cache:             NewRackCache(opts.Store, opts.RackTTL, now, logger.Named("rack-cache")),
		logger:            logger,
		location:          zoneOrUTC(opts.Location),
		now:               now,
		invalidateOnWrite: opts.InvalidateOnWrite,
	}
}

// Health reports whether the record store is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.store.Health(ctx)
}

func (s *Service) view(ctx context.Context, file models.FileCase) FileView {
	return FileView{
		FileCase: file,
		Rack:     s.cache.Resolve(ctx, file.Kotak),
		Status:   StatusFor(file.Year, s.now()),
	}
}

// AllFiles returns every non-blank FILECASE row in stored order.
func (s *Service) AllFiles(ctx context.Context) ([]FileView, error) {
	files, err := s.store.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read files: %w", err)
	}

	views := make([]FileView, 0, len(files))
	for _, file := range files {
		if file.Blank() {
			continue
		}
		views = append(views, s.view(ctx, file))
	}
	return views, nil
}

// RackLookup returns every RACK_LOOKUP row.
func (s *Service) RackLookup(ctx context.Context) ([]models.RackEntry, error) {
	entries, err := s.store.ListRackEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read rack lookup: %w", err)
	}
	return entries, nil
}

func (s *Service) rackChanged() {
	if s.invalidateOnWrite {
		s.cache.Invalidate()
	}
}
