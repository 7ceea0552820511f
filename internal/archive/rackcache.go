package archive

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/models"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultRackTTL is how long a rack snapshot stays valid.
const DefaultRackTTL = 5 * time.Minute

// rackRetryDelay is how long Resolve waits after a failed rebuild before
// reading RACK_LOOKUP again.
const rackRetryDelay = 10 * time.Second

var (
	rackCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filecase_rack_cache_lookups_total",
			Help: "Rack lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	rackCacheRebuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filecase_rack_cache_rebuilds_total",
			Help: "Number of rack snapshot rebuilds",
		},
	)
)

// RackLoader reads every RACK_LOOKUP row.
type RackLoader interface {
	ListRackEntries(ctx context.Context) ([]models.RackEntry, error)
}

// RackCache maps box names to their rack using a snapshot of RACK_LOOKUP
// that is rebuilt once it is older than the TTL. Writes to RACK_LOOKUP are
// not seen until the snapshot expires unless Invalidate is called.
type RackCache struct {
	mutex sync.Mutex

	loader RackLoader
	ttl    time.Duration
	now    func() time.Time
	logger log.LoggerService

	snapshot map[string]string
	builtAt  time.Time
	failedAt time.Time
}

func NewRackCache(loader RackLoader, ttl time.Duration, now func() time.Time, logger log.LoggerService) *RackCache {
	if ttl <= 0 {
		ttl = DefaultRackTTL
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = log.Nop()
	}

	return &RackCache{
		loader: loader,
		ttl:    ttl,
		now:    now,
		logger: logger,
	}
}

// Resolve returns the rack holding kotak, matched case-insensitively.
// Boxes that are unknown or have an empty rack resolve to "".
func (c *RackCache) Resolve(ctx context.Context, kotak string) string {
	key := strings.ToLower(kotak)
	if key == "" {
		rackCacheLookups.WithLabelValues("miss").Inc()
		return ""
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.expired() && c.retryDue() {
		c.rebuild(ctx)
	}

	rack := c.snapshot[key]
	if rack == "" {
		rackCacheLookups.WithLabelValues("miss").Inc()
		return ""
	}

	rackCacheLookups.WithLabelValues("hit").Inc()
	return rack
}

// Invalidate drops the snapshot so the next Resolve reloads it.
func (c *RackCache) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.snapshot = nil
	c.builtAt = time.Time{}
	c.failedAt = time.Time{}
}

func (c *RackCache) expired() bool {
	return c.snapshot == nil || c.now().Sub(c.builtAt) > c.ttl
}

func (c *RackCache) retryDue() bool {
	return c.failedAt.IsZero() || c.now().Sub(c.failedAt) >= rackRetryDelay
}

// rebuild keeps the previous snapshot when the loader fails, and records
// the failure so lookups in the next rackRetryDelay skip the store.
func (c *RackCache) rebuild(ctx context.Context) {
	entries, err := c.loader.ListRackEntries(ctx)
	if err != nil {
		c.failedAt = c.now()
		c.logger.Warn("Failed to rebuild rack snapshot: %v", err)
		return
	}

	snapshot := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.Kotak == "" {
			continue
		}
		snapshot[strings.ToLower(entry.Kotak)] = entry.Rack
	}

	c.snapshot = snapshot
	c.builtAt = c.now()
	c.failedAt = time.Time{}
	rackCacheRebuilds.Inc()
	c.logger.Debug("Rebuilt rack snapshot with %d boxes", len(snapshot))
}
