package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/errors"
	"github.com/KirkDiggler/sim-catalog/internal/metrics"
	"github.com/KirkDiggler/sim-catalog/internal/pkg/clock"
	"github.com/KirkDiggler/sim-catalog/internal/repositories/snapshots"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

const (
	defaultLoadTimeout = time.Minute
	loadKey            = "catalog"
)

// LoaderConfig configures a Loader
type LoaderConfig struct {
	Source snapshots.Repository
	// Encoding is the preferred snapshot encoding; defaults to JSON
	Encoding snapshot.Encoding
	// Clock defaults to the system clock
	Clock clock.Clock
	// Timeout bounds the shared load, independent of any caller's context
	Timeout time.Duration
	Options []Option
}

// Validate validates the LoaderConfig
func (cfg *LoaderConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Source == nil {
		vb.RequiredField("source")
	}
	if cfg.Encoding != "" && !cfg.Encoding.Valid() {
		vb.InvalidField("encoding", string(cfg.Encoding))
	}
	if cfg.Timeout < 0 {
		vb.InvalidField("timeout", "must not be negative")
	}
	return vb.Build()
}

// Loader fetches and indexes the snapshot at most once. Every caller that
// arrives before the load finishes waits on the same fetch, and every caller
// after it gets the same result. A failed load is never retried.
type Loader struct {
	source   snapshots.Repository
	encoding snapshot.Encoding
	clock    clock.Clock
	timeout  time.Duration
	options  []Option

	group singleflight.Group
	done  chan struct{}

	mu       sync.RWMutex
	finished bool
	catalog  *Catalog
	err      error
	loadedAt time.Time
}

// NewLoader creates a Loader. Nothing is fetched until Initialize.
func NewLoader(cfg *LoaderConfig) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Loader{
		source:   cfg.Source,
		encoding: cfg.Encoding,
		clock:    cfg.Clock,
		timeout:  cfg.Timeout,
		options:  cfg.Options,
		done:     make(chan struct{}),
	}
	if l.encoding == "" {
		l.encoding = snapshot.EncodingJSON
	}
	if l.clock == nil {
		l.clock = clock.New()
	}
	if l.timeout == 0 {
		l.timeout = defaultLoadTimeout
	}
	return l, nil
}

// Initialize returns the catalog, loading it first if no load has finished.
// The caller stops waiting when ctx is done but the shared load carries on,
// bounded by the configured timeout.
func (l *Loader) Initialize(ctx context.Context) (*Catalog, error) {
	if ok, c, err := l.result(); ok {
		return c, err
	}

	ch := l.group.DoChan(loadKey, func() (any, error) {
		if ok, c, err := l.result(); ok {
			return c, err
		}

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()

		c, err := l.load(loadCtx)

		l.mu.Lock()
		l.finished = true
		l.catalog = c
		l.err = err
		l.loadedAt = l.clock.Now()
		l.mu.Unlock()
		close(l.done)

		if err != nil {
			return nil, err
		}
		return c, nil
	})

	select {
	case res := <-ch:
		c, _ := res.Val.(*Catalog)
		return c, res.Err
	case <-ctx.Done():
		code := errors.CodeCanceled
		if ctx.Err() == context.DeadlineExceeded {
			code = errors.CodeDeadlineExceeded
		}
		return nil, errors.WrapWithCode(ctx.Err(), code, "stopped waiting for catalog load")
	}
}

// Get returns the loaded catalog without blocking. Before the load finishes it
// fails with CodeFailedPrecondition; after a failed load it returns the
// *LoadError.
func (l *Loader) Get() (*Catalog, error) {
	if ok, c, err := l.result(); ok {
		return c, err
	}
	return nil, errors.FailedPrecondition("catalog is not loaded yet")
}

// Done is closed once the load has finished, successfully or not
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Ready reports whether a catalog has loaded successfully
func (l *Loader) Ready() bool {
	ok, c, err := l.result()
	return ok && err == nil && c != nil
}

// LoadedAt is when the load finished, or the zero time
func (l *Loader) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadedAt
}

// ItemIconData waits for the catalog and returns the item's icon record. An
// unknown id returns the zero record, not an error.
func (l *Loader) ItemIconData(ctx context.Context, id int32) (items.IconData, error) {
	c, err := l.Initialize(ctx)
	if err != nil {
		return items.IconData{}, err
	}
	return c.ItemIcon(id), nil
}

// SpellIconData waits for the catalog and returns the spell's icon record. An
// unknown id returns the zero record, not an error.
func (l *Loader) SpellIconData(ctx context.Context, id int32) (items.IconData, error) {
	c, err := l.Initialize(ctx)
	if err != nil {
		return items.IconData{}, err
	}
	return c.SpellIcon(id), nil
}

// result reports whether the load has finished and, if so, its outcome
func (l *Loader) result() (bool, *Catalog, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.finished {
		return false, nil, nil
	}
	if l.err != nil {
		return true, nil, l.err
	}
	return true, l.catalog, nil
}

func (l *Loader) load(ctx context.Context) (*Catalog, error) {
	start := l.clock.Now()
	defer func() {
		metrics.SnapshotLoadDuration.Observe(clock.Since(l.clock, start).Seconds())
	}()

	out, err := l.source.Fetch(ctx, &snapshots.FetchInput{Encoding: l.encoding})
	if err != nil {
		return nil, l.fail(&LoadError{Stage: StageFetch, Err: err}, l.encoding)
	}
	metrics.SnapshotBytes.Set(float64(len(out.Data)))

	snap, err := snapshot.Decode(out.Data, out.Encoding)
	if err != nil {
		return nil, l.fail(&LoadError{Stage: StageDecode, Source: out.Source, Err: err}, out.Encoding)
	}

	c, err := New(snap, l.options...)
	if err != nil {
		return nil, l.fail(&LoadError{Stage: StageBuild, Source: out.Source, Err: err}, out.Encoding)
	}

	counts := c.Counts()
	metrics.CatalogEntries.WithLabelValues(metrics.KindItems).Set(float64(counts.Items))
	metrics.CatalogEntries.WithLabelValues(metrics.KindEnchants).Set(float64(counts.Enchants))
	metrics.CatalogEntries.WithLabelValues(metrics.KindGems).Set(float64(counts.Gems))
	metrics.CatalogEntries.WithLabelValues(metrics.KindItemIcons).Set(float64(counts.ItemIcons))
	metrics.CatalogEntries.WithLabelValues(metrics.KindSpellIcons).Set(float64(counts.SpellIcons))
	for _, dup := range c.Duplicates() {
		metrics.DuplicateIDs.WithLabelValues(dup.Kind).Inc()
	}

	result := metrics.ResultSuccess
	if out.Cached {
		result = metrics.ResultCached
	}
	metrics.SnapshotLoads.WithLabelValues(result, string(out.Encoding)).Inc()

	slog.Info("Catalog loaded",
		"source", out.Source,
		"encoding", out.Encoding,
		"bytes", len(out.Data),
		"items", counts.Items,
		"enchants", counts.Enchants,
		"gems", counts.Gems,
		"duplicates", len(c.Duplicates()),
		"duration", clock.Since(l.clock, start).String())

	return c, nil
}

func (l *Loader) fail(err *LoadError, enc snapshot.Encoding) error {
	metrics.SnapshotLoads.WithLabelValues(metrics.ResultError, string(enc)).Inc()
	slog.Error("Catalog load failed",
		"stage", err.Stage,
		"source", err.Source,
		"code", errors.GetCode(err.Err).String(),
		"error", err.Err)
	return err
}
