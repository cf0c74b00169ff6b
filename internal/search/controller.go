// Package search turns query edits into debounced photo searches.
package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/shutter/internal/debounce"
	"github.com/five82/shutter/internal/pexels"
	"github.com/five82/shutter/internal/prefs"
	"github.com/five82/shutter/internal/state"
)

// DefaultDelay is the quiet period before a query edit triggers a search.
const DefaultDelay = 500 * time.Millisecond

// Options configure a Controller.
type Options struct {
	Context  context.Context
	Searcher pexels.Searcher
	Store    *state.Store
	Prefs    prefs.PreferenceStore
	Logger   *slog.Logger
	Delay    time.Duration // zero uses DefaultDelay
}

// Controller owns the query, the column preference and the debounce timer.
// Searches run on the timer goroutine and report through the Store.
type Controller struct {
	ctx       context.Context
	searcher  pexels.Searcher
	store     *state.Store
	prefs     prefs.PreferenceStore
	logger    *slog.Logger
	debouncer *debounce.Debouncer
	updates   chan struct{}

	mu      sync.Mutex
	query   string
	columns int
	closed  bool
}

// New builds a Controller. The column count is read from Prefs.
func New(opts Options) (*Controller, error) {
	if opts.Searcher == nil {
		return nil, errors.New("search requires a searcher")
	}
	if opts.Store == nil {
		opts.Store = &state.Store{}
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	c := &Controller{
		ctx:      opts.Context,
		searcher: opts.Searcher,
		store:    opts.Store,
		prefs:    opts.Prefs,
		logger:   opts.Logger,
		updates:  make(chan struct{}, 1),
		columns:  prefs.Columns(opts.Prefs),
	}
	c.debouncer = debounce.New(delay, c.fire)
	return c, nil
}

// SetQuery records the search text. A non-empty query (re)arms the debounce
// timer; an empty one cancels any pending search and triggers nothing.
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	c.query = query
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return
	}
	if strings.TrimSpace(query) == "" {
		c.debouncer.Cancel()
		return
	}
	c.debouncer.Trigger()
}

// Query returns the current search text.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetColumns persists a new column count, which is also the page size of the
// next search. With a query present the search is re-armed. The clamped value
// is returned even when persisting fails.
func (c *Controller) SetColumns(n int) (int, error) {
	n, err := prefs.SetColumns(c.prefs, n)
	if err != nil {
		c.logger.Warn("persist column preference failed", "columns", n, "error", err)
	}

	c.mu.Lock()
	changed := c.columns != n
	c.columns = n
	query := c.query
	closed := c.closed
	c.mu.Unlock()

	if changed && !closed && strings.TrimSpace(query) != "" {
		c.debouncer.Trigger()
	}
	return n, err
}

// Columns returns the current column count.
func (c *Controller) Columns() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.columns
}

// Snapshot returns the current search state.
func (c *Controller) Snapshot() state.Snapshot {
	return c.store.Snapshot()
}

// Updates signals after every state change. Signals coalesce; readers should
// re-read Snapshot rather than count them.
func (c *Controller) Updates() <-chan struct{} {
	return c.updates
}

// Close stops the debounce timer so nothing fires after teardown. A search
// already in flight still completes into the Store.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.debouncer.Stop()
}

func (c *Controller) fire() {
	c.mu.Lock()
	query := strings.TrimSpace(c.query)
	perPage := c.columns
	closed := c.closed
	c.mu.Unlock()

	if closed || query == "" {
		return
	}

	token := c.store.Begin(query, perPage)
	c.notify()

	logger := c.logger.With("request_id", uuid.NewString(), "query", query, "per_page", perPage)
	logger.Debug("search triggered", "token", token)

	res := c.searcher.Search(c.ctx, query, perPage)
	if !c.store.Complete(token, res) {
		logger.Debug("discarding superseded search result", "token", token, "kind", res.Kind.String())
		return
	}
	logger.Info("search complete", "kind", res.Kind.String(), "photos", len(res.Photos))
	c.notify()
}

func (c *Controller) notify() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}
