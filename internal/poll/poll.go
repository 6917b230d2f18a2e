// Package poll drives the dashboard: it loads the metadata document once,
// then fetches the status document on a fixed cadence and renders each
// result. Fetch failures are logged and surfaced, never fatal.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/invdash/internal/dashboard"
	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/format"
	"github.com/rileyhilliard/invdash/internal/logger"
	"github.com/rileyhilliard/invdash/internal/metadata"
	"github.com/rileyhilliard/invdash/internal/source"
	"github.com/rileyhilliard/invdash/internal/status"
)

// MinInterval is the shortest poll interval accepted from any source.
const MinInterval = 500 * time.Millisecond

// MaxInterval caps intervals read from the status document.
const MaxInterval = 24 * time.Hour

// DefaultInterval is used when Options.Interval is unset.
const DefaultInterval = 15 * time.Second

// State is the controller's lifecycle state.
type State int

const (
	// StateBootstrapping means metadata has not been loaded yet.
	StateBootstrapping State = iota
	// StatePolling means the controller is refreshing status on a timer.
	StatePolling
)

func (s State) String() string {
	if s == StatePolling {
		return "polling"
	}
	return "bootstrapping"
}

// Options configures a Controller.
type Options struct {
	Status    source.StatusSource
	Metadata  source.MetadataSource // nil means no metadata
	Formatter *format.Formatter
	Interval  time.Duration

	// IntervalField is a "section.field" path whose positive value, read in
	// IntervalFieldUnit, replaces Interval after each successful poll.
	IntervalField     string
	IntervalFieldUnit string

	Log logger.Logger
	Now func() time.Time
}

// Update is the outcome of one poll.
type Update struct {
	Panels   []dashboard.Panel // current tree; unchanged from before on error
	Snapshot *status.Snapshot  // nil unless the poll succeeded
	At       time.Time
	Err      error
	Skipped  bool // a previous poll was still in flight
	Interval time.Duration
}

// Controller owns the render tree and the polling state.
type Controller struct {
	opts     Options
	renderer *dashboard.Renderer

	mu       sync.Mutex
	state    State
	inFlight bool
	interval time.Duration
	lastGood time.Time
	lastErr  error
}

// New creates a Controller in the bootstrapping state.
func New(opts Options) *Controller {
	if opts.Log == nil {
		opts.Log = logger.Noop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Formatter == nil {
		opts.Formatter = format.New()
	}
	if opts.IntervalFieldUnit == "" {
		opts.IntervalFieldUnit = "s"
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{
		opts:     opts,
		renderer: dashboard.NewRenderer(dashboard.NewBuilder(opts.Formatter, nil)),
		interval: clampInterval(interval),
	}
}

func clampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	return d
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Interval returns the current poll interval.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// Panels returns the most recent render.
func (c *Controller) Panels() []dashboard.Panel {
	return c.renderer.Panels()
}

// Bootstrap loads the metadata document and moves the controller to the
// polling state. A failed load is logged and the dashboard continues with
// empty metadata.
func (c *Controller) Bootstrap(ctx context.Context) *metadata.Document {
	doc := metadata.Empty()
	if c.opts.Metadata != nil {
		loaded, err := c.opts.Metadata.Metadata(ctx)
		if err != nil {
			c.opts.Log.Warn("metadata unavailable, using raw keys: %s", errors.Summary(err))
		} else {
			doc = loaded
			c.opts.Log.Debug("loaded metadata for %d sections", doc.Len())
		}
	}
	c.SetMetadata(doc)
	return doc
}

// SetMetadata installs doc and marks the controller as polling. It is the
// second half of Bootstrap for callers that load metadata themselves.
func (c *Controller) SetMetadata(doc *metadata.Document) {
	c.renderer.SetBuilder(dashboard.NewBuilder(c.opts.Formatter, doc))
	c.mu.Lock()
	c.state = StatePolling
	c.mu.Unlock()
}

// Poll fetches status once and renders it. At most one poll runs at a time;
// a call made while another is in flight returns immediately with Skipped.
func (c *Controller) Poll(ctx context.Context) Update {
	c.mu.Lock()
	if c.inFlight {
		interval := c.interval
		c.mu.Unlock()
		c.opts.Log.Debug("poll skipped: previous request still in flight")
		return Update{Panels: c.renderer.Panels(), At: c.opts.Now(), Skipped: true, Interval: interval}
	}
	c.inFlight = true
	c.mu.Unlock()

	snap, err := c.opts.Status.Status(ctx)
	now := c.opts.Now()

	var panels []dashboard.Panel
	if err == nil {
		panels = c.renderer.Render(snap)
	} else {
		c.opts.Log.Error("status fetch failed: %s", errors.Summary(err))
		panels = c.renderer.Panels()
		snap = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	c.lastErr = err
	if err == nil {
		c.lastGood = now
		if d, ok := c.intervalFrom(snap); ok && d != c.interval {
			c.opts.Log.Info("poll interval now %s (from %s)", d, c.opts.IntervalField)
			c.interval = d
		}
	}
	return Update{Panels: panels, Snapshot: snap, At: now, Err: err, Interval: c.interval}
}

// StatusLine is the footer text: the time of the last successful update, or
// a connection error with the age of the last good data.
func (c *Controller) StatusLine() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return statusLine(c.lastGood, c.lastErr)
}

func statusLine(lastGood time.Time, lastErr error) string {
	switch {
	case lastErr != nil && lastGood.IsZero():
		return "Connection error"
	case lastErr != nil:
		return "Connection error (last good " + humanize.Time(lastGood) + ")"
	case lastGood.IsZero():
		return "Waiting for data..."
	default:
		return "Last update: " + lastGood.Format("15:04:05")
	}
}

// Run bootstraps if needed, polls immediately, then polls every interval
// until ctx is done, passing each result to fn. The ticker follows interval
// changes picked up from the status document.
func (c *Controller) Run(ctx context.Context, fn func(Update)) error {
	if c.State() == StateBootstrapping {
		c.Bootstrap(ctx)
	}

	u := c.Poll(ctx)
	fn(u)

	interval := u.Interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			u := c.Poll(ctx)
			if ctx.Err() != nil {
				return nil
			}
			fn(u)
			if u.Interval != interval {
				interval = u.Interval
				ticker.Reset(interval)
			}
		}
	}
}
