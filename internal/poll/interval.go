package poll

import (
	"math"
	"time"

	"github.com/rileyhilliard/invdash/internal/format"
	"github.com/rileyhilliard/invdash/internal/status"
)

// intervalFrom reads the adaptive interval from snap. Callers hold c.mu.
func (c *Controller) intervalFrom(snap *status.Snapshot) (time.Duration, bool) {
	if c.opts.IntervalField == "" {
		return 0, false
	}
	return IntervalFromSnapshot(snap, c.opts.IntervalField, c.opts.IntervalFieldUnit)
}

// IntervalFromSnapshot converts the positive numeric value at path, expressed
// in unit, to a poll interval within [MinInterval, MaxInterval]. NaN and
// infinite values are ignored.
func IntervalFromSnapshot(snap *status.Snapshot, path, unit string) (time.Duration, bool) {
	v, ok := snap.Lookup(path)
	if !ok {
		return 0, false
	}
	n, ok := v.Float()
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0, false
	}
	secs, ok := format.ToSeconds(n, unit)
	if !ok {
		return 0, false
	}
	if secs >= MaxInterval.Seconds() {
		return MaxInterval, true
	}
	return clampInterval(time.Duration(secs * float64(time.Second))), true
}
