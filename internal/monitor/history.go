package monitor

import (
	"sync"

	"github.com/rileyhilliard/invdash/internal/status"
)

// DefaultHistorySize is the number of samples kept per field.
const DefaultHistorySize = 60

// History keeps recent numeric values per "section.field" in ring buffers so
// the selected card can show a trend.
type History struct {
	mu     sync.RWMutex
	size   int
	fields map[string]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history holding size samples per field.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:   size,
		fields: make(map[string]*ringBuffer),
	}
}

// Push records every numeric section field of snap. Text and null values
// are skipped and leave the field's history untouched.
func (h *History) Push(snap *status.Snapshot) {
	if snap == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sec := range snap.Sections() {
		for _, f := range sec.Fields {
			v, ok := f.Value.Float()
			if !ok {
				continue
			}
			key := historyKey(sec.Key, f.Key)
			buf, ok := h.fields[key]
			if !ok {
				buf = newRingBuffer(h.size)
				h.fields[key] = buf
			}
			buf.push(v)
		}
	}
}

// Get returns up to count of the most recent values for a field, oldest first.
func (h *History) Get(section, field string, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.fields[historyKey(section, field)]
	if !ok {
		return nil
	}
	return buf.getLast(count)
}

// Count returns the number of samples stored for a field.
func (h *History) Count(section, field string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.fields[historyKey(section, field)]
	if !ok {
		return 0
	}
	return buf.count
}

// Clear drops all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fields = make(map[string]*ringBuffer)
}

func historyKey(section, field string) string {
	return section + "." + field
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head is the next write position, so the newest value sits at head-1
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
