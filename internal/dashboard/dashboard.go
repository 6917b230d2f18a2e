// Package dashboard builds the view tree shown to the user: one Panel per
// status section and one Card per field. The tree is plain data; the monitor
// package and the text writer decide how it looks.
package dashboard

import (
	"sync"

	"github.com/rileyhilliard/invdash/internal/format"
	"github.com/rileyhilliard/invdash/internal/metadata"
	"github.com/rileyhilliard/invdash/internal/status"
)

// StyleVariants is the number of panel accent styles panels cycle through.
const StyleVariants = 8

// Card is one labeled value.
type Card struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"` // shown as the card's tooltip
	Value       string `json:"value"`
	Unit        string `json:"unit,omitempty"` // suffix shown after Value, empty when already embedded
}

// Panel groups the cards of one status section.
type Panel struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Style       int    `json:"style"`
	Cards       []Card `json:"cards"`
}

// Builder turns status sections into panels using a metadata document.
type Builder struct {
	formatter *format.Formatter
	meta      *metadata.Document
}

// NewBuilder creates a Builder. A nil formatter uses format.New(); a nil
// document behaves like an empty one.
func NewBuilder(f *format.Formatter, doc *metadata.Document) *Builder {
	if f == nil {
		f = format.New()
	}
	return &Builder{formatter: f, meta: doc}
}

// Metadata returns the document the builder resolves names against.
func (b *Builder) Metadata() *metadata.Document {
	return b.meta
}

// BuildCard renders one field.
func (b *Builder) BuildCard(fieldKey string, v status.Value, sectionKey string) Card {
	meta := b.meta.Lookup(sectionKey, fieldKey)
	kind, _ := b.formatter.Classify(v, fieldKey, sectionKey, b.meta)
	value := b.formatter.Format(v, fieldKey, sectionKey, b.meta)

	card := Card{
		Key:         fieldKey,
		Title:       meta.DisplayName(fieldKey),
		Description: meta.Description,
		Value:       value,
	}
	if showUnit(kind, meta.Unit, value) {
		card.Unit = meta.Unit
	}
	return card
}

// showUnit reports whether unit needs its own suffix next to value. The
// missing sentinel never gets one; engineering output only when scaling
// left the unit out (zero, NaN).
func showUnit(kind format.Kind, unit, value string) bool {
	if unit == "" || format.IsTimeUnit(unit) || kind == format.KindMissing {
		return false
	}
	if kind == format.KindEngineering {
		return !format.EmbedsUnit(value, unit)
	}
	return true
}

// BuildPanel renders a section with the given style index.
func (b *Builder) BuildPanel(sec *status.Section, styleIndex int) Panel {
	meta := b.meta.Section(sec.Key)
	panel := Panel{
		Key:         sec.Key,
		Title:       meta.DisplayName(sec.Key),
		Description: meta.Description,
		Style:       styleIndex % StyleVariants,
		Cards:       make([]Card, 0, len(sec.Fields)),
	}
	for _, f := range sec.Fields {
		panel.Cards = append(panel.Cards, b.BuildCard(f.Key, f.Value, sec.Key))
	}
	return panel
}

// Build renders every section of snap in document order. Scalar top-level
// entries produce no panel and do not advance the style index.
func (b *Builder) Build(snap *status.Snapshot) []Panel {
	sections := snap.Sections()
	panels := make([]Panel, 0, len(sections))
	for i, sec := range sections {
		panels = append(panels, b.BuildPanel(sec, i))
	}
	return panels
}

// Renderer holds the most recent render. Each Render replaces the whole tree;
// readers only ever see a complete one.
type Renderer struct {
	mu      sync.RWMutex
	builder *Builder
	panels  []Panel
}

// NewRenderer creates a Renderer with no content.
func NewRenderer(b *Builder) *Renderer {
	return &Renderer{builder: b}
}

// SetBuilder swaps the builder used by subsequent renders.
func (r *Renderer) SetBuilder(b *Builder) {
	r.mu.Lock()
	r.builder = b
	r.mu.Unlock()
}

// Render builds panels for snap and makes them current.
func (r *Renderer) Render(snap *status.Snapshot) []Panel {
	r.mu.RLock()
	b := r.builder
	r.mu.RUnlock()

	panels := b.Build(snap)

	r.mu.Lock()
	r.panels = panels
	r.mu.Unlock()
	return panels
}

// Panels returns the current tree.
func (r *Renderer) Panels() []Panel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.panels
}
