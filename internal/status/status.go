// Package status models the status document polled from the device: an
// ordered set of top-level entries, where object-valued entries are sections
// of scalar fields. Key order is preserved exactly as received.
package status

import (
	"strconv"
	"strings"
)

// Kind identifies the JSON type a Value was decoded from.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBool
	KindComposite // nested array or object kept as raw JSON text
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Value is a single scalar from the status document.
// Raw holds the value's textual form: the JSON number literal for numbers,
// the unquoted text for strings, "true"/"false" for booleans and the raw JSON
// for composites. Raw is empty for null.
type Value struct {
	Kind Kind
	Num  float64
	Raw  string
}

// Null returns the null value.
func Null() Value {
	return Value{Kind: KindNull}
}

// Number returns a numeric value whose textual form is the shortest
// representation of f.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f, Raw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// String returns a text value.
func String(s string) Value {
	return Value{Kind: KindString, Raw: s}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Raw: strconv.FormatBool(b)}
}

// ParseScalar interprets a loose textual payload (as carried by MQTT topics):
// numbers become numeric values, "true"/"false" booleans, "null" or empty
// input the null value, and anything else text.
func ParseScalar(s string) Value {
	s = strings.TrimSpace(s)
	switch s {
	case "", "null":
		return Null()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Value{Kind: KindNumber, Num: f, Raw: s}
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if unq, err := strconv.Unquote(s); err == nil {
			return String(unq)
		}
	}
	return String(s)
}

// IsNull reports whether the value is null or missing.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Float returns the numeric value and whether the value is a number.
func (v Value) Float() (float64, bool) {
	if v.Kind != KindNumber {
		return 0, false
	}
	return v.Num, true
}

// Text returns the raw textual form of the value.
func (v Value) Text() string {
	return v.Raw
}

// Field is one named value inside a section.
type Field struct {
	Key   string
	Value Value
}

// Section is an ordered group of fields rendered as one panel.
type Section struct {
	Key    string
	Fields []Field
}

// Get returns the value of a field and whether it exists.
func (s *Section) Get(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	for _, f := range s.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Set assigns a field, keeping the position of an existing key.
func (s *Section) Set(key string, v Value) {
	for i := range s.Fields {
		if s.Fields[i].Key == key {
			s.Fields[i].Value = v
			return
		}
	}
	s.Fields = append(s.Fields, Field{Key: key, Value: v})
}

// Len returns the number of fields.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Fields)
}

// Entry is a top-level key of the snapshot. Section is nil for scalars.
type Entry struct {
	Key     string
	Section *Section
	Value   Value
}

// IsSection reports whether the entry holds a section.
func (e Entry) IsSection() bool {
	return e.Section != nil
}

// Snapshot is one decoded status document. It is never mutated after it has
// been handed to the renderer.
type Snapshot struct {
	Entries []Entry
}

// Sections returns the object-valued entries in document order.
func (s *Snapshot) Sections() []*Section {
	if s == nil {
		return nil
	}
	var out []*Section
	for _, e := range s.Entries {
		if e.Section != nil {
			out = append(out, e.Section)
		}
	}
	return out
}

// Section returns the section with the given key.
func (s *Snapshot) Section(key string) (*Section, bool) {
	if s == nil {
		return nil, false
	}
	for _, e := range s.Entries {
		if e.Key == key && e.Section != nil {
			return e.Section, true
		}
	}
	return nil, false
}

// Lookup resolves a "section.field" path.
func (s *Snapshot) Lookup(path string) (Value, bool) {
	section, field, ok := strings.Cut(path, ".")
	if !ok {
		return Value{}, false
	}
	sec, found := s.Section(section)
	if !found {
		return Value{}, false
	}
	return sec.Get(field)
}

// SetSection adds or replaces a top-level section, keeping key position.
func (s *Snapshot) SetSection(sec *Section) {
	s.set(Entry{Key: sec.Key, Section: sec})
}

// SetScalar adds or replaces a top-level scalar, keeping key position.
func (s *Snapshot) SetScalar(key string, v Value) {
	s.set(Entry{Key: key, Value: v})
}

// SetField assigns section.field, creating the section on first use.
func (s *Snapshot) SetField(section, field string, v Value) {
	sec, ok := s.Section(section)
	if !ok {
		sec = &Section{Key: section}
		s.SetSection(sec)
	}
	sec.Set(field, v)
}

func (s *Snapshot) set(e Entry) {
	for i := range s.Entries {
		if s.Entries[i].Key == e.Key {
			s.Entries[i] = e
			return
		}
	}
	s.Entries = append(s.Entries, e)
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{Entries: make([]Entry, len(s.Entries))}
	for i, e := range s.Entries {
		out.Entries[i] = e
		if e.Section != nil {
			sec := &Section{Key: e.Section.Key, Fields: make([]Field, len(e.Section.Fields))}
			copy(sec.Fields, e.Section.Fields)
			out.Entries[i].Section = sec
		}
	}
	return out
}
