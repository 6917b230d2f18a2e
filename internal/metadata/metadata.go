// Package metadata holds the static reference document that maps raw status
// keys to display names, units and descriptions. Absent keys are expected:
// every lookup falls back to an empty value instead of failing.
package metadata

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/rileyhilliard/invdash/internal/errors"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// FieldMeta describes one status field. Every member is optional.
type FieldMeta struct {
	Name        string
	Unit        string
	Description string
}

// DisplayName returns the configured name or the raw field key.
func (f FieldMeta) DisplayName(fieldKey string) string {
	if f.Name != "" {
		return f.Name
	}
	return fieldKey
}

// SectionMeta describes one section and the fields it contains.
type SectionMeta struct {
	Name        string
	Description string
	Fields      map[string]FieldMeta
}

// DisplayName returns the configured name or the upper-cased section key.
func (s SectionMeta) DisplayName(sectionKey string) string {
	if s.Name != "" {
		return s.Name
	}
	return strings.ToUpper(sectionKey)
}

// Document is the loaded metadata reference. A nil *Document behaves like an
// empty one, so callers never need to special-case a failed load.
type Document struct {
	sections map[string]SectionMeta
}

// Empty returns a document with no entries.
func Empty() *Document {
	return &Document{sections: make(map[string]SectionMeta)}
}

// Len returns the number of described sections.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sections)
}

// Section returns the metadata for a section, or the zero value.
func (d *Document) Section(sectionKey string) SectionMeta {
	if d == nil {
		return SectionMeta{}
	}
	return d.sections[sectionKey]
}

// Lookup resolves a (section, field) pair. Missing entries yield the zero
// FieldMeta.
func (d *Document) Lookup(sectionKey, fieldKey string) FieldMeta {
	sec := d.Section(sectionKey)
	if sec.Fields == nil {
		return FieldMeta{}
	}
	return sec.Fields[fieldKey]
}

// SetSection installs metadata for a section.
func (d *Document) SetSection(sectionKey string, meta SectionMeta) {
	if d.sections == nil {
		d.sections = make(map[string]SectionMeta)
	}
	d.sections[sectionKey] = meta
}

// Decode parses a metadata document of the form
//
//	{"inverter": {"name": "Inverter", "autonomy": {"name": "Autonomy", "unit": "min"}}}
//
// String members named name, displayName or description describe the section;
// object members describe fields. Anything else is ignored.
func Decode(data []byte) (*Document, error) {
	iter := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.New(errors.ErrDecode,
			"Metadata document is not a JSON object",
			"names.json should map section keys to objects")
	}

	doc := Empty()
	iter.ReadObjectCB(func(it *jsoniter.Iterator, sectionKey string) bool {
		if it.WhatIsNext() != jsoniter.ObjectValue {
			it.Skip()
			return it.Error == nil
		}
		doc.SetSection(sectionKey, readSection(it))
		return it.Error == nil
	})

	if iter.Error != nil {
		return nil, errors.WrapWithCode(iter.Error, errors.ErrDecode,
			"Malformed metadata document",
			"Check names.json for JSON syntax errors")
	}
	return doc, nil
}

func readSection(it *jsoniter.Iterator) SectionMeta {
	var displayName string
	meta := SectionMeta{Fields: make(map[string]FieldMeta)}

	it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		switch it.WhatIsNext() {
		case jsoniter.ObjectValue:
			meta.Fields[key] = readField(it)
		case jsoniter.StringValue:
			s := it.ReadString()
			switch key {
			case "name":
				meta.Name = s
			case "displayName":
				displayName = s
			case "description":
				meta.Description = s
			}
		default:
			it.Skip()
		}
		return it.Error == nil
	})

	if meta.Name == "" {
		meta.Name = displayName
	}
	return meta
}

func readField(it *jsoniter.Iterator) FieldMeta {
	var f FieldMeta
	it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		if it.WhatIsNext() != jsoniter.StringValue {
			it.Skip()
			return it.Error == nil
		}
		s := it.ReadString()
		switch key {
		case "name":
			f.Name = s
		case "unit":
			f.Unit = s
		case "description":
			f.Description = s
		}
		return it.Error == nil
	})
	return f
}
