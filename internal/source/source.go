// Package source fetches the two documents the dashboard consumes: the status
// snapshot, polled repeatedly, and the metadata document, read once.
package source

import (
	"context"

	"github.com/rileyhilliard/invdash/internal/metadata"
	"github.com/rileyhilliard/invdash/internal/status"
)

// StatusSource produces a fresh status snapshot on every call.
type StatusSource interface {
	Status(ctx context.Context) (*status.Snapshot, error)
}

// MetadataSource produces the metadata document.
type MetadataSource interface {
	Metadata(ctx context.Context) (*metadata.Document, error)
}

// StatusFunc adapts a function to StatusSource.
type StatusFunc func(ctx context.Context) (*status.Snapshot, error)

// Status calls f.
func (f StatusFunc) Status(ctx context.Context) (*status.Snapshot, error) {
	return f(ctx)
}

// MetadataFunc adapts a function to MetadataSource.
type MetadataFunc func(ctx context.Context) (*metadata.Document, error)

// Metadata calls f.
func (f MetadataFunc) Metadata(ctx context.Context) (*metadata.Document, error) {
	return f(ctx)
}
