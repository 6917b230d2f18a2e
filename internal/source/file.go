package source

import (
	"context"
	"fmt"
	"os"

	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/metadata"
)

// FileMetadata reads the metadata document from a local file.
type FileMetadata struct {
	Path string
}

// Metadata reads and decodes the file.
func (f FileMetadata) Metadata(_ context.Context) (*metadata.Document, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			fmt.Sprintf("Can't read metadata file %s", f.Path),
			"Check source.names_file in .invdash.yaml")
	}
	return metadata.Decode(data)
}
