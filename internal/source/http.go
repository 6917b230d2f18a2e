package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rileyhilliard/invdash/internal/errors"
	"github.com/rileyhilliard/invdash/internal/metadata"
	"github.com/rileyhilliard/invdash/internal/status"
)

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// HTTPConfig describes the device's web endpoints.
type HTTPConfig struct {
	BaseURL    string
	StatusPath string
	NamesPath  string
	Timeout    time.Duration
}

// HTTPSource reads both documents from the device's web server.
type HTTPSource struct {
	cfg    HTTPConfig
	client *http.Client
}

// NewHTTP creates an HTTPSource. Empty paths default to /api/status and
// /names.json.
func NewHTTP(cfg HTTPConfig) *HTTPSource {
	if cfg.StatusPath == "" {
		cfg.StatusPath = "/api/status"
	}
	if cfg.NamesPath == "" {
		cfg.NamesPath = "/names.json"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &HTTPSource{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// URL joins the base URL and a path.
func (s *HTTPSource) URL(path string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Status fetches and decodes the status document.
func (s *HTTPSource) Status(ctx context.Context) (*status.Snapshot, error) {
	body, err := s.fetch(ctx, s.cfg.StatusPath)
	if err != nil {
		return nil, err
	}
	return status.Decode(body)
}

// Metadata fetches and decodes the metadata document.
func (s *HTTPSource) Metadata(ctx context.Context) (*metadata.Document, error) {
	body, err := s.fetch(ctx, s.cfg.NamesPath)
	if err != nil {
		return nil, err
	}
	return metadata.Decode(body)
}

func (s *HTTPSource) fetch(ctx context.Context, path string) ([]byte, error) {
	url := s.URL(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid endpoint URL %q", url),
			"Check source.url in .invdash.yaml")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			fmt.Sprintf("Can't reach %s", url),
			"Check that the device is powered and on the same network")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(errors.ErrFetch,
			fmt.Sprintf("%s returned %s", url, resp.Status),
			"Check source.status_path and source.names_path")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			fmt.Sprintf("Reading response from %s failed", url), "")
	}
	return body, nil
}
