package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/TechNest-Affiliates/technest-storefront-backend/models"
)

// Source retrieves the raw catalog document. The store calls Fetch exactly
// once per session.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// ─────────────────────────────────────────────────────────────
// File source
// ─────────────────────────────────────────────────────────────

// FileSource reads the catalog document from local disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", s.Path, err)
	}
	return data, nil
}

// ─────────────────────────────────────────────────────────────
// HTTP source
// ─────────────────────────────────────────────────────────────

// HTTPSource retrieves the catalog document over HTTP. Every fetch carries
// a timeout so a hung origin cannot pin the caller in a loading state.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch catalog %s: unexpected status %d", s.URL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	return data, nil
}

// ─────────────────────────────────────────────────────────────
// Document parsing
// ─────────────────────────────────────────────────────────────

// ParseDocument unmarshals catalog payloads from wrapped or bare-array shapes.
func ParseDocument(data []byte) ([]models.Product, error) {
	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err == nil && doc.Products != nil {
		return doc.Products, nil
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("unmarshal catalog payload: %w", err)
	}
	return products, nil
}
