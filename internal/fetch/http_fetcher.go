// Package fetch downloads documents from remote URLs for the fileUrl
// request variant.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/TeCom0/InvoiceAIService/internal/config"
	"github.com/TeCom0/InvoiceAIService/internal/domain"
	"github.com/TeCom0/InvoiceAIService/internal/port"
)

// HTTPFetcher implements port.DocumentFetcher over plain HTTP GET with a
// size cap.
type HTTPFetcher struct {
	maxBytes int64
	client   *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher from the fetch config.
func NewHTTPFetcher(cfg *config.FetchConfig) *HTTPFetcher {
	maxBytes := cfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = 50 * 1024 * 1024
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{
		maxBytes: maxBytes,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the document at rawURL. Responses larger than the
// configured cap are rejected with domain.ErrFileTooLarge.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*port.FetchedDocument, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, domain.ErrInvalidFileURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating download request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDownloadFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrDownloadFailed, resp.StatusCode)
	}
	if resp.ContentLength > f.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read one byte past the cap so an unreported oversize body is caught.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading download body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	return &port.FetchedDocument{
		Bytes:       body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
