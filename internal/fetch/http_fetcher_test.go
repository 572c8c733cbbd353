package fetch_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeCom0/InvoiceAIService/internal/config"
	"github.com/TeCom0/InvoiceAIService/internal/domain"
	"github.com/TeCom0/InvoiceAIService/internal/fetch"
)

func newFetcher() *fetch.HTTPFetcher {
	return fetch.NewHTTPFetcher(&config.FetchConfig{MaxFileSizeMB: 1, TimeoutSecs: 5})
}

func TestHTTPFetcher_Fetch_Success(t *testing.T) {
	payload := []byte("%PDF-1.4 test document")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(payload)
	}))
	t.Cleanup(server.Close)

	doc, err := newFetcher().Fetch(context.Background(), server.URL+"/invoice.pdf")
	require.NoError(t, err)

	assert.Equal(t, payload, doc.Bytes)
	assert.Equal(t, "application/pdf", doc.ContentType)
}

func TestHTTPFetcher_Fetch_InvalidURL(t *testing.T) {
	_, err := newFetcher().Fetch(context.Background(), "ftp://example.com/doc.pdf")

	assert.ErrorIs(t, err, domain.ErrInvalidFileURL)
}

func TestHTTPFetcher_Fetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	_, err := newFetcher().Fetch(context.Background(), server.URL+"/missing.pdf")

	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
}

func TestHTTPFetcher_Fetch_TooLarge(t *testing.T) {
	big := bytes.Repeat([]byte("a"), 1024*1024+1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(big)
	}))
	t.Cleanup(server.Close)

	_, err := newFetcher().Fetch(context.Background(), server.URL+"/big.pdf")

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}
