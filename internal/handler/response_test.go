package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TeCom0/InvoiceAIService/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing input", domain.ErrMissingInput, http.StatusBadRequest},
		{"missing file", domain.ErrMissingFile, http.StatusBadRequest},
		{"unsupported file type", domain.ErrUnsupportedFileType, http.StatusBadRequest},
		{"invalid file url", domain.ErrInvalidFileURL, http.StatusBadRequest},
		{"file too large", domain.ErrFileTooLarge, http.StatusBadRequest},
		{"no documents found", domain.ErrNoDocumentsFound, http.StatusInternalServerError},
		{"download failed", domain.ErrDownloadFailed, http.StatusInternalServerError},
		{"analysis failed", domain.ErrAnalysisFailed, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := MapDomainError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_WrappedFileTooLarge(t *testing.T) {
	wrapped := errors.Join(domain.ErrFileTooLarge, errors.New("upload is 60MB"))

	status, msg := MapDomainError(wrapped)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "file exceeds maximum allowed size", msg)
}
