package domain

import "errors"

var (
	ErrMissingInput        = errors.New("either ocrText or fileUrl must be provided")
	ErrMissingFile         = errors.New("file field is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrInvalidFileURL      = errors.New("file URL is invalid")
	ErrDownloadFailed      = errors.New("downloading document from URL failed")
	ErrNoDocumentsFound    = errors.New("no documents found in analysis result")
	ErrAnalysisFailed      = errors.New("document analysis failed")
)
