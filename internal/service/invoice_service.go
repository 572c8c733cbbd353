package service

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/TeCom0/InvoiceAIService/internal/domain"
	"github.com/TeCom0/InvoiceAIService/internal/normalizer"
	"github.com/TeCom0/InvoiceAIService/internal/port"
)

// AnalyzeDocumentInput is the DTO for document analysis requests.
type AnalyzeDocumentInput struct {
	FileBytes   []byte
	ContentType string
	FileName    string
}

// InvoiceService defines the invoice analysis contract.
type InvoiceService interface {
	AnalyzeDocument(ctx context.Context, input AnalyzeDocumentInput) (*domain.NormalizedInvoice, error)
	AnalyzeFromURL(ctx context.Context, fileURL string) (*domain.NormalizedInvoice, error)
	ExtractText(ctx context.Context, text string) (*domain.TextExtraction, error)
}

type invoiceService struct {
	analyzer port.DocumentAnalyzer
	fetcher  port.DocumentFetcher
	maxBytes int64
}

// NewInvoiceService creates a new InvoiceService implementation.
// maxFileSizeMB caps uploads before they reach the analyzer; a
// non-positive value falls back to 50MB.
func NewInvoiceService(analyzer port.DocumentAnalyzer, fetcher port.DocumentFetcher, maxFileSizeMB int64) InvoiceService {
	maxBytes := maxFileSizeMB * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = 50 * 1024 * 1024
	}
	return &invoiceService{
		analyzer: analyzer,
		fetcher:  fetcher,
		maxBytes: maxBytes,
	}
}

func (s *invoiceService) AnalyzeDocument(ctx context.Context, input AnalyzeDocumentInput) (*domain.NormalizedInvoice, error) {
	// Validate file size
	if int64(len(input.FileBytes)) > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	contentType, err := resolveContentType(input.FileBytes, input.ContentType)
	if err != nil {
		return nil, err
	}

	log.Printf("invoiceService.AnalyzeDocument: analyzing %q (%s, %d bytes)",
		input.FileName, contentType, len(input.FileBytes))

	result, err := s.analyzer.Analyze(ctx, port.AnalyzeInput{
		FileBytes:   input.FileBytes,
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("invoiceService.AnalyzeDocument: analysis failed: %v", err)
		return nil, fmt.Errorf("analyzing document: %w", err)
	}

	return normalizer.Normalize(result)
}

func (s *invoiceService) AnalyzeFromURL(ctx context.Context, fileURL string) (*domain.NormalizedInvoice, error) {
	log.Printf("invoiceService.AnalyzeFromURL: downloading %s", fileURL)

	doc, err := s.fetcher.Fetch(ctx, fileURL)
	if err != nil {
		return nil, err
	}

	return s.AnalyzeDocument(ctx, AnalyzeDocumentInput{
		FileBytes:   doc.Bytes,
		ContentType: doc.ContentType,
		FileName:    fileURL,
	})
}

// ExtractText is the OCR-text variant. No structured extraction is
// performed on pre-extracted text; the input is echoed back unchanged.
func (s *invoiceService) ExtractText(ctx context.Context, text string) (*domain.TextExtraction, error) {
	return &domain.TextExtraction{Text: text, Extracted: false}, nil
}

// resolveContentType validates the declared content type against the
// allowed set, falling back to magic-byte detection when the declared type
// is absent or unknown.
func resolveContentType(fileBytes []byte, declared string) (string, error) {
	if _, ok := domain.AllowedContentTypes[declared]; ok {
		return declared, nil
	}
	detected := http.DetectContentType(fileBytes)
	if _, ok := domain.AllowedContentTypes[detected]; ok {
		return detected, nil
	}
	return "", domain.ErrUnsupportedFileType
}
