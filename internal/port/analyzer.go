package port

import (
	"context"

	"github.com/TeCom0/InvoiceAIService/internal/domain"
)

// AnalyzeInput carries the data needed for a document analysis call.
type AnalyzeInput struct {
	FileBytes   []byte
	ContentType string
}

// DocumentAnalyzer abstracts the external document-intelligence service.
// Analyze blocks until the remote long-running operation completes; polling
// semantics are owned entirely by the implementation.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*domain.AnalyzeResult, error)
}
