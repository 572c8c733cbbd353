package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TeCom0/InvoiceAIService/internal/domain"
	"github.com/TeCom0/InvoiceAIService/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) AnalyzeDocument(ctx context.Context, input service.AnalyzeDocumentInput) (*domain.NormalizedInvoice, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NormalizedInvoice), args.Error(1)
}

func (m *MockInvoiceService) AnalyzeFromURL(ctx context.Context, fileURL string) (*domain.NormalizedInvoice, error) {
	args := m.Called(ctx, fileURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NormalizedInvoice), args.Error(1)
}

func (m *MockInvoiceService) ExtractText(ctx context.Context, text string) (*domain.TextExtraction, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TextExtraction), args.Error(1)
}
