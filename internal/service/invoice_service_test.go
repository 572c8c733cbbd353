package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TeCom0/InvoiceAIService/internal/domain"
	"github.com/TeCom0/InvoiceAIService/internal/port"
	"github.com/TeCom0/InvoiceAIService/internal/service"
	"github.com/TeCom0/InvoiceAIService/mocks"
)

var pdfBytes = []byte("%PDF-1.4 test content")

func analyzeResult(fields domain.FieldMap) *domain.AnalyzeResult {
	return &domain.AnalyzeResult{
		ModelID:   "prebuilt-invoice",
		Documents: []domain.AnalyzedDocument{{DocType: "invoice", Fields: fields}},
	}
}

func TestInvoiceService_AnalyzeDocument_Success(t *testing.T) {
	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	svc := service.NewInvoiceService(mockAnalyzer, new(mocks.MockDocumentFetcher), 0)

	mockAnalyzer.On("Analyze", mock.Anything, port.AnalyzeInput{
		FileBytes:   pdfBytes,
		ContentType: "application/pdf",
	}).Return(analyzeResult(domain.FieldMap{
		"VendorName": {Type: domain.FieldTypeString, Content: "Acme Corp"},
	}), nil)

	inv, err := svc.AnalyzeDocument(context.Background(), service.AnalyzeDocumentInput{
		FileBytes:   pdfBytes,
		ContentType: "application/pdf",
		FileName:    "invoice.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", inv.Vendor)
	mockAnalyzer.AssertExpectations(t)
}

func TestInvoiceService_AnalyzeDocument_DetectsContentType(t *testing.T) {
	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	svc := service.NewInvoiceService(mockAnalyzer, new(mocks.MockDocumentFetcher), 0)

	// Declared type is unknown; magic bytes identify a PDF.
	mockAnalyzer.On("Analyze", mock.Anything, mock.MatchedBy(func(in port.AnalyzeInput) bool {
		return in.ContentType == "application/pdf"
	})).Return(analyzeResult(domain.FieldMap{}), nil)

	_, err := svc.AnalyzeDocument(context.Background(), service.AnalyzeDocumentInput{
		FileBytes:   pdfBytes,
		ContentType: "binary/octet-stream",
	})

	require.NoError(t, err)
	mockAnalyzer.AssertExpectations(t)
}

func TestInvoiceService_AnalyzeDocument_UnsupportedType(t *testing.T) {
	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	svc := service.NewInvoiceService(mockAnalyzer, new(mocks.MockDocumentFetcher), 0)

	_, err := svc.AnalyzeDocument(context.Background(), service.AnalyzeDocumentInput{
		FileBytes:   []byte("plain text, not a document"),
		ContentType: "text/plain",
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	mockAnalyzer.AssertNotCalled(t, "Analyze")
}

func TestInvoiceService_AnalyzeDocument_FileTooLarge(t *testing.T) {
	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	svc := service.NewInvoiceService(mockAnalyzer, new(mocks.MockDocumentFetcher), 1)

	oversized := make([]byte, 1*1024*1024+1)
	copy(oversized, pdfBytes)

	_, err := svc.AnalyzeDocument(context.Background(), service.AnalyzeDocumentInput{
		FileBytes:   oversized,
		ContentType: "application/pdf",
		FileName:    "huge.pdf",
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	mockAnalyzer.AssertNotCalled(t, "Analyze")
}

func TestInvoiceService_AnalyzeDocument_NoDocuments(t *testing.T) {
	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	svc := service.NewInvoiceService(mockAnalyzer, new(mocks.MockDocumentFetcher), 0)

	mockAnalyzer.On("Analyze", mock.Anything, mock.Anything).
		Return(&domain.AnalyzeResult{ModelID: "prebuilt-invoice"}, nil)

	inv, err := svc.AnalyzeDocument(context.Background(), service.AnalyzeDocumentInput{
		FileBytes:   pdfBytes,
		ContentType: "application/pdf",
	})

	assert.ErrorIs(t, err, domain.ErrNoDocumentsFound)
	assert.Nil(t, inv)
}

func TestInvoiceService_AnalyzeDocument_AnalyzerError(t *testing.T) {
	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	svc := service.NewInvoiceService(mockAnalyzer, new(mocks.MockDocumentFetcher), 0)

	mockAnalyzer.On("Analyze", mock.Anything, mock.Anything).
		Return(nil, errors.New("network unreachable"))

	_, err := svc.AnalyzeDocument(context.Background(), service.AnalyzeDocumentInput{
		FileBytes:   pdfBytes,
		ContentType: "application/pdf",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "network unreachable")
}

func TestInvoiceService_AnalyzeFromURL_Success(t *testing.T) {
	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	mockFetcher := new(mocks.MockDocumentFetcher)
	svc := service.NewInvoiceService(mockAnalyzer, mockFetcher, 0)

	mockFetcher.On("Fetch", mock.Anything, "https://example.com/invoice.pdf").
		Return(&port.FetchedDocument{Bytes: pdfBytes, ContentType: "application/pdf"}, nil)
	mockAnalyzer.On("Analyze", mock.Anything, mock.Anything).
		Return(analyzeResult(domain.FieldMap{
			"VendorName": {Type: domain.FieldTypeString, Content: "Acme Corp"},
		}), nil)

	inv, err := svc.AnalyzeFromURL(context.Background(), "https://example.com/invoice.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", inv.Vendor)
	mockFetcher.AssertExpectations(t)
	mockAnalyzer.AssertExpectations(t)
}

func TestInvoiceService_AnalyzeFromURL_DownloadFails(t *testing.T) {
	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	mockFetcher := new(mocks.MockDocumentFetcher)
	svc := service.NewInvoiceService(mockAnalyzer, mockFetcher, 0)

	mockFetcher.On("Fetch", mock.Anything, mock.Anything).
		Return(nil, domain.ErrDownloadFailed)

	_, err := svc.AnalyzeFromURL(context.Background(), "https://example.com/missing.pdf")

	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
	mockAnalyzer.AssertNotCalled(t, "Analyze")
}

func TestInvoiceService_ExtractText_EchoesInput(t *testing.T) {
	svc := service.NewInvoiceService(new(mocks.MockDocumentAnalyzer), new(mocks.MockDocumentFetcher), 0)

	res, err := svc.ExtractText(context.Background(), "INVOICE #42\nTotal: $10")
	require.NoError(t, err)

	assert.Equal(t, "INVOICE #42\nTotal: $10", res.Text)
	assert.False(t, res.Extracted)
}
