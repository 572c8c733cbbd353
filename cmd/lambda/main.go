// Lambda is the serverless entry point. It adapts API Gateway proxy events
// onto the same analysis pipeline the HTTP server uses and emits the same
// JSON bodies.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/TeCom0/InvoiceAIService/internal/analyzer/azure"
	"github.com/TeCom0/InvoiceAIService/internal/config"
	"github.com/TeCom0/InvoiceAIService/internal/domain"
	"github.com/TeCom0/InvoiceAIService/internal/fetch"
	"github.com/TeCom0/InvoiceAIService/internal/handler"
	"github.com/TeCom0/InvoiceAIService/internal/service"
)

type analyzeFunction struct {
	invoiceSvc service.InvoiceService
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	analyzer := azure.NewAnalyzer(&cfg.Analyzer)
	fetcher := fetch.NewHTTPFetcher(&cfg.Fetch)

	fn := &analyzeFunction{
		invoiceSvc: service.NewInvoiceService(analyzer, fetcher, cfg.Fetch.MaxFileSizeMB),
	}
	lambda.Start(fn.handle)
}

func (f *analyzeFunction) handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body, err := requestBody(req)
	if err != nil {
		return errorResponse(fmt.Errorf("decoding request body: %w", err)), nil
	}

	contentType := headerValue(req.Headers, "Content-Type")
	mediaType, params, _ := mime.ParseMediaType(contentType)

	if strings.HasPrefix(mediaType, "multipart/") {
		return f.handleUpload(ctx, body, params["boundary"]), nil
	}
	return f.handleJSON(ctx, body), nil
}

// handleUpload handles the multipart document-bytes variant.
func (f *analyzeFunction) handleUpload(ctx context.Context, body []byte, boundary string) events.APIGatewayProxyResponse {
	if boundary == "" {
		return errorResponse(domain.ErrMissingFile)
	}

	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errorResponse(fmt.Errorf("reading multipart body: %w", err))
		}
		if part.FormName() != "file" {
			continue
		}

		fileBytes, err := io.ReadAll(part)
		if err != nil {
			return errorResponse(fmt.Errorf("reading file part: %w", err))
		}

		inv, err := f.invoiceSvc.AnalyzeDocument(ctx, service.AnalyzeDocumentInput{
			FileBytes:   fileBytes,
			ContentType: part.Header.Get("Content-Type"),
			FileName:    part.FileName(),
		})
		if err != nil {
			return errorResponse(err)
		}
		return jsonResponse(inv)
	}

	return errorResponse(domain.ErrMissingFile)
}

// handleJSON handles the {ocrText, fileUrl} variant.
func (f *analyzeFunction) handleJSON(ctx context.Context, body []byte) events.APIGatewayProxyResponse {
	var req handler.AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return errorResponse(domain.ErrMissingInput)
	}

	switch {
	case req.FileURL != "":
		inv, err := f.invoiceSvc.AnalyzeFromURL(ctx, req.FileURL)
		if err != nil {
			return errorResponse(err)
		}
		return jsonResponse(inv)
	case req.OCRText != "":
		res, err := f.invoiceSvc.ExtractText(ctx, req.OCRText)
		if err != nil {
			return errorResponse(err)
		}
		return jsonResponse(res)
	default:
		return errorResponse(domain.ErrMissingInput)
	}
}

func requestBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	if req.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(req.Body)
	}
	return []byte(req.Body), nil
}

func headerValue(headers map[string]string, name string) string {
	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}
	return ""
}

func jsonResponse(payload interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		return errorResponse(fmt.Errorf("marshaling response: %w", err))
	}
	return events.APIGatewayProxyResponse{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func errorResponse(err error) events.APIGatewayProxyResponse {
	status, msg := handler.MapDomainError(err)
	if status >= 500 {
		log.Printf("internal error: %v", err)
	}
	body, _ := json.Marshal(handler.ErrorResponse{Error: msg})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
