// Package azure implements port.DocumentAnalyzer against the Azure
// Document Intelligence REST API.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/TeCom0/InvoiceAIService/internal/config"
	"github.com/TeCom0/InvoiceAIService/internal/domain"
	"github.com/TeCom0/InvoiceAIService/internal/port"
)

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

// Analyzer submits documents to the prebuilt invoice model and polls the
// resulting long-running operation to completion.
type Analyzer struct {
	endpoint     string
	apiKey       string
	modelID      string
	apiVersion   string
	pollInterval time.Duration
	timeout      time.Duration
	client       *http.Client
}

// NewAnalyzer creates an Analyzer from the analyzer config.
func NewAnalyzer(cfg *config.AnalyzerConfig) *Analyzer {
	modelID := cfg.ModelID
	if modelID == "" {
		modelID = "prebuilt-invoice"
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "2024-11-30"
	}
	pollInterval := time.Duration(cfg.PollIntervalSecs) * time.Second
	if pollInterval == 0 {
		pollInterval = 2 * time.Second
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Analyzer{
		endpoint:     strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:       cfg.APIKey,
		modelID:      modelID,
		apiVersion:   apiVersion,
		pollInterval: pollInterval,
		timeout:      timeout,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Analyze submits the document bytes and blocks until the remote operation
// completes. Timeout and polling are owned here; callers see a single
// blocking call.
func (a *Analyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (*domain.AnalyzeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	operationURL, err := a.submit(ctx, input)
	if err != nil {
		return nil, err
	}
	return a.pollToCompletion(ctx, operationURL)
}

// submit starts the analysis operation and returns the operation URL.
func (a *Analyzer) submit(ctx context.Context, input port.AnalyzeInput) (string, error) {
	url := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		a.endpoint, a.modelID, a.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(input.FileBytes))
	if err != nil {
		return "", fmt.Errorf("creating analyze request: %w", err)
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Ocp-Apim-Subscription-Key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling document intelligence API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("document intelligence API error (status %d): %s", resp.StatusCode, string(body))
	}

	operationURL := resp.Header.Get("Operation-Location")
	if operationURL == "" {
		return "", fmt.Errorf("document intelligence API returned no Operation-Location header")
	}
	return operationURL, nil
}

// pollToCompletion polls the operation URL until it reports a terminal
// status or the context is done.
func (a *Analyzer) pollToCompletion(ctx context.Context, operationURL string) (*domain.AnalyzeResult, error) {
	for {
		op, err := a.getOperation(ctx, operationURL)
		if err != nil {
			return nil, err
		}

		switch op.Status {
		case statusSucceeded:
			if op.AnalyzeResult == nil {
				return nil, fmt.Errorf("operation succeeded but carried no analyze result")
			}
			return op.AnalyzeResult.toDomain(), nil
		case statusFailed:
			msg := "unknown error"
			if op.Error != nil {
				msg = op.Error.Message
			}
			return nil, fmt.Errorf("%w: %s", domain.ErrAnalysisFailed, msg)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for analysis operation: %w", ctx.Err())
		case <-time.After(a.pollInterval):
		}
	}
}

func (a *Analyzer) getOperation(ctx context.Context, operationURL string) (*operationResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating poll request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("polling analysis operation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading poll response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poll error (status %d): %s", resp.StatusCode, string(body))
	}

	var op operationResponse
	if err := json.Unmarshal(body, &op); err != nil {
		return nil, fmt.Errorf("unmarshaling poll response: %w", err)
	}
	return &op, nil
}

// operationResponse models the long-running operation status document.
type operationResponse struct {
	Status        string            `json:"status"`
	AnalyzeResult *apiAnalyzeResult `json:"analyzeResult"`
	Error         *apiError         `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiAnalyzeResult struct {
	ModelID   string        `json:"modelId"`
	Content   string        `json:"content"`
	Documents []apiDocument `json:"documents"`
}

type apiDocument struct {
	DocType    string              `json:"docType"`
	Fields     map[string]apiField `json:"fields"`
	Confidence float64             `json:"confidence"`
}

type apiField struct {
	Type        string              `json:"type"`
	Content     string              `json:"content"`
	ValueArray  []apiField          `json:"valueArray"`
	ValueObject map[string]apiField `json:"valueObject"`
	Confidence  float64             `json:"confidence"`
}

func (r *apiAnalyzeResult) toDomain() *domain.AnalyzeResult {
	result := &domain.AnalyzeResult{
		ModelID: r.ModelID,
		Content: r.Content,
	}
	for _, doc := range r.Documents {
		result.Documents = append(result.Documents, domain.AnalyzedDocument{
			DocType:    doc.DocType,
			Fields:     toDomainFields(doc.Fields),
			Confidence: doc.Confidence,
		})
	}
	return result
}

func toDomainFields(fields map[string]apiField) domain.FieldMap {
	if fields == nil {
		return domain.FieldMap{}
	}
	out := make(domain.FieldMap, len(fields))
	for name, field := range fields {
		out[name] = field.toDomain()
	}
	return out
}

func (f apiField) toDomain() domain.DocumentField {
	out := domain.DocumentField{
		Type:       domain.FieldType(f.Type),
		Content:    f.Content,
		Confidence: f.Confidence,
	}
	for _, el := range f.ValueArray {
		out.ValueArray = append(out.ValueArray, el.toDomain())
	}
	if f.ValueObject != nil {
		out.ValueObject = make(map[string]domain.DocumentField, len(f.ValueObject))
		for name, sub := range f.ValueObject {
			out.ValueObject[name] = sub.toDomain()
		}
	}
	return out
}
