package handler

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TeCom0/InvoiceAIService/internal/csvexport"
	"github.com/TeCom0/InvoiceAIService/internal/domain"
	"github.com/TeCom0/InvoiceAIService/internal/service"
)

// AnalyzeRequest is the JSON body for the analyze endpoint.
type AnalyzeRequest struct {
	OCRText string `json:"ocrText"`
	FileURL string `json:"fileUrl"`
}

// ExtractTextRequest is the JSON body for the extract-text endpoint.
type ExtractTextRequest struct {
	OCRText string `json:"ocrText"`
}

// InvoiceHandler handles invoice analysis endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Analyze handles POST /api/v1/invoices/analyze
// @Summary Analyze an invoice document
// @Description Accepts a multipart document upload or a JSON body with ocrText/fileUrl and returns the normalized invoice
// @Tags invoices
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Produce text/csv
// @Param file formData file false "Invoice document (PDF, JPG, PNG, or TIFF)"
// @Param request body AnalyzeRequest false "OCR text or file URL"
// @Param format query string false "Response format (json or csv)" default(json)
// @Success 200 {object} domain.NormalizedInvoice "Normalized invoice"
// @Failure 400 {object} ErrorResponse "Malformed request or file too large"
// @Failure 500 {object} ErrorResponse "Analysis failed"
// @Router /invoices/analyze [post]
func (h *InvoiceHandler) Analyze(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.analyzeUpload(c)
		return
	}
	h.analyzeBody(c)
}

// analyzeUpload handles the multipart document-bytes variant.
func (h *InvoiceHandler) analyzeUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		HandleError(c, err)
		return
	}

	inv, err := h.invoiceService.AnalyzeDocument(c.Request.Context(), service.AnalyzeDocumentInput{
		FileBytes:   fileBytes,
		ContentType: header.Header.Get("Content-Type"),
		FileName:    header.Filename,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	h.respondInvoice(c, inv)
}

// analyzeBody handles the JSON variant. A fileUrl triggers a download and
// full analysis; ocrText alone falls through to the echo stub since no
// structured extraction is defined for pre-extracted text.
func (h *InvoiceHandler) analyzeBody(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	switch {
	case req.FileURL != "":
		inv, err := h.invoiceService.AnalyzeFromURL(c.Request.Context(), req.FileURL)
		if err != nil {
			HandleError(c, err)
			return
		}
		h.respondInvoice(c, inv)
	case req.OCRText != "":
		res, err := h.invoiceService.ExtractText(c.Request.Context(), req.OCRText)
		if err != nil {
			HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	default:
		HandleError(c, domain.ErrMissingInput)
	}
}

// ExtractText handles POST /api/v1/invoices/extract-text
// @Summary Echo pre-extracted OCR text
// @Description Placeholder endpoint: no structured extraction is performed on pre-extracted text
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body ExtractTextRequest true "Pre-extracted OCR text"
// @Success 200 {object} domain.TextExtraction "Echoed text"
// @Failure 400 {object} ErrorResponse "Missing text"
// @Router /invoices/extract-text [post]
func (h *InvoiceHandler) ExtractText(c *gin.Context) {
	var req ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OCRText == "" {
		HandleError(c, domain.ErrMissingInput)
		return
	}

	res, err := h.invoiceService.ExtractText(c.Request.Context(), req.OCRText)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// respondInvoice serializes the normalized invoice as JSON, or as CSV when
// format=csv is requested.
func (h *InvoiceHandler) respondInvoice(c *gin.Context, inv *domain.NormalizedInvoice) {
	if c.Query("format") != "csv" {
		c.JSON(http.StatusOK, inv)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="invoice.csv"`)
	c.Status(http.StatusOK)

	_, _ = c.Writer.Write(csvexport.BOM)
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteInvoice(inv); err != nil {
		log.Printf("invoiceHandler.respondInvoice: writing CSV: %v", err)
		return
	}
	w.Flush()
}
