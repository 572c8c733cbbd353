package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TeCom0/InvoiceAIService/internal/domain"
	"github.com/TeCom0/InvoiceAIService/internal/middleware"
)

// ErrorResponse is the body for all failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes and
// user-facing messages. Upstream and unanticipated failures collapse into
// a generic server error; only malformed requests surface as 4xx.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		return http.StatusBadRequest, "either ocrText or fileUrl must be provided"
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "file field is required"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "unsupported file type; allowed: pdf, jpg, png, tiff"
	case errors.Is(err, domain.ErrInvalidFileURL):
		return http.StatusBadRequest, "fileUrl must be a valid http or https URL"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrNoDocumentsFound):
		return http.StatusInternalServerError, "no documents found in the analysis result"
	case errors.Is(err, domain.ErrDownloadFailed):
		return http.StatusInternalServerError, "failed to download document from fileUrl"
	case errors.Is(err, domain.ErrAnalysisFailed):
		return http.StatusInternalServerError, "document analysis failed"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("http: [%s] internal error: %v", middleware.RequestIDFrom(c), err)
	}
	RespondError(c, status, msg)
}
