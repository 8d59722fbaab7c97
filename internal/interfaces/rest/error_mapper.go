package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/proofing-gallery/internal/api"
	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
)

// BuildErrorResponse maps an error to its status code and public body.
// Server-side failures never expose the wrapped cause.
func BuildErrorResponse(err error) (int, api.ErrorResponse) {
	statusCode := application.ToHTTPStatus(err)

	return statusCode, api.ErrorResponse{
		Success: false,
		Error: api.ErrorDetail{
			Code:    application.ToErrorCode(err),
			Message: publicMessage(err, statusCode),
		},
	}
}

// Failure builds the response for err and logs server-side faults.
func Failure(err error, logger *slog.Logger) (int, api.ErrorResponse) {
	statusCode, response := BuildErrorResponse(err)

	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			"code", response.Error.Code,
			"category", application.CategorizeError(err),
			"error", err)
	}
	return statusCode, response
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := Failure(err, logger)
	WriteJSON(w, statusCode, response)
}

func publicMessage(err error, statusCode int) string {
	if svcErr, ok := application.IsServiceError(err); ok {
		return svcErr.Message
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	if statusCode == http.StatusRequestTimeout {
		return "Request timed out"
	}
	if statusCode == http.StatusBadGateway {
		return "Payment provider unavailable"
	}
	return "An internal error occurred"
}
