package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/proofing-gallery/internal/domain"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategorySecurity       ErrorCategory = "SECURITY"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrCodeInvalidSignature:
			return CategorySecurity
		case domain.ErrCodeNotFound, domain.ErrCodeOrderNotFound, domain.ErrCodeInvalidAmount:
			return CategoryClientError
		default:
			return CategoryBusinessRule
		}
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput, ErrCodeUnauthorized, ErrCodeRateLimited:
			return CategoryClientError
		case ErrCodeVerification:
			return CategorySecurity
		case ErrCodeStorage, ErrCodeInternal:
			return CategoryInfrastructure
		case ErrCodeTimeout:
			return CategoryTransient
		case ErrCodePaymentInit:
			if gwErr, ok := IsGatewayError(svcErr.Err); ok && !gwErr.IsRetryable() {
				return CategoryPermanent
			}
			return CategoryTransient
		}
	}

	if gwErr, ok := IsGatewayError(err); ok {
		if gwErr.IsRetryable() {
			return CategoryTransient
		}
		return CategoryPermanent
	}

	// Default: Transient (safe fallback)
	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrCodeGalleryUnavailable:
			return http.StatusGone
		case domain.ErrCodeNotFound, domain.ErrCodeOrderNotFound:
			return http.StatusNotFound
		case domain.ErrCodeNoChargeableItems:
			return http.StatusUnprocessableEntity
		case domain.ErrCodeInvalidSignature, domain.ErrCodeInvalidAmount, domain.ErrCodeAmountMismatch:
			return http.StatusBadRequest
		case domain.ErrCodeInvalidTransition, domain.ErrCodeCheckoutInProgress:
			return http.StatusConflict
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	if _, ok := IsGatewayError(err); ok {
		return http.StatusBadGateway
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	if _, ok := IsGatewayError(err); ok {
		return ErrCodePaymentInit
	}

	return ErrCodeInternal
}
