package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodePaymentInit  = "PAYMENT_INIT_ERROR"
	ErrCodeStorage      = "STORAGE_ERROR"
	ErrCodeTimeout      = "TIMEOUT"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeVerification = "VERIFICATION_FAILED"
)

// NewPaymentInitError wraps a gateway failure during checkout. The gateway's
// answer stays on the wrapped error and never reaches the client.
func NewPaymentInitError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentInit,
		Message:    "Payment could not be started. Please try again.",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewVerificationFailedError rejects a callback the gateway would not confirm.
func NewVerificationFailedError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeVerification,
		Message:    "Payment verification failed",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewStorageError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeStorage,
		Message:    "Temporary storage failure. Please retry.",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewTimeoutError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeTimeout,
		Message:    "Request timed out",
		HTTPStatus: http.StatusRequestTimeout,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewUnauthorizedError(reason string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnauthorized,
		Message:    reason,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewRateLimitedError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeRateLimited,
		Message:    "Too many requests",
		HTTPStatus: http.StatusTooManyRequests,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
