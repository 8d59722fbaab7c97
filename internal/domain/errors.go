package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidAmount     = errors.New("invalid amount")
)

const (
	ErrCodeGalleryUnavailable = "GALLERY_UNAVAILABLE"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeNoChargeableItems  = "NO_CHARGEABLE_ITEMS"
	ErrCodeCheckoutInProgress = "CHECKOUT_IN_PROGRESS"
	ErrCodeInvalidSignature   = "INVALID_SIGNATURE"
	ErrCodeInvalidTransition  = "INVALID_TRANSITION"
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
	ErrCodeAmountMismatch     = "AMOUNT_MISMATCH"
)

func NewGalleryUnavailableError(galleryID string, status GalleryStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeGalleryUnavailable,
		Message: fmt.Sprintf("gallery %s is not available (status %s)", galleryID, status),
	}
}

func NewGalleryExpiredError(galleryID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeGalleryUnavailable,
		Message: fmt.Sprintf("gallery %s has expired", galleryID),
	}
}

func NewNotFoundError(entity, id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}

func NewOrderNotFoundError(sessionID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeOrderNotFound,
		Message: fmt.Sprintf("no order for session %s", sessionID),
	}
}

func NewNoChargeableItemsError() *DomainError {
	return &DomainError{
		Code:    ErrCodeNoChargeableItems,
		Message: "no additional photos selected",
	}
}

func NewCheckoutInProgressError(galleryID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeCheckoutInProgress,
		Message: fmt.Sprintf("a payment for gallery %s is already in progress", galleryID),
	}
}

func NewInvalidSignatureError(sessionID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidSignature,
		Message: fmt.Sprintf("signature mismatch for session %s", sessionID),
	}
}

func NewInvalidTransitionError(from, to OrderStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
		Err:     ErrInvalidTransition,
	}
}

func NewInvalidAmountError(raw string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %q", raw),
		Err:     ErrInvalidAmount,
	}
}

func NewAmountMismatchError(expected, actual Money) *DomainError {
	return &DomainError{
		Code:    ErrCodeAmountMismatch,
		Message: fmt.Sprintf("amount mismatch: expected %s, got %s", expected, actual),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
