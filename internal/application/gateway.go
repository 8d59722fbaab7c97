package application

import (
	"errors"
	"fmt"
)

// RegisterTransactionRequest carries everything the gateway needs to open a
// hosted payment page. Amount is in minor units.
type RegisterTransactionRequest struct {
	SessionID   string
	Amount      int64
	Currency    string
	Description string
	Email       string
	ClientName  string
	ReturnURL   string
	StatusURL   string
}

type RegisterTransactionResponse struct {
	Token       string
	RedirectURL string
}

type VerifyTransactionRequest struct {
	SessionID string
	OrderID   int64
	Amount    int64
	Currency  string
}

// Notification is the asynchronous status callback sent by the gateway.
type Notification struct {
	MerchantID   int    `json:"merchantId" validate:"required"`
	PosID        int    `json:"posId" validate:"required"`
	SessionID    string `json:"sessionId" validate:"required"`
	Amount       int64  `json:"amount" validate:"required"`
	OriginAmount int64  `json:"originAmount"`
	Currency     string `json:"currency" validate:"required"`
	OrderID      int64  `json:"orderId" validate:"required"`
	MethodID     int    `json:"methodId"`
	Statement    string `json:"statement"`
	Sign         string `json:"sign" validate:"required"`
}

// ErrVerificationRejected is returned when the gateway answers a verify call
// with anything other than success.
var ErrVerificationRejected = errors.New("transaction verification rejected")

// Gateway transaction states as reported by the lookup endpoint.
const (
	TransactionNoPayment   = 0
	TransactionAdvance     = 1
	TransactionPaymentMade = 2
	TransactionRefunded    = 3
)

type TransactionStatus struct {
	SessionID string
	OrderID   int64
	Status    int
	Amount    int64
	Currency  string
}

// IsPaid reports whether the gateway has received funds for the transaction.
func (t *TransactionStatus) IsPaid() bool {
	return t.Status == TransactionAdvance || t.Status == TransactionPaymentMade
}

// GatewayError is a non-success answer from the payment gateway. Detail keeps
// the raw response body for support.
type GatewayError struct {
	Code       string
	Message    string
	StatusCode int
	Detail     string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *GatewayError) IsRetryable() bool {
	return e.StatusCode >= 500
}

func (e *GatewayError) IsNotFound() bool {
	return e.StatusCode == 404
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gwErr *GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}
