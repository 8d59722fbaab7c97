package p24_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/application/mocks"
	"github.com/DanielPopoola/proofing-gallery/internal/config"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/p24"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fastRetry = config.RetryConfig{BaseDelay: 0, MaxRetries: 3}

func verifyRequest() application.VerifyTransactionRequest {
	return application.VerifyTransactionRequest{
		SessionID: "GAL-1-abc",
		OrderID:   987654,
		Amount:    3000,
		Currency:  "PLN",
	}
}

func TestRetryClient_Verify_RetriesOn5xx(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := p24.NewRetryClient(mockGateway, fastRetry)
	req := verifyRequest()

	mockGateway.EXPECT().
		VerifyTransaction(mock.Anything, req).
		Return(&application.GatewayError{Code: "p24_503", StatusCode: 503}).
		Twice()

	mockGateway.EXPECT().
		VerifyTransaction(mock.Anything, req).
		Return(nil).
		Once()

	err := retryClient.VerifyTransaction(context.Background(), req)
	require.NoError(t, err)
}

func TestRetryClient_Verify_DoesNotRetryRejection(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := p24.NewRetryClient(mockGateway, fastRetry)
	req := verifyRequest()

	rejected := fmt.Errorf("%w: status %q", application.ErrVerificationRejected, "error")
	mockGateway.EXPECT().
		VerifyTransaction(mock.Anything, req).
		Return(rejected).
		Once()

	err := retryClient.VerifyTransaction(context.Background(), req)
	assert.ErrorIs(t, err, application.ErrVerificationRejected)
}

func TestRetryClient_Verify_DoesNotRetryOn4xx(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := p24.NewRetryClient(mockGateway, fastRetry)
	req := verifyRequest()

	mockGateway.EXPECT().
		VerifyTransaction(mock.Anything, req).
		Return(&application.GatewayError{Code: "p24_400", StatusCode: 400}).
		Once()

	err := retryClient.VerifyTransaction(context.Background(), req)

	gwErr, ok := application.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, 400, gwErr.StatusCode)
}

func TestRetryClient_GetTransaction_MaxRetriesExceeded(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := p24.NewRetryClient(mockGateway, fastRetry)

	transport := errors.New("connection reset by peer")
	mockGateway.EXPECT().
		GetTransaction(mock.Anything, "GAL-1-abc").
		Return(nil, transport).
		Times(3)

	resp, err := retryClient.GetTransaction(context.Background(), "GAL-1-abc")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, transport)
	assert.Contains(t, err.Error(), "maximum retries exceeded")
}

func TestRetryClient_RegisterTransaction_IsNotRetried(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := p24.NewRetryClient(mockGateway, fastRetry)

	req := application.RegisterTransactionRequest{SessionID: "GAL-1-abc", Amount: 3000, Currency: "PLN"}
	mockGateway.EXPECT().
		RegisterTransaction(mock.Anything, req).
		Return(nil, &application.GatewayError{Code: "p24_500", StatusCode: 500}).
		Once()

	_, err := retryClient.RegisterTransaction(context.Background(), req)
	require.Error(t, err)
}

func TestRetryClient_StopsOnCancelledContext(t *testing.T) {
	mockGateway := mocks.NewMockPaymentGateway(t)
	retryClient := p24.NewRetryClient(mockGateway, fastRetry)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := retryClient.GetTransaction(ctx, "GAL-1-abc")
	assert.ErrorIs(t, err, context.Canceled)
}
