package p24

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/config"
)

// RetryClient retries the idempotent gateway calls. Registration is passed
// through once: a retried registration could open a second transaction.
type RetryClient struct {
	inner      application.PaymentGateway
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner application.PaymentGateway, cfg config.RetryConfig) *RetryClient {
	maxRetries := int(cfg.MaxRetries)
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  time.Duration(cfg.BaseDelay) * time.Second,
		maxRetries: maxRetries,
	}
}

func (r *RetryClient) RegisterTransaction(ctx context.Context, req application.RegisterTransactionRequest) (*application.RegisterTransactionResponse, error) {
	return r.inner.RegisterTransaction(ctx, req)
}

// VerifyTransaction with retry logic
func (r *RetryClient) VerifyTransaction(ctx context.Context, req application.VerifyTransactionRequest) error {
	_, err := retry(r, ctx, func(ctx context.Context) (*struct{}, error) {
		return &struct{}{}, r.inner.VerifyTransaction(ctx, req)
	})
	return err
}

// GetTransaction with retry logic
func (r *RetryClient) GetTransaction(ctx context.Context, sessionID string) (*application.TransactionStatus, error) {
	return retry(r, ctx, func(ctx context.Context) (*application.TransactionStatus, error) {
		return r.inner.GetTransaction(ctx, sessionID)
	})
}

func (r *RetryClient) ValidNotification(n application.Notification) bool {
	return r.inner.ValidNotification(n)
}

func (r *RetryClient) RedirectURL(token string) string {
	return r.inner.RedirectURL(token)
}

func retry[T any](r *RetryClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.backoff(attempt)):
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	if errors.Is(err, application.ErrVerificationRejected) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	if gwErr, ok := application.IsGatewayError(err); ok {
		return gwErr.IsRetryable()
	}

	// transport failures and timeouts
	return true
}

// Backoff calculation with exponential delay and jitter
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	jitter := time.Duration(rand.Intn(250)) * time.Millisecond

	return base + jitter
}
