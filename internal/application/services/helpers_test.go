package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWithRetry_RetriesStorageFaultOnce(t *testing.T) {
	calls := 0
	v, err := readWithRetry(context.Background(), func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("connection reset")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestReadWithRetry_GivesUpAfterSecondFault(t *testing.T) {
	calls := 0
	_, err := readWithRetry(context.Background(), func(context.Context) (string, error) {
		calls++
		return "", errors.New("connection reset")
	})

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeStorage, svcErr.Code)
	assert.Equal(t, 2, calls)
}

func TestReadWithRetry_DoesNotRetryDomainErrors(t *testing.T) {
	calls := 0
	_, err := readWithRetry(context.Background(), func(context.Context) (string, error) {
		calls++
		return "", domain.NewNotFoundError("gallery", "g-1")
	})

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeNotFound))
	assert.Equal(t, 1, calls)
}

func TestReadWithRetry_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := readWithRetry(ctx, func(context.Context) (string, error) {
		calls++
		return "", errors.New("connection reset")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNewSessionID(t *testing.T) {
	pattern := regexp.MustCompile(`^GAL-g-1-[0-9a-f-]{36}$`)

	first := NewSessionID("g-1")
	second := NewSessionID("g-1")

	assert.Regexp(t, pattern, first)
	assert.NotEqual(t, first, second)
}
