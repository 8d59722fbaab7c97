package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/google/uuid"
)

const settleTimeout = 5 * time.Second

// storageErr passes business and service errors through untouched and turns
// everything else coming out of a repository into a StorageError.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	if _, ok := application.IsServiceError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return application.NewStorageError(err)
}

func isStorageFault(err error) bool {
	svcErr, ok := application.IsServiceError(storageErr(err))
	return ok && svcErr.Code == application.ErrCodeStorage
}

// readWithRetry runs an idempotent read and repeats it once after a storage fault.
func readWithRetry[T any](ctx context.Context, read func(ctx context.Context) (T, error)) (T, error) {
	v, err := read(ctx)
	if err == nil {
		return v, nil
	}
	if !isStorageFault(err) || ctx.Err() != nil {
		return v, storageErr(err)
	}

	v, err = read(ctx)
	return v, storageErr(err)
}

// NewSessionID returns a gateway session id unique across concurrent checkouts
// of the same gallery.
func NewSessionID(galleryID string) string {
	suffix, err := uuid.NewV7()
	if err != nil {
		suffix = uuid.New()
	}
	return fmt.Sprintf("GAL-%s-%s", galleryID, suffix)
}

// detached keeps request values but survives cancellation of the request,
// for writes that must land after the caller has gone away.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
}
