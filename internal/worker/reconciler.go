package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
)

// Finalizer settles a pending order once the gateway reports it paid.
type Finalizer interface {
	FinalizeVerified(ctx context.Context, order *domain.Order, gatewayOrderID, amount int64, currency string) error
}

// Summary counts what one sweep did with the stale orders it found.
type Summary struct {
	Checked int `json:"checked"`
	Paid    int `json:"paid"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
}

type outcome int

const (
	outcomePending outcome = iota
	outcomePaid
	outcomeFailed
)

const staleReason = "payment window elapsed without payment"

// Reconciler sweeps orders that stayed pending past the gateway's payment
// window and settles them from the gateway's own record.
type Reconciler struct {
	orders    application.OrderRepository
	gateway   application.PaymentGateway
	finalizer Finalizer
	interval  time.Duration
	batchSize int
	staleAge  time.Duration
	now       func() time.Time
	logger    *slog.Logger

	mu sync.Mutex
}

func NewReconciler(
	orders application.OrderRepository,
	gateway application.PaymentGateway,
	finalizer Finalizer,
	interval time.Duration,
	batchSize int,
	staleAge time.Duration,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		orders:    orders,
		gateway:   gateway,
		finalizer: finalizer,
		interval:  interval,
		batchSize: batchSize,
		staleAge:  staleAge,
		now:       time.Now,
		logger:    logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting stale order reconciler",
		"interval", r.interval,
		"batch_size", r.batchSize,
		"stale_after", r.staleAge)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping stale order reconciler")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error("stale order sweep failed", "error", err)
			}
		}
	}
}

// RunOnce executes a single sweep over every photographer's orders.
// Concurrent sweeps are serialised.
func (r *Reconciler) RunOnce(ctx context.Context) (Summary, error) {
	return r.sweep(ctx, "")
}

// RunFor sweeps only the stale orders of one photographer's galleries.
func (r *Reconciler) RunFor(ctx context.Context, photographerID string) (Summary, error) {
	if photographerID == "" {
		return Summary{}, application.NewUnauthorizedError("photographer identity required")
	}
	return r.sweep(ctx, photographerID)
}

func (r *Reconciler) sweep(ctx context.Context, photographerID string) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var summary Summary

	cutoff := r.now().Add(-r.staleAge)
	stale, err := r.orders.FindStalePending(ctx, photographerID, cutoff, r.batchSize)
	if err != nil {
		return summary, err
	}
	if len(stale) == 0 {
		return summary, nil
	}

	r.logger.Info("reconciling stale orders",
		"count", len(stale),
		"photographer_id", photographerID)

	for _, order := range stale {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		summary.Checked++
		switch r.reconcile(ctx, order) {
		case outcomePaid:
			summary.Paid++
		case outcomeFailed:
			summary.Failed++
		default:
			summary.Pending++
		}
	}

	r.logger.Info("stale order sweep finished",
		"checked", summary.Checked,
		"paid", summary.Paid,
		"failed", summary.Failed,
		"pending", summary.Pending)

	return summary, nil
}

func (r *Reconciler) reconcile(ctx context.Context, order *domain.Order) outcome {
	tx, err := r.gateway.GetTransaction(ctx, order.SessionID)
	if err != nil {
		if gwErr, ok := application.IsGatewayError(err); ok && gwErr.IsNotFound() {
			return r.markFailed(ctx, order, staleReason)
		}
		r.logger.Warn("gateway lookup failed, order left pending",
			"order_id", order.ID,
			"session_id", order.SessionID,
			"error", err)
		return outcomePending
	}

	switch {
	case tx.IsPaid():
		err := r.finalizer.FinalizeVerified(ctx, order, tx.OrderID, tx.Amount, tx.Currency)
		if err == nil {
			r.logger.Info("recovered paid order", "order_id", order.ID)
			return outcomePaid
		}
		if application.IsRetryable(err) {
			return outcomePending
		}
		return outcomeFailed
	case tx.Status == application.TransactionRefunded:
		return r.markFailed(ctx, order, "transaction refunded at gateway")
	default:
		return r.markFailed(ctx, order, staleReason)
	}
}

func (r *Reconciler) markFailed(ctx context.Context, order *domain.Order, reason string) outcome {
	transitioned, err := r.orders.MarkFailed(ctx, order.ID, reason)
	if err != nil {
		r.logger.Error("failed to mark stale order failed",
			"order_id", order.ID,
			"error", err)
		return outcomePending
	}
	if !transitioned {
		// settled concurrently by a callback
		return outcomePending
	}

	r.logger.Info("stale order marked failed",
		"order_id", order.ID,
		"reason", reason)
	return outcomeFailed
}
