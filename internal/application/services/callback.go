package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
)

// CallbackService settles orders from gateway notifications.
type CallbackService struct {
	orders   application.OrderRepository
	gateway  application.PaymentGateway
	notifier application.DeliveryNotifier
	now      func() time.Time
	logger   *slog.Logger
}

func NewCallbackService(
	orders application.OrderRepository,
	gateway application.PaymentGateway,
	notifier application.DeliveryNotifier,
	logger *slog.Logger,
) *CallbackService {
	return &CallbackService{
		orders:   orders,
		gateway:  gateway,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// HandleCallback authenticates a notification and, once the gateway confirms
// it, marks the order paid. Redelivery of a settled notification is a no-op.
func (s *CallbackService) HandleCallback(ctx context.Context, n application.Notification) error {
	if !s.gateway.ValidNotification(n) {
		s.logger.Warn("rejected payment notification",
			"reason", "invalid signature",
			"session_id", n.SessionID,
			"gateway_order_id", n.OrderID)
		return domain.NewInvalidSignatureError(n.SessionID)
	}

	order, err := readWithRetry(ctx, func(ctx context.Context) (*domain.Order, error) {
		return s.orders.FindBySessionID(ctx, n.SessionID)
	})
	if err != nil {
		return err
	}

	switch order.Status {
	case domain.OrderPaid:
		s.logger.Info("duplicate notification for paid order",
			"order_id", order.ID,
			"session_id", order.SessionID)
		return nil
	case domain.OrderFailed:
		s.logger.Error("payment notification for failed order, needs manual reconciliation",
			"order_id", order.ID,
			"session_id", order.SessionID,
			"gateway_order_id", n.OrderID,
			"amount", n.Amount)
		return domain.NewInvalidTransitionError(order.Status, domain.OrderPaid)
	}

	return s.FinalizeVerified(ctx, order, n.OrderID, n.Amount, n.Currency)
}

// FinalizeVerified checks the reported amount against the order, confirms
// the transaction with the gateway and moves the order out of pending.
// Transient gateway faults leave the order pending so it can be retried.
func (s *CallbackService) FinalizeVerified(ctx context.Context, order *domain.Order, gatewayOrderID, amount int64, currency string) error {
	if amount != order.Total.Amount || !strings.EqualFold(currency, order.Total.Currency) {
		mismatch := domain.NewAmountMismatchError(order.Total, domain.Money{Amount: amount, Currency: strings.ToUpper(currency)})
		s.logger.Error("payment amount mismatch",
			"order_id", order.ID,
			"expected", order.Total.String(),
			"reported_amount", amount,
			"reported_currency", currency)
		s.settleFailed(ctx, order, mismatch.Error())
		return mismatch
	}

	err := s.gateway.VerifyTransaction(ctx, application.VerifyTransactionRequest{
		SessionID: order.SessionID,
		OrderID:   gatewayOrderID,
		Amount:    order.Total.Amount,
		Currency:  order.Total.Currency,
	})
	if err != nil {
		if !isDefinitiveRejection(err) {
			s.logger.Warn("transaction verification unavailable, order left pending",
				"order_id", order.ID,
				"error", err)
			return err
		}
		s.logger.Error("transaction verification rejected",
			"order_id", order.ID,
			"session_id", order.SessionID,
			"error", err)
		s.settleFailed(ctx, order, err.Error())
		return application.NewVerificationFailedError(err)
	}

	paidAt := s.now().UTC()
	transitioned, err := s.orders.MarkPaid(ctx, order.ID, gatewayOrderID, paidAt)
	if err != nil {
		return storageErr(err)
	}
	if !transitioned {
		s.logger.Info("order already settled by a concurrent notification",
			"order_id", order.ID)
		return nil
	}

	if err := order.MarkPaid(gatewayOrderID, paidAt); err != nil {
		return err
	}

	s.logger.Info("order paid",
		"order_id", order.ID,
		"session_id", order.SessionID,
		"gateway_order_id", gatewayOrderID,
		"amount", order.Total.String())

	if s.notifier != nil {
		if err := s.notifier.NotifyPaid(ctx, order); err != nil {
			s.logger.Error("delivery notification failed",
				"order_id", order.ID,
				"error", err)
		}
	}
	return nil
}

func (s *CallbackService) settleFailed(ctx context.Context, order *domain.Order, reason string) {
	settleCtx, cancel := detached(ctx)
	defer cancel()

	if _, err := s.orders.MarkFailed(settleCtx, order.ID, reason); err != nil {
		s.logger.Error("failed to mark order failed",
			"order_id", order.ID,
			"error", err)
	}
}

func isDefinitiveRejection(err error) bool {
	if errors.Is(err, application.ErrVerificationRejected) {
		return true
	}
	gwErr, ok := application.IsGatewayError(err)
	return ok && !gwErr.IsRetryable()
}
