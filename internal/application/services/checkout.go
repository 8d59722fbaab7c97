package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/google/uuid"
)

// CheckoutConfig holds the URLs handed to the gateway at registration.
// ReturnURL may contain a {session} placeholder.
type CheckoutConfig struct {
	StatusURL string
	ReturnURL string
}

type CheckoutResult struct {
	OrderID     string
	SessionID   string
	RedirectURL string
	Total       domain.Money

	AdditionalCount int
}

type CheckoutService struct {
	galleries  application.GalleryRepository
	selections application.SelectionRepository
	orders     application.OrderRepository
	gateway    application.PaymentGateway
	cfg        CheckoutConfig
	now        func() time.Time
	logger     *slog.Logger
}

func NewCheckoutService(
	galleries application.GalleryRepository,
	selections application.SelectionRepository,
	orders application.OrderRepository,
	gateway application.PaymentGateway,
	cfg CheckoutConfig,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		galleries:  galleries,
		selections: selections,
		orders:     orders,
		gateway:    gateway,
		cfg:        cfg,
		now:        time.Now,
		logger:     logger,
	}
}

// InitiateCheckout prices the client's additional photos not yet covered by a
// paid order, records a pending order and registers it with the gateway. Only
// one order per gallery client may await payment at a time.
func (s *CheckoutService) InitiateCheckout(ctx context.Context, galleryID string) (*CheckoutResult, error) {
	gallery, err := readWithRetry(ctx, func(ctx context.Context) (*domain.Gallery, error) {
		return s.galleries.FindByID(ctx, galleryID)
	})
	if err != nil {
		return nil, err
	}
	if err := gallery.CheckAcceptsSelections(s.now()); err != nil {
		return nil, err
	}

	client, err := readWithRetry(ctx, func(ctx context.Context) (*domain.Client, error) {
		return s.galleries.FindClient(ctx, gallery.ClientID)
	})
	if err != nil {
		return nil, err
	}

	selections, err := readWithRetry(ctx, func(ctx context.Context) ([]domain.Selection, error) {
		return s.selections.ListForClient(ctx, gallery.ID, client.ID)
	})
	if err != nil {
		return nil, err
	}

	history, err := readWithRetry(ctx, func(ctx context.Context) ([]*domain.Order, error) {
		return s.orders.ListForClient(ctx, gallery.ID, client.ID)
	})
	if err != nil {
		return nil, err
	}
	if open := domain.OpenOrder(history); open != nil {
		s.logger.Info("checkout refused, order awaiting payment",
			"gallery_id", gallery.ID,
			"order_id", open.ID,
			"session_id", open.SessionID)
		return nil, domain.NewCheckoutInProgressError(gallery.ID)
	}

	totals := domain.ComputeTotals(selections, gallery.AdditionalPhotoPrice).
		Outstanding(domain.PaidAdditionalCount(history), gallery.AdditionalPhotoPrice)
	if !totals.HasChargeableItems() {
		return nil, domain.NewNoChargeableItemsError()
	}

	sessionID := NewSessionID(gallery.ID)
	order, err := domain.NewOrder(uuid.NewString(), gallery, totals, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, storageErr(err)
	}

	s.logger.Info("order created",
		"order_id", order.ID,
		"session_id", sessionID,
		"amount", order.Total.String(),
		"additional_photos", totals.AdditionalCount)

	resp, err := s.gateway.RegisterTransaction(ctx, application.RegisterTransactionRequest{
		SessionID:   sessionID,
		Amount:      order.Total.Amount,
		Currency:    order.Total.Currency,
		Description: describe(gallery, totals.AdditionalCount),
		Email:       client.Email,
		ClientName:  client.Name,
		ReturnURL:   strings.ReplaceAll(s.cfg.ReturnURL, "{session}", sessionID),
		StatusURL:   s.cfg.StatusURL,
	})
	if err == nil && resp.Token == "" {
		err = errors.New("gateway returned an empty token")
	}
	if err != nil {
		return nil, s.failRegistration(ctx, order, err)
	}

	if err := s.orders.AttachToken(ctx, order.ID, resp.Token); err != nil {
		// Callbacks correlate on session id, so the client can still pay.
		s.logger.Error("failed to store gateway token",
			"order_id", order.ID,
			"error", err)
	}

	return &CheckoutResult{
		OrderID:     order.ID,
		SessionID:   sessionID,
		RedirectURL: resp.RedirectURL,
		Total:       order.Total,

		AdditionalCount: order.AdditionalCount,
	}, nil
}

func (s *CheckoutService) failRegistration(ctx context.Context, order *domain.Order, cause error) error {
	detail := cause.Error()
	if gwErr, ok := application.IsGatewayError(cause); ok && gwErr.Detail != "" {
		detail = gwErr.Detail
	}

	s.logger.Error("gateway registration failed",
		"order_id", order.ID,
		"session_id", order.SessionID,
		"detail", detail,
		"error", cause)

	settleCtx, cancel := detached(ctx)
	defer cancel()
	if _, err := s.orders.MarkFailed(settleCtx, order.ID, detail); err != nil {
		s.logger.Error("failed to mark order failed",
			"order_id", order.ID,
			"error", err)
	}

	return application.NewPaymentInitError(cause)
}

func describe(gallery *domain.Gallery, additional int) string {
	return fmt.Sprintf("Gallery: %s - %d additional photo(s)", gallery.Title, additional)
}
