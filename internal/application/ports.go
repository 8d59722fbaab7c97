package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/domain"
)

// GalleryRepository reads galleries and what hangs off them.
type GalleryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Gallery, error)
	FindByAccessCode(ctx context.Context, code string) (*domain.Gallery, error)
	FindClient(ctx context.Context, id string) (*domain.Client, error)
	FindPhoto(ctx context.Context, galleryID, photoID string) (*domain.Photo, error)
	ListPhotos(ctx context.Context, galleryID string) ([]domain.Photo, error)
	ListSelectedPhotos(ctx context.Context, galleryID, clientID string) ([]domain.Photo, error)
}

// SelectionRepository is the selection store.
type SelectionRepository interface {
	// Toggle removes the (photo, client) selection if present, otherwise
	// inserts it classified against the gallery's package allowance.
	Toggle(ctx context.Context, gallery *domain.Gallery, photoID, clientID string) (domain.SelectionResult, error)
	ListForClient(ctx context.Context, galleryID, clientID string) ([]domain.Selection, error)
}

type OrderFilter struct {
	GalleryID      string
	PhotographerID string
	Status         domain.OrderStatus
	Limit          int
	Offset         int
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindBySessionID(ctx context.Context, sessionID string) (*domain.Order, error)
	AttachToken(ctx context.Context, orderID, token string) error
	// MarkPaid and MarkFailed only move pending orders and report whether
	// this call performed the transition.
	MarkPaid(ctx context.Context, orderID string, gatewayOrderID int64, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, orderID, reason string) (bool, error)
	// ListForClient returns all of a gallery client's orders, in any status.
	ListForClient(ctx context.Context, galleryID, clientID string) ([]*domain.Order, error)
	// FindStalePending scopes to one photographer unless photographerID is empty.
	FindStalePending(ctx context.Context, photographerID string, createdBefore time.Time, limit int) ([]*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
}

// PaymentGateway is the port for the external payment provider.
type PaymentGateway interface {
	RegisterTransaction(ctx context.Context, req RegisterTransactionRequest) (*RegisterTransactionResponse, error)
	VerifyTransaction(ctx context.Context, req VerifyTransactionRequest) error
	GetTransaction(ctx context.Context, sessionID string) (*TransactionStatus, error)
	// ValidNotification reports whether a callback carries a correct signature.
	ValidNotification(n Notification) bool
	RedirectURL(token string) string
}

// DeliveryNotifier is told once per order that it was paid.
type DeliveryNotifier interface {
	NotifyPaid(ctx context.Context, order *domain.Order) error
}

// AccessCodeCache maps access codes to gallery ids.
type AccessCodeCache interface {
	Get(ctx context.Context, code string) (galleryID string, found bool, err error)
	Set(ctx context.Context, code, galleryID string) error
}
