package handlers

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/proofing-gallery/internal/api"
	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/application/services"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/DanielPopoola/proofing-gallery/internal/worker"
	"github.com/go-playground/validator"
)

type GalleryAccess interface {
	Resolve(ctx context.Context, code string) (*domain.Gallery, error)
	Overview(ctx context.Context, code string) (*services.GalleryOverview, error)
}

type Selections interface {
	Toggle(ctx context.Context, photoID, galleryID, clientID string) (domain.SelectionResult, error)
	Summary(ctx context.Context, gallery *domain.Gallery) (*services.SelectionSummary, error)
}

type Checkout interface {
	InitiateCheckout(ctx context.Context, galleryID string) (*services.CheckoutResult, error)
}

type Callbacks interface {
	HandleCallback(ctx context.Context, n application.Notification) error
}

type Orders interface {
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error)
	ListForGallery(ctx context.Context, photographerID, galleryID string, filter application.OrderFilter) ([]*domain.Order, error)
}

type Sweeper interface {
	RunFor(ctx context.Context, photographerID string) (worker.Summary, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers implements the OpenAPI StrictServerInterface
type Handlers struct {
	access     GalleryAccess
	selections Selections
	checkout   Checkout
	callbacks  Callbacks
	orders     Orders
	sweeper    Sweeper
	db         Pinger
	validate   *validator.Validate
	logger     *slog.Logger
}

func NewHandlers(
	access GalleryAccess,
	selections Selections,
	checkout Checkout,
	callbacks Callbacks,
	orders Orders,
	sweeper Sweeper,
	db Pinger,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		access:     access,
		selections: selections,
		checkout:   checkout,
		callbacks:  callbacks,
		orders:     orders,
		sweeper:    sweeper,
		db:         db,
		validate:   validator.New(),
		logger:     logger,
	}
}

// Ensure Handlers implements StrictServerInterface
var _ api.StrictServerInterface = (*Handlers)(nil)

func (h *Handlers) Health(ctx context.Context, _ api.HealthRequestObject) (api.HealthResponseObject, error) {
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("health check failed", "error", err)
		return api.Health503JSONResponse{Status: "unavailable"}, nil
	}
	return api.Health200JSONResponse{Status: "ok"}, nil
}

