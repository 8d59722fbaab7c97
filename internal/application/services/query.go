package services

import (
	"context"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type OrderQueryService struct {
	orders    application.OrderRepository
	galleries application.GalleryRepository
}

func NewOrderQueryService(orders application.OrderRepository, galleries application.GalleryRepository) *OrderQueryService {
	return &OrderQueryService{
		orders:    orders,
		galleries: galleries,
	}
}

func (s *OrderQueryService) GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	return readWithRetry(ctx, func(ctx context.Context) (*domain.Order, error) {
		return s.orders.FindBySessionID(ctx, sessionID)
	})
}

// ListForGallery returns a gallery's orders to the photographer who owns it.
// Galleries owned by someone else are reported as not found.
func (s *OrderQueryService) ListForGallery(ctx context.Context, photographerID, galleryID string, filter application.OrderFilter) ([]*domain.Order, error) {
	gallery, err := readWithRetry(ctx, func(ctx context.Context) (*domain.Gallery, error) {
		return s.galleries.FindByID(ctx, galleryID)
	})
	if err != nil {
		return nil, err
	}
	if gallery.PhotographerID != photographerID {
		return nil, domain.NewNotFoundError("gallery", galleryID)
	}

	filter.GalleryID = gallery.ID
	filter.PhotographerID = photographerID
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return readWithRetry(ctx, func(ctx context.Context) ([]*domain.Order, error) {
		return s.orders.List(ctx, filter)
	})
}
