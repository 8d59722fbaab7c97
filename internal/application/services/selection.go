package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
)

type SelectionService struct {
	galleries  application.GalleryRepository
	selections application.SelectionRepository
	now        func() time.Time
	logger     *slog.Logger
}

func NewSelectionService(
	galleries application.GalleryRepository,
	selections application.SelectionRepository,
	logger *slog.Logger,
) *SelectionService {
	return &SelectionService{
		galleries:  galleries,
		selections: selections,
		now:        time.Now,
		logger:     logger,
	}
}

// Toggle selects an unselected photo or deselects a selected one.
func (s *SelectionService) Toggle(ctx context.Context, photoID, galleryID, clientID string) (domain.SelectionResult, error) {
	gallery, err := readWithRetry(ctx, func(ctx context.Context) (*domain.Gallery, error) {
		return s.galleries.FindByID(ctx, galleryID)
	})
	if err != nil {
		return domain.SelectionResult{}, err
	}

	if err := gallery.CheckAcceptsSelections(s.now()); err != nil {
		return domain.SelectionResult{}, err
	}
	if gallery.ClientID != clientID {
		return domain.SelectionResult{}, domain.NewNotFoundError("client", clientID)
	}

	_, err = readWithRetry(ctx, func(ctx context.Context) (*domain.Photo, error) {
		return s.galleries.FindPhoto(ctx, gallery.ID, photoID)
	})
	if err != nil {
		return domain.SelectionResult{}, err
	}

	result, err := s.selections.Toggle(ctx, gallery, photoID, clientID)
	if err != nil {
		s.logger.Error("selection toggle failed",
			"gallery_id", gallery.ID,
			"photo_id", photoID,
			"error", err)
		return domain.SelectionResult{}, storageErr(err)
	}

	s.logger.Debug("selection toggled",
		"gallery_id", gallery.ID,
		"photo_id", photoID,
		"selected", result.Selected,
		"package", result.IsPackage())

	return result, nil
}

type SelectionSummary struct {
	Selections  []domain.Selection
	Totals      domain.Totals
	PackageSize int
	Price       domain.Money
}

// Summary prices the gallery client's current selections.
func (s *SelectionService) Summary(ctx context.Context, gallery *domain.Gallery) (*SelectionSummary, error) {
	selections, err := readWithRetry(ctx, func(ctx context.Context) ([]domain.Selection, error) {
		return s.selections.ListForClient(ctx, gallery.ID, gallery.ClientID)
	})
	if err != nil {
		return nil, err
	}

	return &SelectionSummary{
		Selections:  selections,
		Totals:      domain.ComputeTotals(selections, gallery.AdditionalPhotoPrice),
		PackageSize: gallery.PackagePhotosCount,
		Price:       gallery.AdditionalPhotoPrice,
	}, nil
}
