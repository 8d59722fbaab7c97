package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
)

// AccessService resolves client access codes to galleries.
type AccessService struct {
	galleries  application.GalleryRepository
	cache      application.AccessCodeCache
	selections *SelectionService
	now        func() time.Time
	logger     *slog.Logger
}

// NewAccessService builds the resolver. cache may be nil.
func NewAccessService(
	galleries application.GalleryRepository,
	cache application.AccessCodeCache,
	selections *SelectionService,
	logger *slog.Logger,
) *AccessService {
	return &AccessService{
		galleries:  galleries,
		cache:      cache,
		selections: selections,
		now:        time.Now,
		logger:     logger,
	}
}

// Resolve returns the gallery behind code if it currently accepts selections.
func (s *AccessService) Resolve(ctx context.Context, code string) (*domain.Gallery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewNotFoundError("gallery", "")
	}

	gallery, err := s.lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := gallery.CheckAcceptsSelections(s.now()); err != nil {
		return nil, err
	}
	return gallery, nil
}

func (s *AccessService) lookup(ctx context.Context, code string) (*domain.Gallery, error) {
	if s.cache != nil {
		galleryID, found, err := s.cache.Get(ctx, code)
		if err != nil {
			s.logger.Warn("access code cache read failed", "error", err)
		}
		if found {
			gallery, err := readWithRetry(ctx, func(ctx context.Context) (*domain.Gallery, error) {
				return s.galleries.FindByID(ctx, galleryID)
			})
			if err == nil && gallery.AccessCode == code {
				return gallery, nil
			}
			if err != nil && !domain.IsErrorCode(err, domain.ErrCodeNotFound) {
				return nil, err
			}
		}
	}

	gallery, err := readWithRetry(ctx, func(ctx context.Context) (*domain.Gallery, error) {
		return s.galleries.FindByAccessCode(ctx, code)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, code, gallery.ID); err != nil {
			s.logger.Warn("access code cache write failed", "error", err)
		}
	}
	return gallery, nil
}

type GalleryOverview struct {
	Gallery *domain.Gallery
	Photos  []domain.Photo
	Summary *SelectionSummary
}

// Overview returns what a client sees on opening the gallery.
func (s *AccessService) Overview(ctx context.Context, code string) (*GalleryOverview, error) {
	gallery, err := s.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	photos, err := readWithRetry(ctx, func(ctx context.Context) ([]domain.Photo, error) {
		return s.galleries.ListPhotos(ctx, gallery.ID)
	})
	if err != nil {
		return nil, err
	}

	summary, err := s.selections.Summary(ctx, gallery)
	if err != nil {
		return nil, err
	}

	return &GalleryOverview{
		Gallery: gallery,
		Photos:  photos,
		Summary: summary,
	}, nil
}
