package postgres

import (
	"fmt"

	"github.com/DanielPopoola/proofing-gallery/internal/domain"
)

func toDomainGallery(m GalleryModel, currency string) (*domain.Gallery, error) {
	price, err := domain.ParseMoney(m.AdditionalPhotoPrice, currency)
	if err != nil {
		return nil, fmt.Errorf("gallery %s price: %w", m.ID, err)
	}

	return &domain.Gallery{
		ID:                   m.ID,
		PhotographerID:       m.PhotographerID,
		ClientID:             m.ClientID,
		Title:                m.Title,
		Description:          deref(m.Description),
		AccessCode:           m.AccessCode,
		Status:               domain.GalleryStatus(m.Status),
		PackagePhotosCount:   m.PackagePhotosCount,
		AdditionalPhotoPrice: price,
		ExpiresAt:            m.ExpiresAt,
		CreatedAt:            m.CreatedAt,
	}, nil
}

func toDomainClient(m ClientModel) *domain.Client {
	return &domain.Client{
		ID:             m.ID,
		PhotographerID: m.PhotographerID,
		Email:          m.Email,
		Name:           m.Name,
		Phone:          deref(m.Phone),
	}
}

func toDomainPhoto(m PhotoModel) domain.Photo {
	return domain.Photo{
		ID:           m.ID,
		GalleryID:    m.GalleryID,
		Filename:     m.Filename,
		OriginalURL:  m.OriginalURL,
		ThumbnailURL: m.ThumbnailURL,
		WatermarkURL: m.WatermarkURL,
		StorageKey:   m.StorageKey,
		FileSize:     m.FileSize,
		Width:        m.Width,
		Height:       m.Height,
		UploadOrder:  m.UploadOrder,
		CreatedAt:    m.CreatedAt,
	}
}

func toDomainSelection(m SelectionModel) domain.Selection {
	return domain.Selection{
		ID:                   m.ID,
		PhotoID:              m.PhotoID,
		GalleryID:            m.GalleryID,
		ClientID:             m.ClientID,
		SelectedForPackage:   m.SelectedForPackage,
		IsAdditionalPurchase: m.IsAdditionalPurchase,
		CreatedAt:            m.CreatedAt,
	}
}

func toDomainOrder(m OrderModel) (*domain.Order, error) {
	total, err := domain.ParseMoney(m.TotalAmount, m.Currency)
	if err != nil {
		return nil, fmt.Errorf("order %s total: %w", m.ID, err)
	}

	return &domain.Order{
		ID:              m.ID,
		GalleryID:       m.GalleryID,
		ClientID:        m.ClientID,
		PhotographerID:  m.PhotographerID,
		Total:           total,
		AdditionalCount: m.AdditionalCount,
		SessionID:       m.SessionID,
		Status:          domain.OrderStatus(m.Status),
		GatewayToken:    m.Token,
		GatewayOrderID:  m.GatewayOrderID,
		FailureReason:   m.FailureReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		PaidAt:          m.PaidAt,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
