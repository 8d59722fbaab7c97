// Package domain holds the gallery, selection and order entities together
// with the rules that govern them.
package domain

import "time"

type GalleryStatus string

const (
	GalleryDraft     GalleryStatus = "draft"
	GalleryActive    GalleryStatus = "active"
	GalleryCompleted GalleryStatus = "completed"
	GalleryExpired   GalleryStatus = "expired"
)

type Gallery struct {
	ID                   string
	PhotographerID       string
	ClientID             string
	Title                string
	Description          string
	AccessCode           string
	Status               GalleryStatus
	PackagePhotosCount   int
	AdditionalPhotoPrice Money
	ExpiresAt            *time.Time
	CreatedAt            time.Time
}

// CheckAcceptsSelections returns a GalleryUnavailable error unless the gallery
// is active and its expiry, if any, lies after now.
func (g *Gallery) CheckAcceptsSelections(now time.Time) error {
	if g.Status != GalleryActive {
		return NewGalleryUnavailableError(g.ID, g.Status)
	}
	if g.ExpiresAt != nil && !now.Before(*g.ExpiresAt) {
		return NewGalleryExpiredError(g.ID)
	}
	return nil
}

type Client struct {
	ID             string
	PhotographerID string
	Email          string
	Name           string
	Phone          string
}

// Photo is immutable once uploaded.
type Photo struct {
	ID           string
	GalleryID    string
	Filename     string
	OriginalURL  string
	ThumbnailURL string
	WatermarkURL *string
	StorageKey   string
	FileSize     int64
	Width        int
	Height       int
	UploadOrder  int
	CreatedAt    time.Time
}
