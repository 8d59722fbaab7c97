package postgres

import (
	"time"
)

// Row shapes as read from the database. NUMERIC columns are selected as text
// and converted to domain.Money in the mappers.

type GalleryModel struct {
	ID                   string
	PhotographerID       string
	ClientID             string
	Title                string
	Description          *string
	AccessCode           string
	Status               string
	PackagePhotosCount   int
	AdditionalPhotoPrice string
	ExpiresAt            *time.Time
	CreatedAt            time.Time
}

type ClientModel struct {
	ID             string
	PhotographerID string
	Email          string
	Name           string
	Phone          *string
}

type PhotoModel struct {
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

type SelectionModel struct {
	ID                   string
	PhotoID              string
	GalleryID            string
	ClientID             string
	SelectedForPackage   bool
	IsAdditionalPurchase bool
	CreatedAt            time.Time
}

type OrderModel struct {
	ID              string
	GalleryID       string
	ClientID        string
	PhotographerID  string
	TotalAmount     string
	Currency        string
	AdditionalCount int
	SessionID       string
	Token           *string
	GatewayOrderID  *int64
	Status          string
	FailureReason   *string
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
