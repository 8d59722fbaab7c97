package postgres

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/jackc/pgx/v5"
)

const galleryColumns = `
	id, photographer_id, client_id, title, description, access_code, status,
	package_photos_count, additional_photo_price::text, expires_at, created_at`

const photoColumns = `
	p.id, p.gallery_id, p.filename, p.original_url, p.thumbnail_url, p.watermark_url,
	p.storage_key, p.file_size, p.width, p.height, p.upload_order, p.created_at`

type GalleryRepository struct {
	q        Executor
	currency string
}

func NewGalleryRepository(db *DB, currency string) *GalleryRepository {
	return &GalleryRepository{q: db.Pool, currency: currency}
}

var _ application.GalleryRepository = (*GalleryRepository)(nil)

func (r *GalleryRepository) FindByID(ctx context.Context, id string) (*domain.Gallery, error) {
	query := `SELECT ` + galleryColumns + ` FROM galleries WHERE id = $1`
	return r.scanGallery(r.q.QueryRow(ctx, query, id), id)
}

func (r *GalleryRepository) FindByAccessCode(ctx context.Context, code string) (*domain.Gallery, error) {
	query := `SELECT ` + galleryColumns + ` FROM galleries WHERE access_code = $1`
	return r.scanGallery(r.q.QueryRow(ctx, query, code), code)
}

func (r *GalleryRepository) scanGallery(row pgx.Row, key string) (*domain.Gallery, error) {
	var m GalleryModel
	err := row.Scan(
		&m.ID, &m.PhotographerID, &m.ClientID, &m.Title, &m.Description, &m.AccessCode, &m.Status,
		&m.PackagePhotosCount, &m.AdditionalPhotoPrice, &m.ExpiresAt, &m.CreatedAt,
	)
	if err != nil {
		if isMissing(err) {
			return nil, domain.NewNotFoundError("gallery", key)
		}
		return nil, fmt.Errorf("scan gallery: %w", err)
	}
	return toDomainGallery(m, r.currency)
}

func (r *GalleryRepository) FindClient(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT id, photographer_id, email, name, phone FROM clients WHERE id = $1`

	var m ClientModel
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.PhotographerID, &m.Email, &m.Name, &m.Phone)
	if err != nil {
		if isMissing(err) {
			return nil, domain.NewNotFoundError("client", id)
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return toDomainClient(m), nil
}

func (r *GalleryRepository) FindPhoto(ctx context.Context, galleryID, photoID string) (*domain.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos p WHERE p.id = $1 AND p.gallery_id = $2`

	rows, err := r.q.Query(ctx, query, photoID, galleryID)
	if err != nil {
		return nil, fmt.Errorf("query photo: %w", err)
	}
	photo, err := pgx.CollectExactlyOneRow(rows, scanPhoto)
	if err != nil {
		if isMissing(err) {
			return nil, domain.NewNotFoundError("photo", photoID)
		}
		return nil, fmt.Errorf("scan photo: %w", err)
	}
	return &photo, nil
}

// ListPhotos returns the gallery's photos in upload order.
func (r *GalleryRepository) ListPhotos(ctx context.Context, galleryID string) ([]domain.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos p WHERE p.gallery_id = $1 ORDER BY p.upload_order, p.id`

	rows, err := r.q.Query(ctx, query, galleryID)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	photos, err := pgx.CollectRows(rows, scanPhoto)
	if err != nil {
		return nil, fmt.Errorf("collect photos: %w", err)
	}
	return photos, nil
}

func (r *GalleryRepository) ListSelectedPhotos(ctx context.Context, galleryID, clientID string) ([]domain.Photo, error) {
	query := `
		SELECT ` + photoColumns + `
		FROM photos p
		JOIN client_selections s ON s.photo_id = p.id
		WHERE s.gallery_id = $1 AND s.client_id = $2
		ORDER BY p.upload_order, p.id`

	rows, err := r.q.Query(ctx, query, galleryID, clientID)
	if err != nil {
		return nil, fmt.Errorf("query selected photos: %w", err)
	}
	photos, err := pgx.CollectRows(rows, scanPhoto)
	if err != nil {
		return nil, fmt.Errorf("collect selected photos: %w", err)
	}
	return photos, nil
}

func scanPhoto(row pgx.CollectableRow) (domain.Photo, error) {
	var m PhotoModel
	err := row.Scan(
		&m.ID, &m.GalleryID, &m.Filename, &m.OriginalURL, &m.ThumbnailURL, &m.WatermarkURL,
		&m.StorageKey, &m.FileSize, &m.Width, &m.Height, &m.UploadOrder, &m.CreatedAt,
	)
	return toDomainPhoto(m), err
}
