package testhelpers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/DanielPopoola/proofing-gallery/internal/infrastructure/persistence/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixture is a photographer with one client, one gallery and its photos.
type Fixture struct {
	PhotographerID string
	ClientID       string
	GalleryID      string
	AccessCode     string
	PhotoIDs       []string
}

type GalleryOptions struct {
	Status      string
	PackageSize int
	Price       string
	Photos      int
	ExpiresAt   *time.Time
	ClientEmail string
}

func DefaultGalleryOptions() GalleryOptions {
	return GalleryOptions{
		Status:      "active",
		PackageSize: 2,
		Price:       "15.00",
		Photos:      5,
		ClientEmail: "client@example.com",
	}
}

// SeedGallery writes a complete gallery fixture straight into the database.
func SeedGallery(t *testing.T, db *postgres.DB, opts GalleryOptions) Fixture {
	t.Helper()
	ctx := context.Background()

	f := Fixture{
		PhotographerID: uuid.NewString(),
		ClientID:       uuid.NewString(),
		GalleryID:      uuid.NewString(),
		AccessCode:     "code-" + uuid.NewString()[:8],
	}

	_, err := db.Pool.Exec(ctx,
		`INSERT INTO photographers (id, email, name) VALUES ($1, $2, $3)`,
		f.PhotographerID, f.PhotographerID+"@studio.example.com", "Studio")
	require.NoError(t, err)

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO clients (id, photographer_id, email, name) VALUES ($1, $2, $3, $4)`,
		f.ClientID, f.PhotographerID, opts.ClientEmail, "Anna Client")
	require.NoError(t, err)

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO galleries (
			id, photographer_id, client_id, title, access_code, status,
			package_photos_count, additional_photo_price, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9)`,
		f.GalleryID, f.PhotographerID, f.ClientID, "Wedding", f.AccessCode, opts.Status,
		opts.PackageSize, opts.Price, opts.ExpiresAt)
	require.NoError(t, err)

	for i := 0; i < opts.Photos; i++ {
		photoID := uuid.NewString()
		key := fmt.Sprintf("galleries/%s/%d.jpg", f.GalleryID, i)
		_, err = db.Pool.Exec(ctx, `
			INSERT INTO photos (
				id, gallery_id, filename, original_url, thumbnail_url, storage_key, upload_order
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			photoID, f.GalleryID, fmt.Sprintf("IMG_%04d.jpg", i),
			"https://cdn.example.com/"+key, "https://cdn.example.com/thumbs/"+key, key, i)
		require.NoError(t, err)
		f.PhotoIDs = append(f.PhotoIDs, photoID)
	}

	return f
}

// NopLogger discards everything; services log on every path under test.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SelectPhotos toggles the first n fixture photos on, in order.
func SelectPhotos(t *testing.T, db *postgres.DB, f Fixture, n int) {
	t.Helper()
	ctx := context.Background()

	gallery, err := postgres.NewGalleryRepository(db, "PLN").FindByID(ctx, f.GalleryID)
	require.NoError(t, err)

	selections := postgres.NewSelectionRepository(db)
	for i := 0; i < n; i++ {
		_, err := selections.Toggle(ctx, gallery, f.PhotoIDs[i], f.ClientID)
		require.NoError(t, err)
	}
}

// CreatePendingOrder stores a pending order for the fixture's gallery.
func CreatePendingOrder(t *testing.T, db *postgres.DB, f Fixture, cents int64) *domain.Order {
	t.Helper()
	ctx := context.Background()

	gallery, err := postgres.NewGalleryRepository(db, "PLN").FindByID(ctx, f.GalleryID)
	require.NoError(t, err)

	totals := domain.Totals{AdditionalCount: 1, TotalCost: domain.Money{Amount: cents, Currency: "PLN"}}
	order, err := domain.NewOrder(uuid.NewString(), gallery, totals,
		fmt.Sprintf("GAL-%s-%s", f.GalleryID, uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, postgres.NewOrderRepository(db).Create(ctx, order))
	return order
}
