package postgres

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const selectionColumns = `id, photo_id, gallery_id, client_id, selected_for_package, is_additional_purchase, created_at`

type SelectionRepository struct {
	q  Executor
	tc *TransactionCoordinator
}

func NewSelectionRepository(db *DB) *SelectionRepository {
	return &SelectionRepository{
		q:  db.Pool,
		tc: NewTransactionCoordinator(db),
	}
}

var _ application.SelectionRepository = (*SelectionRepository)(nil)

// Toggle flips the presence of the (photo, client) selection.
//
// Removal is a single DELETE. Insertion classifies the row against the
// package allowance inside the INSERT itself and relies on the
// (photo_id, client_id) unique constraint: a concurrent toggle that lost the
// insert race adopts the winner's row. The insert runs SERIALIZABLE so two
// different photos cannot both claim the last package slot.
func (r *SelectionRepository) Toggle(
	ctx context.Context,
	gallery *domain.Gallery,
	photoID, clientID string,
) (domain.SelectionResult, error) {
	removed, err := r.delete(ctx, gallery.ID, photoID, clientID)
	if err != nil {
		return domain.SelectionResult{}, err
	}
	if removed {
		return domain.SelectionResult{Selected: false}, nil
	}

	var sel *domain.Selection
	err = r.tc.WithSerializable(ctx, func(ctx context.Context, tx pgx.Tx) error {
		inserted, err := r.insertClassified(ctx, tx, gallery, photoID, clientID)
		if err != nil {
			return err
		}
		if inserted == nil {
			inserted, err = r.find(ctx, tx, photoID, clientID)
			if err != nil {
				return fmt.Errorf("adopt concurrent selection: %w", err)
			}
		}
		sel = inserted
		return nil
	})
	if err != nil {
		return domain.SelectionResult{}, err
	}

	return domain.SelectionResult{Selected: true, Selection: sel}, nil
}

func (r *SelectionRepository) delete(ctx context.Context, galleryID, photoID, clientID string) (bool, error) {
	query := `
		DELETE FROM client_selections
		WHERE photo_id = $1 AND client_id = $2 AND gallery_id = $3
	`

	tag, err := r.q.Exec(ctx, query, photoID, clientID, galleryID)
	if err != nil {
		return false, fmt.Errorf("delete selection: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// insertClassified returns nil without error when the row already exists.
func (r *SelectionRepository) insertClassified(
	ctx context.Context,
	q Executor,
	gallery *domain.Gallery,
	photoID, clientID string,
) (*domain.Selection, error) {
	query := `
		INSERT INTO client_selections (
			id, photo_id, gallery_id, client_id,
			selected_for_package, is_additional_purchase, created_at
		)
		SELECT $1::uuid, $2::uuid, $3::uuid, $4::uuid, c.n < $5::int, c.n >= $5::int, NOW()
		FROM (
			SELECT COUNT(*)::int AS n
			FROM client_selections
			WHERE gallery_id = $3::uuid AND client_id = $4::uuid AND selected_for_package
		) c
		ON CONFLICT (photo_id, client_id) DO NOTHING
		RETURNING ` + selectionColumns

	rows, err := q.Query(ctx, query,
		uuid.NewString(),
		photoID,
		gallery.ID,
		clientID,
		gallery.PackagePhotosCount,
	)
	if err != nil {
		return nil, fmt.Errorf("insert selection: %w", err)
	}

	selections, err := pgx.CollectRows(rows, scanSelection)
	if err != nil {
		return nil, fmt.Errorf("insert selection: %w", err)
	}
	if len(selections) == 0 {
		return nil, nil
	}
	return &selections[0], nil
}

func (r *SelectionRepository) find(ctx context.Context, q Executor, photoID, clientID string) (*domain.Selection, error) {
	query := `SELECT ` + selectionColumns + ` FROM client_selections WHERE photo_id = $1 AND client_id = $2`

	rows, err := q.Query(ctx, query, photoID, clientID)
	if err != nil {
		return nil, fmt.Errorf("query selection: %w", err)
	}
	sel, err := pgx.CollectExactlyOneRow(rows, scanSelection)
	if err != nil {
		if isMissing(err) {
			return nil, domain.NewNotFoundError("selection", photoID)
		}
		return nil, fmt.Errorf("scan selection: %w", err)
	}
	return &sel, nil
}

// ListForClient returns the client's selections in the gallery, oldest first.
func (r *SelectionRepository) ListForClient(ctx context.Context, galleryID, clientID string) ([]domain.Selection, error) {
	query := `
		SELECT ` + selectionColumns + `
		FROM client_selections
		WHERE gallery_id = $1 AND client_id = $2
		ORDER BY created_at, id
	`

	rows, err := r.q.Query(ctx, query, galleryID, clientID)
	if err != nil {
		return nil, fmt.Errorf("query selections: %w", err)
	}
	selections, err := pgx.CollectRows(rows, scanSelection)
	if err != nil {
		return nil, fmt.Errorf("collect selections: %w", err)
	}
	return selections, nil
}

func scanSelection(row pgx.CollectableRow) (domain.Selection, error) {
	var m SelectionModel
	err := row.Scan(
		&m.ID, &m.PhotoID, &m.GalleryID, &m.ClientID,
		&m.SelectedForPackage, &m.IsAdditionalPurchase, &m.CreatedAt,
	)
	return toDomainSelection(m), err
}
