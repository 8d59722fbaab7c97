package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/domain"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "gallery_id", "client_id", "photographer_id", "total_amount::text", "currency",
	"additional_count", "p24_session_id", "p24_token", "p24_order_id", "status", "failure_reason",
	"paid_at", "created_at", "updated_at",
}

const (
	defaultOrderPageSize = 50
	onePendingIndex      = "orders_one_pending_per_client"
)

type OrderRepository struct {
	q Executor
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{q: db.Pool}
}

var _ application.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (
			id, gallery_id, client_id, photographer_id, total_amount, currency,
			additional_count, p24_session_id, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.q.Exec(ctx, query,
		order.ID,
		order.GalleryID,
		order.ClientID,
		order.PhotographerID,
		order.Total.Decimal(),
		order.Total.Currency,
		order.AdditionalCount,
		order.SessionID,
		string(order.Status),
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) && violatedConstraint(err) == onePendingIndex {
			return domain.NewCheckoutInProgressError(order.GalleryID)
		}
		if IsUniqueViolation(err) {
			return fmt.Errorf("duplicate order session %s: %w", order.SessionID, err)
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query, args, err := psql.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build order query: %w", err)
	}
	order, err := r.one(ctx, query, args...)
	if isMissing(err) {
		return nil, domain.NewNotFoundError("order", id)
	}
	return order, err
}

func (r *OrderRepository) FindBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	query, args, err := psql.Select(orderColumns...).From("orders").Where(sq.Eq{"p24_session_id": sessionID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build order query: %w", err)
	}
	order, err := r.one(ctx, query, args...)
	if isMissing(err) {
		return nil, domain.NewOrderNotFoundError(sessionID)
	}
	return order, err
}

func (r *OrderRepository) AttachToken(ctx context.Context, orderID, token string) error {
	query := `UPDATE orders SET p24_token = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.q.Exec(ctx, query, orderID, token)
	if err != nil {
		return fmt.Errorf("attach token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("order", orderID)
	}
	return nil
}

// MarkPaid moves a pending order to paid. It returns false when the order was
// no longer pending, so exactly one caller observes the transition.
func (r *OrderRepository) MarkPaid(ctx context.Context, orderID string, gatewayOrderID int64, paidAt time.Time) (bool, error) {
	query := `
		UPDATE orders
		SET status = 'paid', p24_order_id = $2, paid_at = $3, updated_at = $3
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := r.q.Exec(ctx, query, orderID, gatewayOrderID, paidAt)
	if err != nil {
		return false, fmt.Errorf("mark order paid: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) MarkFailed(ctx context.Context, orderID, reason string) (bool, error) {
	query := `
		UPDATE orders
		SET status = 'failed', failure_reason = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := r.q.Exec(ctx, query, orderID, reason)
	if err != nil {
		return false, fmt.Errorf("mark order failed: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListForClient returns every order the gallery's client has placed, newest first.
func (r *OrderRepository) ListForClient(ctx context.Context, galleryID, clientID string) ([]*domain.Order, error) {
	query, args, err := psql.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"gallery_id": galleryID, "client_id": clientID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build client order query: %w", err)
	}
	return r.many(ctx, query, args...)
}

// FindStalePending returns pending orders created before the cutoff, oldest
// first. An empty photographerID matches every photographer.
func (r *OrderRepository) FindStalePending(ctx context.Context, photographerID string, createdBefore time.Time, limit int) ([]*domain.Order, error) {
	builder := psql.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": string(domain.OrderPending)}).
		Where(sq.Lt{"created_at": createdBefore})
	if photographerID != "" {
		builder = builder.Where(sq.Eq{"photographer_id": photographerID})
	}

	query, args, err := builder.
		OrderBy("created_at").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stale order query: %w", err)
	}
	return r.many(ctx, query, args...)
}

func (r *OrderRepository) List(ctx context.Context, filter application.OrderFilter) ([]*domain.Order, error) {
	builder := psql.Select(orderColumns...).From("orders").OrderBy("created_at DESC", "id")

	if filter.GalleryID != "" {
		builder = builder.Where(sq.Eq{"gallery_id": filter.GalleryID})
	}
	if filter.PhotographerID != "" {
		builder = builder.Where(sq.Eq{"photographer_id": filter.PhotographerID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(filter.Status)})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	builder = builder.Limit(uint64(limit))
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build order list query: %w", err)
	}
	return r.many(ctx, query, args...)
}

func (r *OrderRepository) one(ctx context.Context, query string, args ...any) (*domain.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanOrderModel)
	if err != nil {
		if isMissing(err) {
			return nil, err
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return toDomainOrder(m)
}

func (r *OrderRepository) many(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	models, err := pgx.CollectRows(rows, scanOrderModel)
	if err != nil {
		return nil, fmt.Errorf("collect orders: %w", err)
	}

	orders := make([]*domain.Order, 0, len(models))
	for _, m := range models {
		o, err := toDomainOrder(m)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func scanOrderModel(row pgx.CollectableRow) (OrderModel, error) {
	var m OrderModel
	err := row.Scan(
		&m.ID, &m.GalleryID, &m.ClientID, &m.PhotographerID, &m.TotalAmount, &m.Currency,
		&m.AdditionalCount, &m.SessionID, &m.Token, &m.GatewayOrderID, &m.Status, &m.FailureReason,
		&m.PaidAt, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
