package pendingrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/festipay/festipay/internal/domain"
	"github.com/festipay/festipay/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const pendingColumns = `uuid, order_type, status, till_id, cashier_id, payload, cancel_reason,
        retry_count, check_interval_seconds, created_at, last_checked_at`

func (r *Repository) Save(ctx context.Context, order *domain.PendingOrder) error {
	query := `
        INSERT INTO pending_orders (uuid, order_type, status, till_id, cashier_id, payload, check_interval_seconds, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query, order.UUID, order.OrderType, order.Status, order.TillID,
		order.CashierID, order.Payload, order.CheckIntervalSeconds, order.CreatedAt)
	if err != nil {
		zap.L().Error("can't save pending order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUUID(ctx context.Context, orderUUID uuid.UUID) (*domain.PendingOrder, error) {
	query := `
        SELECT ` + pendingColumns + `
        FROM pending_orders
        WHERE uuid = $1
    `
	var order domain.PendingOrder
	err := r.db.QueryRow(ctx, query, orderUUID).Scan(
		&order.UUID, &order.OrderType, &order.Status, &order.TillID, &order.CashierID,
		&order.Payload, &order.CancelReason, &order.RetryCount, &order.CheckIntervalSeconds,
		&order.CreatedAt, &order.LastCheckedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't fetch pending order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// FindDue returns pending rows whose per-row check interval has elapsed,
// oldest first.
func (r *Repository) FindDue(ctx context.Context, limit int) ([]domain.PendingOrder, error) {
	query := `
        SELECT ` + pendingColumns + `
        FROM pending_orders
        WHERE status = 'pending'
          AND (last_checked_at IS NULL OR last_checked_at + make_interval(secs => check_interval_seconds) <= now())
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get due pending orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.PendingOrder
	for rows.Next() {
		var order domain.PendingOrder
		err := rows.Scan(
			&order.UUID, &order.OrderType, &order.Status, &order.TillID, &order.CashierID,
			&order.Payload, &order.CancelReason, &order.RetryCount, &order.CheckIntervalSeconds,
			&order.CreatedAt, &order.LastCheckedAt)
		if err != nil {
			zap.L().Error("can't scan pending order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// MarkBooked moves a row into its terminal booked state. Only a pending row
// may transition; anything else reports domain.ErrInvalidState.
func (r *Repository) MarkBooked(ctx context.Context, orderUUID uuid.UUID) error {
	query := `
        UPDATE pending_orders
        SET status = 'booked', last_checked_at = now()
        WHERE uuid = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, orderUUID)
	if err != nil {
		zap.L().Error("can't mark pending order booked", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

func (r *Repository) MarkCancelled(ctx context.Context, orderUUID uuid.UUID, reason string) error {
	query := `
        UPDATE pending_orders
        SET status = 'cancelled', cancel_reason = $2, last_checked_at = now()
        WHERE uuid = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, orderUUID, reason)
	if err != nil {
		zap.L().Error("can't mark pending order cancelled", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

// Touch records a poll attempt and widens the row's backoff interval.
func (r *Repository) Touch(ctx context.Context, orderUUID uuid.UUID, checkIntervalSeconds int, retryCount int) error {
	query := `
        UPDATE pending_orders
        SET last_checked_at = now(), check_interval_seconds = $2, retry_count = $3
        WHERE uuid = $1
    `
	if _, err := r.db.Exec(ctx, query, orderUUID, checkIntervalSeconds, retryCount); err != nil {
		zap.L().Error("can't touch pending order", zap.Error(err))
		return err
	}
	return nil
}
