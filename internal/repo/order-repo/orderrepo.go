package orderrepo

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

const orderColumns = `id, uuid, order_type, payment_method, cashier_id, till_id, customer_account_id,
        item_count, total_price, used_vouchers, cancels_order_id, signature, booked_at`

func (r *Repository) fetchOrder(ctx context.Context, query string, args ...any) (*domain.Order, error) {
	var order domain.Order
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&order.ID, &order.UUID, &order.Type, &order.PaymentMethod, &order.CashierID,
		&order.TillID, &order.CustomerAccountID, &order.ItemCount, &order.TotalPrice,
		&order.UsedVouchers, &order.CancelsOrderID, &order.Signature, &order.BookedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't fetch order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := r.fetchOrder(ctx, query, id)
	if err != nil || order == nil {
		return order, err
	}
	items, err := r.findLineItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.LineItems = items
	return order, nil
}

// FindByUUID is the idempotency lookup: a uuid present here means the order
// has already been materialized.
func (r *Repository) FindByUUID(ctx context.Context, orderUUID uuid.UUID) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE uuid = $1
    `
	return r.fetchOrder(ctx, query, orderUUID)
}

// FindCancellation returns the cancel order referencing the given order, if any.
func (r *Repository) FindCancellation(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE cancels_order_id = $1
    `
	return r.fetchOrder(ctx, query, orderID)
}

func (r *Repository) FindByTillID(ctx context.Context, tillID int, limit int) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE till_id = $1
        ORDER BY booked_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, tillID, limit)
	if err != nil {
		zap.L().Error("can't get orders for till", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.UUID, &order.Type, &order.PaymentMethod, &order.CashierID,
			&order.TillID, &order.CustomerAccountID, &order.ItemCount, &order.TotalPrice,
			&order.UsedVouchers, &order.CancelsOrderID, &order.Signature, &order.BookedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Save inserts the order and its line items as one unit and fills in the
// generated order id.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	orderQuery := `
        INSERT INTO orders (uuid, order_type, payment_method, cashier_id, till_id, customer_account_id,
            item_count, total_price, used_vouchers, cancels_order_id, booked_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `
	itemQuery := `
        INSERT INTO line_items (order_id, item_id, product_id, product_name, quantity, product_price, tax_name, tax_rate)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, orderQuery,
			order.UUID, order.Type, order.PaymentMethod, order.CashierID, order.TillID,
			order.CustomerAccountID, order.ItemCount, order.TotalPrice, order.UsedVouchers,
			order.CancelsOrderID, order.BookedAt)
		if err := row.Scan(&order.ID); err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		for i := range order.LineItems {
			item := &order.LineItems[i]
			item.OrderID = order.ID
			item.ItemID = i
			_, err := r.db.Exec(ctx, itemQuery,
				item.OrderID, item.ItemID, item.ProductID, item.ProductName,
				item.Quantity, item.ProductPrice, item.TaxName, item.TaxRate)
			if err != nil {
				zap.L().Error("can't save line item", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) SetSignature(ctx context.Context, orderID int, signature string) error {
	query := `
        UPDATE orders
        SET signature = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, signature, orderID); err != nil {
		zap.L().Error("can't set order signature", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) findLineItems(ctx context.Context, orderID int) ([]domain.LineItem, error) {
	query := `
        SELECT order_id, item_id, product_id, product_name, quantity, product_price, tax_name, tax_rate
        FROM line_items
        WHERE order_id = $1
        ORDER BY item_id ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get line items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		var item domain.LineItem
		err := rows.Scan(&item.OrderID, &item.ItemID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.ProductPrice, &item.TaxName, &item.TaxRate)
		if err != nil {
			zap.L().Error("can't scan line item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
