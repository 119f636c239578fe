package accountrepo

import (
	"context"
	"errors"

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

const accountColumns = `id, type, name, user_tag_uid, balance, vouchers`

func (r *Repository) fetchAccount(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	var account domain.Account
	err := r.db.QueryRow(ctx, query, args...).
		Scan(&account.ID, &account.Type, &account.Name, &account.UserTagUID, &account.Balance, &account.Vouchers)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't fetch account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) GetAccountByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	return r.fetchAccount(ctx, query, id)
}

func (r *Repository) GetAccountByTagUID(ctx context.Context, tagUID uint64) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE user_tag_uid = $1
    `
	return r.fetchAccount(ctx, query, tagUID)
}

func (r *Repository) GetSystemAccount(ctx context.Context, accountType domain.AccountType) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE type = $1
    `
	return r.fetchAccount(ctx, query, accountType)
}

func (r *Repository) CreateCustomerAccount(ctx context.Context, tagUID uint64) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (type, user_tag_uid, balance, vouchers)
        VALUES ('private', $1, 0, 0)
        RETURNING ` + accountColumns + `
    `
	var account domain.Account
	err := r.db.QueryRow(ctx, query, tagUID).
		Scan(&account.ID, &account.Type, &account.Name, &account.UserTagUID, &account.Balance, &account.Vouchers)
	if err != nil {
		zap.L().Error("can't create customer account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// BookTransaction appends one immutable leg and applies its balance and
// voucher movement to both accounts. It must run inside the caller's
// transaction; the nested Begin joins it.
func (r *Repository) BookTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	insertQuery := `
        INSERT INTO transactions (order_id, source_account_id, target_account_id, amount, voucher_amount, description, booked_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	debitQuery := `
        UPDATE accounts
        SET balance = balance - $1, vouchers = vouchers - $2
        WHERE id = $3
    `
	creditQuery := `
        UPDATE accounts
        SET balance = balance + $1, vouchers = vouchers + $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, insertQuery,
			t.OrderID, t.SourceAccountID, t.TargetAccountID, t.Amount, t.VoucherAmount, t.Description, t.BookedAt)
		if err := row.Scan(&t.ID); err != nil {
			zap.L().Error("can't insert transaction", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, debitQuery, t.Amount, t.VoucherAmount, t.SourceAccountID); err != nil {
			zap.L().Error("can't debit source account", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, creditQuery, t.Amount, t.VoucherAmount, t.TargetAccountID); err != nil {
			zap.L().Error("can't credit target account", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindTransactionsByOrderID(ctx context.Context, orderID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, order_id, source_account_id, target_account_id, amount, voucher_amount, description, booked_at
        FROM transactions
        WHERE order_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get transactions for order", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.OrderID, &t.SourceAccountID, &t.TargetAccountID,
			&t.Amount, &t.VoucherAmount, &t.Description, &t.BookedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}
