package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/festipay/festipay/internal/domain"
	"github.com/festipay/festipay/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func accountRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "type", "name", "user_tag_uid", "balance", "vouchers"})
}

func TestRepository_GetAccountByTagUID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	tagUID := uint64(1234567890)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Known tag returns the account",
			mockSetup: func() {
				rows := accountRows().AddRow(7, "private", "", &tagUID, 100.0, 2)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_tag_uid = $1`)).
					WithArgs(tagUID).
					WillReturnRows(rows)
			},
			result: &domain.Account{ID: 7, Type: domain.AccountTypePrivate, UserTagUID: &tagUID, Balance: 100, Vouchers: 2},
		},
		{
			name: "Unknown tag returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_tag_uid = $1`)).
					WithArgs(tagUID).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_tag_uid = $1`)).
					WithArgs(tagUID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetAccountByTagUID(context.Background(), tagUID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetSystemAccount(t *testing.T) {
	repo, mock, _ := NewMock(t)

	rows := accountRows().AddRow(100, "sale_exit", "sale exit", nil, -250.0, 0)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE type = $1`)).
		WithArgs(domain.AccountTypeSaleExit).
		WillReturnRows(rows)

	account, err := repo.GetSystemAccount(context.Background(), domain.AccountTypeSaleExit)
	assert.NoError(t, err)
	assert.Equal(t, 100, account.ID)
	assert.InDelta(t, -250.0, account.Balance, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateCustomerAccount(t *testing.T) {
	repo, mock, _ := NewMock(t)
	tagUID := uint64(42)

	rows := accountRows().AddRow(8, "private", "", &tagUID, 0.0, 0)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts (type, user_tag_uid, balance, vouchers)`)).
		WithArgs(tagUID).
		WillReturnRows(rows)

	account, err := repo.CreateCustomerAccount(context.Background(), tagUID)
	assert.NoError(t, err)
	assert.Equal(t, 8, account.ID)
	assert.Equal(t, domain.AccountTypePrivate, account.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BookTransaction(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	orderID := 42
	bookedAt := time.Now()

	t.Run("Inserts the leg and moves both balances", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
			WithArgs(&orderID, 7, 100, 15.0, 2, "sale", bookedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance - $1, vouchers = vouchers - $2`)).
			WithArgs(15.0, 2, 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance + $1, vouchers = vouchers + $2`)).
			WithArgs(15.0, 2, 100).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		transaction, err := repo.BookTransaction(context.Background(), &domain.Transaction{
			OrderID:         &orderID,
			SourceAccountID: 7,
			TargetAccountID: 100,
			Amount:          15,
			VoucherAmount:   2,
			Description:     "sale",
			BookedAt:        bookedAt,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, transaction.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Debit failure aborts the booking", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
			WithArgs(&orderID, 7, 100, 15.0, 0, "sale", bookedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectExec(regexp.QuoteMeta(`SET balance = balance - $1, vouchers = vouchers - $2`)).
			WithArgs(15.0, 0, 7).
			WillReturnError(errors.New("check constraint violated"))

		_, err := repo.BookTransaction(context.Background(), &domain.Transaction{
			OrderID:         &orderID,
			SourceAccountID: 7,
			TargetAccountID: 100,
			Amount:          15,
			Description:     "sale",
			BookedAt:        bookedAt,
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindTransactionsByOrderID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	orderID := 42
	bookedAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "order_id", "source_account_id", "target_account_id", "amount", "voucher_amount", "description", "booked_at"}).
		AddRow(1, &orderID, 7, 100, 15.0, 2, "sale", bookedAt).
		AddRow(2, &orderID, 7, 101, 3.0, 0, "sale", bookedAt)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
		WithArgs(orderID).
		WillReturnRows(rows)

	transactions, err := repo.FindTransactionsByOrderID(context.Background(), orderID)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, 7, transactions[0].SourceAccountID)
	assert.Equal(t, 100, transactions[0].TargetAccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
