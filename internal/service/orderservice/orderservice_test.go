package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/festipay/festipay/internal/domain"
	"github.com/festipay/festipay/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockOrderRepo, *MockTillRepo, *MockSigner) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	tillRepo := NewMockTillRepo(ctrl)
	signer := NewMockSigner(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(accountRepo, orderRepo, tillRepo, txManager, signer, Config{
		MinBalance: 0,
		MaxBalance: 150,
	})
	defer ctrl.Finish()
	return service, accountRepo, orderRepo, tillRepo, signer
}

func testTill() *domain.Till {
	registerID := 50
	ticketID := 9
	return &domain.Till{
		ID:                1,
		Name:              "beer tent 1",
		ActiveProfileID:   10,
		RegisterAccountID: &registerID,
		TicketProductID:   &ticketID,
	}
}

func testProfile() *domain.TillProfile {
	return &domain.TillProfile{
		ID:              10,
		Name:            "full access",
		AllowTopUp:      true,
		AllowCashOut:    true,
		AllowTicketSale: true,
		ButtonIDs:       []int{1, 2},
	}
}

func intPtr(v int) *int { return &v }

func TestCheckSaleAggregatesLineItems(t *testing.T) {
	service, accountRepo, _, tillRepo, _ := NewMock(t)

	beer := domain.Product{ID: 1, Name: "Helles 0.5l", Price: 5, TaxName: "ust", TaxRate: 0.19}
	deposit := domain.Product{ID: 2, Name: "deposit", Price: 2, IsReturnable: true, TaxName: "none"}

	tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
	accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
		Return(&domain.Account{ID: 7, Balance: 100}, nil)
	accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeSaleExit).
		Return(&domain.Account{ID: 100, Type: domain.AccountTypeSaleExit}, nil)
	tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 1).Return([]domain.Product{beer, deposit}, nil).Times(2)
	tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 2).Return([]domain.Product{deposit}, nil).Times(3)

	pending, err := service.CheckSale(context.Background(), testTill(), &domain.NewSale{
		CustomerTagUID: 123,
		Buttons: []domain.Button{
			{TillButtonID: 1, Quantity: 3},
			{TillButtonID: 1, Quantity: 2},
			{TillButtonID: 2, Quantity: -1},
			{TillButtonID: 2, Quantity: -1},
			{TillButtonID: 2, Quantity: -2},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, pending.LineItems, 2)
	assert.Equal(t, 5, pending.LineItems[0].Quantity)
	assert.Equal(t, "Helles 0.5l", pending.LineItems[0].ProductName)
	assert.Equal(t, 1, pending.LineItems[1].Quantity)
	assert.Equal(t, "deposit", pending.LineItems[1].ProductName)
	assert.InDelta(t, 27, pending.TotalPrice, 0.001)
	assert.InDelta(t, 73, pending.NewBalance, 0.001)
}

func TestCheckSaleVouchers(t *testing.T) {
	beer := domain.Product{ID: 1, Name: "Helles 0.5l", Price: 5, FixedPrice: true, PriceInVouchers: intPtr(1), TaxName: "ust", TaxRate: 0.19}

	tests := []struct {
		name              string
		vouchers          int
		requested         *int
		expectedError     error
		expectedUsed      int
		expectedTotal     float64
		expectedItemCount int
	}{
		{
			name:              "Spends the whole voucher balance by default",
			vouchers:          2,
			expectedUsed:      2,
			expectedTotal:     5,
			expectedItemCount: 2,
		},
		{
			name:              "Caps voucher spend at the requested amount",
			vouchers:          3,
			requested:         intPtr(1),
			expectedUsed:      1,
			expectedTotal:     10,
			expectedItemCount: 2,
		},
		{
			name:          "Requesting more vouchers than owned fails",
			vouchers:      2,
			requested:     intPtr(5),
			expectedError: domain.ErrNotEnoughVouchers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, tillRepo, _ := NewMock(t)
			tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
			accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
				Return(&domain.Account{ID: 7, Balance: 100, Vouchers: tt.vouchers}, nil)
			accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeSaleExit).
				Return(&domain.Account{ID: 100}, nil)
			tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 1).Return([]domain.Product{beer}, nil)

			pending, err := service.CheckSale(context.Background(), testTill(), &domain.NewSale{
				CustomerTagUID: 123,
				Buttons:        []domain.Button{{TillButtonID: 1, Quantity: 3}},
				UsedVouchers:   tt.requested,
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUsed, pending.UsedVouchers)
			assert.InDelta(t, tt.expectedTotal, pending.TotalPrice, 0.001)
			assert.Len(t, pending.LineItems, tt.expectedItemCount)
			assert.Equal(t, tt.vouchers-tt.expectedUsed, pending.NewVoucherBalance)
		})
	}
}

func TestCheckSaleVouchersSkipFreePriceProducts(t *testing.T) {
	// A free-price product carries a cashier-entered price and never redeems
	// vouchers, even when it wrongly carries a voucher price.
	donation := domain.Product{ID: 3, Name: "donation", Price: 4, PriceInVouchers: intPtr(1), TaxName: "none"}

	service, accountRepo, _, tillRepo, _ := NewMock(t)
	tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
	accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
		Return(&domain.Account{ID: 7, Balance: 100, Vouchers: 2}, nil)
	accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeSaleExit).
		Return(&domain.Account{ID: 100}, nil)
	tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 1).Return([]domain.Product{donation}, nil)

	pending, err := service.CheckSale(context.Background(), testTill(), &domain.NewSale{
		CustomerTagUID: 123,
		Buttons:        []domain.Button{{TillButtonID: 1, Quantity: 2}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, pending.UsedVouchers)
	assert.Equal(t, 2, pending.NewVoucherBalance)
	assert.Len(t, pending.LineItems, 1)
	assert.InDelta(t, 8, pending.TotalPrice, 0.001)
}

func TestCheckSaleErrors(t *testing.T) {
	beer := domain.Product{ID: 1, Name: "Helles 0.5l", Price: 5}

	t.Run("Negative quantity on a non-returnable product", func(t *testing.T) {
		service, accountRepo, _, tillRepo, _ := NewMock(t)
		tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
		accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
			Return(&domain.Account{ID: 7, Balance: 100}, nil)
		accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeSaleExit).
			Return(&domain.Account{ID: 100}, nil)
		tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 1).Return([]domain.Product{beer}, nil)

		_, err := service.CheckSale(context.Background(), testTill(), &domain.NewSale{
			CustomerTagUID: 123,
			Buttons:        []domain.Button{{TillButtonID: 1, Quantity: -1}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidSale)
	})

	t.Run("Balance too low for the sale", func(t *testing.T) {
		service, accountRepo, _, tillRepo, _ := NewMock(t)
		tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
		accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
			Return(&domain.Account{ID: 7, Balance: 3}, nil)
		accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeSaleExit).
			Return(&domain.Account{ID: 100}, nil)
		tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 1).Return([]domain.Product{beer}, nil)

		_, err := service.CheckSale(context.Background(), testTill(), &domain.NewSale{
			CustomerTagUID: 123,
			Buttons:        []domain.Button{{TillButtonID: 1, Quantity: 3}},
		})
		assert.ErrorIs(t, err, domain.ErrNotEnoughFunds)
	})

	t.Run("Button outside the till layout", func(t *testing.T) {
		service, accountRepo, _, tillRepo, _ := NewMock(t)
		tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
		accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
			Return(&domain.Account{ID: 7, Balance: 100}, nil)
		accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeSaleExit).
			Return(&domain.Account{ID: 100}, nil)

		_, err := service.CheckSale(context.Background(), testTill(), &domain.NewSale{
			CustomerTagUID: 123,
			Buttons:        []domain.Button{{TillButtonID: 77, Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidSale)
	})

	t.Run("Unknown customer tag", func(t *testing.T) {
		service, accountRepo, _, tillRepo, _ := NewMock(t)
		tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
		accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(999)).Return(nil, nil)

		_, err := service.CheckSale(context.Background(), testTill(), &domain.NewSale{
			CustomerTagUID: 999,
			Buttons:        []domain.Button{{TillButtonID: 1, Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCheckTopUp(t *testing.T) {
	tests := []struct {
		name           string
		topUp          *domain.NewTopUp
		profile        *domain.TillProfile
		till           *domain.Till
		balance        float64
		expectCustomer bool
		expectedError  error
	}{
		{
			name:           "Cash top up within limits",
			topUp:          &domain.NewTopUp{CustomerTagUID: 123, Amount: 20, PaymentMethod: domain.PaymentMethodCash},
			profile:        testProfile(),
			till:           testTill(),
			balance:        10,
			expectCustomer: true,
		},
		{
			name:          "Profile does not allow top ups",
			topUp:         &domain.NewTopUp{CustomerTagUID: 123, Amount: 20, PaymentMethod: domain.PaymentMethodCash},
			profile:       &domain.TillProfile{ID: 10},
			till:          testTill(),
			expectedError: domain.ErrTillPermission,
		},
		{
			name:          "Zero amount is rejected",
			topUp:         &domain.NewTopUp{CustomerTagUID: 123, Amount: 0, PaymentMethod: domain.PaymentMethodCash},
			profile:       testProfile(),
			till:          testTill(),
			expectedError: domain.ErrInvalidSale,
		},
		{
			name:          "Cash top up needs a register",
			topUp:         &domain.NewTopUp{CustomerTagUID: 123, Amount: 20, PaymentMethod: domain.PaymentMethodCash},
			profile:       testProfile(),
			till:          &domain.Till{ID: 2, ActiveProfileID: 10},
			expectedError: domain.ErrInvalidState,
		},
		{
			name:           "Resulting balance above the maximum",
			topUp:          &domain.NewTopUp{CustomerTagUID: 123, Amount: 20, PaymentMethod: domain.PaymentMethodCash},
			profile:        testProfile(),
			till:           testTill(),
			balance:        140,
			expectCustomer: true,
			expectedError:  domain.ErrInvalidSale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, tillRepo, _ := NewMock(t)
			tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(tt.profile, nil)
			if tt.expectCustomer {
				accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
					Return(&domain.Account{ID: 7, Balance: tt.balance}, nil)
			}

			pending, err := service.CheckTopUp(context.Background(), tt.till, tt.topUp)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.balance+tt.topUp.Amount, pending.NewBalance, 0.001)
		})
	}
}

func TestCheckPayOut(t *testing.T) {
	negFifty := -50.0
	posTen := 10.0

	tests := []struct {
		name           string
		payOut         *domain.NewPayOut
		profile        *domain.TillProfile
		balance        float64
		expectCustomer bool
		expectedAmount float64
		expectedError  error
	}{
		{
			name:           "Nil amount pays out the whole balance",
			payOut:         &domain.NewPayOut{CustomerTagUID: 123},
			profile:        testProfile(),
			balance:        30,
			expectCustomer: true,
			expectedAmount: -30,
		},
		{
			name:           "Requested amount larger than the balance",
			payOut:         &domain.NewPayOut{CustomerTagUID: 123, Amount: &negFifty},
			profile:        testProfile(),
			balance:        30,
			expectCustomer: true,
			expectedError:  domain.ErrNotEnoughFunds,
		},
		{
			name:           "Positive amount is rejected",
			payOut:         &domain.NewPayOut{CustomerTagUID: 123, Amount: &posTen},
			profile:        testProfile(),
			balance:        30,
			expectCustomer: true,
			expectedError:  domain.ErrInvalidSale,
		},
		{
			name:          "Profile does not allow pay outs",
			payOut:        &domain.NewPayOut{CustomerTagUID: 123},
			profile:       &domain.TillProfile{ID: 10},
			expectedError: domain.ErrTillPermission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, tillRepo, _ := NewMock(t)
			tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(tt.profile, nil)
			if tt.expectCustomer {
				accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
					Return(&domain.Account{ID: 7, Balance: tt.balance}, nil)
			}

			pending, err := service.CheckPayOut(context.Background(), testTill(), tt.payOut)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.expectedAmount, pending.Amount, 0.001)
			assert.InDelta(t, tt.balance+pending.Amount, pending.NewBalance, 0.001)
		})
	}
}

func TestCheckTicketSale(t *testing.T) {
	t.Run("Profile does not allow ticket sales", func(t *testing.T) {
		service, _, _, tillRepo, _ := NewMock(t)
		tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(&domain.TillProfile{ID: 10}, nil)

		_, err := service.CheckTicketSale(context.Background(), testTill(), &domain.NewTicketSale{
			CustomerTagUID: 123,
			PaymentMethod:  domain.PaymentMethodCash,
		})
		assert.ErrorIs(t, err, domain.ErrTillPermission)
	})

	t.Run("Layout has no button selling the ticket", func(t *testing.T) {
		service, _, _, tillRepo, _ := NewMock(t)
		tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
		tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 1).
			Return([]domain.Product{{ID: 1, Name: "Helles 0.5l", Price: 5}}, nil)
		tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 2).
			Return([]domain.Product{{ID: 2, Name: "deposit", Price: 2}}, nil)

		_, err := service.CheckTicketSale(context.Background(), testTill(), &domain.NewTicketSale{
			CustomerTagUID: 123,
			PaymentMethod:  domain.PaymentMethodCash,
		})
		assert.ErrorIs(t, err, domain.ErrTillPermission)
	})

	t.Run("Ticket with initial top up", func(t *testing.T) {
		service, accountRepo, _, tillRepo, _ := NewMock(t)
		tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
		tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 1).
			Return([]domain.Product{{ID: 9, Name: "entry ticket", Price: 12, TaxName: "ust", TaxRate: 0.19}}, nil)
		tillRepo.EXPECT().GetProduct(gomock.Any(), 9).
			Return(&domain.Product{ID: 9, Name: "entry ticket", Price: 12, TaxName: "ust", TaxRate: 0.19}, nil)
		accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).Return(nil, nil)

		pending, err := service.CheckTicketSale(context.Background(), testTill(), &domain.NewTicketSale{
			CustomerTagUID:     123,
			InitialTopUpAmount: 10,
			PaymentMethod:      domain.PaymentMethodCash,
		})
		assert.NoError(t, err)
		assert.InDelta(t, 22, pending.TotalPrice, 0.001)
		assert.Len(t, pending.LineItems, 2)
		assert.InDelta(t, 12, pending.TicketPrice, 0.001)
	})
}

func TestBookSale(t *testing.T) {
	beer := domain.Product{ID: 1, Name: "Helles 0.5l", Price: 5, TaxName: "ust", TaxRate: 0.19}
	saleUUID := uuid.New()

	t.Run("Books the order and one leg per target", func(t *testing.T) {
		service, accountRepo, orderRepo, tillRepo, signer := NewMock(t)
		tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
		accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
			Return(&domain.Account{ID: 7, Balance: 100}, nil)
		accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeSaleExit).
			Return(&domain.Account{ID: 100}, nil)
		tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 1).Return([]domain.Product{beer}, nil)
		orderRepo.EXPECT().FindByUUID(gomock.Any(), saleUUID).Return(nil, nil)
		orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, order *domain.Order) error {
				order.ID = 42
				assert.Equal(t, domain.OrderTypeSale, order.Type)
				assert.Equal(t, domain.PaymentMethodTag, order.PaymentMethod)
				assert.Equal(t, 7, order.CustomerAccountID)
				return nil
			})
		accountRepo.EXPECT().BookTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, 7, tr.SourceAccountID)
				assert.Equal(t, 100, tr.TargetAccountID)
				assert.InDelta(t, 15, tr.Amount, 0.001)
				assert.Equal(t, 42, *tr.OrderID)
				return tr, nil
			})
		signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return("signed", nil)
		orderRepo.EXPECT().SetSignature(gomock.Any(), 42, "signed").Return(nil)

		completed, err := service.BookSale(context.Background(), testTill(), &domain.NewSale{
			UUID:           saleUUID,
			CustomerTagUID: 123,
			Buttons:        []domain.Button{{TillButtonID: 1, Quantity: 3}},
		})
		assert.NoError(t, err)
		assert.Equal(t, 42, completed.ID)
		assert.Equal(t, saleUUID, completed.UUID)
		assert.InDelta(t, 15, completed.TotalPrice, 0.001)
	})

	t.Run("Rebooking a known uuid fails", func(t *testing.T) {
		service, accountRepo, orderRepo, tillRepo, _ := NewMock(t)
		tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
		accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
			Return(&domain.Account{ID: 7, Balance: 100}, nil)
		accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeSaleExit).
			Return(&domain.Account{ID: 100}, nil)
		tillRepo.EXPECT().GetButtonProducts(gomock.Any(), 1).Return([]domain.Product{beer}, nil)
		orderRepo.EXPECT().FindByUUID(gomock.Any(), saleUUID).
			Return(&domain.Order{ID: 42, UUID: saleUUID}, nil)

		_, err := service.BookSale(context.Background(), testTill(), &domain.NewSale{
			UUID:           saleUUID,
			CustomerTagUID: 123,
			Buttons:        []domain.Button{{TillButtonID: 1, Quantity: 3}},
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	})
}

func TestBookTopUpCashLegs(t *testing.T) {
	service, accountRepo, orderRepo, tillRepo, signer := NewMock(t)
	topUpUUID := uuid.New()

	tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
	accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
		Return(&domain.Account{ID: 7, Balance: 10}, nil)
	orderRepo.EXPECT().FindByUUID(gomock.Any(), topUpUUID).Return(nil, nil)
	orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, order *domain.Order) error {
			order.ID = 43
			return nil
		})
	accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeCashEntry).
		Return(&domain.Account{ID: 101}, nil)
	accountRepo.EXPECT().GetSystemAccount(gomock.Any(), domain.AccountTypeCashVault).
		Return(&domain.Account{ID: 102}, nil)

	var legs []domain.Transaction
	accountRepo.EXPECT().BookTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
			legs = append(legs, *tr)
			return tr, nil
		}).Times(2)
	signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return("signed", nil)
	orderRepo.EXPECT().SetSignature(gomock.Any(), 43, "signed").Return(nil)

	completed, err := service.BookTopUp(context.Background(), testTill(), &domain.NewTopUp{
		UUID:           topUpUUID,
		CustomerTagUID: 123,
		Amount:         20,
		PaymentMethod:  domain.PaymentMethodCash,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 30, completed.NewBalance, 0.001)
	assert.Len(t, legs, 2)
	// Money enters the customer account and the bills land in the drawer.
	assert.Equal(t, 101, legs[0].SourceAccountID)
	assert.Equal(t, 7, legs[0].TargetAccountID)
	assert.Equal(t, 102, legs[1].SourceAccountID)
	assert.Equal(t, 50, legs[1].TargetAccountID)
	for _, leg := range legs {
		assert.InDelta(t, 20, leg.Amount, 0.001)
	}
}

func TestBookPayOutZeroBalanceBooksNoLegs(t *testing.T) {
	service, accountRepo, orderRepo, tillRepo, signer := NewMock(t)
	payOutUUID := uuid.New()

	tillRepo.EXPECT().GetProfile(gomock.Any(), 10).Return(testProfile(), nil)
	accountRepo.EXPECT().GetAccountByTagUID(gomock.Any(), uint64(123)).
		Return(&domain.Account{ID: 7, Balance: 0}, nil)
	orderRepo.EXPECT().FindByUUID(gomock.Any(), payOutUUID).Return(nil, nil)
	orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, order *domain.Order) error {
			order.ID = 44
			return nil
		})
	signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return("signed", nil)
	orderRepo.EXPECT().SetSignature(gomock.Any(), 44, "signed").Return(nil)

	// No BookTransaction expectation: paying out an empty balance must not
	// create any legs.
	completed, err := service.BookPayOut(context.Background(), testTill(), &domain.NewPayOut{
		UUID:           payOutUUID,
		CustomerTagUID: 123,
	})

	assert.NoError(t, err)
	assert.InDelta(t, 0, completed.Amount, 0.001)
	assert.InDelta(t, 0, completed.NewBalance, 0.001)
}

func TestCancel(t *testing.T) {
	bookedOrder := func() *domain.Order {
		return &domain.Order{
			ID:                5,
			UUID:              uuid.New(),
			Type:              domain.OrderTypeSale,
			PaymentMethod:     domain.PaymentMethodTag,
			TillID:            1,
			CustomerAccountID: 7,
			ItemCount:         1,
			TotalPrice:        10,
			LineItems:         []domain.LineItem{{ProductName: "Helles 0.5l", Quantity: 2, ProductPrice: 5}},
		}
	}

	t.Run("Reverses every leg of the original order", func(t *testing.T) {
		service, accountRepo, orderRepo, _, signer := NewMock(t)
		orderRepo.EXPECT().FindByID(gomock.Any(), 5).Return(bookedOrder(), nil)
		orderRepo.EXPECT().FindCancellation(gomock.Any(), 5).Return(nil, nil)
		accountRepo.EXPECT().FindTransactionsByOrderID(gomock.Any(), 5).
			Return([]domain.Transaction{{SourceAccountID: 7, TargetAccountID: 100, Amount: 10, VoucherAmount: 1}}, nil)
		orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, order *domain.Order) error {
				order.ID = 99
				assert.Equal(t, domain.OrderTypeCancel, order.Type)
				assert.Equal(t, 5, *order.CancelsOrderID)
				assert.InDelta(t, -10, order.TotalPrice, 0.001)
				assert.Equal(t, -2, order.LineItems[0].Quantity)
				return nil
			})
		accountRepo.EXPECT().BookTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, 100, tr.SourceAccountID)
				assert.Equal(t, 7, tr.TargetAccountID)
				assert.InDelta(t, 10, tr.Amount, 0.001)
				assert.Equal(t, 1, tr.VoucherAmount)
				return tr, nil
			})
		signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return("signed", nil)
		orderRepo.EXPECT().SetSignature(gomock.Any(), 99, "signed").Return(nil)

		err := service.Cancel(context.Background(), testTill(), 5)
		assert.NoError(t, err)
	})

	t.Run("Cancelling twice fails", func(t *testing.T) {
		service, _, orderRepo, _, _ := NewMock(t)
		orderRepo.EXPECT().FindByID(gomock.Any(), 5).Return(bookedOrder(), nil)
		orderRepo.EXPECT().FindCancellation(gomock.Any(), 5).
			Return(&domain.Order{ID: 99, CancelsOrderID: intPtr(5)}, nil)

		err := service.Cancel(context.Background(), testTill(), 5)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Only sales and ticket sales can be cancelled", func(t *testing.T) {
		service, _, orderRepo, _, _ := NewMock(t)
		topUp := bookedOrder()
		topUp.Type = domain.OrderTypeTopUp
		orderRepo.EXPECT().FindByID(gomock.Any(), 5).Return(topUp, nil)

		err := service.Cancel(context.Background(), testTill(), 5)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Unknown order", func(t *testing.T) {
		service, _, orderRepo, _, _ := NewMock(t)
		orderRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)

		err := service.Cancel(context.Background(), testTill(), 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("Returns the stored order", func(t *testing.T) {
		service, _, orderRepo, _, _ := NewMock(t)
		orderRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Order{ID: 5}, nil)

		order, err := service.GetOrder(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, order.ID)
	})

	t.Run("Unknown id", func(t *testing.T) {
		service, _, orderRepo, _, _ := NewMock(t)
		orderRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)

		_, err := service.GetOrder(context.Background(), 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Repo failure is passed through", func(t *testing.T) {
		service, _, orderRepo, _, _ := NewMock(t)
		orderRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, errors.New("db error"))

		_, err := service.GetOrder(context.Background(), 5)
		assert.Error(t, err)
	})
}
