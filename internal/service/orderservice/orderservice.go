package orderservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festipay/festipay/internal/domain"
	"github.com/festipay/festipay/internal/pg"
)

type AccountRepo interface {
	GetAccountByID(ctx context.Context, id int) (*domain.Account, error)
	GetAccountByTagUID(ctx context.Context, tagUID uint64) (*domain.Account, error)
	GetSystemAccount(ctx context.Context, accountType domain.AccountType) (*domain.Account, error)
	CreateCustomerAccount(ctx context.Context, tagUID uint64) (*domain.Account, error)
	BookTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	FindTransactionsByOrderID(ctx context.Context, orderID int) ([]domain.Transaction, error)
}

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByUUID(ctx context.Context, orderUUID uuid.UUID) (*domain.Order, error)
	FindCancellation(ctx context.Context, orderID int) (*domain.Order, error)
	FindByTillID(ctx context.Context, tillID int, limit int) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	SetSignature(ctx context.Context, orderID int, signature string) error
}

type TillRepo interface {
	GetProfile(ctx context.Context, id int) (*domain.TillProfile, error)
	GetButtonProducts(ctx context.Context, buttonID int) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
}

// Signer is the fiscal signing capability. Booking never depends on it to
// commit financially; an unsigned order stays fiscally open.
type Signer interface {
	Sign(ctx context.Context, order *domain.Order) (string, error)
}

type Config struct {
	// MinBalance is the floor a sale or pay-out may not drive a customer
	// balance below.
	MinBalance float64
	// MaxBalance caps a customer balance after a top-up.
	MaxBalance float64
}

// Service is the sole writer path for account balances: validation (check),
// booking, and cancellation all go through here.
type Service struct {
	accountRepo AccountRepo
	orderRepo   OrderRepo
	tillRepo    TillRepo
	txManager   pg.TXManager
	signer      Signer
	cfg         Config
}

func New(accountRepo AccountRepo, orderRepo OrderRepo, tillRepo TillRepo, txManager pg.TXManager, signer Signer, cfg Config) *Service {
	return &Service{
		accountRepo: accountRepo,
		orderRepo:   orderRepo,
		tillRepo:    tillRepo,
		txManager:   txManager,
		signer:      signer,
		cfg:         cfg,
	}
}

const defaultOrderListLimit = 50

func (s *Service) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return order, nil
}

func (s *Service) ListOrdersForTill(ctx context.Context, tillID int) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByTillID(ctx, tillID, defaultOrderListLimit)
	if err != nil {
		zap.L().Error("failed to list orders for till", zap.Int("tillID", tillID), zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// fetchProfile resolves the till's active profile, the gate for every
// operation check.
func (s *Service) fetchProfile(ctx context.Context, till *domain.Till) (*domain.TillProfile, error) {
	profile, err := s.tillRepo.GetProfile(ctx, till.ActiveProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("till profile %d: %w", till.ActiveProfileID, domain.ErrNotFound)
	}
	return profile, nil
}

func (s *Service) fetchCustomer(ctx context.Context, tagUID uint64) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccountByTagUID(ctx, tagUID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("customer tag %d: %w", tagUID, domain.ErrNotFound)
	}
	return account, nil
}

// sign is the post-commit fiscal hook. Failures are logged and leave the
// order fiscally open, they never undo the financial commit.
func (s *Service) sign(ctx context.Context, order *domain.Order) {
	signature, err := s.signer.Sign(ctx, order)
	if err != nil {
		zap.L().Warn("fiscal signing failed, order stays unsigned",
			zap.Int("orderID", order.ID), zap.Error(err))
		return
	}
	if err := s.orderRepo.SetSignature(ctx, order.ID, signature); err != nil {
		zap.L().Warn("can't persist fiscal signature", zap.Int("orderID", order.ID), zap.Error(err))
	}
}
