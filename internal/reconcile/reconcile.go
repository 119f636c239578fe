package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/festipay/festipay/internal/config"
	"github.com/festipay/festipay/internal/domain"
	"github.com/festipay/festipay/internal/pg"
	"github.com/festipay/festipay/pkg/clients"
)

const (
	updateInterval = time.Second * 5
	batchLimit     = 1000
	workerCount    = 10

	// initialCheckSeconds seeds a fresh pending row; transient gateway errors
	// double the row's interval up to maxCheckSeconds.
	initialCheckSeconds = 5
	maxCheckSeconds     = 300
	maxRetries          = 10

	// pendingMaxAge is how long an unpaid checkout may stay open before it is
	// cancelled.
	pendingMaxAge = time.Hour
)

type PendingRepo interface {
	Save(ctx context.Context, order *domain.PendingOrder) error
	FindByUUID(ctx context.Context, orderUUID uuid.UUID) (*domain.PendingOrder, error)
	FindDue(ctx context.Context, limit int) ([]domain.PendingOrder, error)
	MarkBooked(ctx context.Context, orderUUID uuid.UUID) error
	MarkCancelled(ctx context.Context, orderUUID uuid.UUID, reason string) error
	Touch(ctx context.Context, orderUUID uuid.UUID, checkIntervalSeconds int, retryCount int) error
}

type TillRepo interface {
	GetTill(ctx context.Context, id int) (*domain.Till, error)
}

// Booker is the slice of the order service the loop needs: validation for the
// checkout-creation path and the booking entrypoints for confirmed payments.
type Booker interface {
	CheckTopUp(ctx context.Context, till *domain.Till, topUp *domain.NewTopUp) (*domain.PendingTopUp, error)
	BookTopUp(ctx context.Context, till *domain.Till, topUp *domain.NewTopUp) (*domain.CompletedTopUp, error)
	BookTicketSale(ctx context.Context, till *domain.Till, ticketSale *domain.NewTicketSale) (*domain.CompletedTicketSale, error)
}

type paymentStatus int

const (
	paymentPending paymentStatus = iota
	paymentPaid
	paymentFailed
)

var processingOrders sync.Map

// Service drives every pending external payment to a terminal state: booked
// once the gateway confirms, cancelled on decline or timeout.
type Service struct {
	pendingRepo  PendingRepo
	tillRepo     TillRepo
	booker       Booker
	gateway      clients.GatewayClient
	txManager    pg.TXManager
	currency     string
	merchantCode string
	onlineTillID int
	workerPool   WorkerPoolI
}

func New(cfg *config.Config, pendingRepo PendingRepo, tillRepo TillRepo, booker Booker, gateway clients.GatewayClient, txManager pg.TXManager) *Service {
	return &Service{
		pendingRepo:  pendingRepo,
		tillRepo:     tillRepo,
		booker:       booker,
		gateway:      gateway,
		txManager:    txManager,
		currency:     cfg.Currency,
		merchantCode: cfg.SumUpMerchant,
		onlineTillID: cfg.OnlineTillID,
		workerPool:   NewWorkerPool(workerCount),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconcile service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconcile service")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

func (s *Service) processPending(ctx context.Context) {
	orders, err := s.pendingRepo.FindDue(ctx, batchLimit)
	if err != nil {
		zap.L().Error("Failed to fetch due pending orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := processingOrders.LoadOrStore(order.UUID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingOrders.Delete(order.UUID)
				return s.handlePending(ctx, order)
			})
			if err != nil {
				processingOrders.Delete(order.UUID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing pending orders", zap.Error(err))
	}
}

// handlePending is the per-row error boundary: one row failing never touches
// its batch mates.
func (s *Service) handlePending(ctx context.Context, order domain.PendingOrder) error {
	status, err := s.paymentStatus(ctx, order.UUID)
	if err != nil {
		return s.backoff(ctx, order, err)
	}

	switch status {
	case paymentPaid:
		return s.book(ctx, order)
	case paymentFailed:
		zap.L().Info("Payment declined, cancelling pending order", zap.String("uuid", order.UUID.String()))
		return s.pendingRepo.MarkCancelled(ctx, order.UUID, "payment failed")
	default:
		if time.Since(order.CreatedAt) > pendingMaxAge {
			zap.L().Warn("Pending order timed out", zap.String("uuid", order.UUID.String()))
			return s.pendingRepo.MarkCancelled(ctx, order.UUID, "payment not completed in time")
		}
		return s.pendingRepo.Touch(ctx, order.UUID, order.CheckIntervalSeconds, order.RetryCount)
	}
}

// paymentStatus asks the gateway whether the checkout was paid. The settled
// transaction record is checked first: it can exist even when the checkout
// object was already expired on the gateway side. The history also lists
// failed and refunded attempts, so only a successful transaction confirms
// payment; anything else defers to the checkout state.
func (s *Service) paymentStatus(ctx context.Context, orderUUID uuid.UUID) (paymentStatus, error) {
	transaction, err := s.gateway.GetTransaction(ctx, orderUUID)
	if err != nil {
		return paymentPending, err
	}
	if transaction != nil && transaction.Status == clients.TransactionStatusSuccessful {
		return paymentPaid, nil
	}

	checkout, err := s.gateway.FindCheckout(ctx, orderUUID)
	if errors.Is(err, clients.ErrCheckoutNotFound) {
		return paymentPending, nil
	}
	if err != nil {
		return paymentPending, err
	}

	switch checkout.Status {
	case clients.CheckoutStatusPaid:
		return paymentPaid, nil
	case clients.CheckoutStatusFailed:
		return paymentFailed, nil
	default:
		return paymentPending, nil
	}
}

// book materializes a confirmed payment: the booking and the pending-row state
// flip commit together. A uuid that is already in the order table means a
// previous run crashed between booking and marking; that is a success.
func (s *Service) book(ctx context.Context, order domain.PendingOrder) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		till, err := s.tillRepo.GetTill(ctx, order.TillID)
		if err != nil {
			return err
		}
		if till == nil {
			return fmt.Errorf("till %d: %w", order.TillID, domain.ErrNotFound)
		}

		switch order.OrderType {
		case domain.PendingOrderTypeTopUp:
			var topUp domain.NewTopUp
			if err := json.Unmarshal(order.Payload, &topUp); err != nil {
				return fmt.Errorf("failed to decode pending top up %s: %w", order.UUID, err)
			}
			topUp.UUID = order.UUID
			_, err = s.booker.BookTopUp(ctx, till, &topUp)
		case domain.PendingOrderTypeTicket:
			var ticketSale domain.NewTicketSale
			if err := json.Unmarshal(order.Payload, &ticketSale); err != nil {
				return fmt.Errorf("failed to decode pending ticket sale %s: %w", order.UUID, err)
			}
			ticketSale.UUID = order.UUID
			_, err = s.booker.BookTicketSale(ctx, till, &ticketSale)
		default:
			return fmt.Errorf("%w: unknown pending order type %q", domain.ErrInvalidState, order.OrderType)
		}
		if err != nil && !errors.Is(err, domain.ErrAlreadyBooked) {
			return err
		}
		return s.pendingRepo.MarkBooked(ctx, order.UUID)
	})
	if err != nil {
		// Serialization conflicts roll back cleanly; the row stays due and the
		// next cycle picks it up again.
		if pg.IsSerializationFailure(err) {
			zap.L().Warn("Booking serialization conflict, will retry", zap.String("uuid", order.UUID.String()))
		}
		return err
	}

	zap.L().Info("Pending order booked", zap.String("uuid", order.UUID.String()))
	return nil
}

// backoff widens the row's poll interval after a transient gateway failure.
// After maxRetries consecutive failures the row is cancelled so it cannot
// poll forever.
func (s *Service) backoff(ctx context.Context, order domain.PendingOrder, cause error) error {
	retries := order.RetryCount + 1
	if retries > maxRetries {
		zap.L().Error("Giving up on pending order",
			zap.String("uuid", order.UUID.String()), zap.Int("retries", retries), zap.Error(cause))
		if err := s.pendingRepo.MarkCancelled(ctx, order.UUID, fmt.Sprintf("gateway unreachable after %d attempts", retries)); err != nil {
			return err
		}
		return cause
	}

	interval := order.CheckIntervalSeconds * 2
	if interval > maxCheckSeconds {
		interval = maxCheckSeconds
	}
	if err := s.pendingRepo.Touch(ctx, order.UUID, interval, retries); err != nil {
		return err
	}
	return cause
}

// CreateOnlineTopUpCheckout opens a card checkout for a customer-initiated
// top-up and records the pending order the loop will reconcile. Online
// top-ups are whole currency units only.
func (s *Service) CreateOnlineTopUpCheckout(ctx context.Context, topUp *domain.NewTopUp) (*clients.Checkout, error) {
	till, err := s.tillRepo.GetTill(ctx, s.onlineTillID)
	if err != nil {
		return nil, err
	}
	if till == nil {
		return nil, fmt.Errorf("online till %d: %w", s.onlineTillID, domain.ErrNotFound)
	}

	topUp.PaymentMethod = domain.PaymentMethodSumUpOnline
	if topUp.Amount != math.Trunc(topUp.Amount) {
		return nil, fmt.Errorf("%w: online top up must be a whole amount", domain.ErrInvalidSale)
	}
	if _, err := s.booker.CheckTopUp(ctx, till, topUp); err != nil {
		return nil, err
	}

	if topUp.UUID == uuid.Nil {
		topUp.UUID = uuid.New()
	}
	checkout, err := s.gateway.CreateCheckout(ctx, clients.CheckoutDraft{
		Reference:    topUp.UUID,
		Amount:       topUp.Amount,
		Currency:     s.currency,
		MerchantCode: s.merchantCode,
		Description:  "online top up",
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(topUp)
	if err != nil {
		return nil, err
	}
	pending := &domain.PendingOrder{
		UUID:                 topUp.UUID,
		OrderType:            domain.PendingOrderTypeTopUp,
		Status:               domain.PendingOrderStatusPending,
		TillID:               till.ID,
		Payload:              payload,
		CheckIntervalSeconds: initialCheckSeconds,
		CreatedAt:            time.Now(),
	}
	if err := s.pendingRepo.Save(ctx, pending); err != nil {
		return nil, err
	}

	zap.L().Info("Online checkout created",
		zap.String("uuid", topUp.UUID.String()), zap.Float64("amount", topUp.Amount))
	return checkout, nil
}

// CheckPendingOrderStatus reports the state of a pending order and, when it
// is still open, polls the gateway once synchronously so a paying customer
// sees the flip without waiting for the next cycle.
func (s *Service) CheckPendingOrderStatus(ctx context.Context, orderUUID uuid.UUID) (*domain.PendingOrder, error) {
	order, err := s.pendingRepo.FindByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("pending order %s: %w", orderUUID, domain.ErrNotFound)
	}
	if order.Status != domain.PendingOrderStatusPending {
		return order, nil
	}

	if _, loaded := processingOrders.LoadOrStore(order.UUID, struct{}{}); !loaded {
		defer processingOrders.Delete(order.UUID)
		if err := s.handlePending(ctx, *order); err != nil {
			zap.L().Warn("Synchronous pending check failed", zap.String("uuid", orderUUID.String()), zap.Error(err))
		}
	}

	refreshed, err := s.pendingRepo.FindByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		return order, nil
	}
	return refreshed, nil
}
