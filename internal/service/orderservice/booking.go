package orderservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festipay/festipay/internal/domain"
)

// ensureUUID fills in the idempotency key for drafts that did not bring one.
// Externally-funded drafts always carry the uuid of their pending order.
func ensureUUID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

// checkNotBooked rejects a uuid that is already materialized in the order
// table. Together with the surrounding serializable transaction this makes
// every booking path idempotent per uuid.
func (s *Service) checkNotBooked(ctx context.Context, orderUUID uuid.UUID) error {
	existing, err := s.orderRepo.FindByUUID(ctx, orderUUID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("order %s: %w", orderUUID, domain.ErrAlreadyBooked)
	}
	return nil
}

func (s *Service) bookLeg(ctx context.Context, orderID int, sourceID, targetID int, amount float64, vouchers int, description string, bookedAt time.Time) error {
	_, err := s.accountRepo.BookTransaction(ctx, &domain.Transaction{
		OrderID:         &orderID,
		SourceAccountID: sourceID,
		TargetAccountID: targetID,
		Amount:          amount,
		VoucherAmount:   vouchers,
		Description:     description,
		BookedAt:        bookedAt,
	})
	return err
}

func (s *Service) systemAccountID(ctx context.Context, accountType domain.AccountType) (int, error) {
	account, err := s.accountRepo.GetSystemAccount(ctx, accountType)
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, fmt.Errorf("system account %s: %w", accountType, domain.ErrNotFound)
	}
	return account.ID, nil
}

// BookSale commits a validated sale as one atomic unit: the order row, its
// line items, and one leg per distinct target account carrying the net
// movement. The voucher delta rides the customer-debiting leg.
func (s *Service) BookSale(ctx context.Context, till *domain.Till, sale *domain.NewSale) (*domain.CompletedSale, error) {
	var completed *domain.CompletedSale
	var order *domain.Order

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.fetchProfile(ctx, till)
		if err != nil {
			return err
		}
		account, err := s.fetchCustomer(ctx, sale.CustomerTagUID)
		if err != nil {
			return err
		}
		pricing, err := s.computeSale(ctx, profile, account, sale)
		if err != nil {
			return err
		}

		orderUUID := ensureUUID(sale.UUID)
		if err := s.checkNotBooked(ctx, orderUUID); err != nil {
			return err
		}

		order = &domain.Order{
			UUID:              orderUUID,
			Type:              domain.OrderTypeSale,
			PaymentMethod:     domain.PaymentMethodTag,
			CashierID:         till.ActiveCashierID,
			TillID:            till.ID,
			CustomerAccountID: account.ID,
			ItemCount:         pricing.pending.ItemCount,
			TotalPrice:        pricing.pending.TotalPrice,
			UsedVouchers:      pricing.pending.UsedVouchers,
			BookedAt:          time.Now(),
			LineItems:         pricing.pending.LineItems,
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}

		vouchersLeft := pricing.pending.UsedVouchers
		for _, target := range pricing.targetOrder {
			net := pricing.targetTotals[target]
			if net == 0 {
				continue
			}
			sourceID, targetID, amount := account.ID, target, net
			if net < 0 {
				sourceID, targetID, amount = target, account.ID, -net
			}
			vouchers := 0
			if sourceID == account.ID && vouchersLeft > 0 {
				vouchers = vouchersLeft
				vouchersLeft = 0
			}
			if err := s.bookLeg(ctx, order.ID, sourceID, targetID, amount, vouchers, "sale", order.BookedAt); err != nil {
				return err
			}
		}
		if vouchersLeft > 0 {
			// Fully discounted sale: the voucher movement has no monetary leg
			// to ride on.
			voucherCreate, err := s.systemAccountID(ctx, domain.AccountTypeVoucherCreate)
			if err != nil {
				return err
			}
			if err := s.bookLeg(ctx, order.ID, account.ID, voucherCreate, 0, vouchersLeft, "voucher redemption", order.BookedAt); err != nil {
				return err
			}
		}

		completed = &domain.CompletedSale{
			PendingSale: pricing.pending,
			ID:          order.ID,
			UUID:        order.UUID,
			TillID:      till.ID,
			BookedAt:    order.BookedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sign(ctx, order)
	zap.L().Info("sale booked",
		zap.Int("orderID", order.ID), zap.Float64("totalPrice", order.TotalPrice))
	return completed, nil
}

// bookTopUpLegs books the money entry for a top-up of the given amount,
// depending on how the customer paid.
func (s *Service) bookTopUpLegs(ctx context.Context, till *domain.Till, order *domain.Order, customerAccountID int, amount float64, method domain.PaymentMethod) error {
	switch method {
	case domain.PaymentMethodCash:
		cashEntry, err := s.systemAccountID(ctx, domain.AccountTypeCashEntry)
		if err != nil {
			return err
		}
		cashVault, err := s.systemAccountID(ctx, domain.AccountTypeCashVault)
		if err != nil {
			return err
		}
		if err := s.bookLeg(ctx, order.ID, cashEntry, customerAccountID, amount, 0, "cash top up", order.BookedAt); err != nil {
			return err
		}
		// Mirror of the bills landing in the cashier's drawer.
		return s.bookLeg(ctx, order.ID, cashVault, *till.RegisterAccountID, amount, 0, "cash top up", order.BookedAt)
	case domain.PaymentMethodSumUp:
		sumUpEntry, err := s.systemAccountID(ctx, domain.AccountTypeSumUpEntry)
		if err != nil {
			return err
		}
		return s.bookLeg(ctx, order.ID, sumUpEntry, customerAccountID, amount, 0, "sumup top up", order.BookedAt)
	case domain.PaymentMethodSumUpOnline:
		sumUpOnline, err := s.systemAccountID(ctx, domain.AccountTypeSumUpOnlineEntry)
		if err != nil {
			return err
		}
		return s.bookLeg(ctx, order.ID, sumUpOnline, customerAccountID, amount, 0, "online top up", order.BookedAt)
	default:
		return fmt.Errorf("%w: unsupported top up payment method %q", domain.ErrInvalidSale, method)
	}
}

func (s *Service) BookTopUp(ctx context.Context, till *domain.Till, topUp *domain.NewTopUp) (*domain.CompletedTopUp, error) {
	var completed *domain.CompletedTopUp
	var order *domain.Order

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pending, err := s.CheckTopUp(ctx, till, topUp)
		if err != nil {
			return err
		}
		orderUUID := ensureUUID(topUp.UUID)
		if err := s.checkNotBooked(ctx, orderUUID); err != nil {
			return err
		}

		order = &domain.Order{
			UUID:              orderUUID,
			Type:              domain.OrderTypeTopUp,
			PaymentMethod:     topUp.PaymentMethod,
			CashierID:         till.ActiveCashierID,
			TillID:            till.ID,
			CustomerAccountID: pending.CustomerAccountID,
			TotalPrice:        pending.Amount,
			BookedAt:          time.Now(),
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}
		if err := s.bookTopUpLegs(ctx, till, order, pending.CustomerAccountID, pending.Amount, topUp.PaymentMethod); err != nil {
			return err
		}

		completed = &domain.CompletedTopUp{
			PendingTopUp: *pending,
			ID:           order.ID,
			UUID:         order.UUID,
			TillID:       till.ID,
			BookedAt:     order.BookedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sign(ctx, order)
	zap.L().Info("top up booked",
		zap.Int("orderID", order.ID), zap.Float64("amount", order.TotalPrice))
	return completed, nil
}

func (s *Service) BookPayOut(ctx context.Context, till *domain.Till, payOut *domain.NewPayOut) (*domain.CompletedPayOut, error) {
	var completed *domain.CompletedPayOut
	var order *domain.Order

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pending, err := s.CheckPayOut(ctx, till, payOut)
		if err != nil {
			return err
		}
		orderUUID := ensureUUID(payOut.UUID)
		if err := s.checkNotBooked(ctx, orderUUID); err != nil {
			return err
		}

		order = &domain.Order{
			UUID:              orderUUID,
			Type:              domain.OrderTypePayOut,
			PaymentMethod:     domain.PaymentMethodCash,
			CashierID:         till.ActiveCashierID,
			TillID:            till.ID,
			CustomerAccountID: pending.CustomerAccountID,
			TotalPrice:        pending.Amount,
			BookedAt:          time.Now(),
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}

		// Legs carry a strictly positive amount; paying out an empty balance
		// records the order and moves no money.
		if paid := -pending.Amount; paid > 0 {
			cashExit, err := s.systemAccountID(ctx, domain.AccountTypeCashExit)
			if err != nil {
				return err
			}
			cashVault, err := s.systemAccountID(ctx, domain.AccountTypeCashVault)
			if err != nil {
				return err
			}
			if err := s.bookLeg(ctx, order.ID, pending.CustomerAccountID, cashExit, paid, 0, "pay out", order.BookedAt); err != nil {
				return err
			}
			// Mirror of the bills leaving the cashier's drawer.
			if err := s.bookLeg(ctx, order.ID, *till.RegisterAccountID, cashVault, paid, 0, "pay out", order.BookedAt); err != nil {
				return err
			}
		}

		completed = &domain.CompletedPayOut{
			PendingPayOut: *pending,
			ID:            order.ID,
			UUID:          order.UUID,
			TillID:        till.ID,
			BookedAt:      order.BookedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sign(ctx, order)
	zap.L().Info("pay out booked",
		zap.Int("orderID", order.ID), zap.Float64("amount", order.TotalPrice))
	return completed, nil
}

// BookTicketSale books the entry ticket and any initial top-up as one order:
// top-up legs for the full total, then a sale leg for the ticket price. The
// customer account is created on first contact.
func (s *Service) BookTicketSale(ctx context.Context, till *domain.Till, ticketSale *domain.NewTicketSale) (*domain.CompletedTicketSale, error) {
	var completed *domain.CompletedTicketSale
	var order *domain.Order

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		pending, err := s.CheckTicketSale(ctx, till, ticketSale)
		if err != nil {
			return err
		}
		orderUUID := ensureUUID(ticketSale.UUID)
		if err := s.checkNotBooked(ctx, orderUUID); err != nil {
			return err
		}

		account, err := s.accountRepo.GetAccountByTagUID(ctx, ticketSale.CustomerTagUID)
		if err != nil {
			return err
		}
		if account == nil {
			account, err = s.accountRepo.CreateCustomerAccount(ctx, ticketSale.CustomerTagUID)
			if err != nil {
				return err
			}
		}
		pending.CustomerAccountID = account.ID

		order = &domain.Order{
			UUID:              orderUUID,
			Type:              domain.OrderTypeTicketSale,
			PaymentMethod:     ticketSale.PaymentMethod,
			CashierID:         till.ActiveCashierID,
			TillID:            till.ID,
			CustomerAccountID: account.ID,
			ItemCount:         pending.ItemCount,
			TotalPrice:        pending.TotalPrice,
			BookedAt:          time.Now(),
			LineItems:         pending.LineItems,
		}
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return err
		}

		if err := s.bookTopUpLegs(ctx, till, order, account.ID, pending.TotalPrice, ticketSale.PaymentMethod); err != nil {
			return err
		}
		saleExit, err := s.systemAccountID(ctx, domain.AccountTypeSaleExit)
		if err != nil {
			return err
		}
		if err := s.bookLeg(ctx, order.ID, account.ID, saleExit, pending.TicketPrice, 0, "ticket", order.BookedAt); err != nil {
			return err
		}

		completed = &domain.CompletedTicketSale{
			PendingTicketSale: *pending,
			ID:                order.ID,
			UUID:              order.UUID,
			TillID:            till.ID,
			BookedAt:          order.BookedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sign(ctx, order)
	zap.L().Info("ticket sale booked",
		zap.Int("orderID", order.ID), zap.Float64("totalPrice", order.TotalPrice))
	return completed, nil
}

// Cancel reverses a booked sale or ticket sale with an equal-and-opposite
// cancel order. The original order is never mutated or deleted; a second
// cancellation fails.
func (s *Service) Cancel(ctx context.Context, till *domain.Till, orderID int) error {
	var cancelOrder *domain.Order

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
		}
		if order.Type != domain.OrderTypeSale && order.Type != domain.OrderTypeTicketSale {
			return fmt.Errorf("%w: order type %s cannot be cancelled", domain.ErrInvalidState, order.Type)
		}
		cancellation, err := s.orderRepo.FindCancellation(ctx, orderID)
		if err != nil {
			return err
		}
		if cancellation != nil {
			return fmt.Errorf("%w: order %d is already cancelled", domain.ErrInvalidState, orderID)
		}

		legs, err := s.accountRepo.FindTransactionsByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		items := make([]domain.LineItem, len(order.LineItems))
		for i, item := range order.LineItems {
			items[i] = item
			items[i].Quantity = -item.Quantity
		}
		cancelOrder = &domain.Order{
			UUID:              uuid.New(),
			Type:              domain.OrderTypeCancel,
			PaymentMethod:     order.PaymentMethod,
			CashierID:         till.ActiveCashierID,
			TillID:            till.ID,
			CustomerAccountID: order.CustomerAccountID,
			ItemCount:         len(items),
			TotalPrice:        -order.TotalPrice,
			UsedVouchers:      -order.UsedVouchers,
			CancelsOrderID:    &order.ID,
			BookedAt:          time.Now(),
			LineItems:         items,
		}
		if err := s.orderRepo.Save(ctx, cancelOrder); err != nil {
			return err
		}

		for _, leg := range legs {
			err := s.bookLeg(ctx, cancelOrder.ID, leg.TargetAccountID, leg.SourceAccountID,
				leg.Amount, leg.VoucherAmount, "cancel order", cancelOrder.BookedAt)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.sign(ctx, cancelOrder)
	zap.L().Info("order cancelled",
		zap.Int("orderID", orderID), zap.Int("cancelOrderID", cancelOrder.ID))
	return nil
}
