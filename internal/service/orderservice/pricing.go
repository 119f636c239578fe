package orderservice

import (
	"context"
	"fmt"

	"github.com/festipay/festipay/internal/domain"
)

// salePricing is the priced preview plus the booking data that does not
// belong in the customer-facing preview: net movement per target account.
type salePricing struct {
	pending      domain.PendingSale
	targetTotals map[int]float64
	targetOrder  []int
}

type lineKey struct {
	productID int
	price     float64
}

// computeSale prices a sale draft against the current account state. It is a
// pure read: nothing is mutated.
//
// Every button must belong to the profile's layout. Identical (product, unit
// price) positions across buttons are aggregated into one line item. Negative
// quantities pass only for returnable products. Vouchers discount redeemable
// units first-come until the requested or available count is exhausted.
func (s *Service) computeSale(ctx context.Context, profile *domain.TillProfile, account *domain.Account, sale *domain.NewSale) (*salePricing, error) {
	saleExit, err := s.accountRepo.GetSystemAccount(ctx, domain.AccountTypeSaleExit)
	if err != nil {
		return nil, err
	}
	if saleExit == nil {
		return nil, fmt.Errorf("sale exit account: %w", domain.ErrNotFound)
	}

	layout := make(map[int]struct{}, len(profile.ButtonIDs))
	for _, id := range profile.ButtonIDs {
		layout[id] = struct{}{}
	}

	var items []domain.LineItem
	var itemProducts []*domain.Product
	itemIndex := make(map[lineKey]int)
	targetTotals := make(map[int]float64)
	var targetOrder []int

	for _, button := range sale.Buttons {
		if _, ok := layout[button.TillButtonID]; !ok {
			return nil, fmt.Errorf("%w: button %d is not part of the till layout", domain.ErrInvalidSale, button.TillButtonID)
		}
		buttonProducts, err := s.tillRepo.GetButtonProducts(ctx, button.TillButtonID)
		if err != nil {
			return nil, err
		}
		if len(buttonProducts) == 0 {
			return nil, fmt.Errorf("till button %d: %w", button.TillButtonID, domain.ErrNotFound)
		}
		for i := range buttonProducts {
			product := buttonProducts[i]
			if button.Quantity < 0 && !product.IsReturnable {
				return nil, fmt.Errorf("%w: negative quantity for product %q", domain.ErrInvalidSale, product.Name)
			}

			key := lineKey{productID: product.ID, price: product.Price}
			if idx, ok := itemIndex[key]; ok {
				items[idx].Quantity += button.Quantity
			} else {
				productID := product.ID
				itemIndex[key] = len(items)
				itemProducts = append(itemProducts, &buttonProducts[i])
				items = append(items, domain.LineItem{
					ProductID:    &productID,
					ProductName:  product.Name,
					Quantity:     button.Quantity,
					ProductPrice: product.Price,
					TaxName:      product.TaxName,
					TaxRate:      product.TaxRate,
				})
			}

			target := saleExit.ID
			if product.TargetAccountID != nil {
				target = *product.TargetAccountID
			}
			if _, ok := targetTotals[target]; !ok {
				targetOrder = append(targetOrder, target)
			}
			targetTotals[target] += float64(button.Quantity) * product.Price
		}
	}

	usedVouchers, discount, err := applyVouchers(items, itemProducts, account.Vouchers, sale.UsedVouchers)
	if err != nil {
		return nil, err
	}
	if discount > 0 {
		items = append(items, domain.LineItem{
			ProductName:  "voucher discount",
			Quantity:     1,
			ProductPrice: -discount,
			TaxName:      "none",
		})
		targetTotals[saleExit.ID] -= discount
	}

	var total float64
	for i := range items {
		total += items[i].TotalPrice()
	}

	newBalance := account.Balance - total
	if newBalance < s.cfg.MinBalance {
		return nil, fmt.Errorf("%w: balance %.2f is not enough for %.2f",
			domain.ErrNotEnoughFunds, account.Balance, total)
	}

	return &salePricing{
		pending: domain.PendingSale{
			CustomerAccountID: account.ID,
			OldBalance:        account.Balance,
			NewBalance:        newBalance,
			OldVoucherBalance: account.Vouchers,
			NewVoucherBalance: account.Vouchers - usedVouchers,
			UsedVouchers:      usedVouchers,
			ItemCount:         len(items),
			TotalPrice:        total,
			LineItems:         items,
		},
		targetTotals: targetTotals,
		targetOrder:  targetOrder,
	}, nil
}

// applyVouchers walks the redeemable line items first-come and discounts one
// unit per voucher spend until the budget runs out. Only fixed-price products
// with a voucher price are redeemable; a free-price product carries a
// cashier-entered price and never redeems vouchers. Returns the consumed
// voucher count and the monetary discount.
func applyVouchers(items []domain.LineItem, itemProducts []*domain.Product, balance int, requested *int) (int, float64, error) {
	budget := balance
	if requested != nil {
		if *requested > balance {
			return 0, 0, fmt.Errorf("%w: requested %d, have %d", domain.ErrNotEnoughVouchers, *requested, balance)
		}
		budget = *requested
	}

	var used int
	var discount float64
	for i := range items {
		product := itemProducts[i]
		if !product.FixedPrice || product.PriceInVouchers == nil || *product.PriceInVouchers <= 0 {
			continue
		}
		for unit := 0; unit < items[i].Quantity; unit++ {
			cost := *product.PriceInVouchers
			if used+cost > budget {
				break
			}
			used += cost
			discount += items[i].ProductPrice
		}
	}
	return used, discount, nil
}

// CheckSale validates and prices a sale draft without mutating any state.
func (s *Service) CheckSale(ctx context.Context, till *domain.Till, sale *domain.NewSale) (*domain.PendingSale, error) {
	profile, err := s.fetchProfile(ctx, till)
	if err != nil {
		return nil, err
	}
	account, err := s.fetchCustomer(ctx, sale.CustomerTagUID)
	if err != nil {
		return nil, err
	}
	pricing, err := s.computeSale(ctx, profile, account, sale)
	if err != nil {
		return nil, err
	}
	return &pricing.pending, nil
}

// CheckTopUp validates a top-up draft. The till profile must allow top-ups;
// the resulting balance may not exceed the configured maximum.
func (s *Service) CheckTopUp(ctx context.Context, till *domain.Till, topUp *domain.NewTopUp) (*domain.PendingTopUp, error) {
	profile, err := s.fetchProfile(ctx, till)
	if err != nil {
		return nil, err
	}
	if !profile.AllowTopUp {
		return nil, fmt.Errorf("top up: %w", domain.ErrTillPermission)
	}
	if topUp.Amount <= 0 {
		return nil, fmt.Errorf("%w: top up amount must be positive", domain.ErrInvalidSale)
	}
	if topUp.PaymentMethod == domain.PaymentMethodCash && till.RegisterAccountID == nil {
		return nil, fmt.Errorf("%w: till has no cash register assigned", domain.ErrInvalidState)
	}

	account, err := s.fetchCustomer(ctx, topUp.CustomerTagUID)
	if err != nil {
		return nil, err
	}
	newBalance := account.Balance + topUp.Amount
	if newBalance > s.cfg.MaxBalance {
		return nil, fmt.Errorf("%w: resulting balance %.2f would exceed the maximum of %.2f",
			domain.ErrInvalidSale, newBalance, s.cfg.MaxBalance)
	}

	return &domain.PendingTopUp{
		CustomerAccountID: account.ID,
		Amount:            topUp.Amount,
		PaymentMethod:     topUp.PaymentMethod,
		OldBalance:        account.Balance,
		NewBalance:        newBalance,
	}, nil
}

// CheckPayOut validates a pay-out draft. A nil amount means the whole
// balance; a requested amount is negative.
func (s *Service) CheckPayOut(ctx context.Context, till *domain.Till, payOut *domain.NewPayOut) (*domain.PendingPayOut, error) {
	profile, err := s.fetchProfile(ctx, till)
	if err != nil {
		return nil, err
	}
	if !profile.AllowCashOut {
		return nil, fmt.Errorf("pay out: %w", domain.ErrTillPermission)
	}
	if till.RegisterAccountID == nil {
		return nil, fmt.Errorf("%w: till has no cash register assigned", domain.ErrInvalidState)
	}

	account, err := s.fetchCustomer(ctx, payOut.CustomerTagUID)
	if err != nil {
		return nil, err
	}

	amount := -account.Balance
	if payOut.Amount != nil {
		amount = *payOut.Amount
	}
	if amount > 0 {
		return nil, fmt.Errorf("%w: pay out amount must be negative", domain.ErrInvalidSale)
	}
	newBalance := account.Balance + amount
	if newBalance < s.cfg.MinBalance {
		return nil, fmt.Errorf("%w: balance %.2f is not enough to pay out %.2f",
			domain.ErrNotEnoughFunds, account.Balance, -amount)
	}

	return &domain.PendingPayOut{
		CustomerAccountID: account.ID,
		Amount:            amount,
		OldBalance:        account.Balance,
		NewBalance:        newBalance,
	}, nil
}

// layoutSellsProduct reports whether any button of the profile's layout
// sells the given product.
func (s *Service) layoutSellsProduct(ctx context.Context, profile *domain.TillProfile, productID int) (bool, error) {
	for _, buttonID := range profile.ButtonIDs {
		products, err := s.tillRepo.GetButtonProducts(ctx, buttonID)
		if err != nil {
			return false, err
		}
		for i := range products {
			if products[i].ID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

// CheckTicketSale validates a ticket sale draft. The till qualifies only when
// its layout has a button selling the ticket product. The customer tag may
// not have an account yet; it is created at booking time.
func (s *Service) CheckTicketSale(ctx context.Context, till *domain.Till, ticketSale *domain.NewTicketSale) (*domain.PendingTicketSale, error) {
	profile, err := s.fetchProfile(ctx, till)
	if err != nil {
		return nil, err
	}
	if !profile.AllowTicketSale || till.TicketProductID == nil {
		return nil, fmt.Errorf("ticket sale: %w", domain.ErrTillPermission)
	}
	sellsTicket, err := s.layoutSellsProduct(ctx, profile, *till.TicketProductID)
	if err != nil {
		return nil, err
	}
	if !sellsTicket {
		return nil, fmt.Errorf("ticket sale: no layout button sells the ticket: %w", domain.ErrTillPermission)
	}
	if ticketSale.InitialTopUpAmount < 0 {
		return nil, fmt.Errorf("%w: initial top up must not be negative", domain.ErrInvalidSale)
	}
	if ticketSale.PaymentMethod == domain.PaymentMethodCash && till.RegisterAccountID == nil {
		return nil, fmt.Errorf("%w: till has no cash register assigned", domain.ErrInvalidState)
	}

	ticket, err := s.tillRepo.GetProduct(ctx, *till.TicketProductID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket product %d: %w", *till.TicketProductID, domain.ErrNotFound)
	}

	account, err := s.accountRepo.GetAccountByTagUID(ctx, ticketSale.CustomerTagUID)
	if err != nil {
		return nil, err
	}
	var accountID int
	if account != nil {
		accountID = account.ID
	}

	ticketID := ticket.ID
	items := []domain.LineItem{{
		ProductID:    &ticketID,
		ProductName:  ticket.Name,
		Quantity:     1,
		ProductPrice: ticket.Price,
		TaxName:      ticket.TaxName,
		TaxRate:      ticket.TaxRate,
	}}
	if ticketSale.InitialTopUpAmount > 0 {
		items = append(items, domain.LineItem{
			ProductName:  "top up",
			Quantity:     1,
			ProductPrice: ticketSale.InitialTopUpAmount,
			TaxName:      "none",
		})
	}

	return &domain.PendingTicketSale{
		CustomerAccountID:  accountID,
		InitialTopUpAmount: ticketSale.InitialTopUpAmount,
		TicketPrice:        ticket.Price,
		PaymentMethod:      ticketSale.PaymentMethod,
		ItemCount:          len(items),
		TotalPrice:         ticket.Price + ticketSale.InitialTopUpAmount,
		LineItems:          items,
	}, nil
}
