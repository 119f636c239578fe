package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/festipay/festipay/internal/domain"
	"github.com/festipay/festipay/internal/dto"
	"github.com/festipay/festipay/pkg/terminal"
	"github.com/festipay/festipay/pkg/utils"
)

type Service interface {
	CheckSale(ctx context.Context, till *domain.Till, sale *domain.NewSale) (*domain.PendingSale, error)
	BookSale(ctx context.Context, till *domain.Till, sale *domain.NewSale) (*domain.CompletedSale, error)
	CheckTopUp(ctx context.Context, till *domain.Till, topUp *domain.NewTopUp) (*domain.PendingTopUp, error)
	BookTopUp(ctx context.Context, till *domain.Till, topUp *domain.NewTopUp) (*domain.CompletedTopUp, error)
	CheckPayOut(ctx context.Context, till *domain.Till, payOut *domain.NewPayOut) (*domain.PendingPayOut, error)
	BookPayOut(ctx context.Context, till *domain.Till, payOut *domain.NewPayOut) (*domain.CompletedPayOut, error)
	CheckTicketSale(ctx context.Context, till *domain.Till, ticketSale *domain.NewTicketSale) (*domain.PendingTicketSale, error)
	BookTicketSale(ctx context.Context, till *domain.Till, ticketSale *domain.NewTicketSale) (*domain.CompletedTicketSale, error)
	Cancel(ctx context.Context, till *domain.Till, orderID int) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	ListOrdersForTill(ctx context.Context, tillID int) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// respondWithDomainError maps the service error kinds onto HTTP statuses.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSale):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotEnoughFunds), errors.Is(err, domain.ErrNotEnoughVouchers):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrTillPermission):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrAlreadyBooked):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func tillFromContext(w http.ResponseWriter, r *http.Request) (*domain.Till, bool) {
	till, ok := r.Context().Value(terminal.TillKey).(*domain.Till)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return till, true
}

func toLineItemDTOs(items []domain.LineItem) []dto.LineItemDTO {
	out := make([]dto.LineItemDTO, len(items))
	for i, item := range items {
		out[i] = dto.LineItemDTO{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			ProductPrice: item.ProductPrice,
			TotalPrice:   item.TotalPrice(),
			TaxName:      item.TaxName,
			TaxRate:      item.TaxRate,
		}
	}
	return out
}

func toPendingSaleDTO(pending *domain.PendingSale) dto.PendingSaleResponseDTO {
	return dto.PendingSaleResponseDTO{
		OldBalance:        pending.OldBalance,
		NewBalance:        pending.NewBalance,
		OldVoucherBalance: pending.OldVoucherBalance,
		NewVoucherBalance: pending.NewVoucherBalance,
		UsedVouchers:      pending.UsedVouchers,
		ItemCount:         pending.ItemCount,
		TotalPrice:        pending.TotalPrice,
		LineItems:         toLineItemDTOs(pending.LineItems),
	}
}

func decodeSale(r *http.Request) (*domain.NewSale, error) {
	var req dto.SaleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	buttons := make([]domain.Button, len(req.Buttons))
	for i, b := range req.Buttons {
		buttons[i] = domain.Button{TillButtonID: b.TillButtonID, Quantity: b.Quantity}
	}
	return &domain.NewSale{
		UUID:           req.UUID,
		CustomerTagUID: req.CustomerTagUID,
		Buttons:        buttons,
		UsedVouchers:   req.UsedVouchers,
	}, nil
}

// CheckSale prices a sale draft without booking it.
func (h *OrderHandler) CheckSale(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}
	sale, err := decodeSale(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pending, err := h.orderService.CheckSale(r.Context(), till, sale)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPendingSaleDTO(pending))
}

// BookSale books a sale draft as one atomic order.
func (h *OrderHandler) BookSale(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}
	sale, err := decodeSale(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	completed, err := h.orderService.BookSale(r.Context(), till, sale)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CompletedSaleResponseDTO{
		PendingSaleResponseDTO: toPendingSaleDTO(&completed.PendingSale),
		ID:                     completed.ID,
		UUID:                   completed.UUID,
		TillID:                 completed.TillID,
		BookedAt:               completed.BookedAt,
	})
}

func decodeTopUp(r *http.Request) (*domain.NewTopUp, error) {
	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return &domain.NewTopUp{
		UUID:           req.UUID,
		CustomerTagUID: req.CustomerTagUID,
		Amount:         req.Amount,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
	}, nil
}

func (h *OrderHandler) CheckTopUp(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}
	topUp, err := decodeTopUp(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pending, err := h.orderService.CheckTopUp(r.Context(), till, topUp)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PendingTopUpResponseDTO{
		Amount:     pending.Amount,
		OldBalance: pending.OldBalance,
		NewBalance: pending.NewBalance,
	})
}

func (h *OrderHandler) BookTopUp(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}
	topUp, err := decodeTopUp(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	completed, err := h.orderService.BookTopUp(r.Context(), till, topUp)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CompletedTopUpResponseDTO{
		PendingTopUpResponseDTO: dto.PendingTopUpResponseDTO{
			Amount:     completed.Amount,
			OldBalance: completed.OldBalance,
			NewBalance: completed.NewBalance,
		},
		ID:       completed.ID,
		UUID:     completed.UUID,
		TillID:   completed.TillID,
		BookedAt: completed.BookedAt,
	})
}

func decodePayOut(r *http.Request) (*domain.NewPayOut, error) {
	var req dto.PayOutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return &domain.NewPayOut{
		UUID:           req.UUID,
		CustomerTagUID: req.CustomerTagUID,
		Amount:         req.Amount,
	}, nil
}

func (h *OrderHandler) CheckPayOut(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}
	payOut, err := decodePayOut(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pending, err := h.orderService.CheckPayOut(r.Context(), till, payOut)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PendingPayOutResponseDTO{
		Amount:     pending.Amount,
		OldBalance: pending.OldBalance,
		NewBalance: pending.NewBalance,
	})
}

func (h *OrderHandler) BookPayOut(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}
	payOut, err := decodePayOut(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	completed, err := h.orderService.BookPayOut(r.Context(), till, payOut)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CompletedPayOutResponseDTO{
		PendingPayOutResponseDTO: dto.PendingPayOutResponseDTO{
			Amount:     completed.Amount,
			OldBalance: completed.OldBalance,
			NewBalance: completed.NewBalance,
		},
		ID:       completed.ID,
		UUID:     completed.UUID,
		TillID:   completed.TillID,
		BookedAt: completed.BookedAt,
	})
}

func decodeTicketSale(r *http.Request) (*domain.NewTicketSale, error) {
	var req dto.TicketSaleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return &domain.NewTicketSale{
		UUID:               req.UUID,
		CustomerTagUID:     req.CustomerTagUID,
		InitialTopUpAmount: req.InitialTopUpAmount,
		PaymentMethod:      domain.PaymentMethod(req.PaymentMethod),
	}, nil
}

func toPendingTicketSaleDTO(pending *domain.PendingTicketSale) dto.PendingTicketSaleResponseDTO {
	return dto.PendingTicketSaleResponseDTO{
		TicketPrice:        pending.TicketPrice,
		InitialTopUpAmount: pending.InitialTopUpAmount,
		ItemCount:          pending.ItemCount,
		TotalPrice:         pending.TotalPrice,
		LineItems:          toLineItemDTOs(pending.LineItems),
	}
}

func (h *OrderHandler) CheckTicketSale(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}
	ticketSale, err := decodeTicketSale(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pending, err := h.orderService.CheckTicketSale(r.Context(), till, ticketSale)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPendingTicketSaleDTO(pending))
}

func (h *OrderHandler) BookTicketSale(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}
	ticketSale, err := decodeTicketSale(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	completed, err := h.orderService.BookTicketSale(r.Context(), till, ticketSale)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CompletedTicketSaleResponseDTO{
		PendingTicketSaleResponseDTO: toPendingTicketSaleDTO(&completed.PendingTicketSale),
		ID:                           completed.ID,
		UUID:                         completed.UUID,
		TillID:                       completed.TillID,
		BookedAt:                     completed.BookedAt,
	})
}

// Cancel reverses a booked sale or ticket sale.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := h.orderService.Cancel(r.Context(), till, orderID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "order cancelled"})
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:            order.ID,
		UUID:          order.UUID,
		OrderType:     string(order.Type),
		PaymentMethod: string(order.PaymentMethod),
		TillID:        order.TillID,
		ItemCount:     order.ItemCount,
		TotalPrice:    order.TotalPrice,
		UsedVouchers:  order.UsedVouchers,
		CancelsOrder:  order.CancelsOrderID,
		Signature:     order.Signature,
		BookedAt:      order.BookedAt,
		LineItems:     toLineItemDTOs(order.LineItems),
	}
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := tillFromContext(w, r); !ok {
		return
	}
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GetOrders lists the most recent orders booked through the requesting till.
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	till, ok := tillFromContext(w, r)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrdersForTill(r.Context(), till.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No orders found")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = toOrderDTO(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
