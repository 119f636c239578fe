package pending

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/festipay/festipay/internal/domain"
	"github.com/festipay/festipay/internal/dto"
	"github.com/festipay/festipay/pkg/clients"
	"github.com/festipay/festipay/pkg/utils"
)

type Service interface {
	CreateOnlineTopUpCheckout(ctx context.Context, topUp *domain.NewTopUp) (*clients.Checkout, error)
	CheckPendingOrderStatus(ctx context.Context, orderUUID uuid.UUID) (*domain.PendingOrder, error)
}

// PendingHandler serves the customer-facing online top-up flow: open a card
// checkout, then poll its state until it flips.
type PendingHandler struct {
	reconcileService Service
}

func New(reconcileService Service) *PendingHandler {
	return &PendingHandler{
		reconcileService: reconcileService,
	}
}

func (h *PendingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	topUp := &domain.NewTopUp{
		CustomerTagUID: req.CustomerTagUID,
		Amount:         req.Amount,
	}
	checkout, err := h.reconcileService.CreateOnlineTopUpCheckout(r.Context(), topUp)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSale):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrTillPermission):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateCheckoutResponseDTO{
		CheckoutID: checkout.ID,
		OrderUUID:  checkout.Reference,
		Amount:     checkout.Amount,
		Currency:   checkout.Currency,
	})
}

func (h *PendingHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	orderUUID, err := uuid.Parse(chi.URLParam(r, "orderUUID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order uuid")
		return
	}

	order, err := h.reconcileService.CheckPendingOrderStatus(r.Context(), orderUUID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PendingOrderStatusResponseDTO{
		OrderUUID:    order.UUID,
		Status:       string(order.Status),
		CancelReason: order.CancelReason,
		CreatedAt:    order.CreatedAt,
	})
}
