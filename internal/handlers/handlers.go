package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	ordershandlers "github.com/festipay/festipay/internal/handlers/orders"
	pendinghandlers "github.com/festipay/festipay/internal/handlers/pending"
	"github.com/festipay/festipay/internal/service"
	"github.com/festipay/festipay/pkg/terminal"
)

type OrderHandler interface {
	CheckSale(w http.ResponseWriter, r *http.Request)
	BookSale(w http.ResponseWriter, r *http.Request)
	CheckTopUp(w http.ResponseWriter, r *http.Request)
	BookTopUp(w http.ResponseWriter, r *http.Request)
	CheckPayOut(w http.ResponseWriter, r *http.Request)
	BookPayOut(w http.ResponseWriter, r *http.Request)
	CheckTicketSale(w http.ResponseWriter, r *http.Request)
	BookTicketSale(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type PendingHandler interface {
	CreateCheckout(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler   OrderHandler
	PendingHandler PendingHandler

	tills terminal.TillGetter
}

func New(s *service.Services, tills terminal.TillGetter) *Handlers {
	return &Handlers{
		OrderHandler:   ordershandlers.New(s.OrderService),
		PendingHandler: pendinghandlers.New(s.ReconcileService),
		tills:          tills,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api/v1", func(r chi.Router) {
		// Customer portal flow, no terminal registration required.
		r.Route("/customer/checkout", func(r chi.Router) {
			r.Post("/", h.PendingHandler.CreateCheckout)
			r.Get("/{orderUUID}", h.PendingHandler.GetStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(terminal.Middleware(h.tills))
			r.Route("/order", func(r chi.Router) {
				r.Post("/sale/check", h.OrderHandler.CheckSale)
				r.Post("/sale", h.OrderHandler.BookSale)
				r.Post("/topup/check", h.OrderHandler.CheckTopUp)
				r.Post("/topup", h.OrderHandler.BookTopUp)
				r.Post("/payout/check", h.OrderHandler.CheckPayOut)
				r.Post("/payout", h.OrderHandler.BookPayOut)
				r.Post("/ticket/check", h.OrderHandler.CheckTicketSale)
				r.Post("/ticket", h.OrderHandler.BookTicketSale)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Get("/{orderID}", h.OrderHandler.GetOrder)
				r.Post("/{orderID}/cancel", h.OrderHandler.Cancel)
			})
		})
	})

	return r
}
