package service

import (
	"github.com/festipay/festipay/internal/config"
	"github.com/festipay/festipay/internal/pg"
	"github.com/festipay/festipay/internal/reconcile"
	"github.com/festipay/festipay/internal/repo"
	orderservice "github.com/festipay/festipay/internal/service/orderservice"
	"github.com/festipay/festipay/pkg/clients"
	"github.com/festipay/festipay/pkg/fiscal"
)

type Services struct {
	OrderService     *orderservice.Service
	ReconcileService *reconcile.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, gateway clients.GatewayClient) *Services {
	signer := fiscal.New([]byte(cfg.FiscalKey), "festipay")
	orderService := orderservice.New(repo.AccountRepo, repo.OrderRepo, repo.TillRepo, txManager, signer, orderservice.Config{
		MinBalance: 0,
		MaxBalance: cfg.MaxBalance,
	})
	reconcileService := reconcile.New(cfg, repo.PendingRepo, repo.TillRepo, orderService, gateway, txManager)

	return &Services{
		OrderService:     orderService,
		ReconcileService: reconcileService,
	}
}
