package repo

import (
	"github.com/festipay/festipay/internal/pg"
	accountrepo "github.com/festipay/festipay/internal/repo/account-repo"
	orderrepo "github.com/festipay/festipay/internal/repo/order-repo"
	pendingrepo "github.com/festipay/festipay/internal/repo/pending-repo"
	tillrepo "github.com/festipay/festipay/internal/repo/till-repo"
	"github.com/festipay/festipay/internal/reconcile"
	"github.com/festipay/festipay/internal/service/orderservice"
)

type Repositories struct {
	AccountRepo orderservice.AccountRepo
	OrderRepo   orderservice.OrderRepo
	PendingRepo reconcile.PendingRepo

	// TillRepo stays concrete: the order service, the reconcile loop and the
	// terminal middleware each consume a different slice of it.
	TillRepo *tillrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn, txManager)
	orderRepo := orderrepo.New(conn, txManager)
	pendingRepo := pendingrepo.New(conn, txManager)
	tillRepo := tillrepo.New(conn)

	return &Repositories{
		AccountRepo: accountRepo,
		OrderRepo:   orderRepo,
		PendingRepo: pendingRepo,
		TillRepo:    tillRepo,
	}
}
