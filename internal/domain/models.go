package domain

import (
	"time"

	"github.com/google/uuid"
)

type AccountType string

const (
	AccountTypePrivate          AccountType = "private"
	AccountTypeSaleExit         AccountType = "sale_exit"
	AccountTypeCashEntry        AccountType = "cash_entry"
	AccountTypeCashExit         AccountType = "cash_exit"
	AccountTypeCashTopUpSource  AccountType = "cash_topup_source"
	AccountTypeCashImbalance    AccountType = "cash_imbalance"
	AccountTypeCashVault        AccountType = "cash_vault"
	AccountTypeSumUpEntry       AccountType = "sumup_entry"
	AccountTypeSumUpOnlineEntry AccountType = "sumup_online_entry"
	AccountTypeTransport        AccountType = "transport"
	AccountTypeVoucherCreate    AccountType = "voucher_create"
	AccountTypeDonationExit     AccountType = "donation_exit"
	AccountTypeSepaExit         AccountType = "sepa_exit"
	AccountTypeCashRegister     AccountType = "cash_register"
)

// Account is a ledger entity: either a customer's wristband balance or one of
// the fixed system buckets. System accounts may hold negative balances, they
// are the mirror side of customer-owned money.
type Account struct {
	ID         int         `db:"id"`
	Type       AccountType `db:"type"`
	Name       string      `db:"name"`
	UserTagUID *uint64     `db:"user_tag_uid"`
	Balance    float64     `db:"balance"`
	Vouchers   int         `db:"vouchers"`
}

// Transaction is one immutable source->target movement. Amount is always
// positive: it debits the source account and credits the target account.
type Transaction struct {
	ID              int       `db:"id"`
	OrderID         *int      `db:"order_id"`
	SourceAccountID int       `db:"source_account_id"`
	TargetAccountID int       `db:"target_account_id"`
	Amount          float64   `db:"amount"`
	VoucherAmount   int       `db:"voucher_amount"`
	Description     string    `db:"description"`
	BookedAt        time.Time `db:"booked_at"`
}

type OrderType string

const (
	OrderTypeSale       OrderType = "sale"
	OrderTypeTopUp      OrderType = "top_up"
	OrderTypeTicketSale OrderType = "ticket_sale"
	OrderTypePayOut     OrderType = "pay_out"
	OrderTypeCancel     OrderType = "cancel_sale"
)

type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodTag         PaymentMethod = "tag"
	PaymentMethodSumUp       PaymentMethod = "sumup"
	PaymentMethodSumUpOnline PaymentMethod = "sumup_online"
)

type Order struct {
	ID                int           `db:"id"`
	UUID              uuid.UUID     `db:"uuid"`
	Type              OrderType     `db:"order_type"`
	PaymentMethod     PaymentMethod `db:"payment_method"`
	CashierID         *int          `db:"cashier_id"`
	TillID            int           `db:"till_id"`
	CustomerAccountID int           `db:"customer_account_id"`
	ItemCount         int           `db:"item_count"`
	TotalPrice        float64       `db:"total_price"`
	UsedVouchers      int           `db:"used_vouchers"`
	CancelsOrderID    *int          `db:"cancels_order_id"`
	Signature         *string       `db:"signature"`
	BookedAt          time.Time     `db:"booked_at"`

	LineItems []LineItem `db:"-"`
}

// LineItem is one priced position of an order. ProductID is nil for synthetic
// positions (voucher discount, ticket-sale top-up).
type LineItem struct {
	OrderID      int     `db:"order_id"`
	ItemID       int     `db:"item_id"`
	ProductID    *int    `db:"product_id"`
	ProductName  string  `db:"product_name"`
	Quantity     int     `db:"quantity"`
	ProductPrice float64 `db:"product_price"`
	TaxName      string  `db:"tax_name"`
	TaxRate      float64 `db:"tax_rate"`
}

func (l *LineItem) TotalPrice() float64 {
	return float64(l.Quantity) * l.ProductPrice
}

type Product struct {
	ID              int     `db:"id"`
	Name            string  `db:"name"`
	Price           float64 `db:"price"`
	FixedPrice      bool    `db:"fixed_price"`
	PriceInVouchers *int    `db:"price_in_vouchers"`
	IsReturnable    bool    `db:"is_returnable"`
	TaxName         string  `db:"tax_name"`
	TaxRate         float64 `db:"tax_rate"`
	TargetAccountID *int    `db:"target_account_id"`
}

type TillButton struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type TillProfile struct {
	ID              int    `db:"id"`
	Name            string `db:"name"`
	AllowTopUp      bool   `db:"allow_top_up"`
	AllowCashOut    bool   `db:"allow_cash_out"`
	AllowTicketSale bool   `db:"allow_ticket_sale"`
	ButtonIDs       []int  `db:"-"`
}

type Till struct {
	ID                int    `db:"id"`
	Name              string `db:"name"`
	ActiveProfileID   int    `db:"active_profile_id"`
	ActiveCashierID   *int   `db:"active_cashier_id"`
	RegisterAccountID *int   `db:"register_account_id"`
	TicketProductID   *int   `db:"ticket_product_id"`
}

type PendingOrderStatus string

const (
	PendingOrderStatusPending   PendingOrderStatus = "pending"
	PendingOrderStatusBooked    PendingOrderStatus = "booked"
	PendingOrderStatusCancelled PendingOrderStatus = "cancelled"
)

type PendingOrderType string

const (
	PendingOrderTypeTopUp  PendingOrderType = "topup"
	PendingOrderTypeTicket PendingOrderType = "ticket"
)

// PendingOrder is an order whose payment is confirmed asynchronously by the
// card gateway before it is booked. Payload holds the serialized draft
// (PendingTopUp or PendingTicketSale).
type PendingOrder struct {
	UUID                 uuid.UUID          `db:"uuid"`
	OrderType            PendingOrderType   `db:"order_type"`
	Status               PendingOrderStatus `db:"status"`
	TillID               int                `db:"till_id"`
	CashierID            *int               `db:"cashier_id"`
	Payload              []byte             `db:"payload"`
	CancelReason         *string            `db:"cancel_reason"`
	RetryCount           int                `db:"retry_count"`
	CheckIntervalSeconds int                `db:"check_interval_seconds"`
	CreatedAt            time.Time          `db:"created_at"`
	LastCheckedAt        *time.Time         `db:"last_checked_at"`
}
