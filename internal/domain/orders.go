package domain

import (
	"time"

	"github.com/google/uuid"
)

// Button is one (button, quantity) selection on the till layout. The same
// button may appear multiple times in a draft; the pricing step aggregates.
type Button struct {
	TillButtonID int `json:"till_button_id"`
	Quantity     int `json:"quantity"`
}

type NewSale struct {
	UUID           uuid.UUID `json:"uuid"`
	CustomerTagUID uint64    `json:"customer_tag_uid"`
	Buttons        []Button  `json:"buttons"`
	UsedVouchers   *int      `json:"used_vouchers"`
}

// PendingSale is the priced preview produced by the check phase. No state has
// been mutated when it is returned.
type PendingSale struct {
	CustomerAccountID int        `json:"customer_account_id"`
	OldBalance        float64    `json:"old_balance"`
	NewBalance        float64    `json:"new_balance"`
	OldVoucherBalance int        `json:"old_voucher_balance"`
	NewVoucherBalance int        `json:"new_voucher_balance"`
	UsedVouchers      int        `json:"used_vouchers"`
	ItemCount         int        `json:"item_count"`
	TotalPrice        float64    `json:"total_price"`
	LineItems         []LineItem `json:"line_items"`
}

type CompletedSale struct {
	PendingSale
	ID       int       `json:"id"`
	UUID     uuid.UUID `json:"uuid"`
	TillID   int       `json:"till_id"`
	BookedAt time.Time `json:"booked_at"`
}

type NewTopUp struct {
	UUID           uuid.UUID     `json:"uuid"`
	CustomerTagUID uint64        `json:"customer_tag_uid"`
	Amount         float64       `json:"amount"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
}

type PendingTopUp struct {
	CustomerAccountID int           `json:"customer_account_id"`
	Amount            float64       `json:"amount"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	OldBalance        float64       `json:"old_balance"`
	NewBalance        float64       `json:"new_balance"`
}

type CompletedTopUp struct {
	PendingTopUp
	ID       int       `json:"id"`
	UUID     uuid.UUID `json:"uuid"`
	TillID   int       `json:"till_id"`
	BookedAt time.Time `json:"booked_at"`
}

// NewPayOut with a nil Amount pays out the whole balance. A requested amount
// is negative, mirroring the balance movement it causes.
type NewPayOut struct {
	UUID           uuid.UUID `json:"uuid"`
	CustomerTagUID uint64    `json:"customer_tag_uid"`
	Amount         *float64  `json:"amount"`
}

type PendingPayOut struct {
	CustomerAccountID int     `json:"customer_account_id"`
	Amount            float64 `json:"amount"`
	OldBalance        float64 `json:"old_balance"`
	NewBalance        float64 `json:"new_balance"`
}

type CompletedPayOut struct {
	PendingPayOut
	ID       int       `json:"id"`
	UUID     uuid.UUID `json:"uuid"`
	TillID   int       `json:"till_id"`
	BookedAt time.Time `json:"booked_at"`
}

type NewTicketSale struct {
	UUID               uuid.UUID     `json:"uuid"`
	CustomerTagUID     uint64        `json:"customer_tag_uid"`
	InitialTopUpAmount float64       `json:"initial_top_up_amount"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
}

type PendingTicketSale struct {
	CustomerAccountID  int           `json:"customer_account_id"`
	InitialTopUpAmount float64       `json:"initial_top_up_amount"`
	TicketPrice        float64       `json:"ticket_price"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	ItemCount          int           `json:"item_count"`
	TotalPrice         float64       `json:"total_price"`
	LineItems          []LineItem    `json:"line_items"`
}

type CompletedTicketSale struct {
	PendingTicketSale
	ID       int       `json:"id"`
	UUID     uuid.UUID `json:"uuid"`
	TillID   int       `json:"till_id"`
	BookedAt time.Time `json:"booked_at"`
}
