package dto

import (
	"time"

	"github.com/google/uuid"
)

type ButtonDTO struct {
	TillButtonID int `json:"till_button_id" example:"3"`
	Quantity     int `json:"quantity" example:"2"`
}

type SaleRequestDTO struct {
	UUID           uuid.UUID   `json:"uuid"`
	CustomerTagUID uint64      `json:"customer_tag_uid" example:"1234567890"`
	Buttons        []ButtonDTO `json:"buttons"`
	UsedVouchers   *int        `json:"used_vouchers,omitempty" example:"2"`
}

type TopUpRequestDTO struct {
	UUID           uuid.UUID `json:"uuid"`
	CustomerTagUID uint64    `json:"customer_tag_uid" example:"1234567890"`
	Amount         float64   `json:"amount" example:"20"`
	PaymentMethod  string    `json:"payment_method" example:"cash"`
}

type PayOutRequestDTO struct {
	UUID           uuid.UUID `json:"uuid"`
	CustomerTagUID uint64    `json:"customer_tag_uid" example:"1234567890"`
	Amount         *float64  `json:"amount,omitempty" example:"-10"`
}

type TicketSaleRequestDTO struct {
	UUID               uuid.UUID `json:"uuid"`
	CustomerTagUID     uint64    `json:"customer_tag_uid" example:"1234567890"`
	InitialTopUpAmount float64   `json:"initial_top_up_amount" example:"10"`
	PaymentMethod      string    `json:"payment_method" example:"cash"`
}

type LineItemDTO struct {
	ProductID    *int    `json:"product_id,omitempty" example:"7"`
	ProductName  string  `json:"product_name" example:"Helles 0.5l"`
	Quantity     int     `json:"quantity" example:"2"`
	ProductPrice float64 `json:"product_price" example:"5.5"`
	TotalPrice   float64 `json:"total_price" example:"11"`
	TaxName      string  `json:"tax_name" example:"ust"`
	TaxRate      float64 `json:"tax_rate" example:"0.19"`
}

type PendingSaleResponseDTO struct {
	OldBalance        float64       `json:"old_balance" example:"30"`
	NewBalance        float64       `json:"new_balance" example:"19"`
	OldVoucherBalance int           `json:"old_voucher_balance" example:"3"`
	NewVoucherBalance int           `json:"new_voucher_balance" example:"1"`
	UsedVouchers      int           `json:"used_vouchers" example:"2"`
	ItemCount         int           `json:"item_count" example:"2"`
	TotalPrice        float64       `json:"total_price" example:"11"`
	LineItems         []LineItemDTO `json:"line_items"`
}

type CompletedSaleResponseDTO struct {
	PendingSaleResponseDTO
	ID       int       `json:"id" example:"42"`
	UUID     uuid.UUID `json:"uuid"`
	TillID   int       `json:"till_id" example:"1"`
	BookedAt time.Time `json:"booked_at" example:"2026-08-01T18:30:00+02:00"`
}

type PendingTopUpResponseDTO struct {
	Amount     float64 `json:"amount" example:"20"`
	OldBalance float64 `json:"old_balance" example:"10"`
	NewBalance float64 `json:"new_balance" example:"30"`
}

type CompletedTopUpResponseDTO struct {
	PendingTopUpResponseDTO
	ID       int       `json:"id" example:"42"`
	UUID     uuid.UUID `json:"uuid"`
	TillID   int       `json:"till_id" example:"1"`
	BookedAt time.Time `json:"booked_at" example:"2026-08-01T18:30:00+02:00"`
}

type PendingPayOutResponseDTO struct {
	Amount     float64 `json:"amount" example:"-10"`
	OldBalance float64 `json:"old_balance" example:"10"`
	NewBalance float64 `json:"new_balance" example:"0"`
}

type CompletedPayOutResponseDTO struct {
	PendingPayOutResponseDTO
	ID       int       `json:"id" example:"42"`
	UUID     uuid.UUID `json:"uuid"`
	TillID   int       `json:"till_id" example:"1"`
	BookedAt time.Time `json:"booked_at" example:"2026-08-01T18:30:00+02:00"`
}

type PendingTicketSaleResponseDTO struct {
	TicketPrice        float64       `json:"ticket_price" example:"12"`
	InitialTopUpAmount float64       `json:"initial_top_up_amount" example:"10"`
	ItemCount          int           `json:"item_count" example:"2"`
	TotalPrice         float64       `json:"total_price" example:"22"`
	LineItems          []LineItemDTO `json:"line_items"`
}

type CompletedTicketSaleResponseDTO struct {
	PendingTicketSaleResponseDTO
	ID       int       `json:"id" example:"42"`
	UUID     uuid.UUID `json:"uuid"`
	TillID   int       `json:"till_id" example:"1"`
	BookedAt time.Time `json:"booked_at" example:"2026-08-01T18:30:00+02:00"`
}

type OrderResponseDTO struct {
	ID            int           `json:"id" example:"42"`
	UUID          uuid.UUID     `json:"uuid"`
	OrderType     string        `json:"order_type" example:"sale"`
	PaymentMethod string        `json:"payment_method" example:"tag"`
	TillID        int           `json:"till_id" example:"1"`
	ItemCount     int           `json:"item_count" example:"2"`
	TotalPrice    float64       `json:"total_price" example:"11"`
	UsedVouchers  int           `json:"used_vouchers" example:"2"`
	CancelsOrder  *int          `json:"cancels_order_id,omitempty" example:"41"`
	Signature     *string       `json:"signature,omitempty"`
	BookedAt      time.Time     `json:"booked_at" example:"2026-08-01T18:30:00+02:00"`
	LineItems     []LineItemDTO `json:"line_items,omitempty"`
}
