package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCheckoutRequestDTO struct {
	CustomerTagUID uint64  `json:"customer_tag_uid" example:"1234567890"`
	Amount         float64 `json:"amount" example:"20"`
}

type CreateCheckoutResponseDTO struct {
	CheckoutID string    `json:"checkout_id" example:"8a9f3b2c"`
	OrderUUID  uuid.UUID `json:"order_uuid"`
	Amount     float64   `json:"amount" example:"20"`
	Currency   string    `json:"currency" example:"EUR"`
}

type PendingOrderStatusResponseDTO struct {
	OrderUUID    uuid.UUID `json:"order_uuid"`
	Status       string    `json:"status" example:"pending"`
	CancelReason *string   `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at" example:"2026-08-01T18:30:00+02:00"`
}
