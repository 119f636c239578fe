package domain

import "errors"

// Error kinds of the order validation and booking path. Callers match with
// errors.Is; wrapped messages carry the detail.
var (
	// ErrInvalidSale flags a malformed selection, e.g. a negative quantity on
	// a non-returnable product.
	ErrInvalidSale = errors.New("invalid sale")
	// ErrNotEnoughFunds flags a resulting balance outside the allowed range.
	ErrNotEnoughFunds = errors.New("not enough funds")
	// ErrNotEnoughVouchers flags a requested voucher usage above the balance.
	ErrNotEnoughVouchers = errors.New("not enough vouchers")
	// ErrTillPermission flags an operation the till profile does not allow.
	ErrTillPermission = errors.New("till profile does not allow this operation")
	// ErrNotFound flags an absent order, account or pending row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState flags an operation that is not legal in the current
	// lifecycle state, e.g. cancelling twice.
	ErrInvalidState = errors.New("invalid state")
	// ErrAlreadyBooked flags a uuid that is already materialized in the order
	// table. The reconciliation loop treats it as success.
	ErrAlreadyBooked = errors.New("order already booked")
)
