package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInUse rejects deleting a catalog entry that products or past
	// sales still reference.
	ErrInUse = errors.New("still referenced")

	// ErrInvalidInput rejects malformed catalog writes.
	ErrInvalidInput = errors.New("invalid input")

	// Commit validation failures. These are caller errors; nothing has
	// been written when one of them comes back.
	ErrEmptyOrder           = errors.New("order has no items")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInsufficientCash     = errors.New("cash received is less than the order total")
	ErrCashOnCardPayment    = errors.New("cash amounts are only valid on cash payments")
	ErrProductUnavailable   = errors.New("product is not available for sale")
	ErrInvalidLine          = errors.New("invalid order line")
)

// IsValidation reports whether err belongs to the commit validation
// family, as opposed to a storage failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidInput,
		ErrEmptyOrder,
		ErrInvalidPaymentMethod,
		ErrInsufficientCash,
		ErrCashOnCardPayment,
		ErrProductUnavailable,
		ErrInvalidLine,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
