package domain

import "fmt"

// PaymentMethod is how a transaction was settled. The set is closed;
// anything else is rejected at the boundary.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// ParsePaymentMethod maps a wire or database value onto the closed set.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
	}
	return m, nil
}

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}
