package domain

import "fmt"

// Cents is an amount of money in integer minor units (euro cents).
// Money arithmetic stays in this representation end to end; floats
// never enter the path.
type Cents int64

// Ceilings for money math. A booth order is a handful of drinks and
// snacks; anything near these limits is a typo, not a sale.
const (
	MaxLineTotalCents  Cents = 10_000_000
	MaxOrderTotalCents Cents = 100_000_000
)

// Decimal renders the amount as a fixed two-decimal string, e.g. 1250
// becomes "12.50". Presentation only; nothing parses it back.
func (c Cents) Decimal() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// LineTotal multiplies a unit price by a quantity, rejecting values the
// register could never produce instead of letting int64 wrap.
func LineTotal(unitPrice Cents, quantity int64) (Cents, error) {
	switch {
	case quantity < 1:
		return 0, fmt.Errorf("%w: quantity %d", ErrInvalidLine, quantity)
	case unitPrice < 0:
		return 0, fmt.Errorf("%w: negative unit price", ErrInvalidLine)
	case unitPrice > 0 && quantity > int64(MaxLineTotalCents/unitPrice):
		return 0, fmt.Errorf("%w: line total above %d", ErrInvalidLine, MaxLineTotalCents)
	}
	return unitPrice * Cents(quantity), nil
}
