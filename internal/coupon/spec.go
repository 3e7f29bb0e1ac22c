package coupon

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Spec is the wire shape of a coupon definition. Value carries the
// percentage for percent coupons and the monetary amount for amount
// coupons.
type Spec struct {
	Type  Kind            `json:"type" validate:"required,oneof=percent amount"`
	Value decimal.Decimal `json:"value"`
}

// Compile builds the named coupon variant described by the spec.
func (s Spec) Compile(name string) (Coupon, error) {
	switch s.Type {
	case KindPercent:
		return Percent(name, s.Value), nil
	case KindAmount:
		return Amount(name, s.Value), nil
	default:
		return Coupon{}, fmt.Errorf("unknown coupon type %q: %w", s.Type, ErrInvalidArgument)
	}
}

// Spec returns the wire shape of the coupon, for listings.
func (c Coupon) Spec() Spec {
	switch c.Kind() {
	case KindPercent:
		return Spec{Type: KindPercent, Value: c.percent}
	case KindAmount:
		return Spec{Type: KindAmount, Value: c.amount}
	default:
		return Spec{Type: KindNone}
	}
}
