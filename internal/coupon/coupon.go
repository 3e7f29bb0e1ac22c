// Package coupon implements the cart-wide discount rules. Like
// promotions, a coupon is a closed tagged variant with exhaustive
// switches at the two call sites.
package coupon

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kasa-labs/pricing-api/internal/money"
)

// Kind discriminates the coupon variants.
type Kind string

const (
	// KindNone is the absence of a coupon.
	KindNone Kind = "none"
	// KindPercent takes a percentage off the post-item-discount subtotal.
	KindPercent Kind = "percent"
	// KindAmount takes a fixed amount off, capped at the subtotal.
	KindAmount Kind = "amount"
)

// ErrInvalidArgument is returned when a coupon spec names an unknown kind.
var ErrInvalidArgument = errors.New("invalid coupon argument")

// Coupon is an immutable cart-wide discount rule. The zero value behaves
// like None.
type Coupon struct {
	kind    Kind
	name    string
	percent decimal.Decimal
	amount  decimal.Decimal
}

// None returns the no-op coupon.
func None() Coupon {
	return Coupon{kind: KindNone}
}

// Percent builds a coupon taking percent off the discounted subtotal.
func Percent(name string, percent decimal.Decimal) Coupon {
	return Coupon{kind: KindPercent, name: name, percent: percent}
}

// Amount builds a coupon taking a fixed amount off, never more than the
// remaining balance.
func Amount(name string, amount decimal.Decimal) Coupon {
	return Coupon{kind: KindAmount, name: name, amount: amount}
}

// Kind returns the variant discriminator.
func (c Coupon) Kind() Kind {
	if c.kind == "" {
		return KindNone
	}
	return c.kind
}

// Name returns the coupon's registered name, empty for None.
func (c Coupon) Name() string {
	return c.name
}

// IsZero reports whether the coupon is the None variant.
func (c Coupon) IsZero() bool {
	return c.Kind() == KindNone
}

// Discount computes the coupon discount over the subtotal remaining after
// item-level discounts. The result never exceeds base and never goes
// below zero.
func (c Coupon) Discount(base decimal.Decimal) decimal.Decimal {
	switch c.Kind() {
	case KindPercent:
		return money.Percent(base, c.percent)
	case KindAmount:
		return decimal.Min(base, c.amount)
	default:
		return money.Zero
	}
}

// Description returns the invoice clause for the coupon, empty for None.
func (c Coupon) Description() string {
	switch c.Kind() {
	case KindPercent:
		return fmt.Sprintf("Coupon %s - %s%% off", c.name, c.percent.String())
	case KindAmount:
		return fmt.Sprintf("Coupon %s - %s off", c.name, money.Format(c.amount))
	default:
		return ""
	}
}
