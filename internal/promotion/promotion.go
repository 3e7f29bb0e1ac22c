// Package promotion implements the per-product discount rules. A rule is
// a closed tagged variant so that both call sites (Discount, Description)
// switch exhaustively over the known kinds.
package promotion

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kasa-labs/pricing-api/internal/money"
)

// Kind discriminates the promotion variants.
type Kind string

const (
	// KindNone is the absence of a promotion.
	KindNone Kind = "none"
	// KindGetOneFree makes every n-th unit free.
	KindGetOneFree Kind = "get_one_free"
	// KindPackage discounts every full group of size units.
	KindPackage Kind = "package"
	// KindThreshold discounts every unit past a quantity threshold.
	KindThreshold Kind = "threshold"
)

// ErrInvalidArgument is returned when a promotion is constructed with
// parameters outside its valid range.
var ErrInvalidArgument = errors.New("invalid promotion argument")

// Promotion is an immutable per-product discount rule. The zero value is
// usable and behaves like None.
type Promotion struct {
	kind    Kind
	every   int
	size    int
	count   int
	percent decimal.Decimal
}

// None returns the no-op promotion.
func None() Promotion {
	return Promotion{kind: KindNone}
}

// GetOneFree builds a rule where every n-th unit is free. n must be an
// integer greater than 1.
func GetOneFree(n int) (Promotion, error) {
	if n <= 1 {
		return Promotion{}, fmt.Errorf("get_one_free requires n > 1, got %d: %w", n, ErrInvalidArgument)
	}
	return Promotion{kind: KindGetOneFree, every: n}, nil
}

// Package builds a rule where every full group of size units gets
// percent off. Partial trailing groups pay full price.
func Package(size int, percent decimal.Decimal) (Promotion, error) {
	if size < 1 {
		return Promotion{}, fmt.Errorf("package size must be at least 1, got %d: %w", size, ErrInvalidArgument)
	}
	if err := validatePercent(percent); err != nil {
		return Promotion{}, err
	}
	return Promotion{kind: KindPackage, size: size, percent: percent}, nil
}

// Threshold builds a rule where every unit beyond the first count units
// gets percent off.
func Threshold(count int, percent decimal.Decimal) (Promotion, error) {
	if count < 0 {
		return Promotion{}, fmt.Errorf("threshold count must not be negative, got %d: %w", count, ErrInvalidArgument)
	}
	if err := validatePercent(percent); err != nil {
		return Promotion{}, err
	}
	return Promotion{kind: KindThreshold, count: count, percent: percent}, nil
}

func validatePercent(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(money.Hundred) {
		return fmt.Errorf("percent must be in [0, 100], got %s: %w", percent, ErrInvalidArgument)
	}
	return nil
}

// Kind returns the variant discriminator.
func (p Promotion) Kind() Kind {
	if p.kind == "" {
		return KindNone
	}
	return p.kind
}

// Discount computes the promotional discount for a line of quantity units
// priced at unitPrice each. Promotions never look beyond their own line.
func (p Promotion) Discount(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	switch p.Kind() {
	case KindGetOneFree:
		free := quantity / p.every
		return unitPrice.Mul(money.FromInt(free))
	case KindPackage:
		// Integer floor division: a partial trailing group pays full price.
		discounted := (quantity / p.size) * p.size
		return money.Percent(unitPrice.Mul(money.FromInt(discounted)), p.percent)
	case KindThreshold:
		past := quantity - p.count
		if past < 0 {
			past = 0
		}
		return money.Percent(unitPrice.Mul(money.FromInt(past)), p.percent)
	default:
		return money.Zero
	}
}

// Description returns the invoice clause for the rule, empty for None.
func (p Promotion) Description() string {
	switch p.Kind() {
	case KindGetOneFree:
		return fmt.Sprintf("(buy %d, get 1 free)", p.every-1)
	case KindPackage:
		return fmt.Sprintf("(get %s%% off for every %d)", p.percent.String(), p.size)
	case KindThreshold:
		return fmt.Sprintf("(%s%% off of every after the %d%s)", p.percent.String(), p.count, ordinalSuffix(p.count))
	default:
		return ""
	}
}

func ordinalSuffix(n int) string {
	if rem := n % 100; rem >= 11 && rem <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
