// Package catalog holds the priced product registry: immutable products,
// their promotions, the registered coupons, and the seed-file ingestion
// used to populate an inventory at startup.
package catalog

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/kasa-labs/pricing-api/internal/money"
	"github.com/kasa-labs/pricing-api/internal/promotion"
)

// NameLimit is the maximum product name length in characters.
const NameLimit = 40

var (
	// MinPrice is the lowest registrable unit price, inclusive.
	MinPrice = money.MustParse("0.01")
	// MaxPrice is the highest registrable unit price, inclusive.
	MaxPrice = money.MustParse("999.99")
)

// Product is an immutable catalog entry. Construction validates the name
// length and price range; once registered a product never changes, so
// cart items can hold references into the inventory safely.
type Product struct {
	name  string
	price decimal.Decimal
	promo promotion.Promotion
}

// NewProduct validates and constructs a product with the promotion
// described by spec.
func NewProduct(name string, price decimal.Decimal, spec promotion.Spec) (*Product, error) {
	if utf8.RuneCountInString(name) > NameLimit {
		return nil, fmt.Errorf("name %q is longer than %d characters: %w", name, NameLimit, ErrInvalidProductName)
	}
	if price.LessThan(MinPrice) || price.GreaterThan(MaxPrice) {
		return nil, fmt.Errorf("price %s is outside [%s, %s]: %w", price, MinPrice, MaxPrice, ErrInvalidProductPrice)
	}
	promo, err := spec.Compile()
	if err != nil {
		return nil, err
	}
	return &Product{name: name, price: price, promo: promo}, nil
}

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal { return p.price }

// Promotion returns the product's discount rule.
func (p *Product) Promotion() promotion.Promotion { return p.promo }
