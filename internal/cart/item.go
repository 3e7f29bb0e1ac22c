// Package cart implements shopping carts over a catalog inventory: line
// items with accumulated quantities, at most one applied coupon, and the
// on-demand total computation.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kasa-labs/pricing-api/internal/catalog"
	"github.com/kasa-labs/pricing-api/internal/money"
)

// QuantityLimit is the maximum accumulated quantity of one product in a cart.
const QuantityLimit = 99

// Item is one product line in a cart. The product is a shared reference
// into the inventory; only the quantity mutates.
type Item struct {
	product  *catalog.Product
	quantity int
}

func newItem(product *catalog.Product, quantity int) (*Item, error) {
	it := &Item{product: product}
	if err := it.IncreaseQuantity(quantity); err != nil {
		return nil, err
	}
	return it, nil
}

// Product returns the catalog entry this line refers to.
func (it *Item) Product() *catalog.Product { return it.product }

// Quantity returns the accumulated quantity.
func (it *Item) Quantity() int { return it.quantity }

// IncreaseQuantity adds delta units, validating the cumulative quantity
// against the 1..QuantityLimit range. On failure the quantity is unchanged.
func (it *Item) IncreaseQuantity(delta int) error {
	total := it.quantity + delta
	if total <= 0 || total > QuantityLimit {
		return fmt.Errorf("quantity %d of %q must stay within 1..%d: %w",
			total, it.product.Name(), QuantityLimit, ErrInvalidQuantity)
	}
	it.quantity = total
	return nil
}

// Price returns the undiscounted line price.
func (it *Item) Price() decimal.Decimal {
	return it.product.Price().Mul(money.FromInt(it.quantity))
}

// Discount returns the promotional discount for this line.
func (it *Item) Discount() decimal.Decimal {
	return it.product.Promotion().Discount(it.product.Price(), it.quantity)
}

// IsPromotional reports whether the line carries a non-zero discount.
func (it *Item) IsPromotional() bool {
	return !it.Discount().IsZero()
}
