package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kasa-labs/pricing-api/internal/catalog"
	"github.com/kasa-labs/pricing-api/internal/coupon"
	"github.com/kasa-labs/pricing-api/internal/money"
)

// Inventory is the registry view a cart needs: name lookups only.
// *catalog.Inventory satisfies it.
type Inventory interface {
	FindProduct(name string) (*catalog.Product, error)
	FindCoupon(name string) (coupon.Coupon, error)
}

// ShoppingCart aggregates line items in first-added order and at most one
// applied coupon. Totals are computed on demand; nothing is cached.
//
// A cart is owned by a single session and has no internal locking.
type ShoppingCart struct {
	inventory Inventory
	items     []*Item
	coupon    coupon.Coupon
}

// New returns an empty cart bound to the given inventory.
func New(inventory Inventory) *ShoppingCart {
	return &ShoppingCart{inventory: inventory, coupon: coupon.None()}
}

// Add puts quantity units of the named product in the cart. A repeated
// add accumulates onto the existing line instead of creating a new one.
// A rejected add leaves the cart exactly as it was.
func (c *ShoppingCart) Add(name string, quantity int) error {
	product, err := c.inventory.FindProduct(name)
	if err != nil {
		return fmt.Errorf("product %q: %w", name, ErrUnregisteredProduct)
	}
	for _, it := range c.items {
		if it.product == product {
			return it.IncreaseQuantity(quantity)
		}
	}
	item, err := newItem(product, quantity)
	if err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// ApplyCoupon attaches the named coupon to the cart. A cart takes exactly
// one coupon; a second application fails rather than overwriting.
func (c *ShoppingCart) ApplyCoupon(name string) error {
	found, err := c.inventory.FindCoupon(name)
	if err != nil {
		return fmt.Errorf("coupon %q: %w", name, ErrUnregisteredCoupon)
	}
	if !c.coupon.IsZero() {
		return fmt.Errorf("coupon %q is in use: %w", c.coupon.Name(), ErrCouponAlreadyApplied)
	}
	c.coupon = found
	return nil
}

// Subtotal is the sum of line prices before any discount.
func (c *ShoppingCart) Subtotal() decimal.Decimal {
	sum := money.Zero
	for _, it := range c.items {
		sum = sum.Add(it.Price())
	}
	return sum
}

// ItemDiscountTotal is the sum of promotional discounts across lines.
func (c *ShoppingCart) ItemDiscountTotal() decimal.Decimal {
	sum := money.Zero
	for _, it := range c.items {
		sum = sum.Add(it.Discount())
	}
	return sum
}

// CouponDiscount evaluates the applied coupon against the subtotal that
// remains after item discounts. Item discounts always land first; the
// coupon sees only the remainder.
func (c *ShoppingCart) CouponDiscount() decimal.Decimal {
	return c.coupon.Discount(c.Subtotal().Sub(c.ItemDiscountTotal()))
}

// Total is the amount due: subtotal minus item discounts minus the coupon
// discount.
func (c *ShoppingCart) Total() decimal.Decimal {
	return c.Subtotal().Sub(c.ItemDiscountTotal()).Sub(c.CouponDiscount())
}

// Items returns the cart lines in first-added order.
func (c *ShoppingCart) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Coupon returns the applied coupon, the None variant when absent.
func (c *ShoppingCart) Coupon() coupon.Coupon {
	return c.coupon
}
