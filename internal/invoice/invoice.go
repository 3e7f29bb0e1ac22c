// Package invoice renders a cart snapshot as a fixed-width text report.
// The layout is byte-exact: shared fixtures depend on it.
package invoice

import (
	"fmt"
	"strings"

	"github.com/kasa-labs/pricing-api/internal/cart"
	"github.com/kasa-labs/pricing-api/internal/money"
)

const separator = "+------------------------------------------------+----------+\n"

var header = fmt.Sprintf("| %-40s %5s | %8s |\n", "Name", "qty", "price")

// Render produces the invoice text for the cart's current state. It is a
// pure function of the snapshot; nothing is cached or persisted.
func Render(c *cart.ShoppingCart) string {
	var b strings.Builder
	b.WriteString(separator)
	b.WriteString(header)
	b.WriteString(separator)
	for _, it := range c.Items() {
		fmt.Fprintf(&b, "| %-40s %5d | %8s |\n",
			it.Product().Name(), it.Quantity(), money.Format(it.Price()))
		if d := it.Discount(); !d.IsZero() {
			fmt.Fprintf(&b, "|   %-44s | %8s |\n",
				it.Product().Promotion().Description(), money.FormatNeg(d))
		}
	}
	if cpn := c.Coupon(); !cpn.IsZero() {
		fmt.Fprintf(&b, "| %-46s | %8s |\n",
			cpn.Description(), money.FormatNeg(c.CouponDiscount()))
	}
	b.WriteString(separator)
	fmt.Fprintf(&b, "| %-46s | %8s |\n", "TOTAL", money.Format(c.Total()))
	b.WriteString(separator)
	return b.String()
}
