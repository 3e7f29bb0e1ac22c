package cart_test

import (
	"errors"
	"testing"

	"github.com/kasa-labs/pricing-api/internal/cart"
	"github.com/kasa-labs/pricing-api/internal/catalog"
	"github.com/kasa-labs/pricing-api/internal/coupon"
	"github.com/kasa-labs/pricing-api/internal/money"
	"github.com/kasa-labs/pricing-api/internal/promotion"
)

func testInventory(t *testing.T) *catalog.Inventory {
	t.Helper()
	inv := catalog.NewInventory()

	type entry struct {
		name  string
		price string
		promo promotion.Spec
	}
	for _, e := range []entry{
		{"Pilsner", "10.00", promotion.Spec{Type: promotion.KindGetOneFree, N: 3}},
		{"Merlot", "8.00", promotion.Spec{Type: promotion.KindPackage, Size: 4, Percent: money.MustParse("25")}},
		{"Whisky", "50.00", promotion.Spec{Type: promotion.KindThreshold, Count: 2, Percent: money.MustParse("10")}},
		{"Water", "0.80", promotion.Spec{}},
	} {
		if _, err := inv.Register(e.name, money.MustParse(e.price), e.promo); err != nil {
			t.Fatalf("register %s: %v", e.name, err)
		}
	}
	if _, err := inv.RegisterCoupon("TEASER", coupon.Spec{Type: coupon.KindPercent, Value: money.MustParse("10")}); err != nil {
		t.Fatalf("register coupon: %v", err)
	}
	if _, err := inv.RegisterCoupon("BIGSPENDER", coupon.Spec{Type: coupon.KindAmount, Value: money.MustParse("100.00")}); err != nil {
		t.Fatalf("register coupon: %v", err)
	}
	return inv
}

func mustAdd(t *testing.T, c *cart.ShoppingCart, name string, qty int) {
	t.Helper()
	if err := c.Add(name, qty); err != nil {
		t.Fatalf("add %d x %s: %v", qty, name, err)
	}
}

func TestCartTotals(t *testing.T) {
	inv := testInventory(t)

	tests := []struct {
		name         string
		fill         func(t *testing.T, c *cart.ShoppingCart)
		subtotal     string
		itemDiscount string
		coupon       string
		total        string
	}{
		{
			name:     "empty cart",
			fill:     func(t *testing.T, c *cart.ShoppingCart) {},
			subtotal: "0.00", itemDiscount: "0.00", coupon: "0.00", total: "0.00",
		},
		{
			name: "buy two get one free",
			fill: func(t *testing.T, c *cart.ShoppingCart) {
				mustAdd(t, c, "Pilsner", 6)
			},
			subtotal: "60.00", itemDiscount: "20.00", coupon: "0.00", total: "40.00",
		},
		{
			name: "package discount only on full packs",
			fill: func(t *testing.T, c *cart.ShoppingCart) {
				mustAdd(t, c, "Merlot", 6)
			},
			// 4 of 6 bottles get 25% off: 4 * 8.00 * 0.25 = 8.00
			subtotal: "48.00", itemDiscount: "8.00", coupon: "0.00", total: "40.00",
		},
		{
			name: "threshold discount past the second",
			fill: func(t *testing.T, c *cart.ShoppingCart) {
				mustAdd(t, c, "Whisky", 5)
			},
			// 3 of 5 bottles get 10% off: 3 * 50.00 * 0.10 = 15.00
			subtotal: "250.00", itemDiscount: "15.00", coupon: "0.00", total: "235.00",
		},
		{
			name: "percent coupon sees the discounted subtotal",
			fill: func(t *testing.T, c *cart.ShoppingCart) {
				mustAdd(t, c, "Pilsner", 6)
				if err := c.ApplyCoupon("TEASER"); err != nil {
					t.Fatalf("apply coupon: %v", err)
				}
			},
			subtotal: "60.00", itemDiscount: "20.00", coupon: "4.00", total: "36.00",
		},
		{
			name: "amount coupon caps at the balance",
			fill: func(t *testing.T, c *cart.ShoppingCart) {
				mustAdd(t, c, "Pilsner", 6)
				if err := c.ApplyCoupon("BIGSPENDER"); err != nil {
					t.Fatalf("apply coupon: %v", err)
				}
			},
			subtotal: "60.00", itemDiscount: "20.00", coupon: "40.00", total: "0.00",
		},
		{
			name: "mixed lines keep first-added order totals",
			fill: func(t *testing.T, c *cart.ShoppingCart) {
				mustAdd(t, c, "Pilsner", 3)
				mustAdd(t, c, "Water", 2)
			},
			subtotal: "31.60", itemDiscount: "10.00", coupon: "0.00", total: "21.60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.New(inv)
			tt.fill(t, c)
			if got := money.Format(c.Subtotal()); got != tt.subtotal {
				t.Errorf("subtotal = %s, want %s", got, tt.subtotal)
			}
			if got := money.Format(c.ItemDiscountTotal()); got != tt.itemDiscount {
				t.Errorf("item discount = %s, want %s", got, tt.itemDiscount)
			}
			if got := money.Format(c.CouponDiscount()); got != tt.coupon {
				t.Errorf("coupon discount = %s, want %s", got, tt.coupon)
			}
			if got := money.Format(c.Total()); got != tt.total {
				t.Errorf("total = %s, want %s", got, tt.total)
			}
			// Totals are pure; a second evaluation must agree.
			if first, second := c.Total(), c.Total(); !first.Equal(second) {
				t.Errorf("total not stable: %s then %s", first, second)
			}
		})
	}
}

func TestCartAccumulatesQuantity(t *testing.T) {
	c := cart.New(testInventory(t))
	mustAdd(t, c, "Pilsner", 2)
	mustAdd(t, c, "Pilsner", 3)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("lines = %d, want 1", len(items))
	}
	if got := items[0].Quantity(); got != 5 {
		t.Errorf("quantity = %d, want 5", got)
	}
}

func TestCartQuantityBounds(t *testing.T) {
	c := cart.New(testInventory(t))

	if err := c.Add("Pilsner", 0); !errors.Is(err, cart.ErrInvalidQuantity) {
		t.Errorf("add 0: err = %v, want ErrInvalidQuantity", err)
	}
	if err := c.Add("Pilsner", 100); !errors.Is(err, cart.ErrInvalidQuantity) {
		t.Errorf("add 100: err = %v, want ErrInvalidQuantity", err)
	}
	if len(c.Items()) != 0 {
		t.Fatalf("rejected adds must not create lines, got %d", len(c.Items()))
	}

	mustAdd(t, c, "Pilsner", 50)
	if err := c.Add("Pilsner", 50); !errors.Is(err, cart.ErrInvalidQuantity) {
		t.Errorf("cumulative overflow: err = %v, want ErrInvalidQuantity", err)
	}
	if got := c.Items()[0].Quantity(); got != 50 {
		t.Errorf("quantity after rejected add = %d, want 50", got)
	}

	if err := c.Add("Pilsner", 49); err != nil {
		t.Fatalf("add to the limit: %v", err)
	}
	if got := c.Items()[0].Quantity(); got != cart.QuantityLimit {
		t.Errorf("quantity = %d, want %d", got, cart.QuantityLimit)
	}
}

func TestCartRejectsUnknownNames(t *testing.T) {
	c := cart.New(testInventory(t))

	if err := c.Add("Mead", 1); !errors.Is(err, cart.ErrUnregisteredProduct) {
		t.Errorf("unknown product: err = %v, want ErrUnregisteredProduct", err)
	}
	if err := c.ApplyCoupon("NOPE"); !errors.Is(err, cart.ErrUnregisteredCoupon) {
		t.Errorf("unknown coupon: err = %v, want ErrUnregisteredCoupon", err)
	}
}

func TestCartTakesOneCoupon(t *testing.T) {
	c := cart.New(testInventory(t))
	mustAdd(t, c, "Pilsner", 3)

	if err := c.ApplyCoupon("TEASER"); err != nil {
		t.Fatalf("first coupon: %v", err)
	}
	if err := c.ApplyCoupon("BIGSPENDER"); !errors.Is(err, cart.ErrCouponAlreadyApplied) {
		t.Errorf("second coupon: err = %v, want ErrCouponAlreadyApplied", err)
	}
	if got := c.Coupon().Name(); got != "TEASER" {
		t.Errorf("applied coupon = %q, want TEASER", got)
	}
}

func TestItemPromotionalFlag(t *testing.T) {
	c := cart.New(testInventory(t))
	mustAdd(t, c, "Pilsner", 2)
	mustAdd(t, c, "Water", 2)

	items := c.Items()
	if items[0].IsPromotional() {
		t.Error("two pilsners fall short of the promotion, line must not be promotional")
	}
	mustAdd(t, c, "Pilsner", 1)
	if !items[0].IsPromotional() {
		t.Error("three pilsners trigger the promotion")
	}
	if items[1].IsPromotional() {
		t.Error("water carries no promotion")
	}
}
