package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kasa-labs/pricing-api/internal/coupon"
	"github.com/kasa-labs/pricing-api/internal/promotion"
)

// Inventory is the registry of products and coupons. Names are unique
// case-insensitively within each kind. The inventory is read-mostly after
// the seed phase but registration stays available at runtime, so access
// is guarded by a RWMutex.
type Inventory struct {
	mu      sync.RWMutex
	stock   []*Product
	coupons []coupon.Coupon
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Register validates and stores a new product. A rejected registration
// leaves the inventory untouched.
func (inv *Inventory) Register(name string, price decimal.Decimal, spec promotion.Spec) (*Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if inv.findProductLocked(name) != nil {
		return nil, fmt.Errorf("product %q: %w", name, ErrDuplicateProduct)
	}
	product, err := NewProduct(name, price, spec)
	if err != nil {
		return nil, err
	}
	inv.stock = append(inv.stock, product)
	return product, nil
}

// RegisterCoupon validates and stores a new coupon.
func (inv *Inventory) RegisterCoupon(name string, spec coupon.Spec) (coupon.Coupon, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, c := range inv.coupons {
		if strings.EqualFold(c.Name(), name) {
			return coupon.Coupon{}, fmt.Errorf("coupon %q: %w", name, ErrDuplicateCoupon)
		}
	}
	c, err := spec.Compile(name)
	if err != nil {
		return coupon.Coupon{}, err
	}
	inv.coupons = append(inv.coupons, c)
	return c, nil
}

// FindProduct returns the product registered under name, matching
// case-insensitively.
func (inv *Inventory) FindProduct(name string) (*Product, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if p := inv.findProductLocked(name); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("product %q: %w", name, ErrNotFound)
}

// FindCoupon returns the coupon registered under name, matching
// case-insensitively.
func (inv *Inventory) FindCoupon(name string) (coupon.Coupon, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for _, c := range inv.coupons {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return coupon.Coupon{}, fmt.Errorf("coupon %q: %w", name, ErrNotFound)
}

// Products returns the registered products in registration order.
func (inv *Inventory) Products() []*Product {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]*Product, len(inv.stock))
	copy(out, inv.stock)
	return out
}

// Coupons returns the registered coupons in registration order.
func (inv *Inventory) Coupons() []coupon.Coupon {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]coupon.Coupon, len(inv.coupons))
	copy(out, inv.coupons)
	return out
}

func (inv *Inventory) findProductLocked(name string) *Product {
	for _, p := range inv.stock {
		if strings.EqualFold(p.Name(), name) {
			return p
		}
	}
	return nil
}
