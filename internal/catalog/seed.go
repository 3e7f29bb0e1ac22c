package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/kasa-labs/pricing-api/internal/coupon"
	"github.com/kasa-labs/pricing-api/internal/promotion"
)

// Seed is the well-formed catalog definition consumed at startup. Parsing
// free-text catalog formats is a collaborator concern; the seed file is
// plain JSON matching the promotion/coupon wire shapes.
type Seed struct {
	Products []SeedProduct `json:"products" validate:"dive"`
	Coupons  []SeedCoupon  `json:"coupons" validate:"dive"`
}

// SeedProduct is one product definition tuple.
type SeedProduct struct {
	Name      string          `json:"name" validate:"required,max=40"`
	Price     decimal.Decimal `json:"price"`
	Promotion promotion.Spec  `json:"promotion"`
}

// SeedCoupon is one coupon definition tuple.
type SeedCoupon struct {
	Name   string      `json:"name" validate:"required"`
	Coupon coupon.Spec `json:"coupon"`
}

var seedValidator = validator.New()

// LoadSeed reads and validates a seed file.
func LoadSeed(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if err := seedValidator.Struct(&seed); err != nil {
		return nil, fmt.Errorf("validate seed file: %w", err)
	}
	return &seed, nil
}

// Apply registers every product and coupon from the seed into inv,
// stopping at the first failure.
func (s *Seed) Apply(inv *Inventory) error {
	for _, sp := range s.Products {
		if _, err := inv.Register(sp.Name, sp.Price, sp.Promotion); err != nil {
			return fmt.Errorf("seed product %q: %w", sp.Name, err)
		}
	}
	for _, sc := range s.Coupons {
		if _, err := inv.RegisterCoupon(sc.Name, sc.Coupon); err != nil {
			return fmt.Errorf("seed coupon %q: %w", sc.Name, err)
		}
	}
	return nil
}
