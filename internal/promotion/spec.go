package promotion

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Spec is the wire shape of a promotion definition as supplied by seed
// files and the HTTP API. An empty type means None.
type Spec struct {
	Type    Kind            `json:"type,omitempty" validate:"omitempty,oneof=none get_one_free package threshold"`
	N       int             `json:"n,omitempty"`
	Size    int             `json:"size,omitempty"`
	Count   int             `json:"count,omitempty"`
	Percent decimal.Decimal `json:"percent,omitempty"`
}

// Compile builds the promotion variant described by the spec.
func (s Spec) Compile() (Promotion, error) {
	switch s.Type {
	case "", KindNone:
		return None(), nil
	case KindGetOneFree:
		return GetOneFree(s.N)
	case KindPackage:
		return Package(s.Size, s.Percent)
	case KindThreshold:
		return Threshold(s.Count, s.Percent)
	default:
		return Promotion{}, fmt.Errorf("unknown promotion type %q: %w", s.Type, ErrInvalidArgument)
	}
}

// Spec returns the wire shape of the promotion, for listings.
func (p Promotion) Spec() Spec {
	switch p.Kind() {
	case KindGetOneFree:
		return Spec{Type: KindGetOneFree, N: p.every}
	case KindPackage:
		return Spec{Type: KindPackage, Size: p.size, Percent: p.percent}
	case KindThreshold:
		return Spec{Type: KindThreshold, Count: p.count, Percent: p.percent}
	default:
		return Spec{Type: KindNone}
	}
}
