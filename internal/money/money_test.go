package money_test

import (
	"testing"

	"github.com/kasa-labs/pricing-api/internal/money"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		base, pct, want string
	}{
		{"100", "10", "10"},
		{"40", "10", "4"},
		{"0.80", "25", "0.2"},
		{"33.33", "50", "16.665"},
		{"10", "0", "0"},
	}
	for _, tt := range tests {
		got := money.Percent(money.MustParse(tt.base), money.MustParse(tt.pct))
		if !got.Equal(money.MustParse(tt.want)) {
			t.Errorf("Percent(%s, %s) = %s, want %s", tt.base, tt.pct, got, tt.want)
		}
	}
}

func TestFormatRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"16.665", "16.67"},
		{"16.664", "16.66"},
		{"-16.665", "-16.67"},
		{"2.5", "2.50"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		if got := money.Format(money.MustParse(tt.in)); got != tt.want {
			t.Errorf("Format(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatNeg(t *testing.T) {
	if got := money.FormatNeg(money.MustParse("20")); got != "-20.00" {
		t.Errorf("FormatNeg(20) = %s, want -20.00", got)
	}
	if got := money.FormatNeg(money.MustParse("0")); got != "0.00" {
		t.Errorf("FormatNeg(0) = %s, want 0.00", got)
	}
}

func TestMustParsePanicsOnGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	money.MustParse("not a number")
}
