package invoice_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/kasa-labs/pricing-api/internal/cart"
	"github.com/kasa-labs/pricing-api/internal/catalog"
	"github.com/kasa-labs/pricing-api/internal/coupon"
	"github.com/kasa-labs/pricing-api/internal/invoice"
	"github.com/kasa-labs/pricing-api/internal/money"
	"github.com/kasa-labs/pricing-api/internal/promotion"
)

func testInventory(t *testing.T) *catalog.Inventory {
	t.Helper()
	inv := catalog.NewInventory()
	if _, err := inv.Register("Pilsner", money.MustParse("10.00"),
		promotion.Spec{Type: promotion.KindGetOneFree, N: 3}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := inv.Register("Water", money.MustParse("0.80"), promotion.Spec{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := inv.RegisterCoupon("TEASER",
		coupon.Spec{Type: coupon.KindPercent, Value: money.MustParse("10")}); err != nil {
		t.Fatalf("register coupon: %v", err)
	}
	return inv
}

func TestRenderEmptyCart(t *testing.T) {
	c := cart.New(testInventory(t))

	want := strings.Join([]string{
		"+------------------------------------------------+----------+",
		"| Name                                       qty |    price |",
		"+------------------------------------------------+----------+",
		"+------------------------------------------------+----------+",
		"| TOTAL                                          |     0.00 |",
		"+------------------------------------------------+----------+",
		"",
	}, "\n")
	if got := invoice.Render(c); got != want {
		t.Errorf("invoice mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderFullCart(t *testing.T) {
	c := cart.New(testInventory(t))
	if err := c.Add("Pilsner", 6); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.Add("Water", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.ApplyCoupon("TEASER"); err != nil {
		t.Fatalf("apply coupon: %v", err)
	}

	want := strings.Join([]string{
		"+------------------------------------------------+----------+",
		"| Name                                       qty |    price |",
		"+------------------------------------------------+----------+",
		"| Pilsner                                      6 |    60.00 |",
		"|   (buy 2, get 1 free)                          |   -20.00 |",
		"| Water                                        2 |     1.60 |",
		"| Coupon TEASER - 10% off                        |    -4.16 |",
		"+------------------------------------------------+----------+",
		"| TOTAL                                          |    37.44 |",
		"+------------------------------------------------+----------+",
		"",
	}, "\n")
	if got := invoice.Render(c); got != want {
		t.Errorf("invoice mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSkipsZeroRows(t *testing.T) {
	c := cart.New(testInventory(t))
	if err := c.Add("Pilsner", 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	got := invoice.Render(c)
	if strings.Contains(got, "get 1 free") {
		t.Error("discount row rendered for a line below the promotion threshold")
	}
	if strings.Contains(got, "Coupon") {
		t.Error("coupon row rendered without an applied coupon")
	}
}

func TestRenderHandler(t *testing.T) {
	inv := testInventory(t)
	store := cart.NewStore(0)
	session, err := store.Create(inv)
	require.NoError(t, err)
	require.NoError(t, session.Do(func(c *cart.ShoppingCart) error {
		return c.Add("Pilsner", 6)
	}))

	h := &invoice.Handler{Store: store}
	r := chi.NewRouter()
	r.Get("/api/v1/carts/{id}/invoice", h.Render)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/carts/"+session.ID+"/invoice", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	require.Contains(t, rec.Body.String(), "| Pilsner                                      6 |    60.00 |")
	require.Contains(t, rec.Body.String(), "| TOTAL                                          |    40.00 |")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/carts/missing/invoice", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
