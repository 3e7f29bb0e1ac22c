package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kasa-labs/pricing-api/internal/common"
	"github.com/kasa-labs/pricing-api/internal/events"
	"github.com/kasa-labs/pricing-api/internal/money"
)

// Handler wires cart sessions to HTTP.
type Handler struct {
	Inventory Inventory
	Store     *Store
	Bus       *events.Bus
}

// Line is the JSON shape of one cart line.
type Line struct {
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unitPrice"`
	LinePrice string `json:"linePrice"`
	Discount  string `json:"discount"`
	Promotion string `json:"promotion,omitempty"`
}

// Totals is the JSON shape of the cart's computed amounts.
type Totals struct {
	Subtotal       string `json:"subtotal"`
	ItemDiscount   string `json:"itemDiscount"`
	CouponDiscount string `json:"couponDiscount"`
	Total          string `json:"total"`
}

// Create opens a new cart session.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.Store.Create(h.Inventory)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = h.Bus.Emit(r.Context(), events.TopicCartCreated, session.ID, nil)
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{"cartId": session.ID},
	})
}

// Get returns the cart contents and computed totals.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	h.respond(w, http.StatusOK, session)
}

// AddItem puts units of a named product in the cart. A missing qty means 1.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	session, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var payload struct {
		Name string `json:"name"`
		Qty  int    `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "product name is required", nil)
		return
	}
	if payload.Qty == 0 {
		payload.Qty = 1
	}
	if err := session.Do(func(c *ShoppingCart) error {
		return c.Add(payload.Name, payload.Qty)
	}); err != nil {
		writeError(w, err)
		return
	}
	_ = h.Bus.Emit(r.Context(), events.TopicCartItemAdded, session.ID, map[string]any{
		"name": payload.Name,
		"qty":  payload.Qty,
	})
	h.respond(w, http.StatusOK, session)
}

// ApplyCoupon attaches a registered coupon to the cart.
func (h *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	session, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "coupon name is required", nil)
		return
	}
	if err := session.Do(func(c *ShoppingCart) error {
		return c.ApplyCoupon(payload.Name)
	}); err != nil {
		writeError(w, err)
		return
	}
	_ = h.Bus.Emit(r.Context(), events.TopicCartCouponApplied, session.ID, map[string]any{
		"name": payload.Name,
	})
	h.respond(w, http.StatusOK, session)
}

func (h *Handler) respond(w http.ResponseWriter, status int, session *Session) {
	var (
		lines  []Line
		totals Totals
		cpn    string
	)
	_ = session.Do(func(c *ShoppingCart) error {
		items := c.Items()
		lines = make([]Line, 0, len(items))
		for _, it := range items {
			lines = append(lines, Line{
				Name:      it.Product().Name(),
				Qty:       it.Quantity(),
				UnitPrice: money.Format(it.Product().Price()),
				LinePrice: money.Format(it.Price()),
				Discount:  money.Format(it.Discount()),
				Promotion: it.Product().Promotion().Description(),
			})
		}
		totals = Totals{
			Subtotal:       money.Format(c.Subtotal()),
			ItemDiscount:   money.Format(c.ItemDiscountTotal()),
			CouponDiscount: money.Format(c.CouponDiscount()),
			Total:          money.Format(c.Total()),
		}
		cpn = c.Coupon().Description()
		return nil
	})
	common.JSON(w, status, map[string]any{
		"data": map[string]any{
			"id":     session.ID,
			"items":  lines,
			"coupon": cpn,
			"totals": totals,
		},
	})
}

func httpError(err error) *common.AppError {
	switch {
	case errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrUnregisteredProduct),
		errors.Is(err, ErrUnregisteredCoupon):
		return common.NewAppError("NOT_FOUND", err.Error(), http.StatusNotFound, err)
	case errors.Is(err, ErrInvalidQuantity):
		return common.NewAppError("VALIDATION", err.Error(), http.StatusUnprocessableEntity, err)
	case errors.Is(err, ErrCouponAlreadyApplied):
		return common.NewAppError("COUPON_ALREADY_APPLIED", err.Error(), http.StatusConflict, err)
	case errors.Is(err, ErrTooManyCarts):
		return common.NewAppError("TOO_MANY_CARTS", err.Error(), http.StatusTooManyRequests, err)
	default:
		return common.NewAppError("INTERNAL", "unexpected error", http.StatusInternalServerError, err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	ae := httpError(err)
	common.JSONError(w, ae.HTTPStatus, ae.Code, ae.Message, nil)
}
