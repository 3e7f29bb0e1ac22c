package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/kasa-labs/pricing-api/internal/common"
	"github.com/kasa-labs/pricing-api/internal/coupon"
	"github.com/kasa-labs/pricing-api/internal/events"
	"github.com/kasa-labs/pricing-api/internal/money"
	"github.com/kasa-labs/pricing-api/internal/promotion"
)

// Handler wires the inventory registry to HTTP.
type Handler struct {
	Inventory *Inventory
	Bus       *events.Bus
	Validate  *validator.Validate
}

// ProductView is the JSON shape of a registered product.
type ProductView struct {
	Name      string         `json:"name"`
	Price     string         `json:"price"`
	Promotion promotion.Spec `json:"promotion"`
	Clause    string         `json:"clause,omitempty"`
}

// CouponView is the JSON shape of a registered coupon.
type CouponView struct {
	Name   string      `json:"name"`
	Coupon coupon.Spec `json:"coupon"`
	Clause string      `json:"clause,omitempty"`
}

type registerProductRequest struct {
	Name      string          `json:"name" validate:"required,max=40"`
	Price     decimal.Decimal `json:"price"`
	Promotion promotion.Spec  `json:"promotion"`
}

type registerCouponRequest struct {
	Name   string      `json:"name" validate:"required"`
	Coupon coupon.Spec `json:"coupon" validate:"required"`
}

// Products lists the registered products in registration order.
func (h *Handler) Products(w http.ResponseWriter, _ *http.Request) {
	products := h.Inventory.Products()
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": views})
}

// RegisterProduct validates and stores a new product.
func (h *Handler) RegisterProduct(w http.ResponseWriter, r *http.Request) {
	var payload registerProductRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if err := h.validate(&payload); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
		return
	}
	product, err := h.Inventory.Register(payload.Name, payload.Price, payload.Promotion)
	if err != nil {
		h.writeError(w, err)
		return
	}
	_ = h.Bus.Emit(r.Context(), events.TopicProductRegistered, product.Name(), nil)
	common.JSON(w, http.StatusCreated, map[string]any{"data": productView(product)})
}

// Coupons lists the registered coupons in registration order.
func (h *Handler) Coupons(w http.ResponseWriter, _ *http.Request) {
	coupons := h.Inventory.Coupons()
	views := make([]CouponView, 0, len(coupons))
	for _, c := range coupons {
		views = append(views, CouponView{Name: c.Name(), Coupon: c.Spec(), Clause: c.Description()})
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": views})
}

// RegisterCoupon validates and stores a new coupon.
func (h *Handler) RegisterCoupon(w http.ResponseWriter, r *http.Request) {
	var payload registerCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if err := h.validate(&payload); err != nil {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
		return
	}
	c, err := h.Inventory.RegisterCoupon(payload.Name, payload.Coupon)
	if err != nil {
		h.writeError(w, err)
		return
	}
	_ = h.Bus.Emit(r.Context(), events.TopicCouponRegistered, c.Name(), nil)
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": CouponView{Name: c.Name(), Coupon: c.Spec(), Clause: c.Description()},
	})
}

func (h *Handler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDuplicateProduct), errors.Is(err, ErrDuplicateCoupon):
		common.JSONError(w, http.StatusConflict, "DUPLICATE", err.Error(), nil)
	case errors.Is(err, ErrInvalidProductName),
		errors.Is(err, ErrInvalidProductPrice),
		errors.Is(err, promotion.ErrInvalidArgument),
		errors.Is(err, coupon.ErrInvalidArgument):
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
	}
}

func productView(p *Product) ProductView {
	return ProductView{
		Name:      p.Name(),
		Price:     money.Format(p.Price()),
		Promotion: p.Promotion().Spec(),
		Clause:    p.Promotion().Description(),
	}
}
