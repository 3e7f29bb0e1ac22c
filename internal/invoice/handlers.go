package invoice

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kasa-labs/pricing-api/internal/cart"
	"github.com/kasa-labs/pricing-api/internal/common"
	"github.com/kasa-labs/pricing-api/internal/events"
)

// Handler exposes invoice rendering over HTTP.
type Handler struct {
	Store *cart.Store
	Bus   *events.Bus
}

// Render writes the cart's invoice as plain text.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	session, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unexpected error", nil)
		return
	}
	var text string
	_ = session.Do(func(c *cart.ShoppingCart) error {
		text = Render(c)
		return nil
	})
	_ = h.Bus.Emit(r.Context(), events.TopicInvoiceRendered, session.ID, nil)
	common.Text(w, http.StatusOK, text)
}
