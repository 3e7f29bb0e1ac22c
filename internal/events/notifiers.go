package events

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kasa-labs/pricing-api/internal/obs"
)

// LogNotifier writes every emitted event to the structured log.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify implements Notifier.
func (l LogNotifier) Notify(_ context.Context, event Event) error {
	l.Logger.Info().
		Str("topic", event.Topic).
		Str("subject", event.Subject).
		Interface("payload", event.Payload).
		Time("occurred_at", event.OccurredAt).
		Msg("domain_event")
	return nil
}

// MetricsNotifier feeds domain counters from emitted events.
type MetricsNotifier struct{}

// Notify implements Notifier.
func (MetricsNotifier) Notify(_ context.Context, event Event) error {
	switch event.Topic {
	case TopicProductRegistered:
		obs.ProductsRegisteredTotal.Inc()
	case TopicCouponRegistered:
		obs.CouponsRegisteredTotal.Inc()
	case TopicCartCreated:
		obs.CartsCreatedTotal.Inc()
	case TopicCartItemAdded:
		obs.CartItemsAddedTotal.Inc()
	case TopicCartCouponApplied:
		obs.CouponsAppliedTotal.Inc()
	case TopicInvoiceRendered:
		obs.InvoicesRenderedTotal.Inc()
	}
	return nil
}
