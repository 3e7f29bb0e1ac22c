package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// ProductsRegisteredTotal counts successful product registrations.
	ProductsRegisteredTotal prometheus.Counter
	// CouponsRegisteredTotal counts successful coupon registrations.
	CouponsRegisteredTotal prometheus.Counter
	// CartsCreatedTotal counts cart sessions opened.
	CartsCreatedTotal prometheus.Counter
	// CartItemsAddedTotal counts item additions across all carts.
	CartItemsAddedTotal prometheus.Counter
	// CouponsAppliedTotal counts coupons applied to carts.
	CouponsAppliedTotal prometheus.Counter
	// InvoicesRenderedTotal counts invoice renderings.
	InvoicesRenderedTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers the pricing
// domain's Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		counter := func(name, help string) prometheus.Counter {
			return registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      name,
				Help:      help,
			}))
		}
		ProductsRegisteredTotal = counter("products_registered_total", "Products registered in the inventory.")
		CouponsRegisteredTotal = counter("coupons_registered_total", "Coupons registered in the inventory.")
		CartsCreatedTotal = counter("carts_created_total", "Cart sessions created.")
		CartItemsAddedTotal = counter("cart_items_added_total", "Line item additions across all carts.")
		CouponsAppliedTotal = counter("coupons_applied_total", "Coupons applied to carts.")
		InvoicesRenderedTotal = counter("invoices_rendered_total", "Invoices rendered.")
	})
}
