package events

// Topic constants for domain events emitted by the pricing engine.
const (
	TopicProductRegistered = "product.registered"
	TopicCouponRegistered  = "coupon.registered"
	TopicCartCreated       = "cart.created"
	TopicCartItemAdded     = "cart.item_added"
	TopicCartCouponApplied = "cart.coupon_applied"
	TopicInvoiceRendered   = "invoice.rendered"
)
