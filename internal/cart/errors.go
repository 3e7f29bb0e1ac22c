package cart

import "errors"

var (
	// ErrUnregisteredProduct is returned when an add names a product the
	// bound inventory does not stock.
	ErrUnregisteredProduct = errors.New("product not registered")
	// ErrUnregisteredCoupon is returned when a coupon name is unknown to
	// the bound inventory.
	ErrUnregisteredCoupon = errors.New("coupon not registered")
	// ErrInvalidQuantity is returned when a cumulative item quantity
	// would leave the 1..99 range.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrCouponAlreadyApplied is returned when a second coupon is applied
	// to a cart.
	ErrCouponAlreadyApplied = errors.New("coupon already applied")
	// ErrCartNotFound indicates the requested cart session does not exist.
	ErrCartNotFound = errors.New("cart not found")
	// ErrTooManyCarts indicates the session store hit its live-cart cap.
	ErrTooManyCarts = errors.New("cart session limit reached")
)
