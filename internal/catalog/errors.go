package catalog

import "errors"

var (
	// ErrInvalidProductName is returned when a product name exceeds the
	// allowed length.
	ErrInvalidProductName = errors.New("invalid product name")
	// ErrInvalidProductPrice is returned when a price falls outside the
	// allowed range.
	ErrInvalidProductPrice = errors.New("invalid product price")
	// ErrDuplicateProduct indicates a case-insensitive product name clash.
	ErrDuplicateProduct = errors.New("product already registered")
	// ErrDuplicateCoupon indicates a case-insensitive coupon name clash.
	ErrDuplicateCoupon = errors.New("coupon already registered")
	// ErrNotFound is returned by lookups when no entry matches.
	ErrNotFound = errors.New("not found")
)
