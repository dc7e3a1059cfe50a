package domain

import "errors"

var (
	// ErrEmptyCart is returned by checkout when the session has no line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotFound covers missing orders, products, services and the like.
	ErrNotFound = errors.New("not found")
)
