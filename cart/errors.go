package cart

import "errors"

var (
	ErrItemNotFound = errors.New("cart item not found")
	ErrUnknownSize  = errors.New("product has no such size")
	ErrOutOfStock   = errors.New("product is out of stock")
)
