package errors

import "errors"

var (
	ErrItemNotFound   = errors.New("catalog item not found")
	ErrInvalidRequest = errors.New("invalid catalog request")
)
