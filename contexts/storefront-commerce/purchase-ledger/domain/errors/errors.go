package errors

import "errors"

var (
	ErrItemNotFound         = errors.New("catalog item not found")
	ErrPurchaseNotFound     = errors.New("purchase not found")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrInvalidRequest       = errors.New("invalid purchase request")
)
