package errors

import "errors"

var ErrUnauthorized = errors.New("moderation token missing or invalid")
