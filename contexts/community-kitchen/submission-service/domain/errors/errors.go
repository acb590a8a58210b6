package errors

import "errors"

var (
	ErrInvalidDraft         = errors.New("draft is missing required fields")
	ErrPersonalInfoDetected = errors.New("draft looks like it contains personal info")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrDuplicateSubmission  = errors.New("submission id already exists")
	ErrConfirmationRequired = errors.New("explicit confirmation is required")
	ErrUnauthorized         = errors.New("moderation token is missing or invalid")
)
