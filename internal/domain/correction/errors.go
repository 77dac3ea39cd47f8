package correction

import "errors"

var (
	ErrNotFound        = errors.New("correction not found")
	ErrDuplicateDate   = errors.New("a correction for this date already exists")
	ErrAlreadyReviewed = errors.New("correction already reviewed")
)
