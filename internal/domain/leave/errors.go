package leave

import "errors"

var (
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrInvalidRange        = errors.New("end date must not be before start date")
	ErrOutOfWindow         = errors.New("leave must fall within the current or next calendar month")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrOverlapping         = errors.New("overlapping leave request exists")
	ErrAlreadyApproved     = errors.New("leave already approved")
)
