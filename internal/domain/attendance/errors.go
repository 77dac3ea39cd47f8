package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("not clocked in yet")
	ErrAlreadyClockedOut = errors.New("already clocked out")
	ErrOnApprovedLeave   = errors.New("approved leave covers today")
	ErrRecordNotFound    = errors.New("attendance record not found")
)

// OutOfRangeError carries the measured distance and the configured
// radius so the client can render an exact message.
type OutOfRangeError struct {
	DistanceMeters float64
	RadiusMeters   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("you are %.0fm from the office, must be within %dm", e.DistanceMeters, e.RadiusMeters)
}
