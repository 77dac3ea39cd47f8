package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance day rows.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetByEmployeeAndDateForUpdate locks the day row; must run inside a
	// transaction carried by ctx.
	GetByEmployeeAndDateForUpdate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetClockOut records the clock-out punch on an existing row.
	SetClockOut(ctx context.Context, id string, clockOut time.Time, lat, lng float64) (Attendance, error)

	// SetStatus flips only the status column (sweep, leave back-fill).
	SetStatus(ctx context.Context, id string, status Status) error

	// ApplyCorrection overwrites the punches and forces PRESENT.
	ApplyCorrection(ctx context.Context, id string, clockIn, clockOut *time.Time) error

	History(ctx context.Context, employeeID string, page, limit int) ([]Attendance, int64, error)

	// CountByStatus aggregates rows per status within [start, end].
	CountByStatus(ctx context.Context, employeeID string, start, end time.Time) (map[Status]int, error)

	// CountPresentInMonth feeds payroll generation.
	CountPresentInMonth(ctx context.Context, employeeID string, month, year int) (int, error)

	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time, employeeIDs []string) ([]Attendance, error)
}
