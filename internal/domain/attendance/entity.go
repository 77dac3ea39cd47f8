package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusUnpaid  Status = "UNPAID"
	StatusOnLeave Status = "ON_LEAVE"
	StatusHoliday Status = "HOLIDAY"
)

// Attendance is the single row per (employee, day); the uniqueness
// constraint on (employee_id, date) is what serializes duplicate
// clock-in races.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	ClockIn     *time.Time
	ClockOut    *time.Time
	ClockInLat  *float64
	ClockInLng  *float64
	ClockOutLat *float64
	ClockOutLng *float64
	IPAddress   *string
	Status      Status
	CreatedAt   time.Time

	// joined for history views
	CorrectionStatus *string
}

// MonthlySummary is a derived view over attendance rows; it is never
// stored.
type MonthlySummary struct {
	WorkingDays int `json:"workingDays"`
	PresentDays int `json:"presentDays"`
	AbsentDays  int `json:"absentDays"`
	LeaveDays   int `json:"leaveDays"`
}

// WorkingDaysBetween counts non-Sunday calendar days in [start, end].
func WorkingDaysBetween(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			days++
		}
	}
	return days
}
