package attendance

import "time"

// SweepAction is what the nightly sweep should do for one employee's
// day row.
type SweepAction int

const (
	SweepNone SweepAction = iota
	SweepCreateHoliday
	SweepCreateUnpaid
	SweepMarkUnpaid
)

// SweepDecision decides the action for a single (employee, day) pair
// given the existing row, if any. The decision is idempotent: applying
// the resulting action and deciding again always yields SweepNone.
//
// A missing row becomes HOLIDAY on Sundays and UNPAID otherwise. An
// existing Sunday row is never touched. A weekday row with a missing
// punch is marked UNPAID; a completed PRESENT day is never downgraded.
func SweepDecision(existing *Attendance, day time.Time) SweepAction {
	sunday := day.Weekday() == time.Sunday

	if existing == nil {
		if sunday {
			return SweepCreateHoliday
		}
		return SweepCreateUnpaid
	}

	if sunday {
		return SweepNone
	}

	switch existing.Status {
	case StatusUnpaid, StatusOnLeave, StatusHoliday:
		return SweepNone
	}

	if existing.ClockIn == nil || existing.ClockOut == nil {
		return SweepMarkUnpaid
	}
	return SweepNone
}

// BackfillAction is what the leave back-fill should do for one day in
// an approved range.
type BackfillAction int

const (
	BackfillNone BackfillAction = iota
	BackfillCreateOnLeave
	BackfillMarkOnLeave
)

// BackfillDecision decides whether a day inside an approved leave range
// gets an ON_LEAVE row. Sundays stay HOLIDAY and a PRESENT row is
// authoritative: presence evidence always wins over a later approval.
func BackfillDecision(existing *Attendance, day time.Time) BackfillAction {
	if day.Weekday() == time.Sunday {
		return BackfillNone
	}
	if existing == nil {
		return BackfillCreateOnLeave
	}
	if existing.Status == StatusPresent {
		return BackfillNone
	}
	if existing.Status == StatusOnLeave {
		return BackfillNone
	}
	return BackfillMarkOnLeave
}
