package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	monday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
)

func presentRow(clockIn, clockOut bool) *Attendance {
	row := &Attendance{Status: StatusPresent}
	now := time.Now()
	if clockIn {
		row.ClockIn = &now
	}
	if clockOut {
		row.ClockOut = &now
	}
	return row
}

func TestSweepDecision(t *testing.T) {
	cases := []struct {
		name     string
		existing *Attendance
		day      time.Time
		want     SweepAction
	}{
		{"missing weekday row", nil, monday, SweepCreateUnpaid},
		{"missing sunday row", nil, sunday, SweepCreateHoliday},
		{"existing sunday row untouched", &Attendance{Status: StatusHoliday}, sunday, SweepNone},
		{"complete present day kept", presentRow(true, true), monday, SweepNone},
		{"missing clock-out", presentRow(true, false), monday, SweepMarkUnpaid},
		{"missing both punches", presentRow(false, false), monday, SweepMarkUnpaid},
		{"already unpaid", &Attendance{Status: StatusUnpaid}, monday, SweepNone},
		{"approved leave day kept", &Attendance{Status: StatusOnLeave}, monday, SweepNone},
		{"holiday row on weekday kept", &Attendance{Status: StatusHoliday}, monday, SweepNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SweepDecision(c.existing, c.day))
		})
	}
}

// Applying the decided action and deciding again must be a no-op.
func TestSweepDecisionIdempotent(t *testing.T) {
	apply := func(existing *Attendance, action SweepAction) *Attendance {
		switch action {
		case SweepCreateHoliday:
			return &Attendance{Status: StatusHoliday}
		case SweepCreateUnpaid:
			return &Attendance{Status: StatusUnpaid}
		case SweepMarkUnpaid:
			next := *existing
			next.Status = StatusUnpaid
			return &next
		}
		return existing
	}

	for _, day := range []time.Time{monday, sunday} {
		for _, existing := range []*Attendance{nil, presentRow(true, false), presentRow(true, true)} {
			first := SweepDecision(existing, day)
			after := apply(existing, first)
			assert.Equal(t, SweepNone, SweepDecision(after, day), "day %v", day)
		}
	}
}

func TestBackfillDecision(t *testing.T) {
	cases := []struct {
		name     string
		existing *Attendance
		day      time.Time
		want     BackfillAction
	}{
		{"sunday stays holiday", nil, sunday, BackfillNone},
		{"missing weekday row", nil, monday, BackfillCreateOnLeave},
		{"present wins over approval", presentRow(true, true), monday, BackfillNone},
		{"unpaid becomes on leave", &Attendance{Status: StatusUnpaid}, monday, BackfillMarkOnLeave},
		{"already on leave", &Attendance{Status: StatusOnLeave}, monday, BackfillNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, BackfillDecision(c.existing, c.day))
		})
	}
}

func TestWorkingDaysBetween(t *testing.T) {
	// March 2025: 31 days, Sundays on 2, 9, 16, 23, 30.
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 26, WorkingDaysBetween(start, end))

	// single Sunday
	assert.Equal(t, 0, WorkingDaysBetween(sunday, sunday))

	// inverted window counts nothing
	assert.Equal(t, 0, WorkingDaysBetween(end, start))
}
