package cron

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/config"
	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

var (
	cronTestDB   *database.DB
	cronTestOnce sync.Once
)

func cronTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cronTestOnce.Do(func() {
		var err error
		cronTestDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
		if err := database.Migrate(context.Background(), cronTestDB); err != nil {
			panic("Failed to migrate test database: " + err.Error())
		}
	})
}

func truncateCronTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"attendance", "employees", "users"} {
		_, err := cronTestDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createCronTestEmployee(t *testing.T, ctx context.Context, joined string) string {
	t.Helper()
	var employeeID string
	suffix := time.Now().UnixNano()
	err := cronTestDB.QueryRow(ctx, `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, email,
			department, designation, monthly_salary, date_of_joining
		)
		VALUES (
			gen_random_uuid(), $1, 'Test', 'Employee', $2,
			'Engineering', 'Engineer', 50000, $3
		)
		RETURNING id
	`, fmt.Sprintf("EMP-%d", suffix), fmt.Sprintf("emp-%d@example.com", suffix), joined).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func cronSweepStatus(t *testing.T, ctx context.Context, employeeID string, day time.Time) string {
	t.Helper()
	var status string
	err := cronTestDB.QueryRow(ctx,
		"SELECT status FROM attendance WHERE employee_id = $1 AND date = $2",
		employeeID, day,
	).Scan(&status)
	require.NoError(t, err)
	return status
}

func TestAttendanceJobs_MarkUnpaidSweep(t *testing.T) {
	ctx := context.Background()
	cronTestInit(t)
	truncateCronTables(t, ctx)

	now := time.Now()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	sunday := yesterday.Weekday() == time.Sunday

	// absent: no row for yesterday at all
	absentID := createCronTestEmployee(t, ctx, "2020-01-01")
	// forgot to clock out: a PRESENT row with only a clock-in
	forgotID := createCronTestEmployee(t, ctx, "2020-01-01")
	_, err := cronTestDB.Exec(ctx, `
		INSERT INTO attendance (id, employee_id, date, clock_in, status)
		VALUES (gen_random_uuid(), $1, $2, $3, 'PRESENT')
	`, forgotID, yesterday, yesterday.Add(9*time.Hour))
	require.NoError(t, err)
	// joined after the swept day, must be skipped entirely
	newHireID := createCronTestEmployee(t, ctx, now.AddDate(0, 0, 5).Format("2006-01-02"))

	jobs := NewAttendanceJobs(
		postgresql.NewAttendanceRepository(cronTestDB),
		postgresql.NewEmployeeRepository(cronTestDB),
		config.JobsConfig{SweepHour: now.Hour()},
	)

	require.NoError(t, jobs.MarkUnpaidSweep(ctx))

	if sunday {
		assert.Equal(t, string(attendance.StatusHoliday), cronSweepStatus(t, ctx, absentID, yesterday))
		assert.Equal(t, string(attendance.StatusPresent), cronSweepStatus(t, ctx, forgotID, yesterday))
	} else {
		assert.Equal(t, string(attendance.StatusUnpaid), cronSweepStatus(t, ctx, absentID, yesterday))
		assert.Equal(t, string(attendance.StatusUnpaid), cronSweepStatus(t, ctx, forgotID, yesterday))
	}

	var newHireRows int
	err = cronTestDB.QueryRow(ctx,
		"SELECT COUNT(*) FROM attendance WHERE employee_id = $1", newHireID,
	).Scan(&newHireRows)
	require.NoError(t, err)
	assert.Equal(t, 0, newHireRows)

	// a second run must not create duplicates or flip anything back
	require.NoError(t, jobs.MarkUnpaidSweep(ctx))

	var total int
	err = cronTestDB.QueryRow(ctx,
		"SELECT COUNT(*) FROM attendance WHERE date = $1", yesterday,
	).Scan(&total)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestAttendanceJobs_MarkUnpaidSweep_OffHour(t *testing.T) {
	ctx := context.Background()
	cronTestInit(t)
	truncateCronTables(t, ctx)

	createCronTestEmployee(t, ctx, "2020-01-01")

	jobs := NewAttendanceJobs(
		postgresql.NewAttendanceRepository(cronTestDB),
		postgresql.NewEmployeeRepository(cronTestDB),
		config.JobsConfig{SweepHour: (time.Now().Hour() + 1) % 24},
	)

	require.NoError(t, jobs.MarkUnpaidSweep(ctx))

	var total int
	err := cronTestDB.QueryRow(ctx, "SELECT COUNT(*) FROM attendance").Scan(&total)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
