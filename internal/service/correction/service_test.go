package correction

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/correction"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
	auditService "github.com/peoplecore/hrm-backend-go/internal/service/audit"
)

var (
	correctionTestDB   *database.DB
	correctionTestOnce sync.Once
)

func correctionTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	correctionTestOnce.Do(func() {
		var err error
		correctionTestDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
		if err := database.Migrate(context.Background(), correctionTestDB); err != nil {
			panic("Failed to migrate test database: " + err.Error())
		}
	})
}

func truncateCorrectionTables(t *testing.T, ctx context.Context) {
	t.Helper()
	tables := []string{"audit_logs", "attendance_corrections", "attendance", "employees", "users"}
	for _, table := range tables {
		_, err := correctionTestDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createCorrectionTestReviewer(t *testing.T, ctx context.Context) string {
	t.Helper()
	var userID string
	username := fmt.Sprintf("hr-%d", time.Now().UnixNano())
	err := correctionTestDB.QueryRow(ctx, `
		INSERT INTO users (id, username, password, role)
		VALUES (gen_random_uuid(), $1, 'x', 'HR')
		RETURNING id
	`, username).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createCorrectionTestEmployee(t *testing.T, ctx context.Context) string {
	t.Helper()
	var employeeID string
	suffix := time.Now().UnixNano()
	err := correctionTestDB.QueryRow(ctx, `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, email,
			department, designation, monthly_salary, date_of_joining
		)
		VALUES (
			gen_random_uuid(), $1, 'Test', 'Employee', $2,
			'Engineering', 'Engineer', 50000, '2020-01-01'
		)
		RETURNING id
	`, fmt.Sprintf("EMP-%d", suffix), fmt.Sprintf("emp-%d@example.com", suffix)).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

// createCorrectionTestAttendance seeds a day row with a clock-in and no
// clock-out, the usual forgotten-punch case.
func createCorrectionTestAttendance(t *testing.T, ctx context.Context, employeeID string, date time.Time) string {
	t.Helper()
	var id string
	err := correctionTestDB.QueryRow(ctx, `
		INSERT INTO attendance (id, employee_id, date, clock_in, status)
		VALUES (gen_random_uuid(), $1, $2, $3, 'PRESENT')
		RETURNING id
	`, employeeID, date, date.Add(9*time.Hour)).Scan(&id)
	require.NoError(t, err)
	return id
}

func newCorrectionTestService() correction.CorrectionService {
	correctionRepo := postgresql.NewCorrectionRepository(correctionTestDB)
	attendanceRepo := postgresql.NewAttendanceRepository(correctionTestDB)
	auditor := auditService.NewRecorder(postgresql.NewAuditLogRepository(correctionTestDB))
	return NewCorrectionService(correctionTestDB, correctionRepo, attendanceRepo, auditor)
}

func TestCorrectionService_Submit_DuplicateDate(t *testing.T) {
	ctx := context.Background()
	correctionTestInit(t)
	truncateCorrectionTables(t, ctx)

	employeeID := createCorrectionTestEmployee(t, ctx)
	svc := newCorrectionTestService()

	date := time.Now().UTC().AddDate(0, 0, -3).Format("2006-01-02")
	punch := date + " 18:00:00"

	_, err := svc.Submit(ctx, correction.SubmitRequest{
		EmployeeID:        employeeID,
		Date:              date,
		RequestedClockOut: &punch,
		Reason:            "forgot to clock out",
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, correction.SubmitRequest{
		EmployeeID:        employeeID,
		Date:              date,
		RequestedClockOut: &punch,
		Reason:            "trying again",
	})
	assert.ErrorIs(t, err, correction.ErrDuplicateDate)
}

func TestCorrectionService_Review_ApproveAppliesPunches(t *testing.T) {
	ctx := context.Background()
	correctionTestInit(t)
	truncateCorrectionTables(t, ctx)

	reviewerID := createCorrectionTestReviewer(t, ctx)
	employeeID := createCorrectionTestEmployee(t, ctx)
	svc := newCorrectionTestService()

	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -3)
	createCorrectionTestAttendance(t, ctx, employeeID, day)

	dateStr := day.Format("2006-01-02")
	punch := dateStr + " 18:00:00"
	submitted, err := svc.Submit(ctx, correction.SubmitRequest{
		EmployeeID:        employeeID,
		Date:              dateStr,
		RequestedClockOut: &punch,
		Reason:            "forgot to clock out",
	})
	require.NoError(t, err)

	reviewed, err := svc.Review(ctx, correction.ReviewRequest{
		CorrectionID: submitted.ID,
		ReviewerID:   reviewerID,
		Status:       "APPROVED",
	})
	require.NoError(t, err)
	assert.Equal(t, correction.StatusApproved, reviewed.Status)

	// the requested punch landed on the day row, the existing clock-in
	// survived, and the status is PRESENT
	var clockIn, clockOut *time.Time
	var status string
	err = correctionTestDB.QueryRow(ctx, `
		SELECT clock_in, clock_out, status FROM attendance
		WHERE employee_id = $1 AND date = $2
	`, employeeID, day).Scan(&clockIn, &clockOut, &status)
	require.NoError(t, err)
	assert.NotNil(t, clockIn)
	require.NotNil(t, clockOut)
	assert.Equal(t, string(attendance.StatusPresent), status)
	assert.Equal(t, 18, clockOut.UTC().Hour())
}

func TestCorrectionService_Review_MissingAttendanceRow(t *testing.T) {
	ctx := context.Background()
	correctionTestInit(t)
	truncateCorrectionTables(t, ctx)

	reviewerID := createCorrectionTestReviewer(t, ctx)
	employeeID := createCorrectionTestEmployee(t, ctx)
	svc := newCorrectionTestService()

	date := time.Now().UTC().AddDate(0, 0, -3).Format("2006-01-02")
	punch := date + " 09:00:00"
	submitted, err := svc.Submit(ctx, correction.SubmitRequest{
		EmployeeID:       employeeID,
		Date:             date,
		RequestedClockIn: &punch,
		Reason:           "row never created",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, correction.ReviewRequest{
		CorrectionID: submitted.ID,
		ReviewerID:   reviewerID,
		Status:       "APPROVED",
	})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestCorrectionService_Review_AlreadyReviewed(t *testing.T) {
	ctx := context.Background()
	correctionTestInit(t)
	truncateCorrectionTables(t, ctx)

	reviewerID := createCorrectionTestReviewer(t, ctx)
	employeeID := createCorrectionTestEmployee(t, ctx)
	svc := newCorrectionTestService()

	date := time.Now().UTC().AddDate(0, 0, -3).Format("2006-01-02")
	punch := date + " 18:00:00"
	submitted, err := svc.Submit(ctx, correction.SubmitRequest{
		EmployeeID:        employeeID,
		Date:              date,
		RequestedClockOut: &punch,
		Reason:            "forgot to clock out",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, correction.ReviewRequest{
		CorrectionID: submitted.ID,
		ReviewerID:   reviewerID,
		Status:       "REJECTED",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, correction.ReviewRequest{
		CorrectionID: submitted.ID,
		ReviewerID:   reviewerID,
		Status:       "APPROVED",
	})
	assert.ErrorIs(t, err, correction.ErrAlreadyReviewed)
}
