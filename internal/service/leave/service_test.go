package leave

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
	auditService "github.com/peoplecore/hrm-backend-go/internal/service/audit"
)

var (
	leaveTestDB   *database.DB
	leaveTestOnce sync.Once
)

func leaveTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	leaveTestOnce.Do(func() {
		var err error
		leaveTestDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
		if err := database.Migrate(context.Background(), leaveTestDB); err != nil {
			panic("Failed to migrate test database: " + err.Error())
		}
	})
}

func truncateLeaveTables(t *testing.T, ctx context.Context) {
	t.Helper()
	tables := []string{"audit_logs", "attendance", "leave_requests", "employees", "users"}
	for _, table := range tables {
		_, err := leaveTestDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createLeaveTestReviewer(t *testing.T, ctx context.Context) string {
	t.Helper()
	var userID string
	username := fmt.Sprintf("reviewer-%d", time.Now().UnixNano())
	err := leaveTestDB.QueryRow(ctx, `
		INSERT INTO users (id, username, password, role)
		VALUES (gen_random_uuid(), $1, 'x', 'HR')
		RETURNING id
	`, username).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createLeaveTestEmployee(t *testing.T, ctx context.Context, casual, medical int) string {
	t.Helper()
	var employeeID string
	suffix := time.Now().UnixNano()
	err := leaveTestDB.QueryRow(ctx, `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, email,
			department, designation, monthly_salary, date_of_joining,
			casual_leave_balance, medical_leave_balance, earned_leave_balance
		)
		VALUES (
			gen_random_uuid(), $1, 'Test', 'Employee', $2,
			'Engineering', 'Engineer', 50000, '2020-01-01',
			$3, $4, 0
		)
		RETURNING id
	`, fmt.Sprintf("EMP-%d", suffix), fmt.Sprintf("emp-%d@example.com", suffix), casual, medical).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func newLeaveTestService() leave.LeaveService {
	leaveRepo := postgresql.NewLeaveRequestRepository(leaveTestDB)
	employeeRepo := postgresql.NewEmployeeRepository(leaveTestDB)
	attendanceRepo := postgresql.NewAttendanceRepository(leaveTestDB)
	auditor := auditService.NewRecorder(postgresql.NewAuditLogRepository(leaveTestDB))
	return NewLeaveService(leaveTestDB, leaveRepo, employeeRepo, attendanceRepo, auditor)
}

// leaveTestRange picks a short range on the 10th of next month, which
// always sits inside the request window.
func leaveTestRange(days int) (string, string, time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 9)
	end := start.AddDate(0, 0, days-1)
	return start.Format("2006-01-02"), end.Format("2006-01-02"), start, end
}

func TestLeaveService_Submit_CreatesPending(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 5, 5)
	svc := newLeaveTestService()

	startStr, endStr, _, _ := leaveTestRange(2)
	request, err := svc.Submit(ctx, leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  "CASUAL",
		StartDate:  startStr,
		EndDate:    endStr,
		Reason:     "family visit",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, request.Status)
	assert.Equal(t, 2, request.Days)
}

func TestLeaveService_Submit_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 1, 5)
	svc := newLeaveTestService()

	startStr, endStr, _, _ := leaveTestRange(3)
	_, err := svc.Submit(ctx, leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  "CASUAL",
		StartDate:  startStr,
		EndDate:    endStr,
		Reason:     "long trip",
	})

	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestLeaveService_Submit_Overlapping(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 5, 5)
	svc := newLeaveTestService()

	startStr, endStr, _, _ := leaveTestRange(2)
	_, err := svc.Submit(ctx, leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  "CASUAL",
		StartDate:  startStr,
		EndDate:    endStr,
		Reason:     "first request",
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  "UNPAID",
		StartDate:  startStr,
		EndDate:    endStr,
		Reason:     "second request",
	})
	assert.ErrorIs(t, err, leave.ErrOverlapping)
}

func TestLeaveService_Review_ApproveDeductsAndBackfills(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	reviewerID := createLeaveTestReviewer(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, 5, 5)
	svc := newLeaveTestService()

	startStr, endStr, start, end := leaveTestRange(2)
	request, err := svc.Submit(ctx, leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  "CASUAL",
		StartDate:  startStr,
		EndDate:    endStr,
		Reason:     "family visit",
	})
	require.NoError(t, err)

	reviewed, err := svc.Review(ctx, leave.ReviewRequest{
		RequestID:  request.ID,
		ReviewerID: reviewerID,
		Status:     "APPROVED",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, reviewed.Status)

	var balance int
	err = leaveTestDB.QueryRow(ctx,
		"SELECT casual_leave_balance FROM employees WHERE id = $1", employeeID,
	).Scan(&balance)
	require.NoError(t, err)
	assert.Equal(t, 3, balance)

	// every non-Sunday day in the range gets an ON_LEAVE row
	expected := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			expected++
		}
	}
	var onLeave int
	err = leaveTestDB.QueryRow(ctx, `
		SELECT COUNT(*) FROM attendance
		WHERE employee_id = $1 AND status = $2 AND date BETWEEN $3 AND $4
	`, employeeID, attendance.StatusOnLeave, start, end).Scan(&onLeave)
	require.NoError(t, err)
	assert.Equal(t, expected, onLeave)
}

func TestLeaveService_Review_ApprovedIsTerminal(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	reviewerID := createLeaveTestReviewer(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, 5, 5)
	svc := newLeaveTestService()

	startStr, endStr, _, _ := leaveTestRange(1)
	request, err := svc.Submit(ctx, leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  "CASUAL",
		StartDate:  startStr,
		EndDate:    endStr,
		Reason:     "family visit",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, leave.ReviewRequest{
		RequestID:  request.ID,
		ReviewerID: reviewerID,
		Status:     "APPROVED",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, leave.ReviewRequest{
		RequestID:  request.ID,
		ReviewerID: reviewerID,
		Status:     "REJECTED",
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyApproved)

	// the balance was deducted exactly once
	var balance int
	err = leaveTestDB.QueryRow(ctx,
		"SELECT casual_leave_balance FROM employees WHERE id = $1", employeeID,
	).Scan(&balance)
	require.NoError(t, err)
	assert.Equal(t, 4, balance)
}

func TestLeaveService_Review_ConcurrentApproval(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	reviewerID := createLeaveTestReviewer(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, 5, 5)
	svc := newLeaveTestService()

	startStr, endStr, _, _ := leaveTestRange(2)
	request, err := svc.Submit(ctx, leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  "CASUAL",
		StartDate:  startStr,
		EndDate:    endStr,
		Reason:     "family visit",
	})
	require.NoError(t, err)

	// two reviewers race to approve the same PENDING request; the
	// request row lock serializes them, the loser sees APPROVED
	start := make(chan struct{})
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Review(ctx, leave.ReviewRequest{
				RequestID:  request.ID,
				ReviewerID: reviewerID,
				Status:     "APPROVED",
			})
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	var approved, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			approved++
		case errors.Is(err, leave.ErrAlreadyApproved):
			conflicted++
		default:
			t.Fatalf("unexpected review error: %v", err)
		}
	}
	assert.Equal(t, 1, approved)
	assert.Equal(t, 1, conflicted)

	// exactly one deduction despite the race
	var balance int
	err = leaveTestDB.QueryRow(ctx,
		"SELECT casual_leave_balance FROM employees WHERE id = $1", employeeID,
	).Scan(&balance)
	require.NoError(t, err)
	assert.Equal(t, 3, balance)
}

func TestLeaveService_Review_RejectKeepsBalance(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	reviewerID := createLeaveTestReviewer(t, ctx)
	employeeID := createLeaveTestEmployee(t, ctx, 5, 5)
	svc := newLeaveTestService()

	startStr, endStr, _, _ := leaveTestRange(2)
	request, err := svc.Submit(ctx, leave.SubmitRequest{
		EmployeeID: employeeID,
		LeaveType:  "MEDICAL",
		StartDate:  startStr,
		EndDate:    endStr,
		Reason:     "doctor visit",
	})
	require.NoError(t, err)

	reviewed, err := svc.Review(ctx, leave.ReviewRequest{
		RequestID:  request.ID,
		ReviewerID: reviewerID,
		Status:     "REJECTED",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, reviewed.Status)

	var balance int
	err = leaveTestDB.QueryRow(ctx,
		"SELECT medical_leave_balance FROM employees WHERE id = $1", employeeID,
	).Scan(&balance)
	require.NoError(t, err)
	assert.Equal(t, 5, balance)
}
