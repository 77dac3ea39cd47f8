package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

func cronAccrualBalances(t *testing.T, ctx context.Context, employeeID string) (casual, medical int) {
	t.Helper()
	err := cronTestDB.QueryRow(ctx,
		"SELECT casual_leave_balance, medical_leave_balance FROM employees WHERE id = $1",
		employeeID,
	).Scan(&casual, &medical)
	require.NoError(t, err)
	return casual, medical
}

func TestAccrualJobs_CreditDueOncePerMonth(t *testing.T) {
	ctx := context.Background()
	cronTestInit(t)
	truncateCronTables(t, ctx)

	owedID := createCronTestEmployee(t, ctx, "2020-01-01")
	creditedID := createCronTestEmployee(t, ctx, "2020-01-01")

	firstOfMonth := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	// creditedID already carries this month's stamp
	_, err := cronTestDB.Exec(ctx,
		"UPDATE employees SET last_leave_accrual = $2 WHERE id = $1",
		creditedID, firstOfMonth,
	)
	require.NoError(t, err)

	jobs := NewAccrualJobs(postgresql.NewEmployeeRepository(cronTestDB))

	// the job ticks hourly all day on the 1st; every pass after the
	// first must be a no-op per employee
	for i := 0; i < 3; i++ {
		require.NoError(t, jobs.creditDue(ctx, firstOfMonth))
	}

	casual, medical := cronAccrualBalances(t, ctx, owedID)
	assert.Equal(t, 1, casual)
	assert.Equal(t, 1, medical)

	casual, medical = cronAccrualBalances(t, ctx, creditedID)
	assert.Equal(t, 0, casual)
	assert.Equal(t, 0, medical)
}

func TestAccrualJobs_CreditDueNextMonth(t *testing.T) {
	ctx := context.Background()
	cronTestInit(t)
	truncateCronTables(t, ctx)

	employeeID := createCronTestEmployee(t, ctx, "2020-01-01")
	jobs := NewAccrualJobs(postgresql.NewEmployeeRepository(cronTestDB))

	august := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	september := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, jobs.creditDue(ctx, august))
	require.NoError(t, jobs.creditDue(ctx, september))

	casual, medical := cronAccrualBalances(t, ctx, employeeID)
	assert.Equal(t, 2, casual)
	assert.Equal(t, 2, medical)
}
