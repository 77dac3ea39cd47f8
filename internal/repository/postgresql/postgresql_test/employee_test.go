package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

var (
	testDB   *database.DB
	testOnce sync.Once
)

func testInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
		if err := database.Migrate(context.Background(), testDB); err != nil {
			panic("Failed to migrate test database: " + err.Error())
		}
	})
}

func setupTestData(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, table := range []string{"attendance", "employees", "users"} {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, repo employee.EmployeeRepository, casual int) employee.Employee {
	t.Helper()
	suffix := time.Now().UnixNano()
	emp, err := repo.Create(ctx, employee.Employee{
		EmployeeCode:       fmt.Sprintf("EMP-%d", suffix),
		FirstName:          "Test",
		LastName:           "Employee",
		Email:              fmt.Sprintf("emp-%d@example.com", suffix),
		Department:         "Engineering",
		Designation:        "Engineer",
		DateOfJoining:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		CasualLeaveBalance: casual,
		IsActive:           true,
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository_DeductLeaveBalance(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	setupTestData(t)

	repo := postgresql.NewEmployeeRepository(testDB)
	emp := createTestEmployee(t, ctx, repo, 5)

	err := repo.DeductLeaveBalance(ctx, emp.ID, "CASUAL", 2)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CasualLeaveBalance)

	// the CHECK constraint rejects a deduction below zero
	err = repo.DeductLeaveBalance(ctx, emp.ID, "CASUAL", 10)
	assert.Error(t, err)

	got, err = repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CasualLeaveBalance)
}

func TestEmployeeRepository_CreditMonthlyAccrual(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	setupTestData(t)

	repo := postgresql.NewEmployeeRepository(testDB)
	emp := createTestEmployee(t, ctx, repo, 5)

	firstOfMonth := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreditMonthlyAccrual(ctx, emp.ID, firstOfMonth))

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.CasualLeaveBalance)
	assert.Equal(t, 1, got.MedicalLeaveBalance)
	require.NotNil(t, got.LastLeaveAccrual)
	assert.True(t, got.LastLeaveAccrual.Equal(firstOfMonth))
}

func TestEmployeeRepository_ListActiveJoinedBefore(t *testing.T) {
	ctx := context.Background()
	testInit(t)
	setupTestData(t)

	repo := postgresql.NewEmployeeRepository(testDB)
	veteran := createTestEmployee(t, ctx, repo, 0)

	suffix := time.Now().UnixNano()
	_, err := repo.Create(ctx, employee.Employee{
		EmployeeCode:  fmt.Sprintf("EMP-NEW-%d", suffix),
		FirstName:     "New",
		LastName:      "Hire",
		Email:         fmt.Sprintf("newhire-%d@example.com", suffix),
		Department:    "Engineering",
		Designation:   "Engineer",
		DateOfJoining: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	})
	require.NoError(t, err)

	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	listed, err := repo.ListActiveJoinedBefore(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, veteran.ID, listed[0].ID)
}
