package salaryaudit_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"hris-audit/internal/salaryaudit"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (salaryaudit.Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return salaryaudit.NewRepository(gdb), db, mock
}

func TestSalaryAuditRepository_RecordChange(t *testing.T) {
	repo, db, mock := setupRepoTest(t)
	changedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "salary_audit_log" (.+) RETURNING "log_id"`).
		WillReturnRows(sqlmock.NewRows([]string{"log_id"}).AddRow(int64(12)))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	entry := &salaryaudit.SalaryAuditLog{
		EmployeeID: 1,
		OldSalary:  decimal.NewNullDecimal(decimal.RequireFromString("50000")),
		NewSalary:  decimal.RequireFromString("55000"),
		ChangeDate: changedAt,
	}
	err = repo.WithTx(tx).RecordChange(context.Background(), entry)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), entry.LogID)
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryAuditRepository_LatestChangeDate(t *testing.T) {
	t.Run("has entries", func(t *testing.T) {
		repo, _, mock := setupRepoTest(t)
		latest := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT MAX\(change_date\) FROM "salary_audit_log" WHERE employee_id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(latest))

		got, ok, err := repo.LatestChangeDate(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, latest.Equal(got))
	})

	t.Run("no entries", func(t *testing.T) {
		repo, _, mock := setupRepoTest(t)

		mock.ExpectQuery(`SELECT MAX\(change_date\) FROM "salary_audit_log"`).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

		_, ok, err := repo.LatestChangeDate(context.Background(), 2)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSalaryAuditRepository_FindByEmployee(t *testing.T) {
	repo, _, mock := setupRepoTest(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "salary_audit_log" WHERE employee_id = \$1 ORDER BY log_id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"log_id", "employee_id", "old_salary", "new_salary", "change_date"}).
			AddRow(int64(1), int64(1), "50000.00", "55000.00", now).
			AddRow(int64(2), int64(1), "55000.00", "60000.00", now.Add(time.Second)))

	entries, err := repo.FindByEmployee(context.Background(), 1)

	assert.NoError(t, err)
	if assert.Len(t, entries, 2) {
		assert.Equal(t, int64(1), entries[0].LogID)
		assert.True(t, entries[1].OldSalary.Valid)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
