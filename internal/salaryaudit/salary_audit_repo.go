package salaryaudit

import (
	"context"
	"database/sql"
	"time"

	"hris-audit/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_audit_repo.go -destination=mock/salary_audit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	RecordChange(ctx context.Context, entry *SalaryAuditLog) error
	LatestChangeDate(ctx context.Context, employeeID int64) (time.Time, bool, error)
	FindByEmployee(ctx context.Context, employeeID int64) ([]SalaryAuditLog, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// RecordChange appends entry and fills in the log id assigned by the database.
func (r *repository) RecordChange(ctx context.Context, entry *SalaryAuditLog) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(entry).Error
}

func (r *repository) LatestChangeDate(ctx context.Context, employeeID int64) (time.Time, bool, error) {
	var latest sql.NullTime
	err := dbtx.Conn(ctx, r.db, r.tx).
		Model(&SalaryAuditLog{}).
		Select("MAX(change_date)").
		Where("employee_id = ?", employeeID).
		Scan(&latest).Error
	if err != nil {
		return time.Time{}, false, err
	}
	return latest.Time, latest.Valid, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID int64) ([]SalaryAuditLog, error) {
	var entries []SalaryAuditLog
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("employee_id = ?", employeeID).
		Order("log_id ASC").
		Find(&entries).Error
	return entries, err
}
