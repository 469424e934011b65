package employee

import (
	"context"
	"database/sql"

	"hris-audit/internal/shared/dbtx"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository has no general-purpose update: salaries change only through
// UpdateSalary, which the service calls inside the audited transaction.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*Employee, error)
	UpdateSalary(ctx context.Context, id int64, salary decimal.Decimal) error
	FindByDepartment(ctx context.Context, department string) ([]Employee, error)
	FindAboveSalary(ctx context.Context, threshold decimal.Decimal) ([]Employee, error)
	CountByDepartment(ctx context.Context, department string) (int64, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := dbtx.Conn(ctx, r.db, r.tx).First(&empl, "id = ?", id).Error
	return &empl, err
}

// FindByIDForUpdate locks the row until the surrounding transaction ends, so
// concurrent salary changes to one employee are applied one after another.
func (r *repository) FindByIDForUpdate(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) UpdateSalary(ctx context.Context, id int64, salary decimal.Decimal) error {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("salary", salary)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByDepartment(ctx context.Context, department string) ([]Employee, error) {
	var empls []Employee
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("department = ?", department).
		Order("id ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindAboveSalary(ctx context.Context, threshold decimal.Decimal) ([]Employee, error) {
	var empls []Employee
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("salary >= ?", threshold).
		Order("salary DESC").
		Order("id ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) CountByDepartment(ctx context.Context, department string) (int64, error) {
	var count int64
	err := dbtx.Conn(ctx, r.db, r.tx).
		Model(&Employee{}).
		Where("department = ?", department).
		Count(&count).Error
	return count, err
}
