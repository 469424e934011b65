package employee

import (
	"errors"

	employeeerrors "hris-audit/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgCheckViolation         = "23514"
	pgNumericValueOutOfRange = "22003"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNumericValueOutOfRange:
			return employeeerrors.ErrSalaryTooLarge
		case pgCheckViolation:
			switch pgErr.ConstraintName {
			case "employees_name_check":
				return employeeerrors.ErrMissingName
			case "employees_salary_check":
				return employeeerrors.ErrInvalidSalary
			}
		}
	}

	return err
}
