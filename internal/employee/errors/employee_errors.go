package employeeerrors

import (
	"hris-audit/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrMissingName = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name is required",
		http.StatusBadRequest,
	)
	ErrMissingSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary is required",
		http.StatusBadRequest,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must not be negative",
		http.StatusBadRequest,
	)
	ErrSalaryTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must not exceed 9999999999.99",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryPrecision = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must have at most two fraction digits",
		http.StatusBadRequest,
	)
	ErrInvalidRaise = apperror.New(
		apperror.CodeInvalidInput,
		"Raise would make the salary negative",
		http.StatusBadRequest,
	)
	ErrMissingPercent = apperror.New(
		apperror.CodeInvalidInput,
		"Percent is required",
		http.StatusBadRequest,
	)
	ErrMissingDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Department is required",
		http.StatusBadRequest,
	)
	ErrInvalidThreshold = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary threshold",
		http.StatusBadRequest,
	)
	ErrMissingFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Either department or min_salary is required",
		http.StatusBadRequest,
	)
	ErrConflictingFilters = apperror.New(
		apperror.CodeInvalidInput,
		"Use either department or min_salary, not both",
		http.StatusBadRequest,
	)
)
