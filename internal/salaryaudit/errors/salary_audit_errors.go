package salaryauditerrors

import (
	"hris-audit/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
