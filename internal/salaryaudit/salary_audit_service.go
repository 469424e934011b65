package salaryaudit

import (
	"context"
	"net/http"

	salaryauditerrors "hris-audit/internal/salaryaudit/errors"
	"hris-audit/internal/shared/apperror"
	"hris-audit/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=salary_audit_service.go -destination=mock/salary_audit_service_mock.go -package=mock
type Service interface {
	ListByEmployee(ctx context.Context, employeeID int64) ([]SalaryAuditResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salaryaudit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryaudit.service")
	}
	return &service{repo: repo, logger: l}
}

// ListByEmployee returns the audit trail of one employee in the order the
// changes were applied. Unknown employees have an empty trail.
func (s *service) ListByEmployee(ctx context.Context, employeeID int64) ([]SalaryAuditResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if employeeID <= 0 {
		return nil, salaryauditerrors.ErrInvalidEmployeeID
	}

	log.Debug("list salary audit requested", zap.Int64("employee_id", employeeID))
	entries, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		log.Error("list salary audit failed", zap.Int64("employee_id", employeeID), zap.Error(err))
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "Failed to read salary audit log", http.StatusInternalServerError)
	}

	return mapToListResponse(entries), nil
}

func mapToResponse(entry SalaryAuditLog) SalaryAuditResponse {
	resp := SalaryAuditResponse{
		LogID:      entry.LogID,
		EmployeeID: entry.EmployeeID,
		NewSalary:  entry.NewSalary.StringFixed(2),
		ChangeDate: entry.ChangeDate.UTC(),
	}
	if entry.OldSalary.Valid {
		old := entry.OldSalary.Decimal.StringFixed(2)
		resp.OldSalary = &old
	}
	return resp
}

func mapToListResponse(entries []SalaryAuditLog) []SalaryAuditResponse {
	res := make([]SalaryAuditResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res
}
