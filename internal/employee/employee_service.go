package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	employeeerrors "hris-audit/internal/employee/errors"
	"hris-audit/internal/events"
	"hris-audit/internal/metrics"
	"hris-audit/internal/salaryaudit"
	"hris-audit/internal/shared/apperror"
	"hris-audit/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DepartmentEmployeesKeyPrefix = "employees:department:"
	DefaultDepartmentCacheTTL    = time.Hour

	reasonSet   = "set"
	reasonRaise = "raise"
)

var hundred = decimal.NewFromInt(100)

// maxSalary is the largest value a NUMERIC(12,2) column holds.
var maxSalary = decimal.RequireFromString("9999999999.99")

// nowFunc is the clock used for audit timestamps.
var nowFunc = time.Now

func GetDepartmentEmployeesKey(department string) string {
	return DepartmentEmployeesKeyPrefix + department
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	SetSalary(ctx context.Context, id int64, req SetSalaryRequest) (SalaryChangeResponse, error)
	RaiseSalary(ctx context.Context, id int64, req RaiseSalaryRequest) (SalaryChangeResponse, error)
	ListByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error)
	ListAboveSalary(ctx context.Context, threshold decimal.Decimal) ([]EmployeeResponse, error)
	CountByDepartment(ctx context.Context, department string) (int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  salaryaudit.Repository
	events EventPublisher
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	auditRepo salaryaudit.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithEvents(db, repo, auditRepo, nil, rdb, DefaultDepartmentCacheTTL, logger...)
}

func NewServiceWithEvents(
	db *sql.DB,
	repo Repository,
	auditRepo salaryaudit.Repository,
	publisher EventPublisher,
	rdb *redis.Client,
	cacheTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultDepartmentCacheTTL
	}
	return &service{
		db:     db,
		repo:   repo,
		audit:  auditRepo,
		events: publisher,
		rdb:    rdb,
		ttl:    cacheTTL,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	name := strings.TrimSpace(req.Name)
	department := strings.TrimSpace(req.Department)

	log.Debug("create employee requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("department", department),
	)

	if name == "" {
		return EmployeeResponse{}, employeeerrors.ErrMissingName
	}
	if req.Salary == nil {
		return EmployeeResponse{}, employeeerrors.ErrMissingSalary
	}
	if err := validateSalary(*req.Salary); err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		Name:       name,
		Salary:     *req.Salary,
		Department: stringPtr(department),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, apperror.TransactionFailed(err, "Employee could not be created")
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		if mapped := mapRepositoryError(err); mapped != err {
			return EmployeeResponse{}, mapped
		}
		return EmployeeResponse{}, apperror.TransactionFailed(err, "Employee could not be created")
	}

	if err := tx.Commit(); err != nil {
		log.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, apperror.TransactionFailed(err, "Employee could not be created")
	}

	s.invalidateDepartmentCache(ctx, empl.Department)

	log.Info("create employee success", zap.Int64("employee_id", empl.ID))
	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if id <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	log.Debug("get employee by id requested", zap.Int64("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		if mapped != employeeerrors.ErrEmployeeNotFound {
			log.Error("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		}
		return EmployeeResponse{}, mapped
	}

	return mapToResponse(*empl), nil
}

// SetSalary replaces the salary of one employee and returns the previous
// value. A change writes exactly one audit entry in the same transaction;
// setting the current value again writes nothing.
func (s *service) SetSalary(ctx context.Context, id int64, req SetSalaryRequest) (SalaryChangeResponse, error) {
	if id <= 0 {
		return SalaryChangeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if req.Salary == nil {
		return SalaryChangeResponse{}, employeeerrors.ErrMissingSalary
	}
	newSalary := *req.Salary
	if err := validateSalary(newSalary); err != nil {
		return SalaryChangeResponse{}, err
	}

	return s.changeSalary(ctx, id, reasonSet, func(decimal.Decimal) (decimal.Decimal, error) {
		return newSalary, nil
	})
}

// RaiseSalary applies a percentage change to the current salary, rounded to
// two fraction digits, through the same audited path as SetSalary.
func (s *service) RaiseSalary(ctx context.Context, id int64, req RaiseSalaryRequest) (SalaryChangeResponse, error) {
	if id <= 0 {
		return SalaryChangeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if req.Percent == nil {
		return SalaryChangeResponse{}, employeeerrors.ErrMissingPercent
	}
	factor := decimal.NewFromInt(1).Add(req.Percent.Div(hundred))

	return s.changeSalary(ctx, id, reasonRaise, func(current decimal.Decimal) (decimal.Decimal, error) {
		raised := current.Mul(factor).Round(2)
		if raised.IsNegative() {
			return decimal.Decimal{}, employeeerrors.ErrInvalidRaise
		}
		if raised.GreaterThan(maxSalary) {
			return decimal.Decimal{}, employeeerrors.ErrSalaryTooLarge
		}
		return raised, nil
	})
}

func (s *service) changeSalary(
	ctx context.Context,
	id int64,
	reason string,
	next func(current decimal.Decimal) (decimal.Decimal, error),
) (SalaryChangeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.Int64("employee_id", id),
		zap.String("reason", reason),
	)
	rid := contextutil.GetRequestID(ctx)
	log.Debug("salary change requested", zap.String("request_id", rid))

	fail := func(kind string, err error) (SalaryChangeResponse, error) {
		metrics.SalaryChangeFailuresTotal.WithLabelValues(kind).Inc()
		log.Error("salary change failed", zap.String("stage", kind), zap.Error(err))
		return SalaryChangeResponse{}, apperror.TransactionFailed(err, "Salary change could not be committed")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fail("begin", err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if mapped := mapRepositoryError(err); errors.Is(mapped, employeeerrors.ErrEmployeeNotFound) {
			log.Warn("salary change employee not found")
			return SalaryChangeResponse{}, mapped
		}
		return fail("lock", err)
	}

	previous := empl.Salary
	newSalary, err := next(previous)
	if err != nil {
		return SalaryChangeResponse{}, err
	}

	resp := SalaryChangeResponse{
		EmployeeID:     id,
		PreviousSalary: previous.StringFixed(2),
		NewSalary:      newSalary.StringFixed(2),
	}

	if previous.Equal(newSalary) {
		if err := tx.Commit(); err != nil {
			return fail("commit", err)
		}
		metrics.SalaryNoopUpdatesTotal.Inc()
		log.Info("salary unchanged, no audit entry written")
		return resp, nil
	}

	if err := qtx.UpdateSalary(ctx, id, newSalary); err != nil {
		if mapped := mapRepositoryError(err); mapped != err {
			log.Warn("salary change rejected by store", zap.Error(err))
			return SalaryChangeResponse{}, mapped
		}
		return fail("update", err)
	}

	auditRepo := s.audit.WithTx(tx)
	changedAt := nowFunc().UTC()
	latest, ok, err := auditRepo.LatestChangeDate(ctx, id)
	if err != nil {
		return fail("audit", err)
	}
	if ok && latest.After(changedAt) {
		// Keep the per-employee trail non-decreasing even if the clock stepped back.
		changedAt = latest
	}

	entry := &salaryaudit.SalaryAuditLog{
		EmployeeID: id,
		OldSalary:  decimal.NewNullDecimal(previous),
		NewSalary:  newSalary,
		ChangeDate: changedAt,
	}
	if err := auditRepo.RecordChange(ctx, entry); err != nil {
		return fail("audit", err)
	}

	if err := s.events.PublishSalaryChanged(ctx, tx, events.SalaryChangedEvent{
		EventType:  events.SalaryChangedEventType,
		RequestID:  rid,
		EmployeeID: id,
		AuditLogID: entry.LogID,
		OldSalary:  resp.PreviousSalary,
		NewSalary:  resp.NewSalary,
		Reason:     reason,
		OccurredAt: changedAt,
	}); err != nil {
		return fail("outbox", err)
	}

	if err := tx.Commit(); err != nil {
		return fail("commit", err)
	}

	s.invalidateDepartmentCache(ctx, empl.Department)
	metrics.SalaryChangesTotal.WithLabelValues(reason).Inc()

	resp.Changed = true
	resp.AuditLogID = &entry.LogID
	log.Info("salary change committed",
		zap.Int64("audit_log_id", entry.LogID),
		zap.String("old_salary", resp.PreviousSalary),
		zap.String("new_salary", resp.NewSalary),
	)
	return resp, nil
}

func (s *service) ListByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, employeeerrors.ErrMissingDepartment
	}
	cacheKey := GetDepartmentEmployeesKey(department)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Satu query per departemen walau banyak request bersamaan
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindByDepartment(ctx, department)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, s.ttl).Err(); err != nil {
					s.logger.Warn("cache department employees failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("list employees by department failed", zap.String("department", department), zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

// ListAboveSalary returns employees earning at least threshold, highest salary
// first; equal salaries are ordered by id.
func (s *service) ListAboveSalary(ctx context.Context, threshold decimal.Decimal) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("list employees above salary requested", zap.String("threshold", threshold.String()))

	empls, err := s.repo.FindAboveSalary(ctx, threshold)
	if err != nil {
		log.Error("list employees above salary failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) CountByDepartment(ctx context.Context, department string) (int64, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return 0, employeeerrors.ErrMissingDepartment
	}

	count, err := s.repo.CountByDepartment(ctx, department)
	if err != nil {
		s.logger.Error("count employees by department failed", zap.String("department", department), zap.Error(err))
		return 0, mapRepositoryError(err)
	}
	return count, nil
}

func (s *service) invalidateDepartmentCache(ctx context.Context, department *string) {
	if s.rdb == nil || department == nil {
		return
	}
	cacheKey := GetDepartmentEmployeesKey(*department)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department employees cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func validateSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		return employeeerrors.ErrInvalidSalary
	}
	if salary.GreaterThan(maxSalary) {
		return employeeerrors.ErrSalaryTooLarge
	}
	if !salary.Equal(salary.Truncate(2)) {
		return employeeerrors.ErrInvalidSalaryPrecision
	}
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:     empl.ID,
		Name:   empl.Name,
		Salary: empl.Salary.StringFixed(2),
	}
	if empl.Department != nil {
		resp.Department = *empl.Department
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func stringPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
