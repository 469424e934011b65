package employee

import (
	"net/http"
	"strconv"
	"strings"

	employeeerrors "hris-audit/internal/employee/errors"
	"hris-audit/internal/shared/apperror"
	"hris-audit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	h.logger.Warn("http employee validation failed", zap.String("path", c.FullPath()), zap.Error(err))
	h.writeServiceError(c, apperror.MapValidationError(err))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}
	h.logger.Debug("http get employee by id", zap.Int64("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// List serves GET /employees?department=IT and GET /employees?min_salary=55000.
// Results are paginated only when page_size is given.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	department := strings.TrimSpace(c.Query("department"))
	minSalary := strings.TrimSpace(c.Query("min_salary"))

	var (
		resp []EmployeeResponse
		err  error
	)
	switch {
	case department != "" && minSalary != "":
		h.writeServiceError(c, employeeerrors.ErrConflictingFilters)
		return
	case department != "":
		resp, err = h.service.ListByDepartment(ctx, department)
	case minSalary != "":
		threshold, parseErr := decimal.NewFromString(minSalary)
		if parseErr != nil {
			h.writeServiceError(c, employeeerrors.ErrInvalidThreshold)
			return
		}
		resp, err = h.service.ListAboveSalary(ctx, threshold)
	default:
		h.writeServiceError(c, employeeerrors.ErrMissingFilter)
		return
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if c.Query("page_size") != "" {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.Query("page_size"))
		items, meta := response.Paginate(resp, page, pageSize)
		response.Success(c, http.StatusOK, items, &meta)
		return
	}

	meta := response.NewPaginationMeta(int64(len(resp)), 0, 0)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) CountByDepartment(c *gin.Context) {
	department := c.Param("department")

	count, err := h.service.CountByDepartment(c.Request.Context(), department)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, DepartmentCountResponse{Department: department, Count: count}, nil)
}

func (h *Handler) SetSalary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}

	var req SetSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.SetSalary(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RaiseSalary(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}

	var req RaiseSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.RaiseSalary(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
