package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hris-audit/internal/employee"
	employeeerrors "hris-audit/internal/employee/errors"
	employeeMock "hris-audit/internal/employee/mock"
	"hris-audit/internal/shared/apperror"
	"hris-audit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	h := employee.NewHandler(svc)
	r := gin.New()
	r.POST("/employees", h.Create)
	r.GET("/employees", h.List)
	r.GET("/employees/:id", h.GetByID)
	r.PUT("/employees/:id/salary", h.SetSalary)
	r.POST("/employees/:id/salary/raise", h.RaiseSalary)
	r.GET("/departments/:department/employee-count", h.CountByDepartment)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (response.ApiEnvelope, map[string]any) {
	t.Helper()
	var env response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	errBody, _ := env.Error.(map[string]any)
	return env, errBody
}

func TestEmployeeHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("success", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Alice", req.Name)
				assert.Equal(t, "50000", req.Salary.String())
				return employee.EmployeeResponse{ID: 1, Name: "Alice", Salary: "50000.00", Department: "IT"}, nil
			})

		w := doRequest(setupRouter(svc), http.MethodPost, "/employees", `{"name":"Alice","salary":50000,"department":"IT"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":1`)
		assert.Contains(t, w.Body.String(), `"salary":"50000.00"`)
	})

	t.Run("missing salary", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)

		w := doRequest(setupRouter(svc), http.MethodPost, "/employees", `{"name":"Alice"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		_, errBody := decodeEnvelope(t, w)
		assert.Equal(t, apperror.CodeInvalidInput, errBody["code"])
		assert.Equal(t, "Salary is required", errBody["message"])
	})

	t.Run("service validation error", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(employee.EmployeeResponse{}, employeeerrors.ErrInvalidSalary)

		w := doRequest(setupRouter(svc), http.MethodPost, "/employees", `{"name":"Alice","salary":-1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Salary must not be negative")
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("success", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), int64(1)).Return(employee.EmployeeResponse{ID: 1, Name: "Alice", Salary: "50000.00"}, nil)

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Alice")
	})

	t.Run("not found", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().GetByID(gomock.Any(), int64(999)).Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees/999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		_, errBody := decodeEnvelope(t, w)
		assert.Equal(t, apperror.CodeNotFound, errBody["code"])
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("by department", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().ListByDepartment(gomock.Any(), "IT").Return([]employee.EmployeeResponse{
			{ID: 1, Name: "Alice"}, {ID: 3, Name: "Carol"},
		}, nil)

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees?department=IT", "")

		assert.Equal(t, http.StatusOK, w.Code)
		env, _ := decodeEnvelope(t, w)
		if assert.NotNil(t, env.Meta) {
			assert.Equal(t, int64(2), env.Meta.Total)
		}
	})

	t.Run("by minimum salary", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().
			ListAboveSalary(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, threshold decimal.Decimal) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, "55000", threshold.String())
				return []employee.EmployeeResponse{{ID: 3, Salary: "70000.00"}, {ID: 1, Salary: "55000.00"}}, nil
			})

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees?min_salary=55000", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Less(t, strings.Index(w.Body.String(), "70000.00"), strings.Index(w.Body.String(), "55000.00"))
	})

	t.Run("paginated", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().ListByDepartment(gomock.Any(), "IT").Return([]employee.EmployeeResponse{
			{ID: 1}, {ID: 2}, {ID: 3},
		}, nil)

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees?department=IT&page=2&page_size=2", "")

		assert.Equal(t, http.StatusOK, w.Code)
		env, _ := decodeEnvelope(t, w)
		if assert.NotNil(t, env.Meta) {
			assert.Equal(t, int64(3), env.Meta.Total)
			assert.Equal(t, 2, env.Meta.TotalPages)
		}
		items, _ := env.Data.([]any)
		assert.Len(t, items, 1)
	})

	t.Run("invalid threshold", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees?min_salary=lots", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing filter", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Either department or min_salary is required")
	})

	t.Run("both filters", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees?department=IT&min_salary=55000", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "not both")
	})

	t.Run("huge page number", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().ListByDepartment(gomock.Any(), "IT").Return([]employee.EmployeeResponse{
			{ID: 1}, {ID: 2}, {ID: 3},
		}, nil)

		w := doRequest(setupRouter(svc), http.MethodGet, "/employees?department=IT&page=922337203685477581&page_size=10", "")

		assert.Equal(t, http.StatusOK, w.Code)
		env, _ := decodeEnvelope(t, w)
		items, _ := env.Data.([]any)
		assert.Empty(t, items)
	})
}

func TestEmployeeHandler_CountByDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	svc.EXPECT().CountByDepartment(gomock.Any(), "IT").Return(int64(2), nil)

	w := doRequest(setupRouter(svc), http.MethodGet, "/departments/IT/employee-count", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestEmployeeHandler_SetSalary(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("success", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		logID := int64(1)
		svc.EXPECT().
			SetSalary(gomock.Any(), int64(1), gomock.Any()).
			Return(employee.SalaryChangeResponse{
				EmployeeID:     1,
				PreviousSalary: "50000.00",
				NewSalary:      "55000.00",
				Changed:        true,
				AuditLogID:     &logID,
			}, nil)

		w := doRequest(setupRouter(svc), http.MethodPut, "/employees/1/salary", `{"salary":"55000"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"previous_salary":"50000.00"`)
		assert.Contains(t, w.Body.String(), `"audit_log_id":1`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().
			SetSalary(gomock.Any(), int64(999), gomock.Any()).
			Return(employee.SalaryChangeResponse{}, employeeerrors.ErrEmployeeNotFound)

		w := doRequest(setupRouter(svc), http.MethodPut, "/employees/999/salary", `{"salary":70000}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("transaction failure", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)
		svc.EXPECT().
			SetSalary(gomock.Any(), int64(1), gomock.Any()).
			Return(employee.SalaryChangeResponse{}, apperror.TransactionFailed(errors.New("audit insert failed"), "Salary change could not be committed"))

		w := doRequest(setupRouter(svc), http.MethodPut, "/employees/1/salary", `{"salary":51000}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		_, errBody := decodeEnvelope(t, w)
		assert.Equal(t, apperror.CodeTransactionFailed, errBody["code"])
	})

	t.Run("missing body field", func(t *testing.T) {
		svc := employeeMock.NewMockService(ctrl)

		w := doRequest(setupRouter(svc), http.MethodPut, "/employees/1/salary", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_RaiseSalary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	svc.EXPECT().
		RaiseSalary(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req employee.RaiseSalaryRequest) (employee.SalaryChangeResponse, error) {
			assert.Equal(t, "10", req.Percent.String())
			return employee.SalaryChangeResponse{EmployeeID: 1, PreviousSalary: "50000.00", NewSalary: "55000.00", Changed: true}, nil
		})

	w := doRequest(setupRouter(svc), http.MethodPost, "/employees/1/salary/raise", `{"percent":10}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"new_salary":"55000.00"`)
}
