package salaryaudit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hris-audit/internal/salaryaudit"
	salaryauditerrors "hris-audit/internal/salaryaudit/errors"
	salaryauditMock "hris-audit/internal/salaryaudit/mock"
	"hris-audit/internal/shared/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSalaryAuditService_ListByEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("entries in insertion order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := salaryauditMock.NewMockRepository(ctrl)
		svc := salaryaudit.NewService(repo)

		first := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().FindByEmployee(ctx, int64(1)).Return([]salaryaudit.SalaryAuditLog{
			{
				LogID:      1,
				EmployeeID: 1,
				OldSalary:  decimal.NewNullDecimal(decimal.RequireFromString("50000")),
				NewSalary:  decimal.RequireFromString("55000"),
				ChangeDate: first,
			},
			{
				LogID:      2,
				EmployeeID: 1,
				OldSalary:  decimal.NewNullDecimal(decimal.RequireFromString("55000")),
				NewSalary:  decimal.RequireFromString("60000.5"),
				ChangeDate: first.Add(time.Hour),
			},
		}, nil)

		resp, err := svc.ListByEmployee(ctx, 1)

		assert.NoError(t, err)
		if assert.Len(t, resp, 2) {
			assert.Equal(t, int64(1), resp[0].LogID)
			assert.Equal(t, "50000.00", *resp[0].OldSalary)
			assert.Equal(t, "55000.00", resp[0].NewSalary)
			assert.Equal(t, "60000.50", resp[1].NewSalary)
			assert.False(t, resp[1].ChangeDate.Before(resp[0].ChangeDate))
		}
	})

	t.Run("unknown employee has an empty trail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := salaryauditMock.NewMockRepository(ctrl)
		svc := salaryaudit.NewService(repo)

		repo.EXPECT().FindByEmployee(ctx, int64(999)).Return(nil, nil)

		resp, err := svc.ListByEmployee(ctx, 999)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := salaryaudit.NewService(salaryauditMock.NewMockRepository(ctrl))

		_, err := svc.ListByEmployee(ctx, -1)

		assert.ErrorIs(t, err, salaryauditerrors.ErrInvalidEmployeeID)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := salaryauditMock.NewMockRepository(ctrl)
		svc := salaryaudit.NewService(repo)

		repo.EXPECT().FindByEmployee(ctx, int64(1)).Return(nil, errors.New("db error"))

		_, err := svc.ListByEmployee(ctx, 1)

		assert.Equal(t, apperror.CodeInternalError, apperror.CodeOf(err))
	})
}
