package employee

import (
	"hris-audit/internal/middleware"
	"hris-audit/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	jwtSecret string,
	idempotency gin.HandlerFunc,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(jwtSecret))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.List,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			idempotency,
			handler.Create,
		)

		// Satu-satunya jalur untuk mengubah gaji; selalu tercatat di audit log
		employees.PUT("/:id/salary",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary", "update"),
			handler.SetSalary,
		)

		employees.POST("/:id/salary/raise",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary", "update"),
			idempotency,
			handler.RaiseSalary,
		)
	}

	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware(jwtSecret))
	{
		departments.GET("/:department/employee-count",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.CountByDepartment,
		)
	}
}
