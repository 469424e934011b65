package salaryaudit

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
) {
	audit := r.Group("/employees/:id/salary-audit")
	audit.Use(middleware.AuthMiddleware(jwtSecret))
	{
		audit.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "audit", "read"),
			handler.ListByEmployee,
		)
	}
}
