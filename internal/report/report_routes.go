package report

import (
	"leaveflow/internal/domain"
	"leaveflow/internal/middleware"
	"leaveflow/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	authChain ...gin.HandlerFunc,
) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(authChain...)
	{
		dashboard.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceDashboard, rbac.ActionRead), handler.Dashboard)
	}

	admin := r.Group("/admin")
	admin.Use(authChain...)
	admin.Use(middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.GET("/leaves", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionReview), handler.ListLeaves)
		admin.GET("/leaves/export",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionExport),
			handler.ExportLeaves,
		)
		admin.GET("/employees", middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead), handler.ListEmployees)
		admin.GET("/employees/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead), handler.GetEmployeeDetail)
	}
}
