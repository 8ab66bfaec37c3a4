package balance

import (
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
	balances := r.Group("/balances")
	balances.Use(authChain...)
	{
		balances.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceBalance, rbac.ActionRead), handler.GetMine)
	}

	admin := r.Group("/admin/balances")
	admin.Use(authChain...)
	{
		admin.PUT("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceBalance, rbac.ActionManage),
			handler.UpdateCapacity,
		)
	}
}
