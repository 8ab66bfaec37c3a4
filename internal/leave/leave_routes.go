package leave

import (
	"time"

	"leaveflow/internal/middleware"
	"leaveflow/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const submitIdempotencyTTL = 24 * time.Hour

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	authChain ...gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	leaves.Use(authChain...)
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionRead), handler.GetMine)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionRead), handler.GetByID)
		leaves.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionCreate),
			middleware.Idempotency(rdb, submitIdempotencyTTL),
			handler.Submit,
		)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionCancel), handler.Cancel)
	}

	admin := r.Group("/admin/leaves")
	admin.Use(authChain...)
	{
		admin.POST("/:id/approve",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionApprove),
			handler.Approve,
		)
		admin.POST("/:id/reject",
			middleware.RateLimitByUser(5, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLeave, rbac.ActionApprove),
			handler.Reject,
		)
	}
}
