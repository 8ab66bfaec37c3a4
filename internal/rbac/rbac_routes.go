package rbac

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authChain ...gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(authChain...)
	{
		group.POST("/enforce", handler.Enforce)
	}
}
