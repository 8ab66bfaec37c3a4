package middleware

import (
	"leaveflow/internal/domain"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

func SetCaller(c *gin.Context, caller domain.Caller) {
	c.Set(callerKey, caller)
}

// CallerFrom returns the authenticated caller, or the zero Caller when the
// request did not pass AuthMiddleware. Services reject the zero Caller.
func CallerFrom(c *gin.Context) domain.Caller {
	v, ok := c.Get(callerKey)
	if !ok {
		return domain.Caller{}
	}
	caller, _ := v.(domain.Caller)
	return caller
}
