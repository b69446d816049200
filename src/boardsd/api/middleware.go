package api

import (
	"github.com/bitswalk/boardlist/src/boardsd/api/common"
	"github.com/gin-gonic/gin"
)

// rateLimit returns middleware that rate-limits the boards list endpoints
// per client IP.
func (a *API) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.rateLimiter == nil {
			c.Next()
			return
		}
		if !a.rateLimiter.Allow("ip:" + c.ClientIP()) {
			common.AbortTooManyRequests(c)
			return
		}
		c.Next()
	}
}
