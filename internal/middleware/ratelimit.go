package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stewartjane/packet-core/internal/pkg/response"
)

const (
	loginLimitMax    = 10
	loginLimitWindow = time.Minute
)

// LoginRateLimit returns a middleware that caps login attempts per IP using a
// fixed Redis window. It guards the shared-secret check against brute force;
// with no Redis configured it is a no-op.
func LoginRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		window := time.Now().Unix() / int64(loginLimitWindow.Seconds())
		key := fmt.Sprintf("pk:login_limit:%s:%d", ip, window)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis trouble must not lock admins out.
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, loginLimitWindow+time.Second)
		}

		if count > loginLimitMax {
			c.Header("Retry-After", "60")
			response.TooManyRequests(c, "too many login attempts, try again later")
			return
		}

		c.Next()
	}
}
