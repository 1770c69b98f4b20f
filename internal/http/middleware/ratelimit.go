package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/yungbote/repurpose-backend/internal/http/response"
	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

// RateLimit is a fixed-window per-IP limiter backed by redis. The window is
// one minute. Redis being down fails open; generation should not stop
// because the limiter store is unreachable.
func RateLimit(rdb *redis.Client, log *logger.Logger, maxPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || maxPerMinute <= 0 {
			c.Next()
			return
		}

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), window)

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warn("rate limiter unavailable, allowing request", "error", err.Error())
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, time.Minute)
		}

		if count > int64(maxPerMinute) {
			response.RespondError(c, http.StatusTooManyRequests, "rate_limited",
				errors.New("too many requests, slow down"))
			c.Abort()
			return
		}
		c.Next()
	}
}
