package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit builds a fixed-window per-client-IP limiter middleware.
// Every call gets its own in-memory store so the windows of different
// route groups never interfere.
func RateLimit(limit int64, window time.Duration) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: window,
		Limit:  limit,
	}
	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}
