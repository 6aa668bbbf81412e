package monitor

import (
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// Stats is the snapshot served at /api/monitor/stats.
type Stats struct {
	UptimeSeconds    int64 `json:"uptimeSeconds"`
	TotalRequests    int64 `json:"totalRequests"`
	RequestsInFlight int64 `json:"requestsInFlight"`
	ResponseErrors   int64 `json:"responseErrors"`
}

// Service counts requests as they pass through its Middleware.
type Service struct {
	started  time.Time
	total    atomic.Int64
	inFlight atomic.Int64
	errors   atomic.Int64
}

func NewService() *Service {
	return &Service{started: time.Now()}
}

// Middleware records every request flowing through the router.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.total.Add(1)
		s.inFlight.Add(1)
		defer s.inFlight.Add(-1)

		c.Next()

		if c.Writer.Status() >= 500 {
			s.errors.Add(1)
		}
	}
}

func (s *Service) GetStats() Stats {
	return Stats{
		UptimeSeconds:    int64(time.Since(s.started).Seconds()),
		TotalRequests:    s.total.Load(),
		RequestsInFlight: s.inFlight.Load(),
		ResponseErrors:   s.errors.Load(),
	}
}
