package middleware

import (
	"math/rand/v2"
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency delays the handler by a uniform duration in [min, max).
// The wait ends early when the client goes away.
func SimulatedLatency(min, max time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		delay := min
		if max > min {
			delay += time.Duration(rand.Int64N(int64(max - min)))
		}

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			c.Next()
		case <-c.Request.Context().Done():
			c.Abort()
		}
	}
}
