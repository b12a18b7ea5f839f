package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
)

// Annotate tags the New Relic transaction with the simulator serving the
// request. It is a no-op when New Relic is disabled.
func Annotate(simulator string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if txn := nrgin.Transaction(c); txn != nil {
			txn.AddAttribute("simulator", simulator)
			if rid := c.GetString(requestIDKey); rid != "" {
				txn.AddAttribute("request_id", rid)
			}
		}

		c.Next()

		if txn := nrgin.Transaction(c); txn != nil {
			for _, err := range c.Errors {
				txn.NoticeError(err.Err)
			}
		}
	}
}
