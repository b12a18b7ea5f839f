package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mockapi/internal/service"
)

// parseFloatParams reads required numeric query parameters in order.
// Missing parameters are reported before malformed ones.
func parseFloatParams(c *gin.Context, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	var missing, invalid []string

	for i, name := range names {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			missing = append(missing, name)
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			invalid = append(invalid, name)
			continue
		}
		values[i] = v
	}

	if len(missing) > 0 {
		return nil, service.MissingParamsError(missing...)
	}
	if len(invalid) > 0 {
		return nil, service.InvalidCoordinatesError(invalid...)
	}
	return values, nil
}
