package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindPaymentBody binds a JSON initiation body into req and returns the raw
// bytes kept on the payment record. An empty body leaves req zero-valued so
// the service can name every missing field.
func bindPaymentBody(c *gin.Context, req any) ([]byte, bool) {
	err := c.ShouldBindBodyWith(req, binding.JSON)

	var raw []byte
	cached, read := c.Get(gin.BodyBytesKey)
	if read {
		raw, _ = cached.([]byte)
	}

	if err != nil && (!read || len(raw) > 0) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return nil, false
	}
	return raw, true
}
