package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mockapi/internal/repository"
	"mockapi/internal/service"
)

// timeLayout renders instants as UTC ISO-8601 with milliseconds.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error       string   `json:"error"`
	Fields      []string `json:"fields,omitempty"`
	ValidValues []string `json:"valid_values,omitempty"`
	Allowed     []string `json:"allowed,omitempty"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	resp := ErrorResponse{Error: err.Error()}

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
		resp.ValidValues = verr.Valid
	}

	var merr *service.MethodNotSupportedError
	if errors.As(err, &merr) {
		resp.Allowed = merr.Allowed
		c.Header("Allow", strings.Join(merr.Allowed, ", "))
	}

	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(code, resp)
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrPaymentNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest

	// Wrong verb
	case errors.Is(err, service.ErrMethodNotSupported):
		return http.StatusMethodNotAllowed

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

// MethodNotAllowed answers verbs a simulator route does not serve.
func MethodNotAllowed(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondError(c, &service.MethodNotSupportedError{
			Method:  c.Request.Method,
			Allowed: allowed,
		})
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
