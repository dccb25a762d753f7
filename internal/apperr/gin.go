package apperr

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPErrorsTotal tracks HTTP errors by error type
	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total HTTP errors by error type",
		},
		[]string{"type"},
	)
)

// Abort converts err to its HTTP representation, writes the JSON error body,
// and aborts the gin handler chain. Internal errors are logged with their cause;
// client errors are only counted.
func Abort(c *gin.Context, err error) {
	appErr := From(err)

	HTTPErrorsTotal.WithLabelValues(string(appErr.Type)).Inc()

	if appErr.Type == TypeInternal {
		slog.Error("Request failed",
			"error", appErr.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("request_id"),
		)
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
}
