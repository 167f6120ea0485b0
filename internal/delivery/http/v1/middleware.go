package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// unmatchedRoute labels requests that matched no route,
// so that arbitrary paths never become metric labels.
const unmatchedRoute = "unmatched"

// HandleRequestContext attaches a request ID and a logger
// carrying it to the request context.
func (h *handlerImpl) HandleRequestContext(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	logger := h.logger.With().
		Str("request_id", requestID).
		Logger()
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
	c.Next()
}

func (h *handlerImpl) HandleAccessLog(c *gin.Context) {
	start := h.now()
	c.Next()
	elapsed := h.now().Sub(start)

	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	status := c.Writer.Status()

	if h.metrics != nil {
		h.metrics.Observe(c.Request.Method, route, status, elapsed)
	}

	logger := h.requestLogger(c)
	var event *zerolog.Event
	switch {
	case status >= http.StatusInternalServerError:
		event = logger.Error()
	case status >= http.StatusBadRequest:
		event = logger.Warn()
	default:
		event = logger.Info()
	}
	event.
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("route", route).
		Int("status", status).
		Dur("latency", elapsed).
		Str("client_ip", c.ClientIP()).
		Msg("handled request")
}

// HandleRecovery answers a recovered panic with a generic
// server error. The panic value is only logged.
func (h *handlerImpl) HandleRecovery(c *gin.Context, recovered any) {
	h.requestLogger(c).Error().
		Interface("panic", recovered).
		Str("path", c.Request.URL.Path).
		Msg("recovered from panic")
	abort(c, newStatusTextError(http.StatusInternalServerError))
}

func (h *handlerImpl) HandleNoRoute(c *gin.Context) {
	abort(c, newNotFoundError(msgRouteNotFound))
}

func (h *handlerImpl) requestLogger(c *gin.Context) *zerolog.Logger {
	logger := zerolog.Ctx(c.Request.Context())
	if logger.GetLevel() == zerolog.Disabled {
		return &h.logger
	}
	return logger
}
