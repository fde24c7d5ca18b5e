package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"job-board-web/internal/controller"
)

const (
	// EmployerHeader selects the employer a request acts as.
	EmployerHeader = "X-Employer-ID"
	// EmployerCookie is read when the header is absent.
	EmployerCookie = "employer_id"
)

// identityMiddleware resolves the acting employer from the header, then the
// cookie, then the configured default, and stores it in the request context.
func identityMiddleware(defaultEmployerID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(EmployerHeader)
		if raw == "" {
			raw, _ = c.Cookie(EmployerCookie)
		}

		identity := controller.EmployerIdentity(defaultEmployerID)
		if raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				c.String(http.StatusBadRequest, "invalid employer id %q", raw)
				c.Abort()
				return
			}
			identity = controller.EmployerIdentity(id)
		}

		c.Request = c.Request.WithContext(controller.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
