package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(level string, buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	r := gin.New()
	r.Use(NewLogging(logger, level, WithIgnorePath([]string{"/liveness"})))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/liveness", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func perform(r *gin.Engine, path string) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
}

func TestNewLogging(t *testing.T) {
	t.Run("logs every request by default", func(t *testing.T) {
		var buf bytes.Buffer
		r := newTestRouter("all", &buf)

		perform(r, "/ok")

		assert.Contains(t, buf.String(), "GET /ok")
		assert.Contains(t, buf.String(), "status=200")
	})

	t.Run("errors level skips successful requests", func(t *testing.T) {
		var buf bytes.Buffer
		r := newTestRouter("errors", &buf)

		perform(r, "/ok")
		assert.Empty(t, buf.String())

		perform(r, "/broken")
		assert.Contains(t, buf.String(), "GET /broken")
		assert.Contains(t, buf.String(), "status=500")
	})

	t.Run("ignored paths are never logged", func(t *testing.T) {
		var buf bytes.Buffer
		r := newTestRouter("all", &buf)

		perform(r, "/liveness")

		assert.Empty(t, buf.String())
	})
}
