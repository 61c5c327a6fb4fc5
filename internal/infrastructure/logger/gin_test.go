package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newLoggedRouter(core zapcore.Core) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(GinRequestIDKey, "req-42")
	})
	router.Use(GinMiddleware(zap.New(core)))
	return router
}

func httpEntries(recorded *observer.ObservedLogs) []observer.LoggedEntry {
	return recorded.FilterMessage("HTTP Request").All()
}

func TestGinMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{"success is info", http.StatusOK, zapcore.InfoLevel},
		{"client error is warn", http.StatusNotFound, zapcore.WarnLevel},
		{"server error is error", http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, recorded := observer.New(zapcore.DebugLevel)
			router := newLoggedRouter(core)
			router.GET("/vendors", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/vendors?page=2", nil))

			entries := httpEntries(recorded)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, "req-42", fields["request_id"])
			assert.Equal(t, http.MethodGet, fields["method"])
			assert.Equal(t, "/vendors", fields["path"])
			assert.Equal(t, "page=2", fields["query"])
			assert.EqualValues(t, tt.status, fields["status"])
		})
	}
}

func TestGinMiddleware_RequestScopedLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	router := newLoggedRouter(core)
	router.GET("/x", func(c *gin.Context) {
		GetGinLogger(c).Info("from gin context")
		FromContext(c.Request.Context()).Info("from request context")
		assert.Equal(t, "req-42", GetRequestID(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	tagged := recorded.FilterField(zap.String("request_id", "req-42")).All()
	assert.Len(t, tagged, 3)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.ErrorLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entries := recorded.FilterMessage("Panic recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestGetGinLogger_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, GetGinLogger(c))
}
