package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func corsRouter(cfg CORSConfig) *gin.Engine {
	router := gin.New()
	router.Use(CORSWithConfig(cfg))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestCORSWithConfig(t *testing.T) {
	t.Run("default config sets no CORS headers", func(t *testing.T) {
		router := corsRouter(DefaultCORSConfig())

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://malicious.com")
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allows whitelisted origins", func(t *testing.T) {
		router := corsRouter(CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://example.com"},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		})

		for _, origin := range []string{"http://localhost:3000", "http://example.com"} {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", origin)
			w := serve(router, req)

			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
		}
	})

	t.Run("rejects origin outside the whitelist", func(t *testing.T) {
		router := corsRouter(CORSConfig{AllowOrigins: []string{"http://allowed.com"}})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://other.com")
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard never allows credentials", func(t *testing.T) {
		router := corsRouter(CORSConfig{AllowOrigins: []string{"*"}, AllowCredentials: true})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://any.com")
		w := serve(router, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight answers 204", func(t *testing.T) {
		cfg := DefaultCORSConfig()
		cfg.AllowOrigins = []string{"http://localhost:3000"}
		router := corsRouter(cfg)

		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := serve(router, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
		assert.Equal(t, RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("preflight from unknown origin answers 204 without headers", func(t *testing.T) {
		router := corsRouter(DefaultCORSConfig())

		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", "http://some-origin.com")
		w := serve(router, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates request ID", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "test-request-id")
		w := serve(router, req)

		assert.Equal(t, "test-request-id", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "test-request-id", w.Body.String())
	})

	t.Run("replaces an oversized request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
		w := serve(router, req)

		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	})
}

func TestSecureWithConfig(t *testing.T) {
	secureRouter := func(cfg SecurityConfig) *gin.Engine {
		router := gin.New()
		router.Use(SecureWithConfig(cfg))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
		return router
	}

	t.Run("default configuration", func(t *testing.T) {
		w := serve(secureRouter(DefaultSecurityConfig()), httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
		assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	})

	t.Run("HSTS enabled", func(t *testing.T) {
		cfg := SecurityConfig{HSTSEnabled: true, HSTSMaxAge: 63072000, HSTSIncludeSubdomains: true}
		w := serve(secureRouter(cfg), httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, "max-age=63072000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
		assert.Empty(t, w.Header().Get("Content-Security-Policy"))
	})

	t.Run("HSTS without subdomains", func(t *testing.T) {
		cfg := SecurityConfig{HSTSEnabled: true, HSTSMaxAge: 31536000}
		w := serve(secureRouter(cfg), httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, "max-age=31536000", w.Header().Get("Strict-Transport-Security"))
	})
}

func TestTimeout(t *testing.T) {
	t.Run("sets a deadline on the request context", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(time.Second))
		var deadline time.Time
		var ok bool
		router.GET("/test", func(c *gin.Context) {
			deadline, ok = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))

		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
	})

	t.Run("zero timeout leaves the context alone", func(t *testing.T) {
		router := gin.New()
		router.Use(Timeout(0))
		var ok bool
		router.GET("/test", func(c *gin.Context) {
			_, ok = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		serve(router, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.False(t, ok)
	})
}
