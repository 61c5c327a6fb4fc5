package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterRegister(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Register(NewDomainGroup("a", "/a"), NewDomainGroup("b", "/b"))
	r.Register(NewDomainGroup("c", "/c"))

	assert.Len(t, r.registrars, 3)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	// Test the route was registered
	req := httptest.NewRequest("GET", "/api/v1/test/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("finance", "/finance")
		assert.Equal(t, "finance", g.Name())
		assert.Equal(t, "/finance", g.Prefix())
	})

	t.Run("registers GET route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "items")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/test/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registers POST route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.POST("/items", func(c *gin.Context) {
			c.String(http.StatusCreated, "created")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("POST", "/api/v1/test/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("registers PATCH route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.PATCH("/items/:id", func(c *gin.Context) {
			c.String(http.StatusOK, "patched")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("PATCH", "/api/v1/test/items/123", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("registers DELETE route", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.DELETE("/items/:id", func(c *gin.Context) {
			c.String(http.StatusNoContent, "")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("DELETE", "/api/v1/test/items/123", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("applies middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")

		// Add middleware that sets a header
		g.Use(func(c *gin.Context) {
			c.Header("X-Test-Middleware", "applied")
			c.Next()
		})

		g.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/test/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "applied", w.Header().Get("X-Test-Middleware"))
	})

	t.Run("creates subgroups", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("reports", "/reports")

		vehicles := g.Group("vehicles", "/vehicles")
		vehicles.GET("/expenses", func(c *gin.Context) {
			c.String(http.StatusOK, "vehicle expenses")
		})

		heads := NewDomainGroup("expense heads", "/expense-heads")
		heads.GET("/expenses", func(c *gin.Context) {
			c.String(http.StatusOK, "expense head expenses")
		})
		g.Mount(heads)

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		// Test created subgroup
		req1 := httptest.NewRequest("GET", "/api/v1/reports/vehicles/expenses", nil)
		w1 := httptest.NewRecorder()
		engine.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)
		assert.Equal(t, "vehicle expenses", w1.Body.String())

		// Test mounted subgroup
		req2 := httptest.NewRequest("GET", "/api/v1/reports/expense-heads/expenses", nil)
		w2 := httptest.NewRecorder()
		engine.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusOK, w2.Code)
		assert.Equal(t, "expense head expenses", w2.Body.String())
	})
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	vendors := NewDomainGroup("vendors", "/vendors")
	vendors.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "vendors")
	})

	vehicles := NewDomainGroup("vehicles", "/vehicles")
	vehicles.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "vehicles")
	})

	r.Register(vendors).Register(vehicles)
	r.Setup()

	// Test vendors route
	req1 := httptest.NewRequest("GET", "/api/v1/vendors", nil)
	w1 := httptest.NewRecorder()
	engine.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, "vendors", w1.Body.String())

	// Test vehicles route
	req2 := httptest.NewRequest("GET", "/api/v1/vehicles", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "vehicles", w2.Body.String())
}

func TestChainedMethodCalls(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	g := NewDomainGroup("test", "/test")
	g.GET("/a", func(c *gin.Context) { c.String(http.StatusOK, "a") }).
		POST("/b", func(c *gin.Context) { c.String(http.StatusOK, "b") }).
		PATCH("/c", func(c *gin.Context) { c.String(http.StatusOK, "c") }).
		DELETE("/d", func(c *gin.Context) { c.String(http.StatusOK, "d") })

	r.Register(g).Setup()

	// All routes should be registered
	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/test/a"},
		{"POST", "/api/v1/test/b"},
		{"PATCH", "/api/v1/test/c"},
		{"DELETE", "/api/v1/test/d"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Route %s %s should work", tt.method, tt.path)
	}
}
