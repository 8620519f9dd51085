package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith-ai/docsmith/internal/api"
	"github.com/docsmith-ai/docsmith/internal/config"
	"github.com/docsmith-ai/docsmith/internal/deck"
	"github.com/docsmith-ai/docsmith/internal/llm"
	"github.com/docsmith-ai/docsmith/internal/logger"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	h := api.NewHandler(llm.PlaceholderClient{}, deck.NewAssembler(log), log)
	cfg := config.Config{
		Port:            "8000",
		Env:             "test",
		CORSAllowOrigin: []string{"http://localhost:5173"},
	}
	return NewRouter(cfg, log, h)
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func TestRootRoute(t *testing.T) {
	r := newRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	// A client-provided id is echoed back.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/export-document", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnconfiguredLLMReturnsServerError(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-section",
		jsonBody(`{"topic":"T","sectionTitle":"S","docType":"pptx"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORSConfigWildcard(t *testing.T) {
	cfg := config.Config{CORSAllowOrigin: []string{"http://localhost:5173", "*"}}
	corsCfg := corsConfig(cfg)
	assert.True(t, corsCfg.AllowAllOrigins)
	assert.False(t, corsCfg.AllowCredentials)
	assert.Empty(t, corsCfg.AllowOrigins)
}

func TestNewHTTPServer(t *testing.T) {
	srv := NewHTTPServer(config.Config{Port: "9090"}, newRouter(t))
	require.NotNil(t, srv)
	assert.Equal(t, ":9090", srv.Addr)
}
