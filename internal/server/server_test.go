package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/go-softwarelab/common/docs/internal/config"
	"github.com/go-softwarelab/common/docs/internal/site"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress:   "127.0.0.1",
		ServerPort:      0,
		Environment:     "test",
		ShutdownTimeout: time.Second,
		Metrics:         config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	meta, err := site.Load()
	require.NoError(t, err)
	return NewRouter(RouterParams{
		Config: cfg,
		Meta:   meta,
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	h := newTestRouter(t, testConfig())

	tests := []struct {
		name        string
		method      string
		target      string
		status      int
		contentType string
		contains    string
	}{
		{"landing page", http.MethodGet, "/common/", http.StatusOK, "text/html", `<section class="features">`},
		{"stylesheet", http.MethodGet, "/common/static/css/custom.css", http.StatusOK, "text/css", ".featureSvg"},
		{"icon", http.MethodGet, "/common/static/img/simplicity.svg", http.StatusOK, "image/svg+xml", "<svg"},
		{"health", http.MethodGet, "/health", http.StatusOK, "application/json", `"status":"ok"`},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "text/plain", "docsite_page_renders_total"},
		{"unknown page", http.MethodGet, "/common/nope", http.StatusNotFound, "application/json", `"code":"not_found"`},
		{"unknown asset", http.MethodGet, "/common/static/img/missing.svg", http.StatusNotFound, "", ""},
		{"wrong method", http.MethodPost, "/common/", http.StatusMethodNotAllowed, "application/json", ""},
	}

	// Render once so the counter has a sample to export.
	do(h, http.MethodGet, "/common/")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, tt.method, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			if tt.contentType != "" {
				assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), tt.contentType),
					"content type %q", rec.Header().Get("Content-Type"))
			}
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}
}

func TestRootRedirectsToBase(t *testing.T) {
	h := newTestRouter(t, testConfig())

	for _, target := range []string{"/", "/common"} {
		rec := do(h, http.MethodGet, target)
		assert.Equal(t, http.StatusMovedPermanently, rec.Code, target)
		assert.Equal(t, "/common/", rec.Header().Get("Location"), target)
	}
}

func TestHeadLandingPage(t *testing.T) {
	h := newTestRouter(t, testConfig())
	rec := do(h, http.MethodHead, "/common/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	h := newTestRouter(t, cfg)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/metrics").Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.RequestsPerMinute = 2
	h := newTestRouter(t, cfg)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health").Code)

	rec := do(h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "too_many_requests", body["error"]["code"])
}

func TestStartServerLifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	StartServer(lc, http.NotFoundHandler(), testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	lc.RequireStart()
	lc.RequireStop()
}
