package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	g "maragu.dev/gomponents"

	"github.com/go-softwarelab/common/docs/internal/apperror"
	"github.com/go-softwarelab/common/docs/internal/components"
	"github.com/go-softwarelab/common/docs/internal/logger"
	"github.com/go-softwarelab/common/docs/internal/metrics"
	"github.com/go-softwarelab/common/docs/internal/site"
	"github.com/go-softwarelab/common/docs/internal/tracing"
	"github.com/go-softwarelab/common/docs/internal/version"
)

const landingPage = "landing"

// Pages serves the rendered site pages.
type Pages struct {
	meta site.Meta
	log  *slog.Logger
}

// NewPages creates the page handlers
func NewPages(meta site.Meta, log *slog.Logger) *Pages {
	return &Pages{
		meta: meta,
		log:  log.With(logger.Scope("handlers")),
	}
}

// LandingPage handles GET on the site root
func (p *Pages) LandingPage(w http.ResponseWriter, r *http.Request) error {
	return p.render(w, r, landingPage, components.LandingPage(p.meta))
}

// render buffers the whole page so a failing render never leaves a
// half-written 200 response behind.
func (p *Pages) render(w http.ResponseWriter, r *http.Request, page string, node g.Node) error {
	_, span := tracing.Start(r.Context(), "page.render", attribute.String("docsite.page", page))
	defer span.End()

	start := time.Now()
	var buf bytes.Buffer
	err := node.Render(&buf)
	metrics.ObserveRender(page, err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		return apperror.ErrInternal.WithInternal(fmt.Errorf("render %s page: %w", page, err))
	}

	span.SetAttributes(attribute.Int("docsite.bytes", buf.Len()))
	p.log.Debug("page rendered", slog.String("page", page), slog.Int("bytes", buf.Len()))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return nil
	}
	_, _ = w.Write(buf.Bytes())
	return nil
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health returns a simple health check
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:  "ok",
		Version: version.Version,
	})
}
