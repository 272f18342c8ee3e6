// Package export writes the site as a tree of static files, ready to be
// served by any plain file host.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	g "maragu.dev/gomponents"

	"github.com/go-softwarelab/common/docs/internal/assets"
	"github.com/go-softwarelab/common/docs/internal/components"
	"github.com/go-softwarelab/common/docs/internal/logger"
	"github.com/go-softwarelab/common/docs/internal/metrics"
	"github.com/go-softwarelab/common/docs/internal/site"
	"github.com/go-softwarelab/common/docs/internal/tracing"
)

const (
	indexFile = "index.html"
	staticDir = "static"

	defaultConcurrency = 4
)

// ErrNoOutputDir is returned when Run is called without a destination.
var ErrNoOutputDir = errors.New("export: output directory is required")

// Options control a single export run.
type Options struct {
	OutputDir string
	// Concurrency caps the number of files written at once; <= 0 uses a default.
	Concurrency int
	Log         *slog.Logger
}

// Result describes what an export wrote.
type Result struct {
	OutputDir string
	// Files are slash-separated paths relative to OutputDir, sorted.
	Files    []string
	Bytes    int64
	Duration time.Duration
}

type job struct {
	rel   string
	write func(io.Writer) error
}

// Run renders the landing page to index.html and copies the embedded
// static tree under static/. Each file is replaced atomically, so a
// failed run leaves previously exported files intact.
func Run(ctx context.Context, meta site.Meta, opts Options) (Result, error) {
	if opts.OutputDir == "" {
		return Result{}, ErrNoOutputDir
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Scope("export"))

	ctx, span := tracing.Start(ctx, "export.Run", attribute.String("docsite.out_dir", opts.OutputDir))
	defer span.End()

	start := time.Now()

	jobs, err := plan(meta)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	var (
		mu    sync.Mutex
		total int64
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for _, j := range jobs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			n, err := writeFile(filepath.Join(opts.OutputDir, filepath.FromSlash(j.rel)), j.write)
			if err != nil {
				return fmt.Errorf("export %s: %w", j.rel, err)
			}
			metrics.ExportedFiles.Inc()

			mu.Lock()
			total += n
			mu.Unlock()

			log.Debug("file written", slog.String("path", j.rel), slog.Int64("bytes", n))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	res := Result{
		OutputDir: opts.OutputDir,
		Files:     make([]string, 0, len(jobs)),
		Bytes:     total,
		Duration:  time.Since(start),
	}
	for _, j := range jobs {
		res.Files = append(res.Files, j.rel)
	}
	sort.Strings(res.Files)

	span.SetAttributes(attribute.Int("docsite.files", len(res.Files)))
	log.Info("export complete",
		slog.String("out_dir", opts.OutputDir),
		slog.Int("files", len(res.Files)),
		slog.Int64("bytes", res.Bytes),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// plan lists every file the export produces.
func plan(meta site.Meta) ([]job, error) {
	jobs := []job{{rel: indexFile, write: renderPage(components.LandingPage(meta))}}

	static := assets.Static()
	err := fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		jobs = append(jobs, job{rel: path.Join(staticDir, p), write: copyFrom(static, p)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk static assets: %w", err)
	}
	return jobs, nil
}

func renderPage(node g.Node) func(io.Writer) error {
	return node.Render
}

func copyFrom(fsys fs.FS, name string) func(io.Writer) error {
	return func(w io.Writer) error {
		f, err := fsys.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// writeFile streams write into a pending file and swaps it into place.
func writeFile(dst string, write func(io.Writer) error) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("create directory: %w", err)
	}

	pendingFile, err := renameio.NewPendingFile(dst, renameio.WithPermissions(0o644))
	if err != nil {
		return 0, fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		_ = pendingFile.Cleanup()
	}()

	cw := &countingWriter{w: pendingFile}
	if err := write(cw); err != nil {
		return 0, fmt.Errorf("write data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return 0, fmt.Errorf("atomically replace file: %w", err)
	}
	return cw.n, nil
}
