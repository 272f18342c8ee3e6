package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-softwarelab/common/docs/internal/config"
	"github.com/go-softwarelab/common/docs/internal/export"
	"github.com/go-softwarelab/common/docs/internal/logger"
	"github.com/go-softwarelab/common/docs/internal/site"
	"github.com/go-softwarelab/common/docs/internal/tracing"
)

var buildOutDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the site out as static files",
	Long: `Renders the landing page to index.html and copies every static asset
under static/ in the output directory. Existing files are replaced
atomically, so the command is safe to re-run over a previous build.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	meta, err := site.Load()
	if err != nil {
		return err
	}

	if cfg.Otel.Enabled() {
		shutdown, err := tracing.Setup(ctx, cfg.Otel)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn("tracer shutdown failed", logger.Error(err))
			}
		}()
	}

	outDir := buildOutDir
	if outDir == "" {
		outDir = cfg.Export.OutputDir
	}

	res, err := export.Run(ctx, meta, export.Options{
		OutputDir:   outDir,
		Concurrency: cfg.Export.Concurrency,
		Log:         log,
	})
	if err != nil {
		log.Error("build failed", slog.String("out_dir", outDir), logger.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d files (%d bytes) to %s\n", len(res.Files), res.Bytes, res.OutputDir)
	for _, f := range res.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	return nil
}

func init() {
	buildCmd.Flags().StringVar(&buildOutDir, "out", "", "output directory (default $DOCSITE_OUT_DIR or build)")
	rootCmd.AddCommand(buildCmd)
}
