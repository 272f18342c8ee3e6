package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

var envFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "Documentation site for the Go Common Utils library",
	Long: `Serves or builds the Go Common Utils documentation site.

The landing page, its feature cards, and every static asset are compiled
into the binary. "serve" runs the site over HTTP; "build" writes it out as
plain files for any static host.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnv(envFile)
	},
}

// NewRootCommand creates and returns the root command
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command with ctx, which is cancelled on shutdown signals.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading configuration (default .env when present)")
}

// loadEnv loads dotenv values without overriding variables already set.
// An explicitly named file must exist; the default one is optional.
func loadEnv(path string) error {
	if path == "" {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", defaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
