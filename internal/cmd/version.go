package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-softwarelab/common/docs/internal/version"
)

var versionOutput string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the version, commit hash, and build date of the docsite binary",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Info()
	out := cmd.OutOrStdout()

	switch versionOutput {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		return yaml.NewEncoder(out).Encode(info)
	case "", "text":
		fmt.Fprintf(out, "docsite\n")
		fmt.Fprintf(out, "  Version:    %s\n", info.Version)
		fmt.Fprintf(out, "  Commit:     %s\n", info.GitCommit)
		fmt.Fprintf(out, "  Built:      %s\n", info.BuildTime)
		fmt.Fprintf(out, "  Go version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", versionOutput)
	}
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "text", "output format (text, json, yaml)")
	rootCmd.AddCommand(versionCmd)
}
