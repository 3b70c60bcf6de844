package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"litval/internal/version"
)

var versionShowFull bool

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "include commit hash and build date")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show litval build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(out, "litval %s\n", v)
		if versionShowFull {
			fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
			fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
		}
		return nil
	},
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
