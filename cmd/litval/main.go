package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"litval/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "litval",
	Short: "Literal lexeme decoder",
	Long:  `litval decodes the raw text of source literal tokens into their semantic values`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
