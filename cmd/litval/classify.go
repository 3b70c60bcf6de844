package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"litval/internal/literal"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [lexeme...]",
	Short: "Report the literal kind of each lexeme",
	Long:  `Classify inspects each lexeme's prefix and reports which literal form it spells`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	for _, lex := range args {
		fmt.Fprintf(os.Stdout, "%-14s %q\n", literal.Classify(lex), lex)
	}
	return nil
}
