package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"litval/internal/driver"
	"litval/internal/litfmt"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] [lexeme...]",
	Short: "Decode literal lexemes into semantic values",
	Long:  `Decode interprets each lexeme as the requested literal kind and prints its semantic value`,
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().String("kind", "auto", "literal kind (auto|int|float|string|char|byte|byte-string|inner-doc|outer-doc)")
	decodeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	decodeCmd.Flags().String("file", "", "read lexemes from a file, one per line")
	decodeCmd.Flags().Int("jobs", 0, "parallel decode workers (0 = GOMAXPROCS)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	kindFlag, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("failed to get kind flag: %w", err)
	}
	op, err := driver.ParseOp(kindFlag)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	opts, err := decodeOptions(".")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var res *driver.Result
	switch {
	case file != "":
		res, err = driver.DecodeFile(ctx, file, op, opts, jobs)
	case len(args) > 0:
		res, err = driver.DecodeLexemes(ctx, args, op, opts, jobs)
	default:
		return fmt.Errorf("no lexemes given: pass them as arguments or via --file")
	}
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		popts := litfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		if err := litfmt.FormatPretty(os.Stdout, res.Entries, popts); err != nil {
			return err
		}
	case "json":
		if err := litfmt.FormatJSON(os.Stdout, res.Entries); err != nil {
			return err
		}
	case "msgpack":
		if err := litfmt.FormatMsgpack(os.Stdout, res.Entries); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet && format == "pretty" {
		fmt.Fprintf(os.Stderr, "%d lexemes, %d failed\n", len(res.Entries), res.Errors)
	}
	if res.Errors > 0 {
		// Failed entries are already on stdout; signal via exit code only.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("%d of %d lexemes failed to decode", res.Errors, len(res.Entries))
	}
	return nil
}
