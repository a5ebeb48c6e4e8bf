package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/anfilat/xlsx-rw"
)

var (
	optionsFile string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "xlsxtool",
	Short: "Inspect and rewrite xlsx workbooks",
	Long: `Read xlsx workbooks and show what the reader makes of them.

Commands:
  dump      Print every cell with its address and type.
  roundtrip Read a workbook and write it back.
  styles    Count the interned styles and style components.

Import options are read from a YAML file given with --options.

Examples:
  xlsxtool dump report.xlsx
  xlsxtool --options opts.yaml roundtrip in.xlsx out.xlsx`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&optionsFile, "options", "", "YAML file with import options")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log reader and writer decisions to stderr")
}

// openWorkbook reads path with the options given on the command line.
func openWorkbook(path string) (*xlsx.Workbook, error) {
	opts := &xlsx.ImportOptions{}
	if optionsFile != "" {
		f, err := os.Open(optionsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if opts, err = xlsx.LoadImportOptions(f); err != nil {
			return nil, fmt.Errorf("%s: %w", optionsFile, err)
		}
	}
	if verbose {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return xlsx.Open(path, opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
